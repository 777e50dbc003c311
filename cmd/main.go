package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"fanmenu/internal/app"
	"fanmenu/internal/app/cli"
	"fanmenu/internal/config"
	"fanmenu/internal/config/logger"
)

const sentryFlushTimeout = 2 * time.Second

// main is the entry point for the application
func main() {
	os.Exit(runApp(os.Args[1:]))
}

// runApp parses the command line, builds the fx application and returns its exit code
func runApp(args []string) int {
	opts, err := cli.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		return 1
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		return 1
	}

	output, closeOutput, err := openLogOutput(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		return 1
	}
	defer closeOutput()

	flush := setupTelemetry(cfg)
	defer flush()
	defer reportPanic()

	return run(createApp(cfg, opts, output))
}

// loadConfig loads the configuration; commands other than run fall back to defaults
func loadConfig(opts *cli.Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		if opts.Type == cli.CommandRun {
			return nil, err
		}

		return config.DefaultConfig(), nil
	}

	return cfg, nil
}

// openLogOutput picks the log destination; the menu owns the terminal, so its logs go to a file or nowhere
func openLogOutput(opts *cli.Options) (io.Writer, func(), error) {
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file %s: %w", opts.LogFile, err)
		}

		return f, func() { _ = f.Close() }, nil
	}

	if opts.Type == cli.CommandRun {
		return io.Discard, func() {}, nil
	}

	return os.Stdout, func() {}, nil
}

// setupTelemetry enables crash reporting when a DSN is configured and returns its flush func
func setupTelemetry(cfg *config.Config) func() {
	if cfg.Telemetry.SentryDSN == "" {
		return func() {}
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:     cfg.Telemetry.SentryDSN,
		Release: config.AppName + "@" + config.Version,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(fmt.Errorf("telemetry disabled: %w", err)))
		return func() {}
	}

	return func() { sentry.Flush(sentryFlushTimeout) }
}

// reportPanic forwards a panic to the crash reporter before letting it continue
func reportPanic() {
	if r := recover(); r != nil {
		sentry.CurrentHub().Recover(r)
		sentry.Flush(sentryFlushTimeout)
		panic(r)
	}
}

// createApp creates the FX application with the given config and options
func createApp(cfg *config.Config, opts *cli.Options, output io.Writer) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg)),
		fx.Supply(cfg, opts, logger.Output{Writer: output}),
		app.Module,
	)
}

// run starts the application, waits for its shutdown signal and stops it
func run(application *fx.App) int {
	if err := application.Err(); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		return 1
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), application.StartTimeout())
	defer cancelStart()

	if err := application.Start(startCtx); err != nil {
		fmt.Fprintln(os.Stderr, cli.RenderError(err))
		return 1
	}

	signal := <-application.Wait()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), application.StopTimeout())
	defer cancelStop()

	if err := application.Stop(stopCtx); err != nil {
		return 1
	}

	return signal.ExitCode
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg *config.Config) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		}

		return fxevent.NopLogger
	}
}

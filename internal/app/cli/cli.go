//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"fanmenu/internal/app/errors"
	"fanmenu/internal/app/generator"
	"fanmenu/internal/app/ui"
	"fanmenu/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli represents the command-line interface for the application
type cli struct {
	opts      *Options
	runner    ui.Runner
	generator generator.Generator
	out       io.Writer
	log       logger.Logger
}

// NewCLI creates a new cli instance
func NewCLI(opts *Options, runner ui.Runner, gen generator.Generator, log logger.Logger) CLI {
	return newCLIWithOutput(opts, runner, gen, os.Stdout, log)
}

func newCLIWithOutput(opts *Options, runner ui.Runner, gen generator.Generator, out io.Writer, log logger.Logger) *cli {
	return &cli{
		opts:      opts,
		runner:    runner,
		generator: gen,
		out:       out,
		log:       log,
	}
}

// Execute runs the parsed command and returns the process exit code
func (c *cli) Execute() (int, error) {
	switch c.opts.Type {
	case CommandHelp:
		return c.handleHelp()
	case CommandVersion:
		return c.handleVersion()
	case CommandInit:
		return c.handleInit()
	default:
		return c.handleRun()
	}
}

// handleRun shows the menu until the user quits or a signal arrives
func (c *cli) handleRun() (int, error) {
	c.log.Debug().Msgf("Showing menu from %s", c.opts.ConfigPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := c.runner.Run(ctx, ui.RunOptions{
		ConfigPath: c.opts.ConfigPath,
		Instant:    c.opts.Instant,
		Override:   c.opts.Override,
	})
	if err != nil {
		c.log.Error().Err(err).Msg("Menu failed")
		fmt.Fprintln(c.out, RenderError(err))

		return 1, err
	}

	return 0, nil
}

// handleInit writes a configuration template
func (c *cli) handleInit() (int, error) {
	opts := generator.DefaultOptions()
	opts.Path = c.opts.ConfigPath

	if c.opts.Direction != "" {
		opts.Direction = c.opts.Direction
	}

	if c.opts.TitleSide != "" {
		opts.TitleSide = c.opts.TitleSide
	}

	if c.opts.NoSound {
		opts.Sounds = false
	}

	c.log.Debug().Msgf("Generating %s", opts.Path)

	if err := c.generator.Generate(opts, c.opts.Force, c.opts.DryRun); err != nil {
		if errors.Is(err, errors.ErrFileAlreadyExists) {
			fmt.Fprintln(c.out, RenderError(fmt.Errorf("%s already exists, use --force to overwrite", opts.Path)))
		} else {
			fmt.Fprintln(c.out, RenderError(err))
		}

		return 1, err
	}

	if !c.opts.DryRun {
		fmt.Fprintln(c.out, RenderSuccess(fmt.Sprintf("Created %s", opts.Path)))
	}

	return 0, nil
}

// handleHelp displays help information
func (c *cli) handleHelp() (int, error) {
	c.log.Debug().Msg("Displaying help information")
	fmt.Fprint(c.out, renderUsage())

	return 0, nil
}

// handleVersion displays version information
func (c *cli) handleVersion() (int, error) {
	c.log.Debug().Msg("Displaying version information")
	fmt.Fprintln(c.out, RenderTitle())
	fmt.Fprintln(c.out)

	return 0, nil
}

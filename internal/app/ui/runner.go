//go:generate mockgen -source=runner.go -destination=runner_mock.go -package=ui
package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"fanmenu/internal/app/monitor"
	"fanmenu/internal/app/sound"
	"fanmenu/internal/app/watcher"
	"fanmenu/internal/config"
	"fanmenu/internal/config/logger"
)

// RunOptions are the per-invocation settings of the menu host
type RunOptions struct {
	ConfigPath string
	Instant    bool
	Override   func(cfg *config.Config)
}

// Runner hosts the menu in the terminal until the user quits
type Runner interface {
	Run(ctx context.Context, opts RunOptions) error
}

type runner struct {
	cfg     *config.Config
	player  *sound.Player
	monitor monitor.Monitor
	watcher watcher.Watcher
	log     logger.Logger
}

// NewRunner creates a runner over the shared collaborators
func NewRunner(cfg *config.Config, player *sound.Player, mon monitor.Monitor, w watcher.Watcher, log logger.Logger) Runner {
	return &runner{
		cfg:     cfg,
		player:  player,
		monitor: mon,
		watcher: w,
		log:     log,
	}
}

// Run starts the Bubble Tea program and tears the menu down once it exits
func (r *runner) Run(ctx context.Context, opts RunOptions) error {
	if opts.Override != nil {
		opts.Override(r.cfg)
	}

	params := Params{
		Config:     r.cfg,
		ConfigPath: opts.ConfigPath,
		Instant:    opts.Instant,
		Override:   opts.Override,
		Monitor:    r.monitor,
		Watcher:    r.watcher,
		Log:        r.log,
	}

	if r.player != nil {
		params.Sounds = r.player
	}

	model, err := NewModel(ctx, params, NewContainer())
	if err != nil {
		return err
	}

	defer r.cleanup(model)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	r.log.Debug().Msg("TUI: Program created")

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}

// cleanup releases the menu, the audio output, and the file watcher
func (r *runner) cleanup(model Model) {
	model.Close()

	if r.player != nil {
		r.player.Close()
	}

	if r.watcher != nil {
		r.watcher.Close()
	}

	r.log.Debug().Msg("TUI: Cleanup complete")
}

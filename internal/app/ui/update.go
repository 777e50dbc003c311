package ui

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"fanmenu/internal/app/monitor"
	"fanmenu/internal/app/ui/components"
	"fanmenu/internal/app/watcher"
	"fanmenu/internal/config"
	"fanmenu/internal/menu"
)

const (
	tickCounterMaximum = 1000000
	statsCallTimeout   = 500 * time.Millisecond
)

// tickMsg signals a frame tick
type tickMsg time.Time

// statsMsg carries a resource sample of the host process
type statsMsg monitor.Stats

// changeMsg wraps a watched file change
type changeMsg watcher.Change

// changesClosedMsg signals the change stream has ended
type changesClosedMsg struct{}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width

		if m.stage.container.SetTerminalSize(msg.Width, msg.Height) {
			m.state.rebuild = true
			m.rebuildIfFolded()
		}

		return m, nil

	case tickMsg:
		m.stage.scene.Advance(time.Time(msg))

		m.ui.tickCounter++
		if m.ui.tickCounter >= tickCounterMaximum {
			m.ui.tickCounter = 0
		}

		m.rebuildIfFolded()

		return m, tickCmd(m.state.cfg.UI.Tick)

	case statsMsg:
		m.state.stats = monitor.Stats(msg)
		return m, statsCmd(m.ctx, m.params.Monitor)

	case changeMsg:
		m.handleChange(watcher.Change(msg))
		return m, waitForChangeCmd(m.params.Watcher)

	case changesClosedMsg:
		m.log.Debug().Msg("Change stream closed")
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ui.keys
	b := m.stage.button

	switch {
	case key.Matches(msg, keys.ForceQuit), key.Matches(msg, keys.Quit):
		m.state.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.Hub):
		if m.params.Instant {
			m.toggleInstant()
			return m, nil
		}

		m.stage.gestures.Tap(b.Hub())

	case key.Matches(msg, keys.Item):
		m.tapItem(int(msg.Runes[0] - '1'))

	case key.Matches(msg, keys.Background):
		m.stage.gestures.Tap(b.Scrim())

	case key.Matches(msg, keys.Present):
		b.Present(false)

	case key.Matches(msg, keys.Dismiss):
		b.Dismiss(false)

	case key.Matches(msg, keys.Sounds):
		look := b.Look()
		look.SoundsEnabled = !look.SoundsEnabled
		b.SetLook(look)

	case key.Matches(msg, keys.ToggleTips):
		m.ui.showTips = !m.ui.showTips
	}

	return m, nil
}

// handleMouse turns left clicks on the canvas into taps
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	p := menu.Point{
		X: float64(msg.X) + 0.5,
		Y: float64(msg.Y-components.HeaderHeight) + 0.5,
	}

	if !m.stage.gestures.TapAt(p, m.stage.clock()) {
		m.log.Debug().Msgf("Click at %d,%d hit nothing", msg.X, msg.Y)
	}

	return m, nil
}

// tapItem taps the item at index while it is shown
func (m Model) tapItem(index int) {
	items := m.stage.button.Items()
	if index < 0 || index >= len(items) {
		return
	}

	if !m.stage.gestures.Tap(items[index]) {
		m.log.Debug().Msgf("Item %d is not tappable now", index+1)
	}
}

// toggleInstant presents or dismisses without animation
func (m Model) toggleInstant() {
	b := m.stage.button

	if b.IsExpanded() {
		b.Dismiss(false)
		return
	}

	b.Present(false)
}

// handleChange reloads the configuration after a config change and schedules a rebuild
func (m *Model) handleChange(change watcher.Change) {
	path := m.params.ConfigPath
	if path == "" {
		path = config.FileName
	}

	if change.Has(filepath.Base(path)) || change.Has(config.EnvFile) {
		cfg, err := config.Load(path)
		if err != nil {
			m.state.reloadErr = err
			m.log.Warn().Err(err).Msg("Configuration reload failed, keeping the previous one")

			return
		}

		if m.params.Override != nil {
			m.params.Override(cfg)
		}

		look, err := LookFromConfig(cfg)
		if err != nil {
			m.state.reloadErr = err
			return
		}

		m.state.cfg = cfg
		m.state.reloadErr = nil
		m.stage.button.SetLook(look)
		m.watchSounds(cfg.Sounds.Dir)

		m.log.Info().Msgf("Reloaded %s", path)
	}

	m.state.rebuild = true
	m.rebuildIfFolded()
}

// rebuildIfFolded applies a pending rebuild once no transition is in flight
func (m *Model) rebuildIfFolded() {
	if !m.state.rebuild || m.stage.button.Phase() != menu.Folded {
		return
	}

	if err := m.build(); err != nil {
		m.state.reloadErr = err
		m.state.rebuild = false
		m.log.Error().Err(err).Msg("Failed to rebuild menu")
	}
}

// tickCmd schedules the next frame
func tickCmd(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		interval = components.UITickInterval
	}

	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// statsCmd schedules one resource sample of the host process
func statsCmd(ctx context.Context, mon monitor.Monitor) tea.Cmd {
	if mon == nil {
		return nil
	}

	return tea.Tick(components.StatsInterval, func(time.Time) tea.Msg {
		callCtx, cancel := context.WithTimeout(ctx, statsCallTimeout)
		defer cancel()

		stats, err := mon.Self(callCtx)
		if err != nil {
			return statsMsg{}
		}

		return statsMsg(stats)
	})
}

// waitForChangeCmd waits for the next watched change
func waitForChangeCmd(w watcher.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}

	changes := w.Changes()

	return func() tea.Msg {
		change, ok := <-changes
		if !ok {
			return changesClosedMsg{}
		}

		return changeMsg(change)
	}
}

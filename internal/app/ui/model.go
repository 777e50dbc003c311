package ui

import (
	"context"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"fanmenu/internal/app/monitor"
	"fanmenu/internal/app/sound"
	"fanmenu/internal/app/ui/components"
	"fanmenu/internal/app/watcher"
	"fanmenu/internal/config"
	"fanmenu/internal/config/logger"
	"fanmenu/internal/menu"
)

// soundPatterns are the files below the sounds dir that trigger a rebuild
var soundPatterns = []string{"**/*.wav", "**/*.WAV"}

// Params are the collaborators and run options of the menu host
type Params struct {
	Config     *config.Config
	ConfigPath string
	Instant    bool
	Override   func(cfg *config.Config)
	Sounds     menu.SoundPlayer
	Monitor    monitor.Monitor
	Watcher    watcher.Watcher
	Log        logger.Logger
}

// stage holds the mutable menu runtime shared by every copy of the model
type stage struct {
	container *Container
	scene     *Scene
	gestures  *Gestures
	button    *menu.Button
	easing    *components.Easing
	clock     func() time.Time
	activity  string
	soundDir  string
}

// Model represents the Bubble Tea model of the menu host
type Model struct {
	ctx     context.Context
	params  Params
	stage   *stage
	watched []string

	state struct {
		cfg       *config.Config
		stats     monitor.Stats
		reloadErr error
		rebuild   bool
		quitting  bool
	}

	ui struct {
		width       int
		height      int
		keys        components.KeyMap
		help        help.Model
		tickCounter int
		showTips    bool
		tipOffset   int
	}

	log logger.Logger
}

// NewModel creates the host model and builds the configured menu
func NewModel(ctx context.Context, params Params, container *Container) (Model, error) {
	return newModelWithClock(ctx, params, container, time.Now)
}

func newModelWithClock(ctx context.Context, params Params, container *Container, clock func() time.Time) (Model, error) {
	log := params.Log
	if log == nil {
		log = logger.NewNopLogger()
	}

	log = log.WithComponent("UI")

	m := Model{
		ctx:    ctx,
		params: params,
		stage: &stage{
			container: container,
			easing:    components.NewEasing(),
			clock:     clock,
		},
		log: log,
	}

	m.state.cfg = params.Config

	m.ui.width = container.Width()
	m.ui.height = container.Height() + components.HeaderHeight + components.FooterHeight
	m.ui.keys = components.DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.showTips = true
	m.ui.tipOffset = rand.IntN(len(components.Tips)) //nolint:gosec // not security-critical

	if err := m.build(); err != nil {
		return m, err
	}

	m.watch()

	log.Debug().Msg("Created menu host model")

	return m, nil
}

// build replaces the menu with a fresh one created from the current configuration
func (m *Model) build() error {
	cfg := m.state.cfg

	look, err := LookFromConfig(cfg)
	if err != nil {
		return err
	}

	items, err := ItemsFromConfig(cfg, m.stage.selected)
	if err != nil {
		return err
	}

	var resolver menu.ResourceResolver
	if r, err := sound.NewResolver(cfg); err != nil {
		m.log.Warn().Err(err).Msg("Sound patterns are invalid, cues disabled")
	} else {
		resolver = r
	}

	if m.stage.button != nil {
		m.stage.button.Close()
	}

	scene := newSceneWithClock(m.stage.easing.Curve(), m.stage.clock)
	gestures := NewGestures(scene)

	hub := NewGlyph(cfg.Hub.Glyph, cfg.Hub.Width, cfg.Hub.Height)
	highlighted := NewGlyph(cfg.Hub.Highlighted, cfg.Hub.Width, cfg.Hub.Height)
	frame := HubFrame(look.Direction, m.stage.container.Bounds(), hub.Size())

	b, err := menu.New(frame, hub, highlighted, look, menu.Deps{
		Scene:     scene,
		Gestures:  gestures,
		Container: m.stage.container,
		Sounds:    m.params.Sounds,
		Resolver:  resolver,
		Log:       m.log,
	})
	if err != nil {
		return err
	}

	st := m.stage

	b.AddItems(items...)
	b.OnWillPresent(func(*menu.Button) { st.activity = "expanding…" })
	b.OnDidPresent(func(*menu.Button) { st.activity = "expanded" })
	b.OnWillDismiss(func(*menu.Button) {
		if st.activity == "expanded" {
			st.activity = "folding…"
		}
	})
	b.OnDidDismiss(func(*menu.Button) {
		if st.activity == "folding…" {
			st.activity = "folded"
		}
	})

	m.stage.scene = scene
	m.stage.gestures = gestures
	m.stage.button = b
	m.state.rebuild = false

	m.log.Info().Msgf("Menu ready with %d items (%s)", len(items), look.Direction)

	return nil
}

// selected records the title of the tapped item; the menu itself folds on its own
func (s *stage) selected(title string) {
	s.activity = fmt.Sprintf("selected %s", title)
}

// watch registers the configuration file and the sounds dir with the watcher
func (m *Model) watch() {
	w := m.params.Watcher
	cfg := m.state.cfg

	if w == nil || !cfg.UI.Watch {
		return
	}

	path := m.params.ConfigPath
	if path == "" {
		path = config.FileName
	}

	configDir := filepath.Dir(path)
	if err := w.Watch(configDir, []string{filepath.Base(path), config.EnvFile}, nil); err != nil {
		m.log.Warn().Err(err).Msgf("Failed to watch %s", configDir)
	} else {
		m.watched = append(m.watched, configDir)
	}

	m.watchSounds(cfg.Sounds.Dir)
}

// watchSounds moves the sounds watch to dir
func (m *Model) watchSounds(dir string) {
	w := m.params.Watcher
	if w == nil || !m.state.cfg.UI.Watch || dir == m.stage.soundDir {
		return
	}

	if m.stage.soundDir != "" {
		w.Unwatch(m.stage.soundDir)
	}

	m.stage.soundDir = dir

	if err := w.Watch(dir, soundPatterns, nil); err != nil {
		m.log.Debug().Err(err).Msgf("Sounds dir %s not watched", dir)
	}
}

// Init starts the frame ticks, the stats sampling, and the change stream
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.state.cfg.UI.Tick),
		statsCmd(m.ctx, m.params.Monitor),
		waitForChangeCmd(m.params.Watcher),
	)
}

// Button returns the menu controller
func (m Model) Button() *menu.Button {
	return m.stage.button
}

// Close tears the menu down and stops watching
func (m Model) Close() {
	if m.stage.button != nil {
		m.stage.button.Close()
	}

	if w := m.params.Watcher; w != nil {
		for _, dir := range m.watched {
			w.Unwatch(dir)
		}

		if m.stage.soundDir != "" {
			w.Unwatch(m.stage.soundDir)
		}
	}
}

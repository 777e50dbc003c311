package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"fanmenu/internal/app/errors"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" mapstructure:"level"`
		Format string `yaml:"format" mapstructure:"format"`
	} `yaml:"logging" mapstructure:"logging"`
	Menu      Menu   `yaml:"menu" mapstructure:"menu"`
	Sounds    Sounds `yaml:"sounds" mapstructure:"sounds"`
	Hub       Hub    `yaml:"hub" mapstructure:"hub"`
	Items     []Item `yaml:"items" mapstructure:"items"`
	UI        UI     `yaml:"ui" mapstructure:"ui"`
	Telemetry struct {
		SentryDSN string `yaml:"sentry_dsn" mapstructure:"sentry_dsn"`
	} `yaml:"telemetry" mapstructure:"telemetry"`
	Version int `yaml:"version" mapstructure:"version"`
}

// Menu represents the look and motion of the fan-out menu
type Menu struct {
	Direction           string        `yaml:"direction" mapstructure:"direction"`
	ItemMargin          float64       `yaml:"item_margin" mapstructure:"item_margin"`
	AnimationDuration   time.Duration `yaml:"animation_duration" mapstructure:"animation_duration"`
	FoldRatio           float64       `yaml:"fold_ratio" mapstructure:"fold_ratio"`
	TitleSide           string        `yaml:"title_side" mapstructure:"title_side"`
	TitleMargin         float64       `yaml:"title_margin" mapstructure:"title_margin"`
	TitleTapEnabled     bool          `yaml:"title_tap_enabled" mapstructure:"title_tap_enabled"`
	TitleColor          string        `yaml:"title_color" mapstructure:"title_color"`
	Scrim               Scrim         `yaml:"scrim" mapstructure:"scrim"`
	Bounce              Bounce        `yaml:"bounce" mapstructure:"bounce"`
	ExpandingAnimations []string      `yaml:"expanding_animations" mapstructure:"expanding_animations"`
	FoldingAnimations   []string      `yaml:"folding_animations" mapstructure:"folding_animations"`
}

// Scrim represents the background surface shown while expanded
type Scrim struct {
	Color string  `yaml:"color" mapstructure:"color"`
	Alpha float64 `yaml:"alpha" mapstructure:"alpha"`
}

// Bounce represents the overshoot offsets of item paths
type Bounce struct {
	Far      float64 `yaml:"far" mapstructure:"far"`
	Near     float64 `yaml:"near" mapstructure:"near"`
	Backward float64 `yaml:"backward" mapstructure:"backward"`
}

// Sounds represents audio cue configuration
type Sounds struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir     string `yaml:"dir" mapstructure:"dir"`
	Expand  string `yaml:"expand" mapstructure:"expand"`
	Fold    string `yaml:"fold" mapstructure:"fold"`
	Select  string `yaml:"select" mapstructure:"select"`
}

// Hub represents the central toggle control
type Hub struct {
	Glyph       string  `yaml:"glyph" mapstructure:"glyph"`
	Highlighted string  `yaml:"highlighted" mapstructure:"highlighted"`
	Width       float64 `yaml:"width" mapstructure:"width"`
	Height      float64 `yaml:"height" mapstructure:"height"`
}

// Item represents a single menu entry in the demo menu
type Item struct {
	Glyph      string  `yaml:"glyph" mapstructure:"glyph"`
	Title      string  `yaml:"title" mapstructure:"title"`
	TitleColor string  `yaml:"title_color" mapstructure:"title_color"`
	Width      float64 `yaml:"width" mapstructure:"width"`
	Height     float64 `yaml:"height" mapstructure:"height"`
}

// UI represents terminal host settings
type UI struct {
	Tick  time.Duration `yaml:"tick" mapstructure:"tick"`
	Watch bool          `yaml:"watch" mapstructure:"watch"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Menu = Menu{
		Direction:           DirectionTop,
		ItemMargin:          DefaultItemMargin,
		AnimationDuration:   DefaultAnimationDuration,
		FoldRatio:           DefaultFoldRatio,
		TitleSide:           TitleLeft,
		TitleMargin:         DefaultTitleMargin,
		TitleTapEnabled:     true,
		TitleColor:          DefaultTitleColor,
		Scrim:               Scrim{Color: DefaultScrimColor, Alpha: DefaultScrimAlpha},
		Bounce:              Bounce{Far: DefaultBounceFar, Near: DefaultBounceNear, Backward: DefaultBounceBackward},
		ExpandingAnimations: []string{PresetNormal},
		FoldingAnimations:   []string{PresetNormal},
	}

	cfg.Sounds = Sounds{
		Enabled: true,
		Dir:     DefaultSoundDir,
		Expand:  DefaultExpandSound,
		Fold:    DefaultFoldSound,
		Select:  DefaultSelectSound,
	}

	cfg.Hub = Hub{
		Glyph:       DefaultHubGlyph,
		Highlighted: DefaultHubHighlighted,
		Width:       DefaultHubWidth,
		Height:      DefaultHubHeight,
	}

	cfg.Items = []Item{
		{Glyph: "♫", Title: "Music", Width: 3, Height: 1},
		{Glyph: "⚑", Title: "Place", Width: 3, Height: 1},
		{Glyph: "◉", Title: "Camera", Width: 3, Height: 1},
		{Glyph: "✎", Title: "Thought", Width: 3, Height: 1},
	}

	cfg.UI.Tick = DefaultTick
	cfg.UI.Watch = true

	return cfg
}

// Load loads the configuration from the given file, falling back to defaults when it does not exist
func Load(path string) (*Config, error) {
	if path == "" {
		path = FileName
	}

	if err := godotenv.Load(EnvFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %w", errors.ErrFailedToReadConfig, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			data = nil
		} else {
			return nil, errors.ErrFailedToReadConfig
		}
	}

	return Parse(data)
}

// Parse builds a validated configuration from raw yaml, applying defaults and environment overrides
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	defaults := *cfg
	cfg.Items = nil
	cfg.Menu.ExpandingAnimations = nil
	cfg.Menu.FoldingAnimations = nil

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindDefaults(v, cfg)

	if len(data) > 0 {
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToReadConfig
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.applyListDefaults(&defaults)
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// bindDefaults registers scalar defaults so environment overrides apply without a config file
func bindDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("menu.direction", cfg.Menu.Direction)
	v.SetDefault("menu.item_margin", cfg.Menu.ItemMargin)
	v.SetDefault("menu.animation_duration", cfg.Menu.AnimationDuration)
	v.SetDefault("menu.fold_ratio", cfg.Menu.FoldRatio)
	v.SetDefault("menu.title_side", cfg.Menu.TitleSide)
	v.SetDefault("menu.title_margin", cfg.Menu.TitleMargin)
	v.SetDefault("menu.title_tap_enabled", cfg.Menu.TitleTapEnabled)
	v.SetDefault("menu.title_color", cfg.Menu.TitleColor)
	v.SetDefault("menu.bounce.far", cfg.Menu.Bounce.Far)
	v.SetDefault("menu.bounce.near", cfg.Menu.Bounce.Near)
	v.SetDefault("menu.bounce.backward", cfg.Menu.Bounce.Backward)
	v.SetDefault("menu.scrim.color", cfg.Menu.Scrim.Color)
	v.SetDefault("menu.scrim.alpha", cfg.Menu.Scrim.Alpha)
	v.SetDefault("sounds.enabled", cfg.Sounds.Enabled)
	v.SetDefault("sounds.dir", cfg.Sounds.Dir)
	v.SetDefault("ui.tick", cfg.UI.Tick)
	v.SetDefault("ui.watch", cfg.UI.Watch)
	v.SetDefault("telemetry.sentry_dsn", "")
}

// applyListDefaults restores list values the document left empty
func (c *Config) applyListDefaults(defaults *Config) {
	if len(c.Items) == 0 {
		c.Items = defaults.Items
	}

	if len(c.Menu.ExpandingAnimations) == 0 {
		c.Menu.ExpandingAnimations = defaults.Menu.ExpandingAnimations
	}

	if len(c.Menu.FoldingAnimations) == 0 {
		c.Menu.FoldingAnimations = defaults.Menu.FoldingAnimations
	}
}

// normalize trims and lowercases enumerated values
func (c *Config) normalize() {
	c.Menu.Direction = normalizeName(c.Menu.Direction)
	c.Menu.TitleSide = normalizeName(c.Menu.TitleSide)

	for i, name := range c.Menu.ExpandingAnimations {
		c.Menu.ExpandingAnimations[i] = normalizeName(name)
	}

	for i, name := range c.Menu.FoldingAnimations {
		c.Menu.FoldingAnimations[i] = normalizeName(name)
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateMenu(); err != nil {
		return err
	}

	if err := validateAnimations(c.Menu.ExpandingAnimations); err != nil {
		return fmt.Errorf("expanding_animations: %w", err)
	}

	if err := validateAnimations(c.Menu.FoldingAnimations); err != nil {
		return fmt.Errorf("folding_animations: %w", err)
	}

	if len(c.Items) == 0 {
		return errors.ErrNoMenuItems
	}

	if c.UI.Tick <= 0 {
		return errors.ErrInvalidTickInterval
	}

	return nil
}

// validateMenu validates the menu look settings
func (c *Config) validateMenu() error {
	m := c.Menu

	switch m.Direction {
	case DirectionTop, DirectionBottom, DirectionLeft:
	default:
		return fmt.Errorf("%w: '%s' (must be 'top', 'bottom', or 'left')", errors.ErrInvalidDirection, m.Direction)
	}

	switch m.TitleSide {
	case TitleLeft, TitleRight:
	default:
		return fmt.Errorf("%w: '%s' (must be 'left' or 'right')", errors.ErrInvalidTitleSide, m.TitleSide)
	}

	if m.AnimationDuration <= 0 {
		return errors.ErrInvalidDuration
	}

	if m.FoldRatio <= 0 || m.FoldRatio > 1 {
		return errors.ErrInvalidFoldRatio
	}

	if m.ItemMargin < 0 || m.TitleMargin < 0 {
		return errors.ErrInvalidItemMargin
	}

	if m.Bounce.Far < 0 || m.Bounce.Near < 0 || m.Bounce.Backward < 0 {
		return errors.ErrInvalidBounce
	}

	if m.Scrim.Alpha < 0 || m.Scrim.Alpha > 1 {
		return errors.ErrInvalidScrimAlpha
	}

	return nil
}

// validateAnimations checks every option name against the known options and presets
func validateAnimations(names []string) error {
	for _, name := range names {
		switch name {
		case OptionItemRotation, OptionItemBound, OptionItemMoving, OptionItemFade, OptionButtonRotation,
			PresetNormal, PresetAll:
		default:
			return fmt.Errorf("%w: '%s'", errors.ErrInvalidAnimationOption, name)
		}
	}

	return nil
}

// normalizeName trims whitespace and lowercases an enumerated value
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

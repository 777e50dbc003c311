package config

import "time"

// app constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	AppName        = "fanmenu"
	AppDescription = "A fan-out menu that expands items along an arc around a hub"

	FileName  = "fanmenu.yaml"
	EnvFile   = ".env"
	EnvPrefix = "FANMENU"

	Version = "0.3.0"
)

// menu constants
const (
	DirectionTop    = "top"
	DirectionBottom = "bottom"
	DirectionLeft   = "left"

	TitleLeft  = "left"
	TitleRight = "right"

	DefaultAnimationDuration = 350 * time.Millisecond
	DefaultFoldRatio         = 0.9
	DefaultItemMargin        = 1.0
	DefaultTitleMargin       = 1.0
	DefaultScrimAlpha        = 0.618
	DefaultScrimColor        = "#000000"
	DefaultTitleColor        = "#EEEEEE"
	DefaultBounceFar         = 2.0
	DefaultBounceNear        = 1.0
	DefaultBounceBackward    = 1.0
)

// animation option names
const (
	OptionItemRotation   = "item_rotation"
	OptionItemBound      = "item_bound"
	OptionItemMoving     = "item_moving"
	OptionItemFade       = "item_fade"
	OptionButtonRotation = "button_rotation"

	PresetNormal = "normal"
	PresetAll    = "all"
)

// sound constants
const (
	DefaultSoundDir    = "sounds"
	DefaultExpandSound = "expand*.wav"
	DefaultFoldSound   = "fold*.wav"
	DefaultSelectSound = "select*.wav"
)

// hub constants
const (
	DefaultHubGlyph       = "✚"
	DefaultHubHighlighted = "✜"
	DefaultHubWidth       = 3
	DefaultHubHeight      = 1
)

// ui constants
const (
	DefaultTick     = 16 * time.Millisecond
	WatchDebounce   = 300 * time.Millisecond
	ShutdownTimeout = 5 * time.Second
)

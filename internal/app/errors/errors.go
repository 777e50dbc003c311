package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidDirection       = errors.New("invalid expanding direction")
	ErrInvalidTitleSide       = errors.New("invalid title side")
	ErrInvalidAnimationOption = errors.New("invalid animation option")
	ErrInvalidDuration        = errors.New("animation duration must be positive")
	ErrInvalidFoldRatio       = errors.New("fold ratio must be in (0, 1]")
	ErrInvalidScrimAlpha      = errors.New("scrim alpha must be in [0, 1]")
	ErrInvalidItemMargin      = errors.New("item margin must not be negative")
	ErrInvalidBounce          = errors.New("bounce offsets must not be negative")
	ErrInvalidTickInterval    = errors.New("ui tick must be positive")
	ErrNoMenuItems            = errors.New("at least one menu item is required")

	ErrItemSizeUnresolved = errors.New("menu item size cannot be resolved")
	ErrHubSizeUnresolved  = errors.New("hub size cannot be resolved")
	ErrSceneRequired      = errors.New("a scene is required")

	ErrSoundNotLoaded     = errors.New("sound cue not loaded")
	ErrSoundPathRequired  = errors.New("sound path is required")
	ErrSpeakerUnavailable = errors.New("audio speaker unavailable")
	ErrUnsupportedSound   = errors.New("unsupported sound format")

	ErrFileAlreadyExists = errors.New("file already exists")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)

package components

import "time"

// UI timing constants
const (
	// UITickInterval is the default frame interval of the menu host
	UITickInterval = 16 * time.Millisecond

	// StatsInterval is how often the footer resource sample refreshes
	StatsInterval = time.Second

	// TipInterval is how long each footer tip stays visible
	TipInterval = 6 * time.Second
)

// Chrome heights around the canvas
const (
	FooterHeight = 2
	HeaderHeight = 1
)

// Canvas constants
const (
	MinCanvasWidth  = 20
	MinCanvasHeight = 6
	DefaultWidth    = 80
	DefaultHeight   = 24
)

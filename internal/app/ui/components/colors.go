package components

import "github.com/charmbracelet/lipgloss"

// Color palette for the UI with semantic naming
const (
	// Foreground colors - text and elements
	FgPrimary = lipgloss.Color("#7D56F4") // Purple - hub and focus color
	FgMuted   = lipgloss.Color("7")       // Light gray - muted elements
	FgBorder  = lipgloss.Color("8")       // Gray - separators and help text

	// Background colors
	BgHubPressed = lipgloss.Color("#3C2A80") // Dark purple - highlighted hub

	// Status colors - menu phases
	FgPhaseFolded    = lipgloss.Color("8")  // Gray - folded
	FgPhaseAnimating = lipgloss.Color("11") // Yellow - expanding or folding
	FgPhaseExpanded  = lipgloss.Color("10") // Green - expanded
	FgError          = lipgloss.Color("9")  // Red - reload errors
)

// SeparatorColor is the adaptive color for header and footer lines
var SeparatorColor = lipgloss.AdaptiveColor{Light: "#737373", Dark: "#a3a3a3"}

// ItemColorPalette provides distinct colors for item glyphs, cycled by index
var ItemColorPalette = []lipgloss.AdaptiveColor{
	{Light: "#0891b2", Dark: "#22d3ee"}, // Cyan
	{Light: "#d97706", Dark: "#fbbf24"}, // Amber
	{Light: "#059669", Dark: "#34d399"}, // Emerald
	{Light: "#db2777", Dark: "#f472b6"}, // Pink
	{Light: "#2563eb", Dark: "#60a5fa"}, // Blue
	{Light: "#dc2626", Dark: "#f87171"}, // Red
	{Light: "#65a30d", Dark: "#a3e635"}, // Lime
	{Light: "#ea580c", Dark: "#fb923c"}, // Orange
}

// ItemColor returns the palette color for an item index
func ItemColor(index int) lipgloss.AdaptiveColor {
	if index < 0 {
		index = -index
	}

	return ItemColorPalette[index%len(ItemColorPalette)]
}

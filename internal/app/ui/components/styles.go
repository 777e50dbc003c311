package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// HeaderStyle for the top line
	HeaderStyle = lipgloss.NewStyle().
			Foreground(FgPrimary)

	// FooterStyle for the bottom block
	FooterStyle = lipgloss.NewStyle()

	// SeparatorStyle for horizontal lines
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SeparatorColor)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// FooterHelpStyle pads the help line
	FooterHelpStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// HubStyle for the folded hub glyph
	HubStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	// HubPressedStyle for the highlighted hub glyph
	HubPressedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BgHubPressed)

	// ItemStyle for item glyphs; the foreground is set per item
	ItemStyle = lipgloss.NewStyle().
			Bold(true)

	// ErrorStyle for reload errors
	ErrorStyle = lipgloss.NewStyle().
			Foreground(FgError)

	// StatsStyle for the resource sample
	StatsStyle = lipgloss.NewStyle().
			Foreground(FgMuted)
)

// PhaseStyle returns the header style for a phase name
func PhaseStyle(phase string) lipgloss.Style {
	switch phase {
	case "expanded":
		return lipgloss.NewStyle().Foreground(FgPhaseExpanded)
	case "expanding", "folding":
		return lipgloss.NewStyle().Foreground(FgPhaseAnimating)
	default:
		return lipgloss.NewStyle().Foreground(FgPhaseFolded)
	}
}

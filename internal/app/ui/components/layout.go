package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"fanmenu/internal/config"
)

// Separator joins the parts of the status and footer lines
const Separator = " • "

// HubMark prefixes the application name in the header
const HubMark = "◉"

// JoinParts joins the non-empty parts with Separator
func JoinParts(parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, Separator)
}

// RenderStatus renders the phase and direction, followed by the resource sample when there is one
func RenderStatus(phase, direction, stats string) string {
	status := PhaseStyle(phase).Render(phase) + " " + direction

	if stats != "" {
		stats = StatsStyle.Render(stats)
	}

	return JoinParts(status, stats)
}

// RenderHeader renders the mark, the title and the status on one line, filling the rest with a rule
func RenderHeader(width int, title, status string) string {
	head := HubStyle.Render(HubMark) + " " + title
	if status != "" {
		head += "  " + status
	}

	head = Truncate(head, width)

	if fill := width - lipgloss.Width(head) - 1; fill > 0 {
		head += " " + rule(fill)
	}

	return HeaderStyle.Render(head)
}

// RenderFooter renders a rule ending in the version, and below it the activity and the help text
func RenderFooter(width int, activity, text string) string {
	version := "v" + config.Version
	versionLine := version

	if fill := width - lipgloss.Width(version) - 1; fill > 0 {
		versionLine = rule(fill) + " " + version
	}

	line := Truncate(JoinParts(activity, text), width-2)

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		versionLine,
		FooterHelpStyle.Render(HelpStyle.Render(line)),
	))
}

// Truncate shortens s to maxWidth cells, keeping escape sequences intact and marking the cut with an ellipsis
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	if lipgloss.Width(s) <= maxWidth {
		return s
	}

	if maxWidth == 1 {
		return "…"
	}

	return ansi.Truncate(s, maxWidth, "…")
}

func rule(width int) string {
	return SeparatorStyle.Render(strings.Repeat("─", max(width, 0)))
}

package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"fanmenu/internal/config"
)

// usageLine pads a command to a fixed column so descriptions line up
func usageLine(style lipgloss.Style, command, description string) string {
	return bodyMedium.Render(fmt.Sprintf("  %s%*s%s", style.Render(command), max(36-lipgloss.Width(command), 1), "", description))
}

// renderUsage renders the full help page
func renderUsage() string {
	usage := lipgloss.JoinVertical(
		lipgloss.Left,
		usageLine(commandName, config.AppName, "Show the menu"),
		usageLine(commandName, config.AppName+" init", "Generate "+config.FileName),
		usageLine(commandName, config.AppName+" version", "Show version"),
		usageLine(commandName, config.AppName+" help", "Show help"),
	)

	options := lipgloss.JoinVertical(
		lipgloss.Left,
		usageLine(commandName, "-c, --config <path>", "Configuration file (default "+config.FileName+")"),
		usageLine(commandName, "-d, --direction <top|bottom|left>", "Override the expanding direction"),
		usageLine(commandName, "--title-side <left|right>", "Override the title side"),
		usageLine(commandName, "--no-sound", "Disable sound cues"),
		usageLine(commandName, "--instant", "Toggle the hub without animation"),
		usageLine(commandName, "--log-file <path>", "Write logs to a file while the menu is shown"),
		usageLine(commandName, "init -f, --force", "Overwrite an existing file"),
		usageLine(commandName, "init --dry-run", "Print the template instead of writing it"),
	)

	examples := lipgloss.JoinVertical(
		lipgloss.Left,
		usageLine(exampleCode, config.AppName+" -d left", "Fan out to the left"),
		usageLine(exampleCode, config.AppName+" --instant --no-sound", "Quiet, without animation"),
		usageLine(exampleCode, config.AppName+" init -d bottom", "Start a config expanding downward"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		usage,
		sectionHeader.Render("Options:"),
		options,
		sectionHeader.Render("Examples:"),
		examples,
		RenderHint(),
	) + "\n"
}

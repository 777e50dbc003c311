package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed in the footer
var Tips = []string{
	tipDesc("Click the hub or press ") + tipKey("space") + tipDesc(" to fan out the items"),
	tipDesc("Click outside the items or press ") + tipKey("esc") + tipDesc(" to fold"),
	tipDesc("Press ") + tipKey("p") + tipDesc(" or ") + tipKey("d") + tipDesc(" to show or hide without animation"),
	tipDesc("Change the direction with ") + tipKey("fanmenu --direction left"),
	tipDesc("Edit ") + tipKey("fanmenu.yaml") + tipDesc(" while running to restyle the menu"),
	tipDesc("Drop ") + tipKey("expand.wav") + tipDesc(" into the sounds dir to replace a cue"),
	tipDesc("Press ") + tipKey("t") + tipDesc(" to hide these tips"),
}

// TipAt returns the tip for a rotation step
func TipAt(step int) string {
	if step < 0 {
		step = -step
	}

	return Tips[step%len(Tips)]
}

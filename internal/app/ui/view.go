package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"fanmenu/internal/app/ui/components"
	"fanmenu/internal/config"
)

// View renders the header, the menu canvas, and the footer
func (m Model) View() string {
	if m.state.quitting {
		return ""
	}

	c := m.stage.container
	canvas := renderScene(m.stage.scene, c.Width(), c.Height(), m.stage.clock())
	activity, text := m.renderFooterText()

	return lipgloss.JoinVertical(lipgloss.Left,
		components.RenderHeader(c.Width(), config.AppName, m.renderStatus()),
		canvas,
		components.RenderFooter(c.Width(), activity, text),
	)
}

// renderStatus renders the phase, the direction, and the process sample
func (m Model) renderStatus() string {
	b := m.stage.button

	var stats string
	if m.state.stats.CPU != 0 || m.state.stats.MEM != 0 {
		stats = m.state.stats.Format()
	}

	return components.RenderStatus(string(b.Phase()), b.Look().Direction.String(), stats)
}

// renderFooterText prefers a reload error, then the last activity with a tip or the key help
func (m Model) renderFooterText() (string, string) {
	if m.state.reloadErr != nil {
		return "", components.ErrorStyle.Render(fmt.Sprintf("reload failed: %v", m.state.reloadErr))
	}

	text := m.renderTip()
	if text == "" {
		text = m.ui.help.View(m.ui.keys)
	}

	return m.stage.activity, text
}

// renderTip returns the current rotating tip or empty string if tips are disabled
func (m Model) renderTip() string {
	if !m.ui.showTips {
		return ""
	}

	tick := m.state.cfg.UI.Tick
	if tick <= 0 {
		tick = components.UITickInterval
	}

	ticksPerTip := max(elapsedTicks(components.TipInterval, tick), 1)

	return components.TipAt(m.ui.tipOffset + m.ui.tickCounter/ticksPerTip)
}

// elapsedTicks converts a duration into frame ticks
func elapsedTicks(d, tick time.Duration) int {
	if tick <= 0 {
		return 0
	}

	return int(d / tick)
}

package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"fanmenu/internal/config"
)

func Test_JoinParts(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{name: "none", parts: nil, expected: ""},
		{name: "single", parts: []string{"folded"}, expected: "folded"},
		{name: "empty parts skipped", parts: []string{"", "expanded", "", "tip"}, expected: "expanded • tip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, JoinParts(tt.parts...))
		})
	}
}

func Test_RenderStatus(t *testing.T) {
	tests := []struct {
		name     string
		phase    string
		stats    string
		expected string
	}{
		{name: "without stats", phase: "folded", expected: "folded top"},
		{name: "with stats", phase: "expanding", stats: "cpu 1.0%", expected: "expanding top • cpu 1.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ansi.Strip(RenderStatus(tt.phase, "top", tt.stats)))
		})
	}
}

func Test_RenderHeader(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		title  string
		status string
	}{
		{name: "fits", width: 60, title: "fanmenu", status: "folded top"},
		{name: "without status", width: 40, title: "fanmenu", status: ""},
		{name: "cut", width: 12, title: "fanmenu", status: "expanded bottom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ansi.Strip(RenderHeader(tt.width, tt.title, tt.status))

			assert.True(t, strings.HasPrefix(result, HubMark+" "))
			assert.Equal(t, tt.width, lipgloss.Width(result))
			assert.Equal(t, 1, lipgloss.Height(result))
		})
	}

	assert.Contains(t, ansi.Strip(RenderHeader(60, "fanmenu", "folded top")), "fanmenu  folded top ─")
	assert.True(t, strings.HasSuffix(ansi.Strip(RenderHeader(12, "fanmenu", "expanded bottom")), "…"))
}

func Test_RenderFooter(t *testing.T) {
	result := ansi.Strip(RenderFooter(60, "expanded", "space toggle"))
	lines := strings.Split(result, "\n")

	assert.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "─ v"+config.Version))
	assert.Equal(t, 60, lipgloss.Width(lines[0]))
	assert.Contains(t, lines[1], "expanded • space toggle")

	assert.NotContains(t, ansi.Strip(RenderFooter(60, "", "space toggle")), "•")
}

func Test_Truncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{name: "zero width", input: "hello", width: 0, expected: ""},
		{name: "fits", input: "hello", width: 5, expected: "hello"},
		{name: "one cell", input: "hello", width: 1, expected: "…"},
		{name: "cut", input: "hello world", width: 6, expected: "hello…"},
		{name: "short input one cell", input: "h", width: 1, expected: "h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Truncate(tt.input, tt.width))
		})
	}
}

func Test_Truncate_KeepsStyling(t *testing.T) {
	styled := "\x1b[1mhello world\x1b[0m"

	result := Truncate(styled, 6)

	assert.Equal(t, "hello…", ansi.Strip(result))
	assert.Equal(t, 6, lipgloss.Width(result))
}

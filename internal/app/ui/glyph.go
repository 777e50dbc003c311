package ui

import (
	"github.com/charmbracelet/lipgloss"

	"fanmenu/internal/menu"
)

// Glyph is a text image measured in terminal cells
type Glyph struct {
	Text string
	size menu.Size
}

// NewGlyph creates a glyph; zero dimensions fall back to the rendered text size
func NewGlyph(text string, width, height float64) *Glyph {
	if width <= 0 {
		width = float64(lipgloss.Width(text))
	}

	if height <= 0 {
		height = float64(max(lipgloss.Height(text), 1))
	}

	return &Glyph{Text: text, size: menu.Size{Width: width, Height: height}}
}

// Size returns the glyph extent in cells
func (g *Glyph) Size() menu.Size {
	return g.size
}

// glyphText returns the text behind an image, or an empty string
func glyphText(img menu.Image) string {
	if g, ok := img.(*Glyph); ok && g != nil {
		return g.Text
	}

	return ""
}

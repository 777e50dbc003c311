package ui

import (
	"os"

	"github.com/charmbracelet/x/term"

	"fanmenu/internal/app/ui/components"
	"fanmenu/internal/menu"
)

// Container is the drawable canvas below the header and above the footer
type Container struct {
	width  int
	height int
}

// NewContainer sizes the canvas from the controlling terminal, falling back to defaults
func NewContainer() *Container {
	width, height, err := term.GetSize(os.Stdout.Fd())
	if err != nil || width <= 0 || height <= 0 {
		width, height = components.DefaultWidth, components.DefaultHeight
	}

	c := &Container{}
	c.SetTerminalSize(width, height)

	return c
}

// SetTerminalSize updates the canvas from the full terminal size; it reports whether the canvas changed
func (c *Container) SetTerminalSize(width, height int) bool {
	w := max(width, components.MinCanvasWidth)
	h := max(height-components.HeaderHeight-components.FooterHeight, components.MinCanvasHeight)

	changed := w != c.width || h != c.height
	c.width, c.height = w, h

	return changed
}

// Bounds returns the canvas rectangle in cells
func (c *Container) Bounds() menu.Rect {
	return menu.Rect{Size: menu.Size{Width: float64(c.width), Height: float64(c.height)}}
}

// Width returns the canvas width in cells
func (c *Container) Width() int {
	return c.width
}

// Height returns the canvas height in cells
func (c *Container) Height() int {
	return c.height
}

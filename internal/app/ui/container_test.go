package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fanmenu/internal/app/ui/components"
	"fanmenu/internal/menu"
)

func Test_Container_SetTerminalSize(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		canvas menu.Size
	}{
		{name: "regular terminal", width: 80, height: 24, canvas: menu.Size{Width: 80, Height: 21}},
		{name: "narrow terminal", width: 5, height: 24, canvas: menu.Size{Width: components.MinCanvasWidth, Height: 21}},
		{name: "short terminal", width: 80, height: 4, canvas: menu.Size{Width: 80, Height: components.MinCanvasHeight}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Container{}

			assert.True(t, c.SetTerminalSize(tt.width, tt.height))
			assert.Equal(t, menu.Rect{Size: tt.canvas}, c.Bounds())
			assert.Equal(t, int(tt.canvas.Width), c.Width())
			assert.Equal(t, int(tt.canvas.Height), c.Height())

			assert.False(t, c.SetTerminalSize(tt.width, tt.height), "same size is not a change")
		})
	}
}

func Test_NewContainer(t *testing.T) {
	c := NewContainer()

	assert.GreaterOrEqual(t, c.Width(), components.MinCanvasWidth)
	assert.GreaterOrEqual(t, c.Height(), components.MinCanvasHeight)
}

func Test_NewGlyph(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    float64
		height   float64
		expected menu.Size
	}{
		{name: "measured", text: "abc", expected: menu.Size{Width: 3, Height: 1}},
		{name: "multiline", text: "ab\ncd", expected: menu.Size{Width: 2, Height: 2}},
		{name: "explicit", text: "a", width: 5, height: 3, expected: menu.Size{Width: 5, Height: 3}},
		{name: "empty", text: "", expected: menu.Size{Width: 0, Height: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGlyph(tt.text, tt.width, tt.height)

			assert.Equal(t, tt.text, g.Text)
			assert.Equal(t, tt.expected, g.Size())
		})
	}
}

func Test_glyphText(t *testing.T) {
	var missing *Glyph

	assert.Equal(t, "x", glyphText(NewGlyph("x", 0, 0)))
	assert.Empty(t, glyphText(nil))
	assert.Empty(t, glyphText(missing))
}

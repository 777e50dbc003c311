package ui

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"fanmenu/internal/app/ui/components"
	"fanmenu/internal/menu"
)

// Visibility thresholds for mapping continuous visuals onto terminal cells
const (
	hiddenAlpha    = 0.25
	faintAlpha     = 0.6
	hiddenScale    = 0.35
	emphasisScale  = 1.5
	rotatedTurn    = math.Pi / 4
	continuation   = ""
	blankCell      = " "
	scrimShadeStep = 3
)

// scrimShades darken with alpha
var scrimShades = [scrimShadeStep + 1]string{blankCell, "·", "░", "▒"}

// canvas is a fixed grid of styled cells
type canvas struct {
	width  int
	height int
	cells  [][]string
}

func newCanvas(width, height int) *canvas {
	cells := make([][]string, height)
	for y := range cells {
		row := make([]string, width)
		for x := range row {
			row[x] = blankCell
		}

		cells[y] = row
	}

	return &canvas{width: width, height: height, cells: cells}
}

// put writes text centred on c; cells covered by wide runes are marked as continuations
func (cv *canvas) put(c menu.Point, text string, style lipgloss.Style) {
	w := lipgloss.Width(text)
	if w == 0 {
		return
	}

	x := int(math.Round(c.X - float64(w)/2))
	y := int(math.Floor(c.Y))

	if y < 0 || y >= cv.height {
		return
	}

	for _, r := range text {
		rw := lipgloss.Width(string(r))
		if rw == 0 {
			continue
		}

		if x >= 0 && x+rw <= cv.width {
			cv.cells[y][x] = style.Render(string(r))
			for k := 1; k < rw; k++ {
				cv.cells[y][x+k] = continuation
			}
		}

		x += rw
	}
}

// fill paints every cell of the rectangle
func (cv *canvas) fill(r menu.Rect, cell string) {
	x0 := max(int(math.Floor(r.Origin.X)), 0)
	y0 := max(int(math.Floor(r.Origin.Y)), 0)
	x1 := min(int(math.Ceil(r.Origin.X+r.Size.Width)), cv.width)
	y1 := min(int(math.Ceil(r.Origin.Y+r.Size.Height)), cv.height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cv.cells[y][x] = cell
		}
	}
}

// String joins the grid into lines
func (cv *canvas) String() string {
	lines := make([]string, cv.height)
	for y, row := range cv.cells {
		lines[y] = strings.Join(row, "")
	}

	return strings.Join(lines, "\n")
}

// renderScene draws every attached node back to front at now
func renderScene(scene *Scene, width, height int, now time.Time) string {
	cv := newCanvas(width, height)

	for _, node := range scene.Nodes() {
		v, ok := scene.Visual(node, now)
		if !ok {
			continue
		}

		switch n := node.(type) {
		case *menu.Surface:
			if n.Image == nil {
				drawScrim(cv, n, v, scene.Frame())
				continue
			}

			drawHub(cv, n, v)
		case *menu.Item:
			drawItem(cv, n, v)
		case *menu.Title:
			drawTitle(cv, n, v)
		}
	}

	return cv.String()
}

func drawScrim(cv *canvas, s *menu.Surface, v menu.Visual, frame menu.Rect) {
	shade := int(math.Round(v.Alpha * scrimShadeStep))
	shade = min(max(shade, 0), scrimShadeStep)

	if shade == 0 {
		return
	}

	style := lipgloss.NewStyle().Foreground(components.FgBorder)
	if s.Color != "" {
		style = style.Background(lipgloss.Color(s.Color))
	}

	cv.fill(frame, style.Render(scrimShades[shade]))
}

func drawHub(cv *canvas, s *menu.Surface, v menu.Visual) {
	text := glyphText(s.Image)
	style := components.HubStyle

	if math.Abs(v.Rotation) >= rotatedTurn {
		if alt := glyphText(s.Highlighted); alt != "" {
			text = alt
		}

		style = components.HubPressedStyle
	}

	cv.put(v.Center, text, style)
}

func drawItem(cv *canvas, item *menu.Item, v menu.Visual) {
	if v.Alpha < hiddenAlpha || v.Scale < hiddenScale {
		return
	}

	text := glyphText(item.Config().Image)
	if text == "" {
		return
	}

	style := components.ItemStyle.Foreground(components.ItemColor(item.Index()))

	if v.Scale >= emphasisScale {
		style = style.Reverse(true)
	}

	if v.Alpha < faintAlpha {
		style = style.Faint(true)
	}

	cv.put(v.Center, text, style)
}

func drawTitle(cv *canvas, t *menu.Title, v menu.Visual) {
	if !t.IsVisible() || v.Alpha < hiddenAlpha {
		return
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Color))
	if v.Alpha < faintAlpha {
		style = style.Faint(true)
	}

	cv.put(v.Center, t.Text, style)
}

package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanmenu/internal/app/errors"
)

func Test_Distances(t *testing.T) {
	items := []Size{{Width: 40, Height: 40}, {Width: 40, Height: 40}, {Width: 40, Height: 40}}

	tests := []struct {
		name      string
		direction Direction
		hub       Size
		items     []Size
		margin    float64
		expected  []float64
	}{
		{
			name:      "zero extent hub skips the first margin",
			direction: DirectionTop,
			hub:       Size{},
			items:     items,
			margin:    5,
			expected:  []float64{20, 65, 110},
		},
		{
			name:      "hub extent and margin",
			direction: DirectionBottom,
			hub:       Size{Width: 40, Height: 40},
			items:     items[:2],
			margin:    16,
			expected:  []float64{56, 112},
		},
		{
			name:      "left uses widths",
			direction: DirectionLeft,
			hub:       Size{Width: 3, Height: 1},
			items:     []Size{{Width: 5, Height: 1}, {Width: 3, Height: 1}},
			margin:    1,
			expected:  []float64{5, 10},
		},
		{
			name:      "no items",
			direction: DirectionTop,
			hub:       Size{Width: 1, Height: 1},
			items:     nil,
			margin:    1,
			expected:  []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distances(tt.direction, tt.hub, tt.items, tt.margin)
			require.Len(t, got, len(tt.expected))

			for i := range tt.expected {
				assert.InDelta(t, tt.expected[i], got[i], 1e-9)
			}
		})
	}
}

func Test_Distances_StrictlyIncreasing(t *testing.T) {
	sizes := []Size{{Width: 2, Height: 1}, {Width: 7, Height: 3}, {Width: 1, Height: 1}, {Width: 4, Height: 2}}

	for _, d := range []Direction{DirectionTop, DirectionBottom, DirectionLeft} {
		got := Distances(d, Size{Width: 3, Height: 1}, sizes, 0)

		for i := 1; i < len(got); i++ {
			assert.Greater(t, got[i], got[i-1], d.String())
		}
	}
}

func Test_EndPoint(t *testing.T) {
	hub := Point{X: 100, Y: 100}

	tests := []struct {
		name      string
		direction Direction
		expected  Point
	}{
		{name: "top goes up", direction: DirectionTop, expected: Point{X: 100, Y: 80}},
		{name: "bottom goes down", direction: DirectionBottom, expected: Point{X: 100, Y: 120}},
		{name: "left goes left", direction: DirectionLeft, expected: Point{X: 80, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EndPoint(tt.direction, hub, 20, arcFraction)

			assert.InDelta(t, tt.expected.X, got.X, 1e-9)
			assert.InDelta(t, tt.expected.Y, got.Y, 1e-9)
		})
	}
}

func Test_EndPoint_LeftIgnoresFraction(t *testing.T) {
	hub := Point{X: 10, Y: 10}

	a := EndPoint(DirectionLeft, hub, 5, 0.1)
	b := EndPoint(DirectionLeft, hub, 5, 0.9)

	assert.InDelta(t, a.X, b.X, 1e-9)
	assert.InDelta(t, a.Y, b.Y, 1e-9)
}

func Test_layout_Bounce(t *testing.T) {
	hub := Point{X: 50, Y: 50}
	got := layout(DirectionTop, hub, Size{}, []Size{{Width: 10, Height: 10}}, 0, Bounce{Far: 10, Near: 5, Backward: 5})

	require.Len(t, got, 1)

	p := got[0]
	assert.InDelta(t, 5.0, p.distance, 1e-9)
	assert.InDelta(t, 45.0, p.end.Y, 1e-9)
	assert.InDelta(t, 35.0, p.far.Y, 1e-9)
	assert.InDelta(t, 50.0, p.near.Y, 1e-9)
	assert.InDelta(t, 40.0, p.backward.Y, 1e-9)
}

func Test_ParseDirection(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Direction
		error    error
	}{
		{name: "top", input: "top", expected: DirectionTop},
		{name: "mixed case bottom", input: " Bottom ", expected: DirectionBottom},
		{name: "left", input: "LEFT", expected: DirectionLeft},
		{name: "unknown", input: "right", error: errors.ErrInvalidDirection},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDirection(tt.input)

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, d)
		})
	}
}

func Test_ParseTitleSide(t *testing.T) {
	side, err := ParseTitleSide("Right")
	assert.NoError(t, err)
	assert.Equal(t, TitleRight, side)

	_, err = ParseTitleSide("middle")
	assert.ErrorIs(t, err, errors.ErrInvalidTitleSide)
}

func Test_titleCenter(t *testing.T) {
	end := Point{X: 100, Y: 50}
	item := Size{Width: 40, Height: 40}
	title := Size{Width: 30, Height: 10}

	left := titleCenter(TitleLeft, end, item, 8, title)
	assert.InDelta(t, 100-20-8-15, left.X, 1e-9)
	assert.InDelta(t, 50.0, left.Y, 1e-9)

	right := titleCenter(TitleRight, end, item, 8, title)
	assert.InDelta(t, 100+20+8+15, right.X, 1e-9)
}

func Test_Rect(t *testing.T) {
	r := RectAround(Point{X: 10, Y: 10}, Size{Width: 4, Height: 2})

	assert.Equal(t, Point{X: 8, Y: 9}, r.Origin)
	assert.Equal(t, Point{X: 10, Y: 10}, r.Center())
	assert.True(t, r.Contains(Point{X: 8, Y: 9}))
	assert.False(t, r.Contains(Point{X: 12, Y: 10}))
	assert.True(t, Size{Width: 0, Height: 3}.IsZero())
}

package menu

import (
	"fmt"
	"math"
	"strings"

	"fanmenu/internal/app/errors"
)

// Point is a position in the container's coordinate space
type Point struct {
	X float64
	Y float64
}

// Size is a width/height extent
type Size struct {
	Width  float64
	Height float64
}

// IsZero reports whether either dimension is empty
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an origin plus a size
type Rect struct {
	Origin Point
	Size   Size
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.Origin.X + r.Size.Width/2, Y: r.Origin.Y + r.Size.Height/2}
}

// Contains reports whether p lies inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.Height
}

// RectAround returns the rectangle of the given size centred on c
func RectAround(c Point, s Size) Rect {
	return Rect{Origin: Point{X: c.X - s.Width/2, Y: c.Y - s.Height/2}, Size: s}
}

// Direction selects the arc the items travel along
type Direction int

// Expanding directions
const (
	DirectionTop Direction = iota
	DirectionBottom
	DirectionLeft
)

// String returns the configuration name of the direction
func (d Direction) String() string {
	switch d {
	case DirectionTop:
		return "top"
	case DirectionBottom:
		return "bottom"
	case DirectionLeft:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts a configuration name to a Direction
func ParseDirection(name string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "top":
		return DirectionTop, nil
	case "bottom":
		return DirectionBottom, nil
	case "left":
		return DirectionLeft, nil
	default:
		return DirectionTop, fmt.Errorf("%w: '%s'", errors.ErrInvalidDirection, name)
	}
}

// Extent returns the item dimension measured along the direction's axis
func (d Direction) Extent(s Size) float64 {
	if d == DirectionLeft {
		return s.Width
	}

	return s.Height
}

// arcFraction is the normalized angle every item is placed at (90 of 180 degrees)
const arcFraction = 90.0 / 180.0

// leftTurns is the fixed angle multiplier of the Left direction; Left ignores the arc fraction
const leftTurns = 90.0 + 1.0

// DistanceFromCenter chains an item onto the previous one: the new distance is the prior
// distance plus half of each adjacent extent plus the margin. The margin is a gap between
// two edges, so it is only applied when the prior element has an extent.
func DistanceFromCenter(itemExtent, priorDistance, priorExtent, margin float64) float64 {
	gap := margin
	if priorExtent <= 0 {
		gap = 0
	}

	return priorDistance + priorExtent/2 + gap + itemExtent/2
}

// Distances chains DistanceFromCenter across items starting from the hub
func Distances(d Direction, hub Size, items []Size, margin float64) []float64 {
	distances := make([]float64, len(items))

	priorDistance := 0.0
	priorExtent := d.Extent(hub)

	for i, s := range items {
		extent := d.Extent(s)
		priorDistance = DistanceFromCenter(extent, priorDistance, priorExtent, margin)
		priorExtent = extent
		distances[i] = priorDistance
	}

	return distances
}

// EndPoint maps a radius and a normalized angle fraction to an absolute point around the hub.
// Top sweeps upward and Bottom downward; Left is a fixed horizontal line from the hub.
func EndPoint(d Direction, hub Point, radius, angleFraction float64) Point {
	var turns float64

	switch d {
	case DirectionTop:
		turns = angleFraction + 1.0
	case DirectionBottom:
		turns = angleFraction
	case DirectionLeft:
		turns = leftTurns
	}

	return Point{
		X: hub.X + math.Cos(turns*math.Pi)*radius,
		Y: hub.Y + math.Sin(turns*math.Pi)*radius,
	}
}

// placement is the computed resting geometry of one item
type placement struct {
	distance float64
	end      Point
	far      Point
	near     Point
	backward Point
}

// layout computes placements for items in registration order
func layout(d Direction, hub Point, hubSize Size, sizes []Size, margin float64, b Bounce) []placement {
	distances := Distances(d, hubSize, sizes, margin)
	placements := make([]placement, len(distances))

	for i, distance := range distances {
		placements[i] = placement{
			distance: distance,
			end:      EndPoint(d, hub, distance, arcFraction),
			far:      EndPoint(d, hub, distance+b.Far, arcFraction),
			near:     EndPoint(d, hub, distance-b.Near, arcFraction),
			backward: EndPoint(d, hub, distance+b.Backward, arcFraction),
		}
	}

	return placements
}

// TitleSide selects where a title overlay sits relative to its item
type TitleSide int

// Title sides
const (
	TitleLeft TitleSide = iota
	TitleRight
)

// String returns the configuration name of the side
func (s TitleSide) String() string {
	if s == TitleRight {
		return "right"
	}

	return "left"
}

// ParseTitleSide converts a configuration name to a TitleSide
func ParseTitleSide(name string) (TitleSide, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "left":
		return TitleLeft, nil
	case "right":
		return TitleRight, nil
	default:
		return TitleLeft, fmt.Errorf("%w: '%s'", errors.ErrInvalidTitleSide, name)
	}
}

// titleCenter positions a title beside the item's resting point, offset by the margin
func titleCenter(side TitleSide, end Point, item Size, margin float64, title Size) Point {
	var originX float64

	switch side {
	case TitleRight:
		originX = end.X + item.Width/2 + margin
	default:
		originX = end.X - item.Width/2 - margin - title.Width
	}

	return Point{X: originX + title.Width/2, Y: end.Y}
}

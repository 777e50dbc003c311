package menu

import (
	"math"
	"time"
)

// Fixed timings of the secondary animations
const (
	selectionDuration    = 309 * time.Millisecond
	shrinkDuration       = 124 * time.Millisecond
	titleFadeInDuration  = 300 * time.Millisecond
	titleFadeInDelay     = 100 * time.Millisecond
	titleFadeOutDuration = 150 * time.Millisecond
	hubRotateDuration    = 157500 * time.Microsecond
	hubUnrotateDuration  = 185400 * time.Microsecond
	hubUnrotateDelay     = 123600 * time.Microsecond
	scrimFadeOutDuration = 150 * time.Millisecond

	scrimFadeInRatio = 0.0618
	selectionScale   = 3.0
)

// hubExpandedRotation is the hub glyph's quarter turn while expanded
const hubExpandedRotation = -0.5 * math.Pi

// Animation names
const (
	AnimExpanding   = "expanding"
	AnimFolding     = "folding"
	AnimSelection   = "selection"
	AnimShrink      = "shrink"
	AnimTitleIn     = "title-in"
	AnimTitleOut    = "title-out"
	AnimHubRotate   = "hub-rotate"
	AnimHubUnrotate = "hub-unrotate"
	AnimScrimIn     = "scrim-in"
	AnimScrimOut    = "scrim-out"
)

// expandingAnimation moves an item from the hub to its resting point.
// With both Moving and Bound the path overshoots to the far point and settles back through the near point.
func expandingAnimation(opts AnimationOptionSet, d time.Duration, hub Point, p placement) Animation {
	a := Animation{Name: AnimExpanding, Duration: d}

	if opts.Contains(ItemRotation) {
		a.Tracks = append(a.Tracks, Track{
			Property: PropertyRotation,
			Values:   []float64{0, -math.Pi, -math.Pi * 1.5, -math.Pi * 2},
			KeyTimes: []float64{0, 0.3, 0.6, 1},
		})
	}

	switch {
	case opts.ContainsAll(ItemMoving, ItemBound):
		a.Tracks = append(a.Tracks, Track{
			Property: PropertyPosition,
			Points:   []Point{hub, p.far, p.near, p.end},
			KeyTimes: []float64{0, 0.5, 0.7, 1},
		})
	case opts.Contains(ItemMoving):
		a.Tracks = append(a.Tracks, Track{
			Property: PropertyPosition,
			Points:   []Point{hub, p.end},
			KeyTimes: []float64{0, 1},
		})
	case opts.Contains(ItemBound):
		a.Tracks = append(a.Tracks, Track{
			Property: PropertyPosition,
			Points:   []Point{p.far, p.near, p.end},
			KeyTimes: []float64{0, 0.5, 1},
		})
	}

	if opts.Contains(ItemFade) {
		a.Tracks = append(a.Tracks, Track{
			Property: PropertyOpacity,
			Values:   []float64{0, 1},
			KeyTimes: []float64{0, 1},
		})
	}

	return a
}

// foldingAnimation returns an item from its current point to the hub, optionally past the backward point
func foldingAnimation(opts AnimationOptionSet, d time.Duration, from, hub Point, p placement) Animation {
	a := Animation{Name: AnimFolding, Duration: d}

	if opts.Contains(ItemRotation) {
		a.Tracks = append(a.Tracks, Track{
			Property: PropertyRotation,
			Values:   []float64{0, math.Pi, math.Pi * 2},
			KeyTimes: []float64{0, 0.5, 1},
		})
	}

	switch {
	case opts.ContainsAll(ItemMoving, ItemBound):
		a.Tracks = append(a.Tracks, Track{
			Property: PropertyPosition,
			Points:   []Point{from, p.backward, hub},
			KeyTimes: []float64{0, 0.75, 1},
		})
	case opts.Contains(ItemMoving):
		a.Tracks = append(a.Tracks, Track{
			Property: PropertyPosition,
			Points:   []Point{from, hub},
			KeyTimes: []float64{0, 1},
		})
	case opts.Contains(ItemBound):
		a.Tracks = append(a.Tracks, Track{
			Property: PropertyPosition,
			Points:   []Point{from, p.backward, from},
			KeyTimes: []float64{0, 0.5, 1},
		})
	case opts.Contains(ItemRotation) || opts.Contains(ItemFade):
		// the resting point is already the hub; hold the item in place while it spins or fades
		a.Tracks = append(a.Tracks, Track{
			Property: PropertyPosition,
			Points:   []Point{from, from},
			KeyTimes: []float64{0, 1},
		})
	}

	if opts.Contains(ItemFade) {
		a.Tracks = append(a.Tracks, Track{
			Property: PropertyOpacity,
			Values:   []float64{1, 0.25, 0.1, 0},
			KeyTimes: []float64{0, 0.5, 0.75, 1},
		})
	}

	return a
}

// selectionAnimation is the emphasis played by the tapped item: scale up and fade out
func selectionAnimation() Animation {
	return Animation{
		Name:     AnimSelection,
		Duration: selectionDuration,
		Tracks: []Track{
			{Property: PropertyScale, Values: []float64{1, selectionScale}, KeyTimes: []float64{0, 1}, Timing: TimingEaseOut},
			{Property: PropertyOpacity, Values: []float64{1, 0}, KeyTimes: []float64{0, 1}, Timing: TimingEaseOut},
		},
	}
}

// shrinkAnimation is the fold-start step of every item that was not tapped
func shrinkAnimation() Animation {
	return Animation{
		Name:     AnimShrink,
		Duration: shrinkDuration,
		Tracks: []Track{
			{Property: PropertyScale, Values: []float64{1, 0}, KeyTimes: []float64{0, 1}, Timing: TimingEaseIn},
		},
	}
}

// fadeAnimation drives opacity between two values
func fadeAnimation(name string, from, to float64, d, delay time.Duration, timing Timing) Animation {
	return Animation{
		Name:     name,
		Duration: d,
		Delay:    delay,
		Tracks: []Track{
			{Property: PropertyOpacity, Values: []float64{from, to}, KeyTimes: []float64{0, 1}, Timing: timing},
		},
	}
}

// rotateAnimation drives rotation between two angles
func rotateAnimation(name string, from, to float64, d, delay time.Duration, timing Timing) Animation {
	return Animation{
		Name:     name,
		Duration: d,
		Delay:    delay,
		Tracks: []Track{
			{Property: PropertyRotation, Values: []float64{from, to}, KeyTimes: []float64{0, 1}, Timing: timing},
		},
	}
}

// scaled multiplies a duration by a ratio
func scaled(d time.Duration, ratio float64) time.Duration {
	return time.Duration(math.Round(float64(d) * ratio))
}

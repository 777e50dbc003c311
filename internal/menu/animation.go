package menu

import (
	"sort"
	"time"
)

// Property names the visual attribute a track drives
type Property string

// Animated properties
const (
	PropertyPosition Property = "position"
	PropertyRotation Property = "rotation"
	PropertyOpacity  Property = "opacity"
	PropertyScale    Property = "scale"
)

// Timing selects the pacing curve a host applies to a track's progress
type Timing int

// Timing curves
const (
	TimingLinear Timing = iota
	TimingEaseIn
	TimingEaseOut
	TimingSpring
)

// Track is a keyframed description of one property. Position tracks use Points,
// every other property uses Values. KeyTimes are normalized to [0, 1] and have
// one entry per keyframe.
type Track struct {
	Property Property
	Points   []Point
	Values   []float64
	KeyTimes []float64
	Timing   Timing
}

// Len returns the number of keyframes
func (t Track) Len() int {
	if t.Property == PropertyPosition {
		return len(t.Points)
	}

	return len(t.Values)
}

// segment locates progress p between two keyframes and returns their indices plus the local fraction
func (t Track) segment(p float64) (int, int, float64) {
	n := t.Len()
	if n <= 1 || p <= 0 {
		return 0, 0, 0
	}

	if p >= 1 {
		return n - 1, n - 1, 0
	}

	times := t.KeyTimes
	if len(times) != n {
		times = evenKeyTimes(n)
	}

	hi := sort.SearchFloat64s(times, p)
	if hi == 0 {
		return 0, 0, 0
	}

	if hi >= n {
		return n - 1, n - 1, 0
	}

	lo := hi - 1
	span := times[hi] - times[lo]

	if span <= 0 {
		return hi, hi, 0
	}

	return lo, hi, (p - times[lo]) / span
}

// PointAt interpolates a position track at progress p in [0, 1]
func (t Track) PointAt(p float64) Point {
	if len(t.Points) == 0 {
		return Point{}
	}

	lo, hi, f := t.segment(p)
	a, b := t.Points[lo], t.Points[hi]

	return Point{X: a.X + (b.X-a.X)*f, Y: a.Y + (b.Y-a.Y)*f}
}

// ValueAt interpolates a scalar track at progress p in [0, 1]
func (t Track) ValueAt(p float64) float64 {
	if len(t.Values) == 0 {
		return 0
	}

	lo, hi, f := t.segment(p)

	return t.Values[lo] + (t.Values[hi]-t.Values[lo])*f
}

// evenKeyTimes spreads n keyframes uniformly over [0, 1]
func evenKeyTimes(n int) []float64 {
	times := make([]float64, n)
	if n == 1 {
		return times
	}

	for i := range times {
		times[i] = float64(i) / float64(n-1)
	}

	return times
}

// Animation is a renderer-independent description of a composite animation.
// All tracks share the duration and start after the delay.
type Animation struct {
	Name     string
	Tracks   []Track
	Duration time.Duration
	Delay    time.Duration
}

// Track returns the track driving the property, if any
func (a Animation) Track(p Property) (Track, bool) {
	for _, t := range a.Tracks {
		if t.Property == p {
			return t, true
		}
	}

	return Track{}, false
}

// Has reports whether a track drives the property
func (a Animation) Has(p Property) bool {
	_, ok := a.Track(p)
	return ok
}

// IsEmpty reports whether the animation drives nothing
func (a Animation) IsEmpty() bool {
	return len(a.Tracks) == 0
}

// Total returns delay plus duration
func (a Animation) Total() time.Duration {
	return a.Delay + a.Duration
}

// Visual is the resting visual state of a node
type Visual struct {
	Center   Point
	Scale    float64
	Rotation float64
	Alpha    float64
}

// restingAt returns the identity visual placed at c
func restingAt(c Point) Visual {
	return Visual{Center: c, Scale: 1, Alpha: 1}
}

// Curve maps linear progress to paced progress for a timing
type Curve func(timing Timing, p float64) float64

// Sample evaluates the animation at linear progress p over a resting visual.
// Properties without a track keep the resting value; a nil curve is linear.
func (a Animation) Sample(rest Visual, p float64, curve Curve) Visual {
	v := rest

	for _, t := range a.Tracks {
		tp := p
		if curve != nil {
			tp = curve(t.Timing, p)
		}

		switch t.Property {
		case PropertyPosition:
			v.Center = t.PointAt(tp)
		case PropertyRotation:
			v.Rotation = t.ValueAt(tp)
		case PropertyOpacity:
			v.Alpha = t.ValueAt(tp)
		case PropertyScale:
			v.Scale = t.ValueAt(tp)
		}
	}

	return v
}

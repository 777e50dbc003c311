package components

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"fanmenu/internal/menu"
)

const (
	// Spring samples cover the normalized time [0, 1] of one track
	springSamples = 60

	// Spring physics parameters
	springAngularFrequency = 14.0 // Stiffness over a unit duration
	springDampingRatio     = 0.55 // Slight overshoot before settling

	bezierIterations = 24
)

// Easing paces track progress for each menu timing
type Easing struct {
	spring  []float64
	easeIn  func(float64) float64
	easeOut func(float64) float64
}

// NewEasing precomputes the spring response so sampling stays allocation free
func NewEasing() *Easing {
	return &Easing{
		spring:  springTable(),
		easeIn:  cubicBezier(0.42, 0.0, 1.0, 1.0),
		easeOut: cubicBezier(0.0, 0.0, 0.58, 1.0),
	}
}

// Curve returns the easing as a menu curve
func (e *Easing) Curve() menu.Curve {
	return e.At
}

// At maps linear progress p to paced progress for the timing
func (e *Easing) At(timing menu.Timing, p float64) float64 {
	if p <= 0 {
		return 0
	}

	if p >= 1 {
		return 1
	}

	switch timing {
	case menu.TimingEaseIn:
		return e.easeIn(p)
	case menu.TimingEaseOut:
		return e.easeOut(p)
	case menu.TimingSpring:
		return e.springAt(p)
	default:
		return p
	}
}

// springAt interpolates the precomputed spring response; it may exceed 1 mid-flight
func (e *Easing) springAt(p float64) float64 {
	pos := p * float64(len(e.spring)-1)
	lo := int(pos)
	hi := min(lo+1, len(e.spring)-1)
	f := pos - float64(lo)

	return e.spring[lo] + (e.spring[hi]-e.spring[lo])*f
}

// springTable steps a harmonica spring from 0 toward 1; the last sample is pinned to 1
func springTable() []float64 {
	spring := harmonica.NewSpring(harmonica.FPS(springSamples), springAngularFrequency, springDampingRatio)
	table := make([]float64, springSamples+1)

	pos, vel := 0.0, 0.0
	for i := 1; i < springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1.0)
		table[i] = pos
	}

	table[springSamples] = 1

	return table
}

// cubicBezier returns an easing matching CSS cubic-bezier(x1, y1, x2, y2)
func cubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		lo, hi := 0.0, 1.0
		u := t

		for range bezierIterations {
			x := bezierSample(x1, x2, u)
			if math.Abs(x-t) < 1e-6 {
				break
			}

			if x > t {
				hi = u
			} else {
				lo = u
			}

			u = (lo + hi) / 2
		}

		return bezierSample(y1, y2, u)
	}
}

func bezierSample(a, b, u float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*a + 3*inv*u*u*b + u*u*u
}

package ui

import (
	"slices"
	"time"

	"fanmenu/internal/menu"
)

// playback is one running animation on a node
type playback struct {
	anim  menu.Animation
	start time.Time
	done  func()
}

// progress returns linear progress at now; delayed animations hold their first keyframe
func (p *playback) progress(now time.Time) float64 {
	elapsed := now.Sub(p.start) - p.anim.Delay
	if elapsed <= 0 {
		return 0
	}

	if p.anim.Duration <= 0 || elapsed >= p.anim.Duration {
		return 1
	}

	return float64(elapsed) / float64(p.anim.Duration)
}

func (p *playback) finished(now time.Time) bool {
	return now.Sub(p.start) >= p.anim.Total()
}

// entry is a node attached to the scene
type entry struct {
	node  menu.Node
	layer menu.Layer
	seq   int
	rest  menu.Visual
	anims []*playback
}

// Scene is the terminal scene graph. Animations are sampled against a clock
// and completed by Advance, which the host calls on every frame tick.
type Scene struct {
	entries map[menu.Node]*entry
	frame   menu.Rect
	curve   menu.Curve
	clock   func() time.Time
	seq     int
}

// NewScene creates a scene paced by curve and driven by the wall clock
func NewScene(curve menu.Curve) *Scene {
	return newSceneWithClock(curve, time.Now)
}

func newSceneWithClock(curve menu.Curve, clock func() time.Time) *Scene {
	return &Scene{
		entries: make(map[menu.Node]*entry),
		curve:   curve,
		clock:   clock,
	}
}

// Attach adds a node at a layer; re-attaching moves it to the front of that layer
func (s *Scene) Attach(node menu.Node, layer menu.Layer) {
	s.seq++

	if e, ok := s.entries[node]; ok {
		e.layer = layer
		e.seq = s.seq

		return
	}

	s.entries[node] = &entry{
		node:  node,
		layer: layer,
		seq:   s.seq,
		rest:  menu.Visual{Scale: 1, Alpha: 1},
	}
}

// Detach removes a node; its running animations are dropped without completion
func (s *Scene) Detach(node menu.Node) {
	delete(s.entries, node)
}

// Apply sets the resting visual of an attached node
func (s *Scene) Apply(node menu.Node, v menu.Visual) {
	if e, ok := s.entries[node]; ok {
		e.rest = v
	}
}

// Play starts an animation on an attached node. Animations on detached nodes complete immediately.
func (s *Scene) Play(node menu.Node, anim menu.Animation, done func()) {
	e, ok := s.entries[node]
	if !ok {
		if done != nil {
			done()
		}

		return
	}

	e.anims = append(e.anims, &playback{anim: anim, start: s.clock(), done: done})
}

// Resize records the control's current frame
func (s *Scene) Resize(frame menu.Rect) {
	s.frame = frame
}

// Frame returns the control's current frame
func (s *Scene) Frame() menu.Rect {
	return s.frame
}

// IsAnimating reports whether any animation is still running
func (s *Scene) IsAnimating() bool {
	for _, e := range s.entries {
		if len(e.anims) > 0 {
			return true
		}
	}

	return false
}

// Advance completes every animation that has finished by now. Completions run after
// bookkeeping, so they may attach, detach, or play freely.
func (s *Scene) Advance(now time.Time) int {
	var done []func()

	for _, e := range s.entries {
		running := e.anims[:0]

		for _, p := range e.anims {
			if p.finished(now) {
				if p.done != nil {
					done = append(done, p.done)
				}

				continue
			}

			running = append(running, p)
		}

		clear(e.anims[len(running):])
		e.anims = running
	}

	for _, fn := range done {
		fn()
	}

	return len(done)
}

// Visual samples a node at now. Running animations are layered in start order,
// so the most recent one wins a shared property.
func (s *Scene) Visual(node menu.Node, now time.Time) (menu.Visual, bool) {
	e, ok := s.entries[node]
	if !ok {
		return menu.Visual{}, false
	}

	v := e.rest
	for _, p := range e.anims {
		v = p.anim.Sample(v, p.progress(now), s.curve)
	}

	return v, true
}

// Nodes returns attached nodes back to front
func (s *Scene) Nodes() []menu.Node {
	entries := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b *entry) int {
		if a.layer != b.layer {
			return int(a.layer) - int(b.layer)
		}

		return a.seq - b.seq
	})

	nodes := make([]menu.Node, len(entries))
	for i, e := range entries {
		nodes[i] = e.node
	}

	return nodes
}

// Layer returns the layer a node is attached to
func (s *Scene) Layer(node menu.Node) (menu.Layer, bool) {
	e, ok := s.entries[node]
	if !ok {
		return 0, false
	}

	return e.layer, true
}

package ui

import (
	"time"

	"fanmenu/internal/menu"
)

type recognizer struct {
	policy  menu.TapPolicy
	handler func()
}

// Gestures turns terminal clicks into taps by hit-testing the scene front to back
type Gestures struct {
	scene       *Scene
	recognizers map[menu.Node]recognizer
}

// NewGestures creates a recognizer registry over a scene
func NewGestures(scene *Scene) *Gestures {
	return &Gestures{
		scene:       scene,
		recognizers: make(map[menu.Node]recognizer),
	}
}

// OnTap registers or replaces the tap handler of a node
func (g *Gestures) OnTap(node menu.Node, policy menu.TapPolicy, handler func()) {
	g.recognizers[node] = recognizer{policy: policy, handler: handler}
}

// Release removes the tap handler of a node
func (g *Gestures) Release(node menu.Node) {
	delete(g.recognizers, node)
}

// Tap fires the handler of a node directly, as keyboard shortcuts do
func (g *Gestures) Tap(node menu.Node) bool {
	r, ok := g.recognizers[node]
	if !ok {
		return false
	}

	r.handler()

	return true
}

// TapAt delivers a click at p. Only the front-most node begins unless its recognizer always
// begins; among begun recognizers, independent ones win over those that wait for others to fail.
func (g *Gestures) TapAt(p menu.Point, now time.Time) bool {
	nodes := g.scene.Nodes()

	var dependent *recognizer

	front := true

	for i := len(nodes) - 1; i >= 0; i-- {
		node := nodes[i]

		if !g.hit(node, p, now) {
			continue
		}

		isFront := front
		front = false

		r, ok := g.recognizers[node]
		if !ok || (!isFront && !r.policy.AlwaysBegin) {
			continue
		}

		if r.policy.RequireOthersToFail {
			if dependent == nil {
				dependent = &r
			}

			continue
		}

		r.handler()

		return true
	}

	if dependent != nil {
		dependent.handler()
		return true
	}

	return false
}

func (g *Gestures) hit(node menu.Node, p menu.Point, now time.Time) bool {
	v, ok := g.scene.Visual(node, now)
	if !ok || v.Alpha <= 0 {
		return false
	}

	return boundsOf(node, v, g.scene.Frame()).Contains(p)
}

// boundsOf returns the on-screen rectangle of a node; surfaces without an image fill the frame
func boundsOf(node menu.Node, v menu.Visual, frame menu.Rect) menu.Rect {
	switch n := node.(type) {
	case *menu.Item:
		return menu.RectAround(v.Center, n.Size())
	case *menu.Title:
		return menu.RectAround(v.Center, n.Size())
	case *menu.Surface:
		if n.Image != nil {
			return menu.RectAround(v.Center, n.Image.Size())
		}

		return frame
	default:
		return menu.Rect{}
	}
}

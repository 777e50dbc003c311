package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanmenu/internal/menu"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// fakeClock is a settable clock for scene tests
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: epoch}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Add(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

func fade(from, to float64, d, delay time.Duration) menu.Animation {
	return menu.Animation{
		Name:     "fade",
		Tracks:   []menu.Track{{Property: menu.PropertyOpacity, Values: []float64{from, to}}},
		Duration: d,
		Delay:    delay,
	}
}

func Test_Scene_Nodes(t *testing.T) {
	scene := NewScene(nil)

	hub := &menu.Surface{}
	scrim := &menu.Surface{}
	first := &menu.Surface{}
	second := &menu.Surface{}

	scene.Attach(hub, menu.LayerHub)
	scene.Attach(first, menu.LayerItem)
	scene.Attach(scrim, menu.LayerScrim)
	scene.Attach(second, menu.LayerItem)

	assert.Equal(t, []menu.Node{scrim, first, second, hub}, scene.Nodes())

	scene.Attach(first, menu.LayerItem)
	assert.Equal(t, []menu.Node{scrim, second, first, hub}, scene.Nodes())

	layer, ok := scene.Layer(first)
	assert.True(t, ok)
	assert.Equal(t, menu.LayerItem, layer)

	scene.Detach(first)

	_, ok = scene.Layer(first)
	assert.False(t, ok)
	assert.Equal(t, []menu.Node{scrim, second, hub}, scene.Nodes())
}

func Test_Scene_Attach_DefaultsToIdentity(t *testing.T) {
	scene := NewScene(nil)
	node := &menu.Surface{}

	scene.Attach(node, menu.LayerItem)

	v, ok := scene.Visual(node, epoch)
	require.True(t, ok)
	assert.Equal(t, menu.Visual{Scale: 1, Alpha: 1}, v)
}

func Test_Scene_Apply(t *testing.T) {
	scene := NewScene(nil)
	node := &menu.Surface{}
	rest := menu.Visual{Center: menu.Point{X: 3, Y: 4}, Scale: 1, Alpha: 0.5}

	scene.Apply(node, rest)

	_, ok := scene.Visual(node, epoch)
	assert.False(t, ok, "apply on a detached node is ignored")

	scene.Attach(node, menu.LayerItem)
	scene.Apply(node, rest)

	v, ok := scene.Visual(node, epoch)
	require.True(t, ok)
	assert.Equal(t, rest, v)
}

func Test_Scene_Play(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		expected float64
		done     int
	}{
		{name: "at start", elapsed: 0, expected: 0, done: 0},
		{name: "halfway", elapsed: 50 * time.Millisecond, expected: 0.5, done: 0},
		{name: "finished", elapsed: 100 * time.Millisecond, expected: 1, done: 1},
		{name: "long after", elapsed: time.Second, expected: 1, done: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			scene := newSceneWithClock(nil, clock.Now)
			node := &menu.Surface{}
			done := 0

			scene.Attach(node, menu.LayerItem)
			scene.Apply(node, menu.Visual{Scale: 1, Alpha: 1})
			scene.Play(node, fade(0, 1, 100*time.Millisecond, 0), func() { done++ })

			now := clock.Add(tt.elapsed)

			v, ok := scene.Visual(node, now)
			require.True(t, ok)
			assert.InDelta(t, tt.expected, v.Alpha, 1e-9)

			assert.Equal(t, tt.done, scene.Advance(now))
			assert.Equal(t, tt.done, done)
			assert.Equal(t, tt.done == 0, scene.IsAnimating())
		})
	}
}

func Test_Scene_Play_DelayHoldsFirstKeyframe(t *testing.T) {
	clock := newFakeClock()
	scene := newSceneWithClock(nil, clock.Now)
	node := &menu.Surface{}

	scene.Attach(node, menu.LayerTitle)
	scene.Play(node, fade(0, 1, 100*time.Millisecond, 200*time.Millisecond), nil)

	v, _ := scene.Visual(node, clock.Add(100*time.Millisecond))
	assert.InDelta(t, 0, v.Alpha, 1e-9)

	assert.Equal(t, 0, scene.Advance(clock.Add(150*time.Millisecond)))
	assert.True(t, scene.IsAnimating())

	v, _ = scene.Visual(node, clock.Add(100*time.Millisecond))
	assert.InDelta(t, 1, v.Alpha, 1e-9)
}

func Test_Scene_Play_LatestWinsSharedProperty(t *testing.T) {
	clock := newFakeClock()
	scene := newSceneWithClock(nil, clock.Now)
	node := &menu.Surface{}

	scene.Attach(node, menu.LayerItem)
	scene.Play(node, fade(0, 1, 100*time.Millisecond, 0), nil)
	scene.Play(node, fade(1, 0, 100*time.Millisecond, 0), nil)

	v, _ := scene.Visual(node, clock.Add(25*time.Millisecond))
	assert.InDelta(t, 0.75, v.Alpha, 1e-9)
}

func Test_Scene_Play_DetachedNode(t *testing.T) {
	scene := NewScene(nil)
	called := false

	scene.Play(&menu.Surface{}, fade(0, 1, time.Second, 0), func() { called = true })

	assert.True(t, called)
	assert.False(t, scene.IsAnimating())
}

func Test_Scene_Detach_DropsAnimations(t *testing.T) {
	clock := newFakeClock()
	scene := newSceneWithClock(nil, clock.Now)
	node := &menu.Surface{}
	called := false

	scene.Attach(node, menu.LayerItem)
	scene.Play(node, fade(0, 1, 100*time.Millisecond, 0), func() { called = true })
	scene.Detach(node)

	assert.Equal(t, 0, scene.Advance(clock.Add(time.Second)))
	assert.False(t, called)
}

func Test_Scene_Advance_CompletionsMayMutate(t *testing.T) {
	clock := newFakeClock()
	scene := newSceneWithClock(nil, clock.Now)
	first := &menu.Surface{}
	second := &menu.Surface{}

	scene.Attach(first, menu.LayerItem)
	scene.Play(first, fade(0, 1, 10*time.Millisecond, 0), func() {
		scene.Detach(first)
		scene.Attach(second, menu.LayerItem)
		scene.Play(second, fade(0, 1, 10*time.Millisecond, 0), nil)
	})

	assert.Equal(t, 1, scene.Advance(clock.Add(10*time.Millisecond)))
	assert.Equal(t, []menu.Node{second}, scene.Nodes())
	assert.True(t, scene.IsAnimating())
}

func Test_Scene_Curve(t *testing.T) {
	clock := newFakeClock()
	squared := func(_ menu.Timing, p float64) float64 { return p * p }
	scene := newSceneWithClock(squared, clock.Now)
	node := &menu.Surface{}

	scene.Attach(node, menu.LayerItem)
	scene.Play(node, fade(0, 1, 100*time.Millisecond, 0), nil)

	v, _ := scene.Visual(node, clock.Add(50*time.Millisecond))
	assert.InDelta(t, 0.25, v.Alpha, 1e-9)
}

func Test_Scene_Resize(t *testing.T) {
	scene := NewScene(nil)
	frame := menu.Rect{Origin: menu.Point{X: 1, Y: 2}, Size: menu.Size{Width: 30, Height: 10}}

	scene.Resize(frame)

	assert.Equal(t, frame, scene.Frame())
}

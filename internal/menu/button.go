package menu

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/looplab/fsm"

	"fanmenu/internal/app/errors"
	"fanmenu/internal/config/logger"
)

// Bounce holds the overshoot offsets of the spring-like item paths
type Bounce struct {
	Far      float64
	Near     float64
	Backward float64
}

// DefaultBounce matches the classic fan-out feel
var DefaultBounce = Bounce{Far: 10, Near: 5, Backward: 5}

// Look is the tunable appearance and motion of a Button
type Look struct {
	Direction         Direction
	ItemMargin        float64
	AnimationDuration time.Duration
	FoldRatio         float64
	TitleSide         TitleSide
	TitleTapEnabled   bool
	ScrimColor        string
	ScrimAlpha        float64
	Expanding         AnimationOptionSet
	Folding           AnimationOptionSet
	Bounce            Bounce
	SoundsEnabled     bool
	MeasureTitle      func(text string) Size
}

// DefaultLook returns the stock look
func DefaultLook() Look {
	return Look{
		Direction:         DirectionTop,
		ItemMargin:        16,
		AnimationDuration: 350 * time.Millisecond,
		FoldRatio:         0.9,
		TitleSide:         TitleLeft,
		TitleTapEnabled:   true,
		ScrimColor:        "#000000",
		ScrimAlpha:        0.618,
		Expanding:         NormalAnimations,
		Folding:           NormalAnimations,
		Bounce:            DefaultBounce,
		SoundsEnabled:     true,
		MeasureTitle:      measureRunes,
	}
}

func (l Look) foldDuration() time.Duration {
	return scaled(l.AnimationDuration, l.FoldRatio)
}

// measureRunes sizes a title as one cell per rune on a single line
func measureRunes(text string) Size {
	return Size{Width: float64(utf8.RuneCountInString(text)), Height: 1}
}

// Callback is a lifecycle notification
type Callback func(b *Button)

// Deps are the host capabilities a Button drives. Scene is required.
type Deps struct {
	Scene     Scene
	Gestures  Gestures
	Container Container
	Sounds    SoundPlayer
	Resolver  ResourceResolver
	Log       logger.Logger
}

// Button is the fan-out menu controller: a hub that expands registered items
// along an arc and folds them back.
type Button struct {
	ctx   context.Context
	look  Look
	deps  Deps
	log   logger.Logger
	phase *fsm.FSM

	items []*Item
	shown []*Item

	hub         *Surface
	hubSize     Size
	hubVisual   Visual
	scrim       *Surface
	scrimVisual Visual

	frame  Rect
	folded Rect

	willPresent Callback
	didPresent  Callback
	willDismiss Callback
	didDismiss  Callback

	generation int
	closed     bool
}

// New creates a controller. A zero frame takes the hub image size at the origin.
func New(frame Rect, hub, highlighted Image, look Look, deps Deps) (*Button, error) {
	if deps.Scene == nil {
		return nil, errors.ErrSceneRequired
	}

	if frame.Size.IsZero() {
		if hub == nil || hub.Size().IsZero() {
			return nil, errors.ErrHubSizeUnresolved
		}

		frame.Size = hub.Size()
	}

	if look.MeasureTitle == nil {
		look.MeasureTitle = measureRunes
	}

	log := deps.Log
	if log == nil {
		log = logger.NewNopLogger()
	}

	log = log.WithComponent("MENU")

	b := &Button{
		ctx:       context.Background(),
		look:      look,
		deps:      deps,
		log:       log,
		phase:     newPhaseFSM(log),
		hub:       &Surface{name: "hub", Image: hub, Highlighted: highlighted},
		hubSize:   frame.Size,
		hubVisual: restingAt(frame.Center()),
		scrim:     &Surface{name: "scrim", Color: look.ScrimColor},
		frame:     frame,
		folded:    frame,
	}

	b.deps.Scene.Resize(b.frame)
	b.deps.Scene.Attach(b.hub, LayerHub)
	b.deps.Scene.Apply(b.hub, b.hubVisual)

	if b.deps.Gestures != nil {
		b.deps.Gestures.OnTap(b.hub, TapPolicy{}, b.HubTapped)
	}

	if look.SoundsEnabled {
		b.configureSounds(true)
	}

	log.Debug().Msgf("Menu created at %.1f,%.1f (%s)", frame.Origin.X, frame.Origin.Y, look.Direction)

	return b, nil
}

// AddItem registers one item
func (b *Button) AddItem(item *Item) {
	b.AddItems(item)
}

// AddItems registers items in order. Items added while expanded appear on the next expand.
func (b *Button) AddItems(items ...*Item) {
	if b.closed {
		return
	}

	for _, item := range items {
		if item == nil {
			continue
		}

		item.attach(b)
		b.items = append(b.items, item)
	}
}

// Items returns the registered items
func (b *Button) Items() []*Item {
	out := make([]*Item, len(b.items))
	copy(out, b.items)

	return out
}

// Phase returns the current phase
func (b *Button) Phase() Phase {
	return Phase(b.phase.Current())
}

// IsExpanded reports whether the expand animation has completed and the fold has not started
func (b *Button) IsExpanded() bool {
	return b.phase.Is(string(Expanded))
}

// Frame returns the controller's current frame
func (b *Button) Frame() Rect {
	return b.frame
}

// Hub returns the hub surface
func (b *Button) Hub() *Surface {
	return b.hub
}

// HubVisual returns the hub's resting visual
func (b *Button) HubVisual() Visual {
	return b.hubVisual
}

// Scrim returns the scrim surface
func (b *Button) Scrim() *Surface {
	return b.scrim
}

// ScrimVisual returns the scrim's resting visual
func (b *Button) ScrimVisual() Visual {
	return b.scrimVisual
}

// Look returns the current look
func (b *Button) Look() Look {
	return b.look
}

// SetLook replaces the look. Geometry changes apply from the next expand;
// toggling sounds loads or releases the cues immediately.
func (b *Button) SetLook(look Look) {
	if look.MeasureTitle == nil {
		look.MeasureTitle = measureRunes
	}

	toggled := look.SoundsEnabled != b.look.SoundsEnabled
	b.look = look

	if toggled && !b.closed {
		b.configureSounds(look.SoundsEnabled)
	}
}

// OnWillPresent sets the callback fired when an expand starts
func (b *Button) OnWillPresent(cb Callback) { b.willPresent = cb }

// OnDidPresent sets the callback fired when an expand finishes
func (b *Button) OnDidPresent(cb Callback) { b.didPresent = cb }

// OnWillDismiss sets the callback fired when a fold starts
func (b *Button) OnWillDismiss(cb Callback) { b.willDismiss = cb }

// OnDidDismiss sets the callback fired when a fold finishes
func (b *Button) OnDidDismiss(cb Callback) { b.didDismiss = cb }

// HubTapped toggles the menu; taps during a transition are ignored
func (b *Button) HubTapped() {
	switch b.Phase() {
	case Folded:
		b.present(true)
	case Expanded:
		b.dismiss(nil, true)
	default:
		b.log.Debug().Msgf("Hub tap ignored while %s", b.Phase())
	}
}

// BackgroundTapped folds an expanded menu
func (b *Button) BackgroundTapped() {
	if !b.IsExpanded() {
		return
	}

	b.dismiss(nil, true)
}

// Present expands the menu. It reports whether the request was accepted.
func (b *Button) Present(animated bool) bool {
	return b.present(animated)
}

// Dismiss folds the menu. It reports whether the request was accepted.
func (b *Button) Dismiss(animated bool) bool {
	return b.dismiss(nil, animated)
}

// itemTapped folds the menu with the selection animation
func (b *Button) itemTapped(item *Item) {
	if b.closed || !b.IsExpanded() || !b.isShown(item) {
		b.log.Debug().Msgf("Item tap ignored while %s", b.Phase())
		return
	}

	b.log.Info().Msgf("Item %d selected", item.Index())
	b.dismiss(item, true)
}

func (b *Button) present(animated bool) bool {
	if b.closed || !b.phase.Can(EventPresent) {
		b.log.Debug().Msgf("Present ignored while %s", b.Phase())
		return false
	}

	if len(b.items) == 0 {
		b.log.Warn().Msg("Present requested with no items")
	}

	b.transition(EventPresent)
	b.notify(b.willPresent)
	b.playCue(CueExpand)

	b.generation++
	gen := b.generation
	look := b.look

	b.folded = b.frame
	hub := b.frame.Center()

	b.frame = b.expandedFrame()
	b.deps.Scene.Resize(b.frame)

	b.hubVisual.Center = hub
	b.deps.Scene.Apply(b.hub, b.hubVisual)

	j := newJoin(func() { b.finishPresent(gen) })

	b.presentScrim(look, animated, j)

	b.shown = append([]*Item(nil), b.items...)
	placements := layout(look.Direction, hub, b.hubSize, sizesOf(b.shown), look.ItemMargin, look.Bounce)

	for idx, item := range b.shown {
		p := placements[idx]
		item.index = idx

		b.deps.Scene.Attach(item, LayerItem)

		item.visual = restingAt(p.end)
		b.deps.Scene.Apply(item, item.visual)

		if animated {
			anim := expandingAnimation(look.Expanding, look.AnimationDuration, hub, p)
			if !anim.IsEmpty() {
				b.deps.Scene.Play(item, anim, j.track())
			}
		}

		if b.deps.Gestures != nil {
			b.deps.Gestures.OnTap(item, TapPolicy{}, item.Tap)
		}

		b.presentTitle(look, item, p.end, animated, j)
	}

	b.presentHub(look, animated, j)

	j.seal()

	return true
}

func (b *Button) presentScrim(look Look, animated bool, j *join) {
	b.scrim.Color = look.ScrimColor
	b.scrimVisual = Visual{Center: b.frame.Center(), Scale: 1, Alpha: look.ScrimAlpha}

	b.deps.Scene.Attach(b.scrim, LayerScrim)
	b.deps.Scene.Apply(b.scrim, b.scrimVisual)

	if b.deps.Gestures != nil {
		b.deps.Gestures.OnTap(b.scrim, TapPolicy{AlwaysBegin: true, RequireOthersToFail: true}, b.BackgroundTapped)
	}

	if animated {
		anim := fadeAnimation(AnimScrimIn, 0, look.ScrimAlpha, scaled(look.AnimationDuration, scrimFadeInRatio), 0, TimingEaseIn)
		b.deps.Scene.Play(b.scrim, anim, j.track())
	}
}

func (b *Button) presentTitle(look Look, item *Item, end Point, animated bool, j *join) {
	t := item.title
	if t == nil {
		return
	}

	t.tapEnabled = look.TitleTapEnabled

	if !t.IsVisible() {
		return
	}

	t.size = look.MeasureTitle(t.Text)
	t.visual = restingAt(titleCenter(look.TitleSide, end, item.size, item.margin, t.size))
	t.attached = true

	b.deps.Scene.Attach(t, LayerTitle)
	b.deps.Scene.Apply(t, t.visual)

	if animated {
		b.deps.Scene.Play(t, fadeAnimation(AnimTitleIn, 0, 1, titleFadeInDuration, titleFadeInDelay, TimingLinear), j.track())
	}

	if b.deps.Gestures != nil {
		b.deps.Gestures.OnTap(t, TapPolicy{}, t.Tap)
	}
}

// presentHub turns the hub glyph a quarter; without ButtonRotation the turn is instant
func (b *Button) presentHub(look Look, animated bool, j *join) {
	from := b.hubVisual.Rotation
	b.hubVisual.Rotation = hubExpandedRotation
	b.deps.Scene.Apply(b.hub, b.hubVisual)

	if animated && look.Expanding.Contains(ButtonRotation) {
		b.deps.Scene.Play(b.hub, rotateAnimation(AnimHubRotate, from, hubExpandedRotation, hubRotateDuration, 0, TimingSpring), j.track())
	}
}

func (b *Button) finishPresent(gen int) {
	if b.closed || gen != b.generation {
		return
	}

	b.transition(EventPresented)
	b.notify(b.didPresent)
}

func (b *Button) dismiss(selected *Item, animated bool) bool {
	if b.closed || !b.phase.Can(EventDismiss) {
		b.log.Debug().Msgf("Dismiss ignored while %s", b.Phase())
		return false
	}

	b.transition(EventDismiss)
	b.notify(b.willDismiss)

	if selected != nil {
		b.playCue(CueSelect)
	} else {
		b.playCue(CueFold)
	}

	b.generation++
	gen := b.generation
	look := b.look
	fold := look.foldDuration()
	hub := b.hubVisual.Center

	j := newJoin(func() { b.finishDismiss(gen) })

	if selected != nil && animated {
		b.playSelection(selected, j)
	}

	for _, item := range b.shown {
		b.dismissTitle(item, animated, j)
	}

	placements := layout(look.Direction, hub, b.hubSize, sizesOf(b.shown), look.ItemMargin, look.Bounce)

	for idx, item := range b.shown {
		if b.deps.Gestures != nil {
			b.deps.Gestures.Release(item)
		}

		from := item.visual.Center
		item.visual.Center = hub
		item.visual.Rotation = 0
		b.deps.Scene.Apply(item, item.visual)

		if animated {
			anim := foldingAnimation(look.Folding, fold, from, hub, placements[idx])
			if !anim.IsEmpty() {
				b.deps.Scene.Play(item, anim, j.track())
			}
		}
	}

	b.dismissHub(look, animated, j)
	b.dismissScrim(fold, animated, j)

	j.seal()

	return true
}

// playSelection starts the emphasis on the tapped item and the shrink on the rest
func (b *Button) playSelection(selected *Item, j *join) {
	for _, item := range b.shown {
		if item == selected {
			item.visual.Scale = selectionScale
			item.visual.Alpha = 0
			b.deps.Scene.Apply(item, item.visual)
			b.deps.Scene.Play(item, selectionAnimation(), j.track())

			continue
		}

		item.visual.Scale = 0
		b.deps.Scene.Apply(item, item.visual)
		b.deps.Scene.Play(item, shrinkAnimation(), j.track())
	}
}

func (b *Button) dismissTitle(item *Item, animated bool, j *join) {
	t := item.title
	if t == nil || !t.attached {
		return
	}

	if b.deps.Gestures != nil {
		b.deps.Gestures.Release(t)
	}

	if !animated {
		b.detachTitle(t)
		return
	}

	from := t.visual.Alpha
	t.visual.Alpha = 0
	b.deps.Scene.Apply(t, t.visual)

	done := j.track()
	b.deps.Scene.Play(t, fadeAnimation(AnimTitleOut, from, 0, titleFadeOutDuration, 0, TimingLinear), func() {
		b.detachTitle(t)
		done()
	})
}

func (b *Button) dismissHub(look Look, animated bool, j *join) {
	from := b.hubVisual.Rotation
	if from == 0 {
		return
	}

	b.hubVisual.Rotation = 0
	b.deps.Scene.Apply(b.hub, b.hubVisual)

	if animated && look.Folding.Contains(ButtonRotation) {
		b.deps.Scene.Play(b.hub, rotateAnimation(AnimHubUnrotate, from, 0, hubUnrotateDuration, hubUnrotateDelay, TimingEaseIn), j.track())
	}
}

func (b *Button) dismissScrim(fold time.Duration, animated bool, j *join) {
	from := b.scrimVisual.Alpha
	b.scrimVisual.Alpha = 0
	b.deps.Scene.Apply(b.scrim, b.scrimVisual)

	if animated {
		b.deps.Scene.Play(b.scrim, fadeAnimation(AnimScrimOut, from, 0, scrimFadeOutDuration, fold, TimingLinear), j.track())
	}
}

func (b *Button) finishDismiss(gen int) {
	if b.closed || gen != b.generation {
		return
	}

	b.teardownShown()
	b.restoreFolded()
	b.transition(EventDismissed)
	b.notify(b.didDismiss)
}

// teardownShown removes the scrim, items and titles from the scene
func (b *Button) teardownShown() {
	for _, item := range b.shown {
		if item.title != nil {
			b.detachTitle(item.title)
		}

		if b.deps.Gestures != nil {
			b.deps.Gestures.Release(item)
		}

		item.visual = restingAt(b.hubVisual.Center)
		b.deps.Scene.Detach(item)
	}

	b.shown = nil

	if b.deps.Gestures != nil {
		b.deps.Gestures.Release(b.scrim)
	}

	b.deps.Scene.Detach(b.scrim)
}

// restoreFolded returns the frame to the snapshot taken when the expand started
func (b *Button) restoreFolded() {
	b.frame = b.folded
	b.deps.Scene.Resize(b.frame)

	b.hubVisual.Center = b.frame.Center()
	b.hubVisual.Rotation = 0
	b.deps.Scene.Apply(b.hub, b.hubVisual)
}

func (b *Button) detachTitle(t *Title) {
	if !t.attached {
		return
	}

	t.attached = false

	if b.deps.Gestures != nil {
		b.deps.Gestures.Release(t)
	}

	b.deps.Scene.Detach(t)
}

// Close tears the controller down. Any running transition is abandoned without
// callbacks, the control snaps to its folded geometry, and items are orphaned.
func (b *Button) Close() {
	if b.closed {
		return
	}

	b.generation++

	if b.Phase() != Folded {
		b.teardownShown()
		b.restoreFolded()
		b.phase.SetState(string(Folded))
	}

	b.closed = true

	if b.deps.Gestures != nil {
		b.deps.Gestures.Release(b.hub)
	}

	b.deps.Scene.Detach(b.hub)

	for _, item := range b.items {
		item.orphan()
	}

	b.configureSounds(false)

	b.log.Debug().Msg("Menu closed")
}

func (b *Button) expandedFrame() Rect {
	if b.deps.Container != nil {
		if bounds := b.deps.Container.Bounds(); !bounds.Size.IsZero() {
			return bounds
		}
	}

	return b.frame
}

func (b *Button) isShown(item *Item) bool {
	for _, s := range b.shown {
		if s == item {
			return true
		}
	}

	return false
}

func (b *Button) transition(event string) {
	if err := b.phase.Event(b.ctx, event); err != nil {
		b.log.Warn().Err(err).Msgf("Phase event %s rejected", event)
	}
}

func (b *Button) notify(cb Callback) {
	if cb != nil {
		cb(b)
	}
}

// configureSounds loads every resolvable cue, or releases all of them
func (b *Button) configureSounds(enabled bool) {
	if b.deps.Sounds == nil {
		return
	}

	for _, cue := range Cues {
		if !enabled {
			b.deps.Sounds.Dispose(cue)
			continue
		}

		if b.deps.Resolver == nil {
			continue
		}

		path, ok := b.deps.Resolver.Resolve(cue)
		if !ok {
			b.log.Debug().Msgf("No sound resource for %s", cue)
			continue
		}

		if err := b.deps.Sounds.Load(cue, path); err != nil {
			b.log.Warn().Err(err).Msgf("Failed to load %s sound from %s", cue, path)
		}
	}
}

func (b *Button) playCue(cue Cue) {
	if !b.look.SoundsEnabled || b.deps.Sounds == nil {
		return
	}

	if err := b.deps.Sounds.Play(cue); err != nil {
		b.log.Debug().Err(err).Msgf("Failed to play %s sound", cue)
	}
}

func sizesOf(items []*Item) []Size {
	sizes := make([]Size, len(items))
	for i, item := range items {
		sizes[i] = item.size
	}

	return sizes
}

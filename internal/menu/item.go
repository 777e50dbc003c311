package menu

import (
	"fmt"
	"weak"

	"fanmenu/internal/app/errors"
)

// DefaultTitleMargin is the gap between an item and its title overlay
const DefaultTitleMargin = 8.0

// ItemConfig describes a menu item at construction time
type ItemConfig struct {
	Size                       Size
	Image                      Image
	HighlightedImage           Image
	BackgroundImage            Image
	BackgroundHighlightedImage Image
	Title                      string
	TitleColor                 string
	OnTap                      func()
}

// Item is a single fan-out entry. It is created and owned by the caller;
// a controller only holds a non-owning reference while the item is registered.
type Item struct {
	cfg     ItemConfig
	index   int
	size    Size
	visual  Visual
	title   *Title
	margin  float64
	tapping bool
	owner   weak.Pointer[Button]
}

// NewItem creates an item, resolving its size from the explicit size, then the background
// images (only when both are present), then the foreground image.
func NewItem(cfg ItemConfig) (*Item, error) {
	size, err := resolveItemSize(cfg)
	if err != nil {
		return nil, err
	}

	item := &Item{
		cfg:     cfg,
		size:    size,
		visual:  restingAt(Point{}),
		margin:  DefaultTitleMargin,
		tapping: true,
	}

	if cfg.Title != "" {
		item.title = newTitle(item, cfg.Title, cfg.TitleColor)
	}

	return item, nil
}

// MustItem is like NewItem but panics when the size cannot be resolved
func MustItem(cfg ItemConfig) *Item {
	item, err := NewItem(cfg)
	if err != nil {
		panic(err)
	}

	return item
}

func resolveItemSize(cfg ItemConfig) (Size, error) {
	if !cfg.Size.IsZero() {
		return cfg.Size, nil
	}

	if cfg.BackgroundImage != nil && cfg.BackgroundHighlightedImage != nil {
		if s := cfg.BackgroundImage.Size(); !s.IsZero() {
			return s, nil
		}
	}

	if cfg.Image != nil {
		if s := cfg.Image.Size(); !s.IsZero() {
			return s, nil
		}
	}

	return Size{}, errors.ErrItemSizeUnresolved
}

// NodeName identifies the item in the scene
func (i *Item) NodeName() string {
	return fmt.Sprintf("item-%p", i)
}

// Index returns the item's position assigned at the last expand
func (i *Item) Index() int {
	return i.index
}

// Size returns the resolved item size
func (i *Item) Size() Size {
	return i.size
}

// Visual returns the item's current resting visual state
func (i *Item) Visual() Visual {
	return i.visual
}

// Config returns the construction-time description, including the content handles
func (i *Item) Config() ItemConfig {
	return i.cfg
}

// Title returns the attached title overlay, or nil
func (i *Item) Title() *Title {
	return i.title
}

// SetTitle creates, updates, or (with an empty text) removes the title overlay
func (i *Item) SetTitle(text string) {
	if text == "" {
		if t := i.title; t != nil && t.attached {
			if b := i.owner.Value(); b != nil {
				b.detachTitle(t)
			}
		}

		i.title = nil

		return
	}

	if i.title != nil {
		i.title.Text = text
		return
	}

	i.title = newTitle(i, text, i.cfg.TitleColor)
}

// SetTitleColor sets the title colour; an empty colour hides the title
func (i *Item) SetTitleColor(color string) {
	i.cfg.TitleColor = color

	if i.title != nil {
		i.title.Color = color
	}
}

// TitleMargin returns the gap between item and title
func (i *Item) TitleMargin() float64 {
	return i.margin
}

// SetTitleMargin sets the gap between item and title
func (i *Item) SetTitleMargin(margin float64) {
	i.margin = margin
}

// IsTappable reports whether taps on the item are currently delivered
func (i *Item) IsTappable() bool {
	return i.tapping
}

// SetTappable enables or disables tap delivery
func (i *Item) SetTappable(enabled bool) {
	i.tapping = enabled
}

// Tap notifies the owning controller first and then runs the item's own callback.
// Both happen synchronously; a tap on an orphaned item only runs the callback.
func (i *Item) Tap() {
	if !i.tapping {
		return
	}

	if b := i.owner.Value(); b != nil {
		b.itemTapped(i)
	}

	if i.cfg.OnTap != nil {
		i.cfg.OnTap()
	}
}

// attach records a non-owning reference to the controller
func (i *Item) attach(b *Button) {
	i.owner = weak.Make(b)
}

// orphan drops the controller reference
func (i *Item) orphan() {
	i.owner = weak.Pointer[Button]{}
}

// Title is an optional label overlay placed beside an item's resting point
type Title struct {
	Text       string
	Color      string
	item       *Item
	size       Size
	visual     Visual
	tapEnabled bool
	attached   bool
}

func newTitle(item *Item, text, color string) *Title {
	return &Title{
		Text:       text,
		Color:      color,
		item:       item,
		visual:     restingAt(Point{}),
		tapEnabled: true,
	}
}

// NodeName identifies the title in the scene
func (t *Title) NodeName() string {
	return fmt.Sprintf("title-%p", t.item)
}

// Item returns the item the title belongs to
func (t *Title) Item() *Item {
	return t.item
}

// Size returns the measured title size from the last layout
func (t *Title) Size() Size {
	return t.size
}

// Visual returns the title's current resting visual
func (t *Title) Visual() Visual {
	return t.visual
}

// IsVisible reports whether the title can be rendered; a title without a colour is not
func (t *Title) IsVisible() bool {
	return t.Color != ""
}

// IsAttached reports whether the title is currently in the scene
func (t *Title) IsAttached() bool {
	return t.attached
}

// Tap forwards to the item when title taps are enabled
func (t *Title) Tap() {
	if !t.tapEnabled {
		return
	}

	t.item.Tap()
}

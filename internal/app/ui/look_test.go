package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanmenu/internal/app/errors"
	"fanmenu/internal/config"
	"fanmenu/internal/menu"
)

func Test_LookFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Menu.Direction = config.DirectionLeft
	cfg.Menu.TitleSide = config.TitleRight
	cfg.Menu.AnimationDuration = 500 * time.Millisecond
	cfg.Menu.FoldingAnimations = []string{config.OptionItemFade}
	cfg.Sounds.Enabled = false

	look, err := LookFromConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, menu.DirectionLeft, look.Direction)
	assert.Equal(t, menu.TitleRight, look.TitleSide)
	assert.Equal(t, 500*time.Millisecond, look.AnimationDuration)
	assert.Equal(t, cfg.Menu.FoldRatio, look.FoldRatio)
	assert.Equal(t, cfg.Menu.ItemMargin, look.ItemMargin)
	assert.Equal(t, cfg.Menu.Scrim.Color, look.ScrimColor)
	assert.InDelta(t, cfg.Menu.Scrim.Alpha, look.ScrimAlpha, 1e-9)
	assert.True(t, look.TitleTapEnabled)
	assert.Equal(t, menu.NormalAnimations, look.Expanding)
	assert.Equal(t, menu.NewAnimationOptionSet(menu.ItemFade), look.Folding)
	assert.Equal(t, menu.Bounce{Far: config.DefaultBounceFar, Near: config.DefaultBounceNear, Backward: config.DefaultBounceBackward}, look.Bounce)
	assert.False(t, look.SoundsEnabled)
	require.NotNil(t, look.MeasureTitle)
	assert.Equal(t, menu.Size{Width: 5, Height: 1}, look.MeasureTitle("Music"))
}

func Test_LookFromConfig_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *config.Config)
		error  error
	}{
		{name: "direction", modify: func(cfg *config.Config) { cfg.Menu.Direction = "up" }, error: errors.ErrInvalidDirection},
		{name: "title side", modify: func(cfg *config.Config) { cfg.Menu.TitleSide = "middle" }, error: errors.ErrInvalidTitleSide},
		{name: "expanding", modify: func(cfg *config.Config) { cfg.Menu.ExpandingAnimations = []string{"wobble"} }, error: errors.ErrInvalidAnimationOption},
		{name: "folding", modify: func(cfg *config.Config) { cfg.Menu.FoldingAnimations = []string{"wobble"} }, error: errors.ErrInvalidAnimationOption},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.modify(cfg)

			_, err := LookFromConfig(cfg)
			assert.ErrorIs(t, err, tt.error)
		})
	}
}

func Test_ItemsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Menu.TitleMargin = 2
	cfg.Items = []config.Item{
		{Glyph: "M", Title: "Music"},
		{Glyph: "⚑", Title: "Place", TitleColor: "#FF0000", Width: 5, Height: 3},
		{Glyph: "◉"},
	}

	var tapped []string

	items, err := ItemsFromConfig(cfg, func(title string) { tapped = append(tapped, title) })
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, menu.Size{Width: 1, Height: 1}, items[0].Size())
	assert.Equal(t, menu.Size{Width: 5, Height: 3}, items[1].Size())

	assert.Equal(t, cfg.Menu.TitleColor, items[0].Title().Color)
	assert.Equal(t, "#FF0000", items[1].Title().Color)
	assert.Nil(t, items[2].Title())

	assert.InDelta(t, 2, items[0].TitleMargin(), 1e-9)
	assert.Equal(t, "M", glyphText(items[0].Config().Image))

	items[1].Tap()
	items[0].Tap()

	assert.Equal(t, []string{"Place", "Music"}, tapped)
}

func Test_ItemsFromConfig_UnresolvedSize(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Items = []config.Item{{Title: "Empty"}}

	_, err := ItemsFromConfig(cfg, nil)
	assert.ErrorIs(t, err, errors.ErrItemSizeUnresolved)
}

func Test_HubFrame(t *testing.T) {
	bounds := menu.Rect{Size: menu.Size{Width: 40, Height: 20}}
	hub := menu.Size{Width: 3, Height: 1}

	tests := []struct {
		name      string
		direction menu.Direction
		center    menu.Point
	}{
		{name: "top expands upward from the bottom edge", direction: menu.DirectionTop, center: menu.Point{X: 20, Y: 18.5}},
		{name: "bottom expands downward from the top edge", direction: menu.DirectionBottom, center: menu.Point{X: 20, Y: 1.5}},
		{name: "left expands leftward from the right edge", direction: menu.DirectionLeft, center: menu.Point{X: 37.5, Y: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := HubFrame(tt.direction, bounds, hub)

			assert.Equal(t, hub, frame.Size)
			assert.Equal(t, tt.center, frame.Center())
		})
	}
}

package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanmenu/internal/app/errors"
)

func Test_NewItem_Size(t *testing.T) {
	small := fakeImage{size: Size{Width: 10, Height: 10}}
	large := fakeImage{size: Size{Width: 30, Height: 20}}

	tests := []struct {
		name     string
		cfg      ItemConfig
		expected Size
		error    error
	}{
		{
			name:     "explicit size wins",
			cfg:      ItemConfig{Size: Size{Width: 5, Height: 5}, Image: small, BackgroundImage: large, BackgroundHighlightedImage: large},
			expected: Size{Width: 5, Height: 5},
		},
		{
			name:     "both backgrounds",
			cfg:      ItemConfig{Image: small, BackgroundImage: large, BackgroundHighlightedImage: large},
			expected: Size{Width: 30, Height: 20},
		},
		{
			name:     "single background falls back to image",
			cfg:      ItemConfig{Image: small, BackgroundImage: large},
			expected: Size{Width: 10, Height: 10},
		},
		{
			name:     "image only",
			cfg:      ItemConfig{Image: small},
			expected: Size{Width: 10, Height: 10},
		},
		{
			name:  "nothing to size from",
			cfg:   ItemConfig{Title: "orphan"},
			error: errors.ErrItemSizeUnresolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewItem(tt.cfg)

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				assert.Nil(t, item)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, item.Size())
		})
	}
}

func Test_MustItem_Panics(t *testing.T) {
	assert.Panics(t, func() { MustItem(ItemConfig{}) })
}

func Test_Item_Title(t *testing.T) {
	item := MustItem(ItemConfig{Size: Size{Width: 1, Height: 1}})
	assert.Nil(t, item.Title())

	item.SetTitle("Music")
	require.NotNil(t, item.Title())
	assert.Equal(t, "Music", item.Title().Text)
	assert.False(t, item.Title().IsVisible())

	item.SetTitleColor("#FF0000")
	assert.True(t, item.Title().IsVisible())
	assert.Same(t, item, item.Title().Item())

	item.SetTitle("Tunes")
	assert.Equal(t, "Tunes", item.Title().Text)

	item.SetTitle("")
	assert.Nil(t, item.Title())

	assert.Equal(t, DefaultTitleMargin, item.TitleMargin())
	item.SetTitleMargin(2)
	assert.Equal(t, 2.0, item.TitleMargin())
}

func Test_Item_Tap(t *testing.T) {
	t.Run("orphaned item runs its callback", func(t *testing.T) {
		calls := 0
		item := MustItem(ItemConfig{Size: Size{Width: 1, Height: 1}, OnTap: func() { calls++ }})

		item.Tap()
		assert.Equal(t, 1, calls)
	})

	t.Run("untappable item ignores taps", func(t *testing.T) {
		calls := 0
		item := MustItem(ItemConfig{Size: Size{Width: 1, Height: 1}, OnTap: func() { calls++ }})
		item.SetTappable(false)

		item.Tap()
		assert.Equal(t, 0, calls)
		assert.False(t, item.IsTappable())
	})

	t.Run("title tap forwards only when enabled", func(t *testing.T) {
		calls := 0
		item := MustItem(ItemConfig{Size: Size{Width: 1, Height: 1}, Title: "t", TitleColor: "#FFF", OnTap: func() { calls++ }})

		item.Title().Tap()
		assert.Equal(t, 1, calls)

		item.Title().tapEnabled = false
		item.Title().Tap()
		assert.Equal(t, 1, calls)
	})
}

func Test_Item_NodeNames(t *testing.T) {
	a := testItem("a")
	b := testItem("b")

	assert.NotEqual(t, a.NodeName(), b.NodeName())
	assert.NotEqual(t, a.NodeName(), a.Title().NodeName())
}

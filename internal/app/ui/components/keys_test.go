package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Hub.Keys(), " ")
	assert.Contains(t, km.Hub.Keys(), "enter")
	assert.Len(t, km.Item.Keys(), 9)
	assert.Contains(t, km.Item.Keys(), "1")
	assert.Contains(t, km.Item.Keys(), "9")
	assert.Contains(t, km.Background.Keys(), "esc")
	assert.Contains(t, km.Present.Keys(), "p")
	assert.Contains(t, km.Dismiss.Keys(), "d")
	assert.Contains(t, km.Quit.Keys(), "q")
	assert.Contains(t, km.ForceQuit.Keys(), "ctrl+c")
}

func Test_KeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 6)
	assert.Len(t, km.FullHelp(), 3)

	for _, group := range km.FullHelp() {
		for _, b := range group {
			assert.NotEmpty(t, b.Help().Key)
			assert.NotEmpty(t, b.Help().Desc)
		}
	}
}

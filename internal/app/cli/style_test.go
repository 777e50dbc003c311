package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"fanmenu/internal/config"
)

func Test_RenderTitle(t *testing.T) {
	title := RenderTitle()

	assert.Contains(t, title, config.AppName)
	assert.Contains(t, title, "v"+config.Version)
	assert.Contains(t, title, config.AppDescription)
}

func Test_RenderError(t *testing.T) {
	result := RenderError(errors.New("boom"))

	assert.Contains(t, result, "Error:")
	assert.Contains(t, result, "boom")
}

func Test_RenderSuccess(t *testing.T) {
	assert.Contains(t, RenderSuccess("Created fanmenu.yaml"), "Created fanmenu.yaml")
}

func Test_RenderHint(t *testing.T) {
	assert.Contains(t, RenderHint(), "press q")
}

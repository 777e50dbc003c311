package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"fanmenu/internal/app/errors"
	"fanmenu/internal/config"
	"fanmenu/internal/config/logger"
)

func Test_Runner_Run_InvalidOverride(t *testing.T) {
	cfg := testConfig()
	r := NewRunner(cfg, nil, nil, nil, logger.NewNopLogger())

	err := r.Run(context.Background(), RunOptions{
		Override: func(cfg *config.Config) { cfg.Menu.TitleSide = "middle" },
	})

	assert.ErrorIs(t, err, errors.ErrInvalidTitleSide)
	assert.Equal(t, "middle", cfg.Menu.TitleSide, "overrides apply to the shared configuration")
}

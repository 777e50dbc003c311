package logger

import (
	"io"

	"go.uber.org/fx"

	"fanmenu/internal/config"
)

// Output is the destination the application logger writes to; a nil writer discards
type Output struct {
	io.Writer
}

// Module provides the fx dependency injection options for the logger package
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, out Output) Logger {
		return NewLoggerWithOutput(cfg, out.Writer)
	}),
)

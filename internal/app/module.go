package app

import (
	"go.uber.org/fx"

	"fanmenu/internal/app/cli"
	"fanmenu/internal/app/generator"
	"fanmenu/internal/app/monitor"
	"fanmenu/internal/app/sound"
	"fanmenu/internal/app/ui"
	"fanmenu/internal/app/watcher"
	"fanmenu/internal/config/logger"
)

var Module = fx.Options(
	cli.Module,
	ui.Module,
	sound.Module,
	watcher.Module,
	monitor.Module,
	generator.Module,
	logger.Module,
	fx.Provide(NewApp),
	fx.Invoke(Register),
)

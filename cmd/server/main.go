package main

import (
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	appfx "hotmart-post-generator/internal/app/fx"
	healthfx "hotmart-post-generator/internal/app/health/fx"
	postsfx "hotmart-post-generator/internal/app/posts/fx"
	uifx "hotmart-post-generator/internal/app/ui/fx"
	routerfx "hotmart-post-generator/internal/router/fx"
	serverfx "hotmart-post-generator/internal/server/fx"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		appfx.CoreAppOptions,
		routerfx.CoreRouterOptions,
		serverfx.Module,
		healthfx.Module,
		postsfx.Module,
		uifx.Module,
	)

	app.Run()
}

package fx

import (
	"go.uber.org/fx"

	"hotmart-post-generator/internal/app/ui"
	"hotmart-post-generator/internal/router"
)

var Module = fx.Options(
	fx.Provide(router.AsRoute(ui.NewHandler)),
)

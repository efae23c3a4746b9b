package fx

import (
	"go.uber.org/fx"

	"hotmart-post-generator/internal/server"
)

var Module = fx.Options(
	fx.Provide(server.NewHTTPServer),
	fx.Invoke(RegisterHTTPServerLifecycle),
)

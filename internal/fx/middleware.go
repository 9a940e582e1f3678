package fx

import (
	"go.uber.org/fx"

	"github.com/ronaldorededigital/confin/config"
	"github.com/ronaldorededigital/confin/internal/middleware"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config) *middleware.JwtService {
	return middleware.NewJwtService(cfg)
}

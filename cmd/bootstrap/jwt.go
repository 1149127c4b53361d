package bootstrap

import (
	"inkslot/internal/handler/middleware"
	"inkslot/internal/pkg/config"
	"inkslot/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(middleware.TokenValidator)),
		),
	),
)

// Dashboard tokens are issued by the auth service; this side only verifies.
func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret)
}

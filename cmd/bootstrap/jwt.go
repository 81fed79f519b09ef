package bootstrap

import (
	"dynamic-pricing/internal/pkg/clock"
	"dynamic-pricing/internal/pkg/config"
	"dynamic-pricing/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration, cfg.JWT.Issuer, clk)
}

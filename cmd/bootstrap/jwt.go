package bootstrap

import (
	"time"

	"github.com/bothrasports-ops/arena-manager/internal/pkg/clock"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/config"
	"github.com/bothrasports-ops/arena-manager/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	tokenDuration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		panic("invalid JWT_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, tokenDuration, clk)
}

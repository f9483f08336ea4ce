package bootstrap

import (
	"time"

	"stay-marketplace/internal/handler/middleware"
	"stay-marketplace/internal/pkg/config"
	"stay-marketplace/internal/pkg/jwt"

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

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	accessTokenDuration, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, err
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, accessTokenDuration), nil
}

package bootstrap

import (
	"stay-marketplace/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.PaymentConfig { return cfg.Payment },
	),
)

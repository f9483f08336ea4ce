package bootstrap

import (
	"stay-marketplace/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	DBModule,
	JWTModule,
	QueueModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

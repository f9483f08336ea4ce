package bootstrap

import (
	"context"

	"stay-marketplace/internal/infra/telemetry"
	"stay-marketplace/internal/pkg/config"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(StartTracing),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config) error {
	tp, err := telemetry.SetupTracing(cfg.Telemetry)
	if err != nil {
		return err
	}
	if tp == nil {
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})
	return nil
}

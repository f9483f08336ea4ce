package bootstrap

import (
	"context"
	"log/slog"

	"stay-marketplace/internal/infra/queue"
	"stay-marketplace/internal/pkg/config"
	"stay-marketplace/internal/usecase/shared"

	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewTaskDispatcher,
	),
)

func NewTaskDispatcher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.TaskDispatcher, error) {
	dispatcher, err := queue.New(cfg.Tasks)
	if err != nil {
		return nil, err
	}
	logger.Info("task dispatcher ready", "broker", cfg.Tasks.Broker)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return dispatcher.Close()
		},
	})

	return dispatcher, nil
}

// Package queue hands asynchronous tasks to the external worker fleet.
package queue

import (
	"context"
	"log/slog"
	"time"

	"stay-marketplace/internal/pkg/config"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/usecase/shared"
)

const (
	BrokerNone  = "none"
	BrokerAMQP  = "amqp"
	BrokerRedis = "redis"
)

// Dispatcher is a TaskDispatcher owning a broker connection.
type Dispatcher interface {
	shared.TaskDispatcher
	Close() error
}

func New(cfg config.TaskConfig) (Dispatcher, error) {
	switch cfg.Broker {
	case BrokerAMQP:
		d, err := NewAMQPDispatcher(cfg)
		if err != nil {
			return nil, err
		}
		return d, nil
	case BrokerRedis:
		d, err := NewRedisDispatcher(cfg)
		if err != nil {
			return nil, err
		}
		return d, nil
	case BrokerNone, "":
		return NoopDispatcher{}, nil
	default:
		return nil, errs.Newf("unknown task broker %q", cfg.Broker)
	}
}

// NoopDispatcher only logs; used when no broker is configured.
type NoopDispatcher struct{}

func (NoopDispatcher) Dispatch(ctx context.Context, task shared.Task) error {
	slog.DebugContext(ctx, "task dropped, no broker configured",
		"task", task.Name,
		"task_id", task.ID.String())
	return nil
}

func (NoopDispatcher) Close() error { return nil }

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

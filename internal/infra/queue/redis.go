package queue

import (
	"context"
	"encoding/json"
	"time"

	"stay-marketplace/internal/pkg/config"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

// RedisDispatcher pushes JSON encoded tasks onto a list consumed by the workers.
type RedisDispatcher struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

func NewRedisDispatcher(cfg config.TaskConfig) (*RedisDispatcher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := withTimeout(context.Background(), cfg.Timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to connect to redis")
	}
	return NewRedisDispatcherWithClient(client, cfg.Queue, cfg.Timeout), nil
}

func NewRedisDispatcherWithClient(client *redis.Client, key string, timeout time.Duration) *RedisDispatcher {
	return &RedisDispatcher{client: client, key: key, timeout: timeout}
}

func (d *RedisDispatcher) Dispatch(ctx context.Context, task shared.Task) error {
	body, err := json.Marshal(task)
	if err != nil {
		return errs.Wrapf(err, "failed to encode task %s", task.Name)
	}

	ctx, cancel := withTimeout(ctx, d.timeout)
	defer cancel()
	if err := d.client.LPush(ctx, d.key, body).Err(); err != nil {
		return errs.Wrapf(err, "failed to push task %s", task.Name)
	}
	return nil
}

func (d *RedisDispatcher) Close() error {
	return d.client.Close()
}

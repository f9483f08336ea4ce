//go:build unit

package queue_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"stay-marketplace/internal/infra/queue"
	"stay-marketplace/internal/pkg/config"
	"stay-marketplace/internal/pkg/errs"
	"stay-marketplace/internal/usecase/shared"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisConfig(addr string) config.TaskConfig {
	return config.TaskConfig{
		Broker:    queue.BrokerRedis,
		RedisAddr: addr,
		Queue:     "notifications",
		Timeout:   time.Second,
	}
}

func TestRedisDispatcher(t *testing.T) {
	mr := miniredis.RunT(t)

	d, err := queue.New(redisConfig(mr.Addr()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	task := shared.NewTask(shared.TaskBookingConfirmationEmail, map[string]any{
		"booking_id": "b-1",
		"start_date": "2026-07-01",
	}, time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))

	require.NoError(t, d.Dispatch(context.Background(), task))

	items, err := mr.List("notifications")
	require.NoError(t, err)
	require.Len(t, items, 1)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(items[0]), &got))
	assert.Equal(t, task.ID.String(), got["id"])
	assert.Equal(t, "send_booking_confirmation_email", got["task"])
	assert.Equal(t, map[string]any{"booking_id": "b-1", "start_date": "2026-07-01"}, got["kwargs"])
	assert.Equal(t, "2026-05-01T10:00:00Z", got["created_at"])
}

func TestRedisDispatcher_BrokerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	d, err := queue.New(redisConfig(mr.Addr()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	mr.SetError("LOADING")
	err = d.Dispatch(context.Background(), shared.NewTask("x", nil, time.Now()))
	assert.ErrorContains(t, err, "failed to push task x")
	assert.Contains(t, strings.Join(errs.ExtractStackLines(err, 0), "\n"), "(*RedisDispatcher).Dispatch")
}

func TestNew(t *testing.T) {
	t.Run("no broker configured", func(t *testing.T) {
		d, err := queue.New(config.TaskConfig{Broker: queue.BrokerNone})
		require.NoError(t, err)
		assert.NoError(t, d.Dispatch(context.Background(), shared.NewTask("x", nil, time.Now())))
		assert.NoError(t, d.Close())
	})

	t.Run("unreachable redis", func(t *testing.T) {
		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, err := queue.New(redisConfig(addr))
		assert.ErrorContains(t, err, "failed to connect to redis")
	})

	t.Run("unknown broker", func(t *testing.T) {
		_, err := queue.New(config.TaskConfig{Broker: "kafka"})
		assert.ErrorContains(t, err, `unknown task broker "kafka"`)
	})
}

func TestDispatchBestEffort(t *testing.T) {
	mr := miniredis.RunT(t)
	d, err := queue.New(redisConfig(mr.Addr()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })

	mr.SetError("LOADING")
	assert.NotPanics(t, func() {
		shared.DispatchBestEffort(context.Background(), d, shared.NewTask("x", nil, time.Now()))
	})
	shared.DispatchBestEffort(context.Background(), nil, shared.NewTask("x", nil, time.Now()))
}

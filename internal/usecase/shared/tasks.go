package shared

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	TaskBookingConfirmationEmail = "send_booking_confirmation_email"
	TaskPaymentConfirmationEmail = "send_payment_confirmation_email"
)

// Task is a unit of work handed to the external worker fleet.
type Task struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"task"`
	Payload   map[string]any `json:"kwargs"`
	CreatedAt time.Time      `json:"created_at"`
}

func NewTask(name string, payload map[string]any, now time.Time) Task {
	return Task{ID: uuid.New(), Name: name, Payload: payload, CreatedAt: now}
}

type TaskDispatcher interface {
	Dispatch(ctx context.Context, task Task) error
}

// DispatchBestEffort hands the task off and only logs a failure. Callers invoke
// it after commit so a broker outage never fails a request.
func DispatchBestEffort(ctx context.Context, d TaskDispatcher, task Task) {
	if d == nil {
		return
	}
	if err := d.Dispatch(ctx, task); err != nil {
		slog.WarnContext(ctx, "task dispatch failed",
			"task", task.Name,
			"task_id", task.ID.String(),
			"error", err.Error())
	}
}

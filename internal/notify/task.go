package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/BruksfildServices01/braider-booking/internal/events"
)

const (
	TypeBookingNotify = "booking:notify"
	Queue             = "notifications"
	maxRetry          = 5
)

func NewTask(ev events.Event) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(ev)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingNotify, b)
	opts := []asynq.Option{
		asynq.Queue(Queue),
		asynq.MaxRetry(maxRetry),
	}

	return task, opts, nil
}

type taskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer é o sink que entrega eventos ao gateway via fila.
type Enqueuer struct {
	client taskEnqueuer
}

func NewEnqueuer(client taskEnqueuer) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) Handle(ctx context.Context, ev events.Event) error {
	task, opts, err := NewTask(ev)
	if err != nil {
		return fmt.Errorf("build task: %w", err)
	}
	if _, err := e.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue %s: %w", TypeBookingNotify, err)
	}
	return nil
}

var _ events.Sink = (*Enqueuer)(nil)

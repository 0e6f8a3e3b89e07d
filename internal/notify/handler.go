package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/braider-booking/internal/events"
)

type Handler struct {
	mailer Mailer
	log    *zap.Logger
}

func NewHandler(mailer Mailer, log *zap.Logger) *Handler {
	return &Handler{mailer: mailer, log: log}
}

// ProcessTask implementa asynq.Handler. Payload inválido não é re-tentado.
func (h *Handler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var ev events.Event
	if err := json.Unmarshal(task.Payload(), &ev); err != nil {
		h.log.Error("invalid notify payload", zap.Error(err))
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	msg, err := Render(ev)
	if err != nil {
		h.log.Error("cannot render notification",
			zap.String("booking_id", ev.BookingID.String()),
			zap.Error(err),
		)
		return fmt.Errorf("render: %v: %w", err, asynq.SkipRetry)
	}

	if err := h.mailer.Send(ctx, msg); err != nil {
		h.log.Warn("notification delivery failed",
			zap.String("booking_id", ev.BookingID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func NewServeMux(h *Handler) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Handle(TypeBookingNotify, h)
	return mux
}

var _ asynq.Handler = (*Handler)(nil)

package notify

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap/zaptest"

	"github.com/BruksfildServices01/braider-booking/internal/events"
)

func sampleEvent(t events.Type) events.Event {
	return events.Event{
		Type:        t,
		BookingID:   uuid.MustParse("7c0e1b2a-1111-4222-8333-944455556666"),
		ProviderID:  uuid.New(),
		ClientEmail: "ada@example.com",
		SlotDate:    "2025-08-10",
		SlotTime:    "10:00",
	}
}

func TestRender_EveryLifecycleEvent(t *testing.T) {
	for _, typ := range []events.Type{
		events.BookingCreated,
		events.BookingConfirmed,
		events.BookingCancelled,
		events.BookingRejected,
	} {
		msg, err := Render(sampleEvent(typ))
		if err != nil {
			t.Fatalf("%s: %v", typ, err)
		}
		if msg.To != "ada@example.com" || msg.Subject == "" {
			t.Fatalf("%s: bad message %+v", typ, msg)
		}
		if !strings.Contains(msg.Body, "2025-08-10") || !strings.Contains(msg.Body, "10:00") {
			t.Fatalf("%s: body lacks slot: %q", typ, msg.Body)
		}
	}
}

func TestRender_Rejects(t *testing.T) {
	if _, err := Render(sampleEvent("booking_exploded")); err == nil {
		t.Fatalf("expected error for unknown type")
	}
	ev := sampleEvent(events.BookingCreated)
	ev.ClientEmail = ""
	if _, err := Render(ev); err == nil {
		t.Fatalf("expected error without recipient")
	}
}

type fakeMailer struct {
	sent []Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func TestHandler_SendsRenderedMessage(t *testing.T) {
	m := &fakeMailer{}
	h := NewHandler(m, zaptest.NewLogger(t))

	task, _, err := NewTask(sampleEvent(events.BookingConfirmed))
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	if task.Type() != TypeBookingNotify {
		t.Fatalf("type = %s", task.Type())
	}

	if err := h.ProcessTask(context.Background(), task); err != nil {
		t.Fatalf("process: %v", err)
	}
	if len(m.sent) != 1 || m.sent[0].Subject != "Reserva confirmada" {
		t.Fatalf("sent = %+v", m.sent)
	}
}

func TestHandler_BadPayloadSkipsRetry(t *testing.T) {
	h := NewHandler(&fakeMailer{}, zaptest.NewLogger(t))

	err := h.ProcessTask(context.Background(), asynq.NewTask(TypeBookingNotify, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("err = %v, want SkipRetry", err)
	}
}

func TestHandler_DeliveryFailureIsRetried(t *testing.T) {
	boom := errors.New("smtp down")
	h := NewHandler(&fakeMailer{err: boom}, zaptest.NewLogger(t))

	task, _, _ := NewTask(sampleEvent(events.BookingCreated))
	err := h.ProcessTask(context.Background(), task)
	if !errors.Is(err, boom) || errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("err = %v, want retryable delivery error", err)
	}
}

type fakeClient struct {
	tasks []*asynq.Task
	err   error
}

func (c *fakeClient) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.tasks = append(c.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func TestEnqueuer_Handle(t *testing.T) {
	c := &fakeClient{}
	ev := sampleEvent(events.BookingCancelled)

	if err := NewEnqueuer(c).Handle(context.Background(), ev); err != nil {
		t.Fatalf("handle: %v", err)
	}
	if len(c.tasks) != 1 {
		t.Fatalf("enqueued %d tasks", len(c.tasks))
	}

	var got events.Event
	if err := json.Unmarshal(c.tasks[0].Payload(), &got); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if got.BookingID != ev.BookingID || got.Type != events.BookingCancelled {
		t.Fatalf("payload = %+v", got)
	}
}

func TestEnqueuer_PropagatesError(t *testing.T) {
	c := &fakeClient{err: errors.New("redis down")}
	if err := NewEnqueuer(c).Handle(context.Background(), sampleEvent(events.BookingCreated)); err == nil {
		t.Fatalf("expected error")
	}
}

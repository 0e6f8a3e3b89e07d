package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap/zaptest"

	"github.com/BruksfildServices01/braider-booking/internal/models"
)

type recorder struct {
	mu  sync.Mutex
	got []Event
}

func (r *recorder) Handle(_ context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, ev)
	return nil
}

func (r *recorder) events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.got...)
}

func TestDispatcher_DeliversToAllSinksDespiteErrors(t *testing.T) {
	failing := SinkFunc(func(context.Context, Event) error {
		return errors.New("sink down")
	})
	rec := &recorder{}

	d := NewDispatcher(zaptest.NewLogger(t), 10, failing, rec)

	ev := Event{Type: BookingCreated, BookingID: uuid.New()}
	d.Publish(ev)

	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}

	got := rec.events()
	if len(got) != 1 || got[0].BookingID != ev.BookingID {
		t.Fatalf("got %+v, want the published event once", got)
	}
}

func TestDispatcher_DropsWhenQueueFull(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	rec := &recorder{}
	blocking := SinkFunc(func(ctx context.Context, ev Event) error {
		once.Do(func() { close(started) })
		<-release
		return rec.Handle(ctx, ev)
	})

	d := NewDispatcher(zaptest.NewLogger(t), 1, blocking)

	d.Publish(Event{Type: BookingCreated})
	<-started

	d.Publish(Event{Type: BookingConfirmed}) // fica na fila
	d.Publish(Event{Type: BookingCancelled}) // descartado

	close(release)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}

	if d.Dropped() != 1 {
		t.Fatalf("dropped = %d, want 1", d.Dropped())
	}
	got := rec.events()
	if len(got) != 2 || got[0].Type != BookingCreated || got[1].Type != BookingConfirmed {
		t.Fatalf("got %+v", got)
	}
}

func TestDispatcher_PublishAfterCloseIsDropped(t *testing.T) {
	d := NewDispatcher(zaptest.NewLogger(t), 1)
	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}

	d.Publish(Event{Type: BookingCreated})

	if d.Dropped() != 1 {
		t.Fatalf("dropped = %d, want 1", d.Dropped())
	}
}

func TestForStatus(t *testing.T) {
	cases := map[models.BookingStatus]Type{
		models.BookingConfirmed: BookingConfirmed,
		models.BookingCancelled: BookingCancelled,
		models.BookingRejected:  BookingRejected,
	}
	for status, want := range cases {
		got, ok := ForStatus(status)
		if !ok || got != want {
			t.Fatalf("ForStatus(%s) = %s, %v", status, got, ok)
		}
	}
	if _, ok := ForStatus(models.BookingPending); ok {
		t.Fatalf("pending has no transition event")
	}
}

func TestAuditRecord(t *testing.T) {
	b := &models.Booking{
		ID:          uuid.New(),
		ProviderID:  uuid.New(),
		ClientEmail: "ada@example.com",
		Date:        "2025-08-10",
		Time:        "10:00",
	}
	at := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	rec := AuditRecord(FromBooking(BookingCreated, b, at))

	if rec.Action != "booking_created" || rec.Entity != "booking" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec.EntityID == nil || *rec.EntityID != b.ID || rec.ProviderID != b.ProviderID {
		t.Fatalf("ids not carried: %+v", rec)
	}
	want := `{"client_email":"ada@example.com","date":"2025-08-10","time":"10:00"}`
	if rec.Metadata != want {
		t.Fatalf("metadata = %s, want %s", rec.Metadata, want)
	}
}

package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/braider-booking/internal/models"
)

type Type string

const (
	BookingCreated   Type = "booking_created"
	BookingConfirmed Type = "booking_confirmed"
	BookingCancelled Type = "booking_cancelled"
	BookingRejected  Type = "booking_rejected"
)

// Event é o que o gateway de notificação recebe.
type Event struct {
	Type        Type      `json:"type"`
	BookingID   uuid.UUID `json:"booking_id"`
	ProviderID  uuid.UUID `json:"provider_id"`
	ClientEmail string    `json:"client_email"`
	SlotDate    string    `json:"slot_date"`
	SlotTime    string    `json:"slot_time"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func FromBooking(t Type, b *models.Booking, at time.Time) Event {
	return Event{
		Type:        t,
		BookingID:   b.ID,
		ProviderID:  b.ProviderID,
		ClientEmail: b.ClientEmail,
		SlotDate:    b.Date,
		SlotTime:    b.Time,
		OccurredAt:  at,
	}
}

// ForStatus devolve o evento correspondente ao status final de uma transição.
func ForStatus(s models.BookingStatus) (Type, bool) {
	switch s {
	case models.BookingConfirmed:
		return BookingConfirmed, true
	case models.BookingCancelled:
		return BookingCancelled, true
	case models.BookingRejected:
		return BookingRejected, true
	}
	return "", false
}

// Publisher é usado pelos use cases. Publish nunca bloqueia nem falha.
type Publisher interface {
	Publish(ev Event)
}

// Sink consome eventos no worker do Dispatcher.
type Sink interface {
	Handle(ctx context.Context, ev Event) error
}

type SinkFunc func(ctx context.Context, ev Event) error

func (f SinkFunc) Handle(ctx context.Context, ev Event) error {
	return f(ctx, ev)
}

// Nop descarta tudo.
type Nop struct{}

func (Nop) Publish(Event) {}

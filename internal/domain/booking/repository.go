package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/braider-booking/internal/models"
)

// Store é a persistência de bookings. Toda escrita passa por WithinTx.
type Store interface {
	WithinTx(
		ctx context.Context,
		fn func(ctx context.Context, tx Tx) error,
	) error

	GetBooking(
		ctx context.Context,
		bookingID uuid.UUID,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
		providerID uuid.UUID,
		status models.BookingStatus,
	) ([]models.Booking, error)

	ListPendingCreatedBefore(
		ctx context.Context,
		cutoff time.Time,
	) ([]models.Booking, error)
}

// Tx é a unidade atômica: ou tudo é gravado, ou nada fica visível.
// MarkSlotBooked e MarkSlotFree só existem aqui.
type Tx interface {
	GetSlot(
		ctx context.Context,
		slotID uuid.UUID,
	) (*models.AvailabilitySlot, error)

	// MarkSlotBooked é um update condicional (is_booked = false).
	// Devolve SlotUnavailable quando nenhuma linha foi alterada.
	MarkSlotBooked(
		ctx context.Context,
		slotID uuid.UUID,
	) error

	MarkSlotFree(
		ctx context.Context,
		slotID uuid.UUID,
	) error

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		bookingID uuid.UUID,
	) (*models.Booking, error)

	// UpdateBookingStatus grava b.Status apenas se o status atual for from.
	// Devolve InvalidTransition quando o status mudou no meio do caminho.
	UpdateBookingStatus(
		ctx context.Context,
		b *models.Booking,
		from models.BookingStatus,
	) error
}

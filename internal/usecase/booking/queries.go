package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/braider-booking/internal/domain/booking"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

type GetBooking struct {
	store domain.Store
}

func NewGetBooking(store domain.Store) *GetBooking {
	return &GetBooking{store: store}
}

// Execute só devolve bookings do próprio provider.
func (uc *GetBooking) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	b, err := uc.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.ProviderID != providerID {
		return nil, httperr.New(httperr.CodeNotFound, "booking não encontrado")
	}
	return b, nil
}

type ListBookings struct {
	store domain.Store
}

func NewListBookings(store domain.Store) *ListBookings {
	return &ListBookings{store: store}
}

// Execute lista por data/hora; status vazio traz todos.
func (uc *ListBookings) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	status models.BookingStatus,
) ([]models.Booking, error) {

	if status != "" && !status.Valid() {
		return nil, httperr.Newf(httperr.CodeValidation, "status inválido: %q", status)
	}
	return uc.store.ListBookings(ctx, providerID, status)
}

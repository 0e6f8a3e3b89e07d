package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/braider-booking/internal/domain/booking"
	"github.com/BruksfildServices01/braider-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/braider-booking/internal/events"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
	"github.com/BruksfildServices01/braider-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ReserveInput struct {
	ProviderID uuid.UUID
	ServiceID  uuid.UUID
	SlotID     uuid.UUID

	Client          domain.ClientInfo
	AppointmentType models.AppointmentType
}

// ======================================================
// USE CASE
// ======================================================

type Reserve struct {
	store   domain.Store
	catalog catalog.Repository
	events  events.Publisher
	cache   CacheInvalidator
	clock   timezone.Clock
}

func NewReserve(
	store domain.Store,
	catalogRepo catalog.Repository,
	publisher events.Publisher,
	cache CacheInvalidator,
	clock timezone.Clock,
) *Reserve {
	if cache == nil {
		cache = NoCache{}
	}
	return &Reserve{
		store:   store,
		catalog: catalogRepo,
		events:  publisher,
		cache:   cache,
		clock:   clock,
	}
}

// Execute converte um slot livre num booking pending.
// Slot e booking são gravados juntos ou nada é gravado.
func (uc *Reserve) Execute(
	ctx context.Context,
	in ReserveInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Validação
	// --------------------------------------------------
	client := in.Client.Normalize()
	if err := domain.ValidateClient(client, in.AppointmentType); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Provider e serviço
	// --------------------------------------------------
	provider, err := uc.catalog.GetProvider(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}
	if err := catalog.RequireVisible(provider); err != nil {
		return nil, err
	}

	svc, err := uc.catalog.GetService(ctx, provider.ID, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Available {
		return nil, httperr.New(httperr.CodeValidation, "serviço indisponível")
	}

	// --------------------------------------------------
	// 3️⃣ Slot + booking na mesma transação
	// --------------------------------------------------
	now := uc.clock()
	b := &models.Booking{
		ProviderID:      provider.ID,
		ServiceID:       svc.ID,
		SlotID:          in.SlotID,
		ClientName:      client.Name,
		ClientEmail:     client.Email,
		ClientPhone:     client.Phone,
		ClientAddress:   client.Address,
		AppointmentType: in.AppointmentType,
		Status:          domain.InitialStatus(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	err = uc.store.WithinTx(ctx, func(ctx context.Context, tx domain.Tx) error {
		slot, err := tx.GetSlot(ctx, in.SlotID)
		if err != nil {
			return err
		}
		if slot.ProviderID != provider.ID {
			return httperr.New(httperr.CodeNotFound, "slot não encontrado")
		}

		if err := tx.MarkSlotBooked(ctx, slot.ID); err != nil {
			return err
		}

		b.Date = slot.Date
		b.Time = slot.StartTime
		return tx.CreateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Pós-commit
	// --------------------------------------------------
	uc.cache.Invalidate(ctx, provider.ID)
	uc.events.Publish(events.FromBooking(events.BookingCreated, b, now))

	return b, nil
}

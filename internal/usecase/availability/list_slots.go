package availability

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/braider-booking/internal/domain/availability"
	"github.com/BruksfildServices01/braider-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/braider-booking/internal/models"
	"github.com/BruksfildServices01/braider-booking/internal/timezone"
)

// RangeInput aceita month=YYYY-MM ou from/to. Vazio = mês corrente.
type RangeInput struct {
	Month string
	From  string
	To    string
}

// ------------------------------------------------------
// Listagem pública (apenas slots livres)
// ------------------------------------------------------

type ListFreeSlots struct {
	slots     domain.Repository
	providers catalog.Repository
	clock     timezone.Clock
}

func NewListFreeSlots(
	slots domain.Repository,
	providers catalog.Repository,
	clock timezone.Clock,
) *ListFreeSlots {
	return &ListFreeSlots{slots: slots, providers: providers, clock: clock}
}

func (uc *ListFreeSlots) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	in RangeInput,
) ([]models.AvailabilitySlot, error) {

	rng, err := domain.ResolveRange(in.Month, in.From, in.To, uc.clock())
	if err != nil {
		return nil, err
	}

	p, err := uc.providers.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if err := catalog.RequireVisible(p); err != nil {
		return nil, err
	}

	return uc.slots.ListSlots(ctx, providerID, rng, true)
}

// ------------------------------------------------------
// Agenda do provider (inclui reservados)
// ------------------------------------------------------

type ListSlots struct {
	slots domain.Repository
	clock timezone.Clock
}

func NewListSlots(slots domain.Repository, clock timezone.Clock) *ListSlots {
	return &ListSlots{slots: slots, clock: clock}
}

func (uc *ListSlots) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	in RangeInput,
) ([]models.AvailabilitySlot, error) {

	rng, err := domain.ResolveRange(in.Month, in.From, in.To, uc.clock())
	if err != nil {
		return nil, err
	}

	return uc.slots.ListSlots(ctx, providerID, rng, false)
}

package availability

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/braider-booking/internal/domain/availability"
)

type DeleteSlot struct {
	repo domain.Repository
}

func NewDeleteSlot(repo domain.Repository) *DeleteSlot {
	return &DeleteSlot{repo: repo}
}

// Execute remove um slot livre. Slots reservados devolvem SlotBooked.
func (uc *DeleteSlot) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	slotID uuid.UUID,
) error {
	return uc.repo.DeleteFreeSlot(ctx, providerID, slotID)
}

package availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/braider-booking/internal/models"
)

type Repository interface {
	// CreateSlot insere o slot se não houver sobreposição com outro slot
	// do mesmo provider no mesmo dia (verificação e insert atômicos).
	CreateSlot(
		ctx context.Context,
		slot *models.AvailabilitySlot,
	) error

	GetSlot(
		ctx context.Context,
		slotID uuid.UUID,
	) (*models.AvailabilitySlot, error)

	ListSlots(
		ctx context.Context,
		providerID uuid.UUID,
		r DateRange,
		freeOnly bool,
	) ([]models.AvailabilitySlot, error)

	// DeleteFreeSlot remove apenas slots livres do provider.
	DeleteFreeSlot(
		ctx context.Context,
		providerID uuid.UUID,
		slotID uuid.UUID,
	) error
}

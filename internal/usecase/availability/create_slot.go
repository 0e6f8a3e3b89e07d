package availability

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/braider-booking/internal/domain/availability"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateSlotInput struct {
	ProviderID uuid.UUID
	Date       string
	StartTime  string
	EndTime    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateSlot struct {
	repo domain.Repository
}

func NewCreateSlot(repo domain.Repository) *CreateSlot {
	return &CreateSlot{repo: repo}
}

func (uc *CreateSlot) Execute(
	ctx context.Context,
	in CreateSlotInput,
) (*models.AvailabilitySlot, error) {

	date, start, end, err := domain.NormalizeSlot(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, err
	}

	slot := &models.AvailabilitySlot{
		ProviderID: in.ProviderID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		IsBooked:   false,
	}

	if err := uc.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	return slot, nil
}

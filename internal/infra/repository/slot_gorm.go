package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/braider-booking/internal/domain/availability"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

// lockProviderCalendar serializa escritas de agenda do mesmo provider.
func lockProviderCalendar(tx *gorm.DB, providerID uuid.UUID) error {
	return tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", providerID.String()).Error
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *SlotGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.AvailabilitySlot,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockProviderCalendar(tx, slot.ProviderID); err != nil {
			return httperr.Storage(err)
		}

		var provider models.Provider
		if err := tx.Select("id").First(&provider, "id = ?", slot.ProviderID).Error; err != nil {
			return mapNotFound(err, "provider")
		}

		var count int64
		if err := tx.
			Model(&models.AvailabilitySlot{}).
			Where(
				"provider_id = ? AND date = ? AND start_time < ? AND end_time > ?",
				slot.ProviderID,
				slot.Date,
				slot.EndTime,
				slot.StartTime,
			).
			Count(&count).Error; err != nil {
			return httperr.Storage(err)
		}

		if count > 0 {
			return httperr.New(httperr.CodeOverlap, "já existe um slot nesse horário")
		}

		if err := tx.Create(slot).Error; err != nil {
			if IsExclusionConflict(err) {
				return httperr.New(httperr.CodeOverlap, "já existe um slot nesse horário")
			}
			return httperr.Storage(err)
		}
		return nil
	})
}

// --------------------------------------------------
// Read
// --------------------------------------------------

func (r *SlotGormRepository) GetSlot(
	ctx context.Context,
	slotID uuid.UUID,
) (*models.AvailabilitySlot, error) {

	var slot models.AvailabilitySlot
	if err := r.db.WithContext(ctx).First(&slot, "id = ?", slotID).Error; err != nil {
		return nil, mapNotFound(err, "slot")
	}
	return &slot, nil
}

func (r *SlotGormRepository) ListSlots(
	ctx context.Context,
	providerID uuid.UUID,
	rng availability.DateRange,
	freeOnly bool,
) ([]models.AvailabilitySlot, error) {

	q := r.db.WithContext(ctx).
		Where("provider_id = ? AND date >= ? AND date <= ?", providerID, rng.From, rng.To)

	if freeOnly {
		q = q.Where("is_booked = ?", false)
	}

	slots := []models.AvailabilitySlot{}
	if err := q.
		Order("date ASC").
		Order("start_time ASC").
		Order("id ASC").
		Find(&slots).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return slots, nil
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func (r *SlotGormRepository) DeleteFreeSlot(
	ctx context.Context,
	providerID uuid.UUID,
	slotID uuid.UUID,
) error {

	res := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ? AND is_booked = ?", slotID, providerID, false).
		Delete(&models.AvailabilitySlot{})
	if res.Error != nil {
		return httperr.Storage(res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}

	var slot models.AvailabilitySlot
	err := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", slotID, providerID).
		First(&slot).Error
	if err != nil {
		return mapNotFound(err, "slot")
	}
	return httperr.New(httperr.CodeSlotBooked, "slot reservado não pode ser removido")
}

// Compile-time check
var _ availability.Repository = (*SlotGormRepository)(nil)

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/braider-booking/internal/domain/booking"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

type bookingTx struct {
	tx *gorm.DB
}

// --------------------------------------------------
// Transação
// --------------------------------------------------

func (r *BookingGormRepository) WithinTx(
	ctx context.Context,
	fn func(ctx context.Context, tx booking.Tx) error,
) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, bookingTx{tx: tx})
	})
	return httperr.Storage(err)
}

func (t bookingTx) GetSlot(
	ctx context.Context,
	slotID uuid.UUID,
) (*models.AvailabilitySlot, error) {

	var slot models.AvailabilitySlot
	if err := t.tx.First(&slot, "id = ?", slotID).Error; err != nil {
		return nil, mapNotFound(err, "slot")
	}
	return &slot, nil
}

func (t bookingTx) MarkSlotBooked(
	ctx context.Context,
	slotID uuid.UUID,
) error {

	res := t.tx.
		Model(&models.AvailabilitySlot{}).
		Where("id = ? AND is_booked = ?", slotID, false).
		Updates(map[string]any{
			"is_booked":  true,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return httperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.New(httperr.CodeSlotUnavailable, "slot já reservado")
	}
	return nil
}

func (t bookingTx) MarkSlotFree(
	ctx context.Context,
	slotID uuid.UUID,
) error {

	res := t.tx.
		Model(&models.AvailabilitySlot{}).
		Where("id = ?", slotID).
		Updates(map[string]any{
			"is_booked":  false,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return httperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.New(httperr.CodeNotFound, "slot não encontrado")
	}
	return nil
}

func (t bookingTx) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	if err := t.tx.Create(b).Error; err != nil {
		if IsUniqueViolation(err, activeSlotIndex) {
			return httperr.New(httperr.CodeSlotUnavailable, "slot já possui booking ativo")
		}
		return httperr.Storage(err)
	}
	return nil
}

func (t bookingTx) GetBooking(
	ctx context.Context,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := t.tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, "id = ?", bookingID).Error; err != nil {
		return nil, mapNotFound(err, "booking")
	}
	return &b, nil
}

func (t bookingTx) UpdateBookingStatus(
	ctx context.Context,
	b *models.Booking,
	from models.BookingStatus,
) error {

	fields := map[string]any{
		"status":     b.Status,
		"updated_at": b.UpdatedAt,
	}
	if b.ConfirmedAt != nil {
		fields["confirmed_at"] = *b.ConfirmedAt
	}
	if b.CancelledAt != nil {
		fields["cancelled_at"] = *b.CancelledAt
	}
	if b.RejectedAt != nil {
		fields["rejected_at"] = *b.RejectedAt
	}

	res := t.tx.
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", b.ID, from).
		Updates(fields)
	if res.Error != nil {
		return httperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.Newf(httperr.CodeInvalidTransition, "booking não está mais %s", from)
	}
	return nil
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", bookingID).Error; err != nil {
		return nil, mapNotFound(err, "booking")
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	providerID uuid.UUID,
	status models.BookingStatus,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).Where("provider_id = ?", providerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	out := []models.Booking{}
	if err := q.
		Order("date ASC").
		Order("time ASC").
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return out, nil
}

func (r *BookingGormRepository) ListPendingCreatedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]models.Booking, error) {

	out := []models.Booking{}
	if err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", models.BookingPending, cutoff).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return out, nil
}

// Compile-time check
var _ booking.Store = (*BookingGormRepository)(nil)

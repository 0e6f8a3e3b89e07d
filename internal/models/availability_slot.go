package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Intervalo reservável declarado pelo provider.
// Date no formato 2006-01-02; StartTime/EndTime no formato 15:04.
type AvailabilitySlot struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;index:idx_slots_provider_date,priority:1" json:"provider_id"`

	Date      string `gorm:"size:10;not null;index:idx_slots_provider_date,priority:2" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	IsBooked bool `gorm:"not null;default:false" json:"is_booked"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *AvailabilitySlot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingRejected  BookingStatus = "rejected"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingRejected:
		return true
	}
	return false
}

// Active indica se o booking ainda segura o slot.
func (s BookingStatus) Active() bool {
	return s == BookingPending || s == BookingConfirmed
}

type AppointmentType string

const (
	AtProvider AppointmentType = "at-provider"
	AtHome     AppointmentType = "at-home"
)

func (t AppointmentType) Valid() bool {
	return t == AtProvider || t == AtHome
}

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ProviderID uuid.UUID `gorm:"type:uuid;not null;index:idx_bookings_provider_status,priority:1" json:"provider_id"`
	ServiceID  uuid.UUID `gorm:"type:uuid;not null" json:"service_id"`
	SlotID     uuid.UUID `gorm:"type:uuid;not null;index" json:"slot_id"`

	ClientName    string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail   string `gorm:"size:100;not null" json:"client_email"`
	ClientPhone   string `gorm:"size:20;not null" json:"client_phone"`
	ClientAddress string `gorm:"size:255" json:"client_address,omitempty"`

	AppointmentType AppointmentType `gorm:"size:20;not null" json:"appointment_type"`
	Status          BookingStatus   `gorm:"size:20;not null;default:'pending';index:idx_bookings_provider_status,priority:2" json:"status"`

	// Copiados do slot na criação.
	Date string `gorm:"size:10;not null" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	RejectedAt  *time.Time `json:"rejected_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

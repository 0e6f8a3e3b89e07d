package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProviderStatus string

const (
	ProviderPending  ProviderStatus = "pending"
	ProviderApproved ProviderStatus = "approved"
	ProviderRejected ProviderStatus = "rejected"
)

func (s ProviderStatus) Valid() bool {
	switch s {
	case ProviderPending, ProviderApproved, ProviderRejected:
		return true
	}
	return false
}

// Provider é o profissional que oferece os serviços (braider).
type Provider struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Bio      string `gorm:"size:1000" json:"bio"`
	Location string `gorm:"size:255" json:"location"`

	Status ProviderStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	Active bool           `gorm:"not null;default:true" json:"active"`

	Services []Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Provider) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Visible indica se o provider aparece para clientes.
func (p *Provider) Visible() bool {
	return p.Active && p.Status == ProviderApproved
}

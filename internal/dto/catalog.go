package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/braider-booking/internal/models"
)

type ServiceDTO struct {
	ServiceID   uuid.UUID `json:"service_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	DurationMin int       `json:"duration_min"`
	Available   bool      `json:"available"`
}

type ProviderDTO struct {
	ProviderID uuid.UUID             `json:"provider_id"`
	Name       string                `json:"name"`
	Bio        string                `json:"bio,omitempty"`
	Location   string                `json:"location,omitempty"`
	Status     models.ProviderStatus `json:"status"`
	Active     bool                  `json:"active"`
}

func Service(s *models.Service) ServiceDTO {
	return ServiceDTO{
		ServiceID:   s.ID,
		Name:        s.Name,
		Price:       s.Price,
		DurationMin: s.DurationMin,
		Available:   s.Available,
	}
}

func Services(ss []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(ss))
	for i := range ss {
		out = append(out, Service(&ss[i]))
	}
	return out
}

func Provider(p *models.Provider) ProviderDTO {
	return ProviderDTO{
		ProviderID: p.ID,
		Name:       p.Name,
		Bio:        p.Bio,
		Location:   p.Location,
		Status:     p.Status,
		Active:     p.Active,
	}
}

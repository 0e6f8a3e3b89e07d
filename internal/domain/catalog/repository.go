package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/braider-booking/internal/models"
)

type Repository interface {
	// -------- Provider --------
	CreateProvider(
		ctx context.Context,
		p *models.Provider,
	) error

	GetProvider(
		ctx context.Context,
		providerID uuid.UUID,
	) (*models.Provider, error)

	UpdateProvider(
		ctx context.Context,
		p *models.Provider,
	) error

	// -------- Service --------
	CreateService(
		ctx context.Context,
		s *models.Service,
	) error

	GetService(
		ctx context.Context,
		providerID uuid.UUID,
		serviceID uuid.UUID,
	) (*models.Service, error)

	ListServices(
		ctx context.Context,
		providerID uuid.UUID,
		onlyAvailable bool,
	) ([]models.Service, error)

	UpdateService(
		ctx context.Context,
		s *models.Service,
	) error
}

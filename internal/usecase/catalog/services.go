package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/braider-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ServiceInput struct {
	Name        string
	Price       float64
	DurationMin int
}

// UpdateServiceInput usa ponteiros para PATCH parcial.
type UpdateServiceInput struct {
	Name        *string
	Price       *float64
	DurationMin *int
	Available   *bool
}

// ======================================================
// CREATE
// ======================================================

type CreateService struct {
	repo domain.Repository
}

func NewCreateService(repo domain.Repository) *CreateService {
	return &CreateService{repo: repo}
}

func (uc *CreateService) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	in ServiceInput,
) (*models.Service, error) {

	name := strings.TrimSpace(in.Name)
	if err := domain.ValidateService(name, in.Price, in.DurationMin); err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetProvider(ctx, providerID); err != nil {
		return nil, err
	}

	s := &models.Service{
		ProviderID:  providerID,
		Name:        name,
		Price:       in.Price,
		DurationMin: in.DurationMin,
		Available:   true,
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ======================================================
// UPDATE / REMOVE
// ======================================================

type UpdateService struct {
	repo domain.Repository
}

func NewUpdateService(repo domain.Repository) *UpdateService {
	return &UpdateService{repo: repo}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	serviceID uuid.UUID,
	in UpdateServiceInput,
) (*models.Service, error) {

	s, err := uc.repo.GetService(ctx, providerID, serviceID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		s.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
	if in.DurationMin != nil {
		s.DurationMin = *in.DurationMin
	}
	if in.Available != nil {
		s.Available = *in.Available
	}

	if err := domain.ValidateService(s.Name, s.Price, s.DurationMin); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// RemoveService tira o serviço do catálogo sem apagar a linha;
// bookings antigos continuam apontando para ele.
type RemoveService struct {
	repo domain.Repository
}

func NewRemoveService(repo domain.Repository) *RemoveService {
	return &RemoveService{repo: repo}
}

func (uc *RemoveService) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	serviceID uuid.UUID,
) error {

	s, err := uc.repo.GetService(ctx, providerID, serviceID)
	if err != nil {
		return err
	}

	s.Available = false
	return uc.repo.UpdateService(ctx, s)
}

// ======================================================
// READ
// ======================================================

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	serviceID uuid.UUID,
) (*models.Service, error) {
	return uc.repo.GetService(ctx, providerID, serviceID)
}

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

// Execute com public=true exige provider visível e devolve só serviços disponíveis.
func (uc *ListServices) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	public bool,
) ([]models.Service, error) {

	if public {
		p, err := uc.repo.GetProvider(ctx, providerID)
		if err != nil {
			return nil, err
		}
		if err := domain.RequireVisible(p); err != nil {
			return nil, err
		}
	}

	return uc.repo.ListServices(ctx, providerID, public)
}

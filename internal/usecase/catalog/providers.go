package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/braider-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

// ======================================================
// REGISTER
// ======================================================

type RegisterProviderInput struct {
	Name     string
	Bio      string
	Location string
}

type RegisterProvider struct {
	repo domain.Repository
}

func NewRegisterProvider(repo domain.Repository) *RegisterProvider {
	return &RegisterProvider{repo: repo}
}

// Execute cadastra o provider como pending, aguardando revisão.
func (uc *RegisterProvider) Execute(
	ctx context.Context,
	in RegisterProviderInput,
) (*models.Provider, error) {

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.New(httperr.CodeValidation, "nome obrigatório")
	}

	p := &models.Provider{
		Name:     name,
		Bio:      strings.TrimSpace(in.Bio),
		Location: strings.TrimSpace(in.Location),
		Status:   models.ProviderPending,
		Active:   true,
	}

	if err := uc.repo.CreateProvider(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ======================================================
// REVIEW / DEACTIVATE
// ======================================================

type ReviewProvider struct {
	repo domain.Repository
}

func NewReviewProvider(repo domain.Repository) *ReviewProvider {
	return &ReviewProvider{repo: repo}
}

func (uc *ReviewProvider) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	decision domain.Decision,
) (*models.Provider, error) {

	p, err := uc.repo.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if err := domain.Review(p, decision); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateProvider(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

type DeactivateProvider struct {
	repo domain.Repository
}

func NewDeactivateProvider(repo domain.Repository) *DeactivateProvider {
	return &DeactivateProvider{repo: repo}
}

func (uc *DeactivateProvider) Execute(
	ctx context.Context,
	providerID uuid.UUID,
) (*models.Provider, error) {

	p, err := uc.repo.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	p.Active = false
	if err := uc.repo.UpdateProvider(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ======================================================
// READ
// ======================================================

type GetProvider struct {
	repo domain.Repository
}

func NewGetProvider(repo domain.Repository) *GetProvider {
	return &GetProvider{repo: repo}
}

// Execute devolve apenas providers visíveis para clientes.
func (uc *GetProvider) Execute(
	ctx context.Context,
	providerID uuid.UUID,
) (*models.Provider, error) {

	p, err := uc.repo.GetProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if err := domain.RequireVisible(p); err != nil {
		return nil, err
	}
	return p, nil
}

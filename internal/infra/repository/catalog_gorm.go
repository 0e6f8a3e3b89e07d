package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/braider-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/braider-booking/internal/httperr"
	"github.com/BruksfildServices01/braider-booking/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Provider
// --------------------------------------------------

func (r *CatalogGormRepository) CreateProvider(
	ctx context.Context,
	p *models.Provider,
) error {
	return httperr.Storage(r.db.WithContext(ctx).Create(p).Error)
}

func (r *CatalogGormRepository) GetProvider(
	ctx context.Context,
	providerID uuid.UUID,
) (*models.Provider, error) {

	var p models.Provider
	if err := r.db.WithContext(ctx).First(&p, "id = ?", providerID).Error; err != nil {
		return nil, mapNotFound(err, "provider")
	}
	return &p, nil
}

func (r *CatalogGormRepository) UpdateProvider(
	ctx context.Context,
	p *models.Provider,
) error {
	return httperr.Storage(r.db.WithContext(ctx).Save(p).Error)
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) CreateService(
	ctx context.Context,
	s *models.Service,
) error {
	return httperr.Storage(r.db.WithContext(ctx).Create(s).Error)
}

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	providerID uuid.UUID,
	serviceID uuid.UUID,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND provider_id = ?", serviceID, providerID).
		First(&s).Error; err != nil {
		return nil, mapNotFound(err, "serviço")
	}
	return &s, nil
}

func (r *CatalogGormRepository) ListServices(
	ctx context.Context,
	providerID uuid.UUID,
	onlyAvailable bool,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Where("provider_id = ?", providerID)
	if onlyAvailable {
		q = q.Where("available = ?", true)
	}

	out := []models.Service{}
	if err := q.Order("name ASC").Order("id ASC").Find(&out).Error; err != nil {
		return nil, httperr.Storage(err)
	}
	return out, nil
}

func (r *CatalogGormRepository) UpdateService(
	ctx context.Context,
	s *models.Service,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ? AND provider_id = ?", s.ID, s.ProviderID).
		Updates(map[string]any{
			"name":         s.Name,
			"price":        s.Price,
			"duration_min": s.DurationMin,
			"available":    s.Available,
		})
	if res.Error != nil {
		return httperr.Storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.New(httperr.CodeNotFound, "serviço não encontrado")
	}
	return nil
}

// Compile-time check
var _ catalog.Repository = (*CatalogGormRepository)(nil)

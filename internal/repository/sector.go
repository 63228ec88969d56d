package repository

import (
	"context"
	"errors"

	"doorlist/internal/models"

	"gorm.io/gorm"
)

// SectorRepository defines persistence operations for sectors.
type SectorRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Sector, error)
	Create(ctx context.Context, sector *models.Sector) error
	Update(ctx context.Context, sector *models.Sector) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Sector, error)
	InUse(ctx context.Context, id uint) (bool, error)
}

type sectorRepository struct {
	db *gorm.DB
}

// NewSectorRepository returns a new SectorRepository implementation.
func NewSectorRepository(db *gorm.DB) SectorRepository {
	return &sectorRepository{db: db}
}

func (r *sectorRepository) GetByID(ctx context.Context, id uint) (*models.Sector, error) {
	var sector models.Sector
	if err := readDB(r.db).WithContext(ctx).First(&sector, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Sector", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &sector, nil
}

func (r *sectorRepository) Create(ctx context.Context, sector *models.Sector) error {
	if err := r.db.WithContext(ctx).Create(sector).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Sector name already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *sectorRepository) Update(ctx context.Context, sector *models.Sector) error {
	if err := r.db.WithContext(ctx).Save(sector).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Sector name already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *sectorRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Sector{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *sectorRepository) List(ctx context.Context) ([]models.Sector, error) {
	var sectors []models.Sector
	if err := readDB(r.db).WithContext(ctx).Order("name ASC").Find(&sectors).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return sectors, nil
}

// InUse reports whether any event list still references the sector.
func (r *sectorRepository) InUse(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.EventList{}).
		Where("sector_id = ?", id).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

package repository

import (
	"context"
	"errors"

	"doorlist/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteSettingRepository defines persistence operations for site settings.
type SiteSettingRepository interface {
	Get(ctx context.Context, key string) (*models.SiteSetting, error)
	GetAll(ctx context.Context) ([]models.SiteSetting, error)
	Upsert(ctx context.Context, setting *models.SiteSetting) error
}

type siteSettingRepository struct {
	db *gorm.DB
}

// NewSiteSettingRepository returns a new SiteSettingRepository implementation.
func NewSiteSettingRepository(db *gorm.DB) SiteSettingRepository {
	return &siteSettingRepository{db: db}
}

func (r *siteSettingRepository) Get(ctx context.Context, key string) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	if err := readDB(r.db).WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &setting, nil
}

func (r *siteSettingRepository) GetAll(ctx context.Context) ([]models.SiteSetting, error) {
	var settings []models.SiteSetting
	if err := readDB(r.db).WithContext(ctx).Order("key ASC").Find(&settings).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return settings, nil
}

// Upsert inserts the setting or updates the value of an existing key.
func (r *siteSettingRepository) Upsert(ctx context.Context, setting *models.SiteSetting) error {
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_by", "updated_at"}),
	}).Create(setting).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

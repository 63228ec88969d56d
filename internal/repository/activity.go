package repository

import (
	"context"

	"doorlist/internal/models"

	"gorm.io/gorm"
)

// ActivityLogRepository records and reads audit entries. The table is
// append-only: there is deliberately no update or delete.
type ActivityLogRepository interface {
	Append(ctx context.Context, entry *models.ActivityLog) error
	List(ctx context.Context, limit, offset int) ([]models.ActivityLog, error)
	ListByEvent(ctx context.Context, eventID uint, limit, offset int) ([]models.ActivityLog, error)
	Count(ctx context.Context) (int64, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository returns a new ActivityLogRepository implementation.
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

func (r *activityLogRepository) Append(ctx context.Context, entry *models.ActivityLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *activityLogRepository) List(ctx context.Context, limit, offset int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var entries []models.ActivityLog
	if err := readDB(r.db).WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *activityLogRepository) ListByEvent(ctx context.Context, eventID uint, limit, offset int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var entries []models.ActivityLog
	if err := readDB(r.db).WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return entries, nil
}

func (r *activityLogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).Model(&models.ActivityLog{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}

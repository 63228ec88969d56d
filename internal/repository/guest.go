package repository

import (
	"context"
	"errors"

	"doorlist/internal/models"

	"gorm.io/gorm"
)

// GuestRepository defines persistence operations for guests.
type GuestRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Guest, error)
	CountActiveByList(ctx context.Context, listID uint) (int, error)
	SubmitBatch(ctx context.Context, guests []models.Guest, log *models.ActivityLog) error
	UpdateCheckin(ctx context.Context, guest *models.Guest, log *models.ActivityLog) error
	UpdateStatus(ctx context.Context, guest *models.Guest, log *models.ActivityLog) error
	Delete(ctx context.Context, id uint, log *models.ActivityLog) error
	ListByEvent(ctx context.Context, eventID uint) ([]models.Guest, error)
	ListByList(ctx context.Context, listID uint) ([]models.Guest, error)
	List(ctx context.Context) ([]models.Guest, error)
}

type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository returns a new GuestRepository implementation.
func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &guestRepository{db: db}
}

func guestPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Event").
		Preload("EventList").
		Preload("EventList.ListType").
		Preload("EventList.Sector")
}

func (r *guestRepository) GetByID(ctx context.Context, id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := guestPreloads(readDB(r.db).WithContext(ctx)).First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Guest", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &guest, nil
}

// CountActiveByList counts non-deleted guests on the list. Reads the primary
// so the capacity guard sees its own prior writes.
func (r *guestRepository) CountActiveByList(ctx context.Context, listID uint) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where("event_list_id = ?", listID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return int(count), nil
}

// SubmitBatch inserts the guests and the audit row in one transaction.
// Either everything lands or nothing does.
func (r *guestRepository) SubmitBatch(ctx context.Context, guests []models.Guest, log *models.ActivityLog) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&guests).Error; err != nil {
			return err
		}
		if log != nil {
			if err := tx.Create(log).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateCheckin persists the check-in fields and the audit row atomically.
func (r *guestRepository) UpdateCheckin(ctx context.Context, guest *models.Guest, log *models.ActivityLog) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(guest).
			Select("checked_in", "checked_in_at", "checked_in_by").
			Updates(map[string]interface{}{
				"checked_in":    guest.CheckedIn,
				"checked_in_at": guest.CheckedInAt,
				"checked_in_by": guest.CheckedInBy,
			}).Error; err != nil {
			return err
		}
		if log != nil {
			if err := tx.Create(log).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// UpdateStatus persists the approval status and the audit row atomically.
func (r *guestRepository) UpdateStatus(ctx context.Context, guest *models.Guest, log *models.ActivityLog) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(guest).Update("status", guest.Status).Error; err != nil {
			return err
		}
		if log != nil {
			if err := tx.Create(log).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *guestRepository) Delete(ctx context.Context, id uint, log *models.ActivityLog) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Guest{}, id).Error; err != nil {
			return err
		}
		if log != nil {
			if err := tx.Create(log).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *guestRepository) ListByEvent(ctx context.Context, eventID uint) ([]models.Guest, error) {
	var guests []models.Guest
	if err := guestPreloads(readDB(r.db).WithContext(ctx)).
		Where("event_id = ?", eventID).
		Order("name ASC").
		Find(&guests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return guests, nil
}

func (r *guestRepository) ListByList(ctx context.Context, listID uint) ([]models.Guest, error) {
	var guests []models.Guest
	if err := guestPreloads(readDB(r.db).WithContext(ctx)).
		Where("event_list_id = ?", listID).
		Order("name ASC").
		Find(&guests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return guests, nil
}

func (r *guestRepository) List(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	if err := guestPreloads(readDB(r.db).WithContext(ctx)).
		Order("name ASC").
		Find(&guests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return guests, nil
}

package repository

import (
	"context"
	"errors"

	"doorlist/internal/cache"
	"doorlist/internal/models"

	"gorm.io/gorm"
)

// EventListRepository defines persistence operations for event lists.
type EventListRepository interface {
	GetByID(ctx context.Context, id uint) (*models.EventList, error)
	Create(ctx context.Context, list *models.EventList) error
	Update(ctx context.Context, list *models.EventList) error
	Delete(ctx context.Context, id uint) error
	ListByEvent(ctx context.Context, eventID uint) ([]models.EventList, error)
	List(ctx context.Context) ([]models.EventList, error)
}

type eventListRepository struct {
	db *gorm.DB
}

// NewEventListRepository returns a new EventListRepository implementation.
func NewEventListRepository(db *gorm.DB) EventListRepository {
	return &eventListRepository{db: db}
}

// withGuestCount annotates each row with the number of non-deleted guests.
func withGuestCount(db *gorm.DB) *gorm.DB {
	return db.
		Select("event_lists.*, (?) AS guest_count",
			db.Session(&gorm.Session{NewDB: true}).
				Model(&models.Guest{}).
				Select("COUNT(*)").
				Where("guests.event_list_id = event_lists.id AND guests.deleted_at IS NULL"),
		)
}

func (r *eventListRepository) GetByID(ctx context.Context, id uint) (*models.EventList, error) {
	var list models.EventList
	if err := withGuestCount(readDB(r.db).WithContext(ctx)).
		Preload("ListType").
		Preload("Sector").
		First(&list, "event_lists.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Event list", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &list, nil
}

func (r *eventListRepository) Create(ctx context.Context, list *models.EventList) error {
	if err := r.db.WithContext(ctx).Create(list).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateEvent(ctx, list.EventID)
	return nil
}

func (r *eventListRepository) Update(ctx context.Context, list *models.EventList) error {
	if err := r.db.WithContext(ctx).Save(list).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateEvent(ctx, list.EventID)
	return nil
}

func (r *eventListRepository) Delete(ctx context.Context, id uint) error {
	list, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Delete(&models.EventList{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateEvent(ctx, list.EventID)
	return nil
}

func (r *eventListRepository) ListByEvent(ctx context.Context, eventID uint) ([]models.EventList, error) {
	var lists []models.EventList
	if err := withGuestCount(readDB(r.db).WithContext(ctx)).
		Preload("ListType").
		Preload("Sector").
		Where("event_lists.event_id = ?", eventID).
		Order("event_lists.name ASC").
		Find(&lists).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return lists, nil
}

func (r *eventListRepository) List(ctx context.Context) ([]models.EventList, error) {
	var lists []models.EventList
	if err := withGuestCount(readDB(r.db).WithContext(ctx)).
		Preload("Event").
		Preload("ListType").
		Preload("Sector").
		Order("event_lists.id ASC").
		Find(&lists).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return lists, nil
}

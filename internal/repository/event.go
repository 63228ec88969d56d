package repository

import (
	"context"
	"errors"

	"doorlist/internal/cache"
	"doorlist/internal/models"

	"gorm.io/gorm"
)

// EventRepository defines persistence operations for events.
type EventRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	GetByIDWithLists(ctx context.Context, id uint) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context) ([]models.Event, error)
	ListByStatus(ctx context.Context, status models.EventStatus) ([]models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository returns a new EventRepository implementation.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	key := cache.EventKey(id)

	err := cache.Aside(ctx, key, &event, cache.EventTTL, func() error {
		if err := readDB(r.db).WithContext(ctx).First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Event", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetByIDWithLists(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	if err := readDB(r.db).WithContext(ctx).
		Preload("Lists").
		Preload("Lists.ListType").
		Preload("Lists.Sector").
		First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Event", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &event, nil
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateEvent(ctx, event.ID)
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Event{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateEvent(ctx, id)
	return nil
}

// List returns all events ordered by date, soonest first.
func (r *eventRepository) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := readDB(r.db).WithContext(ctx).Order("date ASC, time ASC").Find(&events).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}

func (r *eventRepository) ListByStatus(ctx context.Context, status models.EventStatus) ([]models.Event, error) {
	var events []models.Event
	if err := readDB(r.db).WithContext(ctx).
		Where("status = ?", status).
		Order("date ASC, time ASC").
		Find(&events).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}

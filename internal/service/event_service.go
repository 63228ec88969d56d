package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"doorlist/internal/listing"
	"doorlist/internal/models"
	"doorlist/internal/repository"
)

var (
	dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeFormat = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

type EventService struct {
	eventRepo    repository.EventRepository
	activityRepo repository.ActivityLogRepository
}

func NewEventService(eventRepo repository.EventRepository, activityRepo repository.ActivityLogRepository) *EventService {
	return &EventService{eventRepo: eventRepo, activityRepo: activityRepo}
}

type EventInput struct {
	Name        string
	Description string
	Date        string
	Time        string
	Location    string
	Status      models.EventStatus
	Capacity    int
}

func validateEventInput(in EventInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return models.NewValidationError("Event name is required")
	}
	if !dateFormat.MatchString(in.Date) {
		return models.NewValidationError("Event date must be in YYYY-MM-DD format")
	}
	if in.Time != "" && !timeFormat.MatchString(in.Time) {
		return models.NewValidationError("Event time must be in HH:MM format")
	}
	if in.Status != "" && !models.ValidEventStatus(in.Status) {
		return models.NewValidationError("Event status must be one of: active, inactive, completed")
	}
	if in.Capacity < 0 {
		return models.NewValidationError("Event capacity must not be negative")
	}
	return nil
}

func (s *EventService) CreateEvent(ctx context.Context, in EventInput, actorID uint) (*models.Event, error) {
	if err := validateEventInput(in); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = models.EventStatusActive
	}

	event := &models.Event{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Status:      status,
		Capacity:    in.Capacity,
		CreatedBy:   actorID,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.logActivity(ctx, actorID, event.ID, models.ActionEventCreated, fmt.Sprintf("Created event %q", event.Name))
	return event, nil
}

func (s *EventService) UpdateEvent(ctx context.Context, id uint, in EventInput, actorID uint) (*models.Event, error) {
	if err := validateEventInput(in); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	event.Name = strings.TrimSpace(in.Name)
	event.Description = in.Description
	event.Date = in.Date
	event.Time = in.Time
	event.Location = in.Location
	if in.Status != "" {
		event.Status = in.Status
	}
	event.Capacity = in.Capacity

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	s.logActivity(ctx, actorID, event.ID, models.ActionEventUpdated, fmt.Sprintf("Updated event %q", event.Name))
	return event, nil
}

func (s *EventService) DeleteEvent(ctx context.Context, id, actorID uint) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logActivity(ctx, actorID, id, models.ActionEventDeleted, fmt.Sprintf("Deleted event %q", event.Name))
	return nil
}

func (s *EventService) GetEventByID(ctx context.Context, id uint) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *EventService) GetEventWithLists(ctx context.Context, id uint) (*models.Event, error) {
	return s.eventRepo.GetByIDWithLists(ctx, id)
}

// ListEvents applies the free-text search and status filter, then paginates.
func (s *EventService) ListEvents(ctx context.Context, query string, status models.EventStatus, page, pageSize int) ([]models.Event, listing.PageInfo, error) {
	if status != "" && !models.ValidEventStatus(status) {
		return nil, listing.PageInfo{}, models.NewValidationError("Event status must be one of: active, inactive, completed")
	}

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, listing.PageInfo{}, err
	}
	filtered := listing.FilterEvents(events, query, status)
	pageItems, info := listing.Paginate(filtered, page, pageSize)
	return pageItems, info, nil
}

func (s *EventService) logActivity(ctx context.Context, actorID, eventID uint, action, details string) {
	entry := &models.ActivityLog{
		UserID:  &actorID,
		EventID: &eventID,
		Action:  action,
		Details: details,
	}
	// Best effort: a failed audit write must not fail the mutation it records.
	_ = s.activityRepo.Append(ctx, entry)
}

package service

import (
	"context"
	"fmt"
	"strings"

	"doorlist/internal/models"
	"doorlist/internal/repository"
)

type EventListService struct {
	listRepo     repository.EventListRepository
	eventRepo    repository.EventRepository
	typeRepo     repository.ListTypeRepository
	sectorRepo   repository.SectorRepository
	activityRepo repository.ActivityLogRepository
}

func NewEventListService(
	listRepo repository.EventListRepository,
	eventRepo repository.EventRepository,
	typeRepo repository.ListTypeRepository,
	sectorRepo repository.SectorRepository,
	activityRepo repository.ActivityLogRepository,
) *EventListService {
	return &EventListService{
		listRepo:     listRepo,
		eventRepo:    eventRepo,
		typeRepo:     typeRepo,
		sectorRepo:   sectorRepo,
		activityRepo: activityRepo,
	}
}

type EventListInput struct {
	Name        string
	EventID     uint
	ListTypeID  uint
	SectorID    uint
	MaxCapacity int
}

func (s *EventListService) validateInput(ctx context.Context, in EventListInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return models.NewValidationError("List name is required")
	}
	if in.MaxCapacity < 0 {
		return models.NewValidationError("List capacity must not be negative")
	}
	// Referenced rows must exist; the repos return NOT_FOUND otherwise.
	if _, err := s.eventRepo.GetByID(ctx, in.EventID); err != nil {
		return err
	}
	lt, err := s.typeRepo.GetByID(ctx, in.ListTypeID)
	if err != nil {
		return err
	}
	if !lt.Active {
		return models.NewValidationError(fmt.Sprintf("List type %q is inactive", lt.Name))
	}
	if _, err := s.sectorRepo.GetByID(ctx, in.SectorID); err != nil {
		return err
	}
	return nil
}

func (s *EventListService) CreateList(ctx context.Context, in EventListInput, actorID uint) (*models.EventList, error) {
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}

	list := &models.EventList{
		Name:        strings.TrimSpace(in.Name),
		EventID:     in.EventID,
		ListTypeID:  in.ListTypeID,
		SectorID:    in.SectorID,
		MaxCapacity: in.MaxCapacity,
	}
	if err := s.listRepo.Create(ctx, list); err != nil {
		return nil, err
	}

	s.logActivity(ctx, actorID, in.EventID, models.ActionListCreated, fmt.Sprintf("Created list %q", list.Name))
	return s.listRepo.GetByID(ctx, list.ID)
}

func (s *EventListService) UpdateList(ctx context.Context, id uint, in EventListInput, actorID uint) (*models.EventList, error) {
	list, err := s.listRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.EventID == 0 {
		in.EventID = list.EventID
	}
	if err := s.validateInput(ctx, in); err != nil {
		return nil, err
	}

	// Shrinking capacity below the current occupancy is rejected rather than
	// stranding guests already on the list.
	if in.MaxCapacity > 0 && in.MaxCapacity < list.GuestCount {
		return nil, models.NewValidationError(
			fmt.Sprintf("Capacity %d is below the current guest count of %d", in.MaxCapacity, list.GuestCount))
	}

	list.Name = strings.TrimSpace(in.Name)
	list.EventID = in.EventID
	list.ListTypeID = in.ListTypeID
	list.SectorID = in.SectorID
	list.MaxCapacity = in.MaxCapacity

	if err := s.listRepo.Update(ctx, list); err != nil {
		return nil, err
	}

	s.logActivity(ctx, actorID, list.EventID, models.ActionListUpdated, fmt.Sprintf("Updated list %q", list.Name))
	return s.listRepo.GetByID(ctx, list.ID)
}

func (s *EventListService) DeleteList(ctx context.Context, id, actorID uint) error {
	list, err := s.listRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.listRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logActivity(ctx, actorID, list.EventID, models.ActionListDeleted, fmt.Sprintf("Deleted list %q", list.Name))
	return nil
}

func (s *EventListService) GetListByID(ctx context.Context, id uint) (*models.EventList, error) {
	return s.listRepo.GetByID(ctx, id)
}

func (s *EventListService) ListsByEvent(ctx context.Context, eventID uint) ([]models.EventList, error) {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.listRepo.ListByEvent(ctx, eventID)
}

func (s *EventListService) AllLists(ctx context.Context) ([]models.EventList, error) {
	return s.listRepo.List(ctx)
}

func (s *EventListService) logActivity(ctx context.Context, actorID, eventID uint, action, details string) {
	entry := &models.ActivityLog{
		UserID:  &actorID,
		EventID: &eventID,
		Action:  action,
		Details: details,
	}
	_ = s.activityRepo.Append(ctx, entry)
}

package service

import (
	"context"
	"fmt"
	"time"

	"doorlist/internal/listing"
	"doorlist/internal/models"
	"doorlist/internal/observability"
	"doorlist/internal/repository"
	"doorlist/internal/validation"
)

// SubmissionPolicy supplies the admin-tunable submission limits.
// *SettingsService is the production implementation.
type SubmissionPolicy interface {
	MaxGuestsPerSubmission(ctx context.Context) int
	MaxNameLength(ctx context.Context) int
}

type GuestService struct {
	guestRepo repository.GuestRepository
	listRepo  repository.EventListRepository
	policy    SubmissionPolicy
}

func NewGuestService(guestRepo repository.GuestRepository, listRepo repository.EventListRepository, policy SubmissionPolicy) *GuestService {
	return &GuestService{guestRepo: guestRepo, listRepo: listRepo, policy: policy}
}

type SubmitGuestsInput struct {
	EventListID uint
	// RawNames is the textarea payload: one name per line.
	RawNames string
	// SubmittedBy is set for authenticated submissions.
	SubmittedBy *uint
	// SenderName/SenderEmail identify anonymous public submitters.
	SenderName  string
	SenderEmail string
}

// SubmitGuests validates, normalizes, and persists a batch of guest names.
// All names land or none do; the activity log entry commits in the same
// transaction.
func (s *GuestService) SubmitGuests(ctx context.Context, in SubmitGuestsInput) ([]models.Guest, error) {
	span, ctx := observability.NewSpan(ctx, "GuestService.SubmitGuests")
	defer span.End()

	names := validation.ParseNames(in.RawNames)
	if len(names) == 0 {
		observability.RecordSubmission("rejected", 0)
		return nil, models.NewEmptySubmissionError()
	}

	maxNames := s.policy.MaxGuestsPerSubmission(ctx)
	if len(names) > maxNames {
		observability.RecordSubmission("rejected", 0)
		return nil, models.NewTooManyNamesError(len(names), maxNames)
	}

	maxLen := s.policy.MaxNameLength(ctx)
	for _, name := range names {
		if len([]rune(name)) > maxLen {
			observability.RecordSubmission("rejected", 0)
			return nil, models.NewNameTooLongError(name, maxLen)
		}
	}

	list, err := s.listRepo.GetByID(ctx, in.EventListID)
	if err != nil {
		return nil, err
	}

	if list.MaxCapacity > 0 {
		current, err := s.guestRepo.CountActiveByList(ctx, list.ID)
		if err != nil {
			return nil, err
		}
		if current+len(names) > list.MaxCapacity {
			overflow := current + len(names) - list.MaxCapacity
			observability.CapacityRejectionsTotal.Inc()
			observability.RecordSubmission("rejected", 0)
			return nil, models.NewCapacityExceededError(overflow)
		}
	}

	listID := list.ID
	guests := make([]models.Guest, 0, len(names))
	for _, name := range names {
		guests = append(guests, models.Guest{
			Name:        validation.FormatName(name),
			EventID:     list.EventID,
			EventListID: &listID,
			Status:      models.GuestStatusPending,
			SubmittedBy: in.SubmittedBy,
			SenderName:  in.SenderName,
			SenderEmail: in.SenderEmail,
		})
	}

	eventID := list.EventID
	log := &models.ActivityLog{
		UserID:  in.SubmittedBy,
		EventID: &eventID,
		Action:  models.ActionGuestsSubmitted,
		Details: fmt.Sprintf("Submitted %d guest(s) to list %q", len(guests), list.Name),
	}

	if err := s.guestRepo.SubmitBatch(ctx, guests, log); err != nil {
		span.SetError(err)
		return nil, err
	}

	observability.RecordSubmission("accepted", len(guests))
	return guests, nil
}

// CheckIn marks the guest as arrived. Checking in an already checked-in guest
// is a no-op that preserves the original timestamp and actor.
func (s *GuestService) CheckIn(ctx context.Context, guestID, actorID uint) (*models.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if guest.CheckedIn {
		return guest, nil
	}

	now := time.Now()
	guest.CheckedIn = true
	guest.CheckedInAt = &now
	guest.CheckedInBy = &actorID

	eventID := guest.EventID
	log := &models.ActivityLog{
		UserID:  &actorID,
		EventID: &eventID,
		Action:  models.ActionGuestCheckedIn,
		Details: fmt.Sprintf("Checked in guest %q", guest.Name),
	}
	if err := s.guestRepo.UpdateCheckin(ctx, guest, log); err != nil {
		return nil, err
	}

	observability.RecordCheckin("in")
	return guest, nil
}

// CheckOut reverts a check-in, clearing the timestamp and actor. Checking out
// a guest who is not checked in is a no-op.
func (s *GuestService) CheckOut(ctx context.Context, guestID, actorID uint) (*models.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if !guest.CheckedIn {
		return guest, nil
	}

	guest.CheckedIn = false
	guest.CheckedInAt = nil
	guest.CheckedInBy = nil

	eventID := guest.EventID
	log := &models.ActivityLog{
		UserID:  &actorID,
		EventID: &eventID,
		Action:  models.ActionGuestCheckedOut,
		Details: fmt.Sprintf("Checked out guest %q", guest.Name),
	}
	if err := s.guestRepo.UpdateCheckin(ctx, guest, log); err != nil {
		return nil, err
	}

	observability.RecordCheckin("out")
	return guest, nil
}

// SetStatus approves or rejects a pending guest.
func (s *GuestService) SetStatus(ctx context.Context, guestID, actorID uint, status models.GuestStatus) (*models.Guest, error) {
	if status != models.GuestStatusApproved && status != models.GuestStatusRejected {
		return nil, models.NewValidationError("status must be approved or rejected")
	}

	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return nil, err
	}

	action := models.ActionGuestApproved
	if status == models.GuestStatusRejected {
		action = models.ActionGuestRejected
	}

	guest.Status = status
	eventID := guest.EventID
	log := &models.ActivityLog{
		UserID:  &actorID,
		EventID: &eventID,
		Action:  action,
		Details: fmt.Sprintf("Guest %q set to %s", guest.Name, status),
	}
	if err := s.guestRepo.UpdateStatus(ctx, guest, log); err != nil {
		return nil, err
	}
	return guest, nil
}

// DeleteGuest removes a guest from its list.
func (s *GuestService) DeleteGuest(ctx context.Context, guestID, actorID uint) error {
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		return err
	}

	eventID := guest.EventID
	log := &models.ActivityLog{
		UserID:  &actorID,
		EventID: &eventID,
		Action:  models.ActionGuestDeleted,
		Details: fmt.Sprintf("Deleted guest %q", guest.Name),
	}
	return s.guestRepo.Delete(ctx, guestID, log)
}

func (s *GuestService) GetGuestByID(ctx context.Context, id uint) (*models.Guest, error) {
	return s.guestRepo.GetByID(ctx, id)
}

// ListGuests applies the free-text search and status filter, then paginates.
func (s *GuestService) ListGuests(ctx context.Context, query string, status listing.StatusFilter, page, pageSize int) ([]models.Guest, listing.PageInfo, error) {
	guests, err := s.guestRepo.List(ctx)
	if err != nil {
		return nil, listing.PageInfo{}, err
	}
	filtered := listing.FilterGuests(guests, query, status)
	pageItems, info := listing.Paginate(filtered, page, pageSize)
	return pageItems, info, nil
}

// ListGuestsByEvent returns the event's guests after search/status filtering.
func (s *GuestService) ListGuestsByEvent(ctx context.Context, eventID uint, query string, status listing.StatusFilter) ([]models.Guest, error) {
	guests, err := s.guestRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return listing.FilterGuests(guests, query, status), nil
}

// ListGuestsByList returns the guests on one event list.
func (s *GuestService) ListGuestsByList(ctx context.Context, listID uint) ([]models.Guest, error) {
	return s.guestRepo.ListByList(ctx, listID)
}

// GroupedByEvent buckets matching guests per event, for the door view.
func (s *GuestService) GroupedByEvent(ctx context.Context, query string, status listing.StatusFilter) ([]listing.EventGroup, error) {
	guests, err := s.guestRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return listing.GroupByEvent(listing.FilterGuests(guests, query, status)), nil
}

package service

import (
	"context"

	"doorlist/internal/models"
	"doorlist/internal/repository"
)

type ActivityService struct {
	activityRepo repository.ActivityLogRepository
}

func NewActivityService(activityRepo repository.ActivityLogRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// ListActivity returns recent audit entries, newest first.
func (s *ActivityService) ListActivity(ctx context.Context, limit, offset int) ([]models.ActivityLog, int64, error) {
	entries, err := s.activityRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.activityRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// ListActivityByEvent returns an event's audit entries, newest first.
func (s *ActivityService) ListActivityByEvent(ctx context.Context, eventID uint, limit, offset int) ([]models.ActivityLog, error) {
	return s.activityRepo.ListByEvent(ctx, eventID, limit, offset)
}

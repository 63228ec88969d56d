package service

import (
	"context"
	"errors"
	"testing"

	"doorlist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertErrorCode(t, err, "VALIDATION_ERROR")
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	createWithLogFn func(context.Context, *models.User, *models.ActivityLog) error
	updateFn        func(context.Context, *models.User) error
	deleteFn        func(context.Context, uint) error
	deleteWithLogFn func(context.Context, uint, *models.ActivityLog) error
	listFn          func(context.Context) ([]models.User, error)
	countFn         func(context.Context) (int64, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) CreateWithLog(ctx context.Context, user *models.User, log *models.ActivityLog) error {
	return s.createWithLogFn(ctx, user, log)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) DeleteWithLog(ctx context.Context, id uint, log *models.ActivityLog) error {
	return s.deleteWithLogFn(ctx, id, log)
}
func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) {
	return s.listFn(ctx)
}
func (s *userRepoStub) Count(ctx context.Context) (int64, error) {
	return s.countFn(ctx)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:       func(context.Context, uint) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:        func(context.Context, *models.User) error { return nil },
		createWithLogFn: func(context.Context, *models.User, *models.ActivityLog) error { return nil },
		updateFn:        func(context.Context, *models.User) error { return nil },
		deleteFn:        func(context.Context, uint) error { return nil },
		deleteWithLogFn: func(context.Context, uint, *models.ActivityLog) error { return nil },
		listFn:          func(context.Context) ([]models.User, error) { return nil, nil },
		countFn:         func(context.Context) (int64, error) { return 0, nil },
	}
}

type guestRepoStub struct {
	getByIDFn           func(context.Context, uint) (*models.Guest, error)
	countActiveByListFn func(context.Context, uint) (int, error)
	submitBatchFn       func(context.Context, []models.Guest, *models.ActivityLog) error
	updateCheckinFn     func(context.Context, *models.Guest, *models.ActivityLog) error
	updateStatusFn      func(context.Context, *models.Guest, *models.ActivityLog) error
	deleteFn            func(context.Context, uint, *models.ActivityLog) error
	listByEventFn       func(context.Context, uint) ([]models.Guest, error)
	listByListFn        func(context.Context, uint) ([]models.Guest, error)
	listFn              func(context.Context) ([]models.Guest, error)
}

func (s *guestRepoStub) GetByID(ctx context.Context, id uint) (*models.Guest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *guestRepoStub) CountActiveByList(ctx context.Context, listID uint) (int, error) {
	return s.countActiveByListFn(ctx, listID)
}
func (s *guestRepoStub) SubmitBatch(ctx context.Context, guests []models.Guest, log *models.ActivityLog) error {
	return s.submitBatchFn(ctx, guests, log)
}
func (s *guestRepoStub) UpdateCheckin(ctx context.Context, guest *models.Guest, log *models.ActivityLog) error {
	return s.updateCheckinFn(ctx, guest, log)
}
func (s *guestRepoStub) UpdateStatus(ctx context.Context, guest *models.Guest, log *models.ActivityLog) error {
	return s.updateStatusFn(ctx, guest, log)
}
func (s *guestRepoStub) Delete(ctx context.Context, id uint, log *models.ActivityLog) error {
	return s.deleteFn(ctx, id, log)
}
func (s *guestRepoStub) ListByEvent(ctx context.Context, eventID uint) ([]models.Guest, error) {
	return s.listByEventFn(ctx, eventID)
}
func (s *guestRepoStub) ListByList(ctx context.Context, listID uint) ([]models.Guest, error) {
	return s.listByListFn(ctx, listID)
}
func (s *guestRepoStub) List(ctx context.Context) ([]models.Guest, error) {
	return s.listFn(ctx)
}

func noopGuestRepo() *guestRepoStub {
	return &guestRepoStub{
		getByIDFn:           func(context.Context, uint) (*models.Guest, error) { return &models.Guest{}, nil },
		countActiveByListFn: func(context.Context, uint) (int, error) { return 0, nil },
		submitBatchFn:       func(context.Context, []models.Guest, *models.ActivityLog) error { return nil },
		updateCheckinFn:     func(context.Context, *models.Guest, *models.ActivityLog) error { return nil },
		updateStatusFn:      func(context.Context, *models.Guest, *models.ActivityLog) error { return nil },
		deleteFn:            func(context.Context, uint, *models.ActivityLog) error { return nil },
		listByEventFn:       func(context.Context, uint) ([]models.Guest, error) { return nil, nil },
		listByListFn:        func(context.Context, uint) ([]models.Guest, error) { return nil, nil },
		listFn:              func(context.Context) ([]models.Guest, error) { return nil, nil },
	}
}

type eventListRepoStub struct {
	getByIDFn     func(context.Context, uint) (*models.EventList, error)
	createFn      func(context.Context, *models.EventList) error
	updateFn      func(context.Context, *models.EventList) error
	deleteFn      func(context.Context, uint) error
	listByEventFn func(context.Context, uint) ([]models.EventList, error)
	listFn        func(context.Context) ([]models.EventList, error)
}

func (s *eventListRepoStub) GetByID(ctx context.Context, id uint) (*models.EventList, error) {
	return s.getByIDFn(ctx, id)
}
func (s *eventListRepoStub) Create(ctx context.Context, list *models.EventList) error {
	return s.createFn(ctx, list)
}
func (s *eventListRepoStub) Update(ctx context.Context, list *models.EventList) error {
	return s.updateFn(ctx, list)
}
func (s *eventListRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *eventListRepoStub) ListByEvent(ctx context.Context, eventID uint) ([]models.EventList, error) {
	return s.listByEventFn(ctx, eventID)
}
func (s *eventListRepoStub) List(ctx context.Context) ([]models.EventList, error) {
	return s.listFn(ctx)
}

func noopEventListRepo() *eventListRepoStub {
	return &eventListRepoStub{
		getByIDFn:     func(context.Context, uint) (*models.EventList, error) { return &models.EventList{}, nil },
		createFn:      func(context.Context, *models.EventList) error { return nil },
		updateFn:      func(context.Context, *models.EventList) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
		listByEventFn: func(context.Context, uint) ([]models.EventList, error) { return nil, nil },
		listFn:        func(context.Context) ([]models.EventList, error) { return nil, nil },
	}
}

type eventRepoStub struct {
	getByIDFn          func(context.Context, uint) (*models.Event, error)
	getByIDWithListsFn func(context.Context, uint) (*models.Event, error)
	createFn           func(context.Context, *models.Event) error
	updateFn           func(context.Context, *models.Event) error
	deleteFn           func(context.Context, uint) error
	listFn             func(context.Context) ([]models.Event, error)
	listByStatusFn     func(context.Context, models.EventStatus) ([]models.Event, error)
}

func (s *eventRepoStub) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	return s.getByIDFn(ctx, id)
}
func (s *eventRepoStub) GetByIDWithLists(ctx context.Context, id uint) (*models.Event, error) {
	return s.getByIDWithListsFn(ctx, id)
}
func (s *eventRepoStub) Create(ctx context.Context, event *models.Event) error {
	return s.createFn(ctx, event)
}
func (s *eventRepoStub) Update(ctx context.Context, event *models.Event) error {
	return s.updateFn(ctx, event)
}
func (s *eventRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *eventRepoStub) List(ctx context.Context) ([]models.Event, error) {
	return s.listFn(ctx)
}
func (s *eventRepoStub) ListByStatus(ctx context.Context, status models.EventStatus) ([]models.Event, error) {
	return s.listByStatusFn(ctx, status)
}

func noopEventRepo() *eventRepoStub {
	return &eventRepoStub{
		getByIDFn:          func(_ context.Context, id uint) (*models.Event, error) { return &models.Event{ID: id}, nil },
		getByIDWithListsFn: func(_ context.Context, id uint) (*models.Event, error) { return &models.Event{ID: id}, nil },
		createFn:           func(context.Context, *models.Event) error { return nil },
		updateFn:           func(context.Context, *models.Event) error { return nil },
		deleteFn:           func(context.Context, uint) error { return nil },
		listFn:             func(context.Context) ([]models.Event, error) { return nil, nil },
		listByStatusFn:     func(context.Context, models.EventStatus) ([]models.Event, error) { return nil, nil },
	}
}

type listTypeRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.ListType, error)
	createFn  func(context.Context, *models.ListType) error
	updateFn  func(context.Context, *models.ListType) error
	deleteFn  func(context.Context, uint) error
	listFn    func(context.Context) ([]models.ListType, error)
	inUseFn   func(context.Context, uint) (bool, error)
}

func (s *listTypeRepoStub) GetByID(ctx context.Context, id uint) (*models.ListType, error) {
	return s.getByIDFn(ctx, id)
}
func (s *listTypeRepoStub) Create(ctx context.Context, lt *models.ListType) error {
	return s.createFn(ctx, lt)
}
func (s *listTypeRepoStub) Update(ctx context.Context, lt *models.ListType) error {
	return s.updateFn(ctx, lt)
}
func (s *listTypeRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *listTypeRepoStub) List(ctx context.Context) ([]models.ListType, error) {
	return s.listFn(ctx)
}
func (s *listTypeRepoStub) InUse(ctx context.Context, id uint) (bool, error) {
	return s.inUseFn(ctx, id)
}

func noopListTypeRepo() *listTypeRepoStub {
	return &listTypeRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.ListType, error) {
			return &models.ListType{ID: id, Name: "VIP", Active: true}, nil
		},
		createFn: func(context.Context, *models.ListType) error { return nil },
		updateFn: func(context.Context, *models.ListType) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
		listFn:   func(context.Context) ([]models.ListType, error) { return nil, nil },
		inUseFn:  func(context.Context, uint) (bool, error) { return false, nil },
	}
}

type sectorRepoStub struct {
	getByIDFn func(context.Context, uint) (*models.Sector, error)
	createFn  func(context.Context, *models.Sector) error
	updateFn  func(context.Context, *models.Sector) error
	deleteFn  func(context.Context, uint) error
	listFn    func(context.Context) ([]models.Sector, error)
	inUseFn   func(context.Context, uint) (bool, error)
}

func (s *sectorRepoStub) GetByID(ctx context.Context, id uint) (*models.Sector, error) {
	return s.getByIDFn(ctx, id)
}
func (s *sectorRepoStub) Create(ctx context.Context, sector *models.Sector) error {
	return s.createFn(ctx, sector)
}
func (s *sectorRepoStub) Update(ctx context.Context, sector *models.Sector) error {
	return s.updateFn(ctx, sector)
}
func (s *sectorRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *sectorRepoStub) List(ctx context.Context) ([]models.Sector, error) {
	return s.listFn(ctx)
}
func (s *sectorRepoStub) InUse(ctx context.Context, id uint) (bool, error) {
	return s.inUseFn(ctx, id)
}

func noopSectorRepo() *sectorRepoStub {
	return &sectorRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.Sector, error) {
			return &models.Sector{ID: id, Name: "Pista"}, nil
		},
		createFn: func(context.Context, *models.Sector) error { return nil },
		updateFn: func(context.Context, *models.Sector) error { return nil },
		deleteFn: func(context.Context, uint) error { return nil },
		listFn:   func(context.Context) ([]models.Sector, error) { return nil, nil },
		inUseFn:  func(context.Context, uint) (bool, error) { return false, nil },
	}
}

// fixedPolicy returns constant submission limits.
type fixedPolicy struct {
	maxNames int
	maxLen   int
}

func (p fixedPolicy) MaxGuestsPerSubmission(context.Context) int { return p.maxNames }
func (p fixedPolicy) MaxNameLength(context.Context) int          { return p.maxLen }

package server

import (
	"context"

	"doorlist/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) CreateWithLog(ctx context.Context, user *models.User, log *models.ActivityLog) error {
	args := m.Called(ctx, user, log)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteWithLog(ctx context.Context, id uint, log *models.ActivityLog) error {
	args := m.Called(ctx, id, log)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockGuestRepository is a mock of the GuestRepository interface
type MockGuestRepository struct {
	mock.Mock
}

func (m *MockGuestRepository) GetByID(ctx context.Context, id uint) (*models.Guest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guest), args.Error(1)
}

func (m *MockGuestRepository) CountActiveByList(ctx context.Context, listID uint) (int, error) {
	args := m.Called(ctx, listID)
	return args.Int(0), args.Error(1)
}

func (m *MockGuestRepository) SubmitBatch(ctx context.Context, guests []models.Guest, log *models.ActivityLog) error {
	args := m.Called(ctx, guests, log)
	return args.Error(0)
}

func (m *MockGuestRepository) UpdateCheckin(ctx context.Context, guest *models.Guest, log *models.ActivityLog) error {
	args := m.Called(ctx, guest, log)
	return args.Error(0)
}

func (m *MockGuestRepository) UpdateStatus(ctx context.Context, guest *models.Guest, log *models.ActivityLog) error {
	args := m.Called(ctx, guest, log)
	return args.Error(0)
}

func (m *MockGuestRepository) Delete(ctx context.Context, id uint, log *models.ActivityLog) error {
	args := m.Called(ctx, id, log)
	return args.Error(0)
}

func (m *MockGuestRepository) ListByEvent(ctx context.Context, eventID uint) ([]models.Guest, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]models.Guest), args.Error(1)
}

func (m *MockGuestRepository) ListByList(ctx context.Context, listID uint) ([]models.Guest, error) {
	args := m.Called(ctx, listID)
	return args.Get(0).([]models.Guest), args.Error(1)
}

func (m *MockGuestRepository) List(ctx context.Context) ([]models.Guest, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Guest), args.Error(1)
}

// MockEventListRepository is a mock of the EventListRepository interface
type MockEventListRepository struct {
	mock.Mock
}

func (m *MockEventListRepository) GetByID(ctx context.Context, id uint) (*models.EventList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EventList), args.Error(1)
}

func (m *MockEventListRepository) Create(ctx context.Context, list *models.EventList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockEventListRepository) Update(ctx context.Context, list *models.EventList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockEventListRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventListRepository) ListByEvent(ctx context.Context, eventID uint) ([]models.EventList, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).([]models.EventList), args.Error(1)
}

func (m *MockEventListRepository) List(ctx context.Context) ([]models.EventList, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.EventList), args.Error(1)
}

// MockSiteSettingRepository is a mock of the SiteSettingRepository interface
type MockSiteSettingRepository struct {
	mock.Mock
}

func (m *MockSiteSettingRepository) Get(ctx context.Context, key string) (*models.SiteSetting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SiteSetting), args.Error(1)
}

func (m *MockSiteSettingRepository) GetAll(ctx context.Context) ([]models.SiteSetting, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.SiteSetting), args.Error(1)
}

func (m *MockSiteSettingRepository) Upsert(ctx context.Context, setting *models.SiteSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

// MockActivityLogRepository is a mock of the ActivityLogRepository interface
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) Append(ctx context.Context, entry *models.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityLogRepository) List(ctx context.Context, limit, offset int) ([]models.ActivityLog, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]models.ActivityLog), args.Error(1)
}

func (m *MockActivityLogRepository) ListByEvent(ctx context.Context, eventID uint, limit, offset int) ([]models.ActivityLog, error) {
	args := m.Called(ctx, eventID, limit, offset)
	return args.Get(0).([]models.ActivityLog), args.Error(1)
}

func (m *MockActivityLogRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"doorlist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixture() ([]models.Guest, *eventRepoStub) {
	vip := &models.EventList{
		ID:       1,
		Name:     "Lista VIP",
		ListType: &models.ListType{Name: "VIP"},
		Sector:   &models.Sector{Name: "Camarote"},
	}
	free := &models.EventList{
		ID:       2,
		Name:     "Lista Free",
		ListType: &models.ListType{Name: "Free"},
		Sector:   &models.Sector{Name: "Pista"},
	}
	vipID, freeID := vip.ID, free.ID
	checkedInAt := time.Date(2026, 9, 12, 23, 15, 0, 0, time.UTC)

	guests := []models.Guest{
		{ID: 1, Name: "Maria de Souza", EventID: 3, EventListID: &vipID, EventList: vip,
			Status: models.GuestStatusApproved, CheckedIn: true, CheckedInAt: &checkedInAt},
		{ID: 2, Name: "João da Silva", EventID: 3, EventListID: &vipID, EventList: vip,
			Status: models.GuestStatusApproved},
		{ID: 3, Name: "Ana Clara dos Santos", EventID: 3, EventListID: &freeID, EventList: free,
			Status: models.GuestStatusPending},
	}

	events := noopEventRepo()
	events.getByIDFn = func(_ context.Context, id uint) (*models.Event, error) {
		return &models.Event{ID: id, Name: "Noite Eletrônica"}, nil
	}
	return guests, events
}

func TestReportService_EventSummary(t *testing.T) {
	t.Parallel()

	guests, events := reportFixture()
	guestRepo := noopGuestRepo()
	guestRepo.listByEventFn = func(context.Context, uint) ([]models.Guest, error) { return guests, nil }
	svc := NewReportService(guestRepo, events)

	report, err := svc.EventSummary(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalGuests)
	assert.Equal(t, 1, report.CheckedIn)
	assert.Equal(t, 2, report.Pending)

	require.Len(t, report.ByList, 2)
	assert.Equal(t, "Lista VIP", report.ByList[0].ListName)
	assert.Equal(t, 2, report.ByList[0].Total)
	assert.Equal(t, 1, report.ByList[0].CheckedIn)
	assert.Equal(t, "Lista Free", report.ByList[1].ListName)
	assert.Equal(t, 1, report.ByList[1].Total)
	assert.Equal(t, 0, report.ByList[1].CheckedIn)
}

func TestReportService_EventSummary_UnknownEvent(t *testing.T) {
	t.Parallel()

	events := noopEventRepo()
	events.getByIDFn = func(_ context.Context, id uint) (*models.Event, error) {
		return nil, models.NewNotFoundError("Event", id)
	}
	svc := NewReportService(noopGuestRepo(), events)

	_, err := svc.EventSummary(context.Background(), 99)
	assertErrorCode(t, err, "NOT_FOUND")
}

func TestReportService_ExportGuestsCSV(t *testing.T) {
	t.Parallel()

	guests, events := reportFixture()
	guestRepo := noopGuestRepo()
	guestRepo.listByEventFn = func(context.Context, uint) ([]models.Guest, error) { return guests, nil }
	svc := NewReportService(guestRepo, events)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportGuestsCSV(context.Background(), 3, &buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "header plus one row per guest")

	assert.Equal(t, []string{"name", "list", "type", "sector", "status", "checked_in", "checked_in_at"}, rows[0])
	assert.Equal(t, []string{"Maria de Souza", "Lista VIP", "VIP", "Camarote", "approved", "yes", "2026-09-12T23:15:00Z"}, rows[1])
	assert.Equal(t, []string{"João da Silva", "Lista VIP", "VIP", "Camarote", "approved", "no", ""}, rows[2])
	assert.Equal(t, []string{"Ana Clara dos Santos", "Lista Free", "Free", "Pista", "pending", "no", ""}, rows[3])
}

func TestReportService_ExportGuestsCSV_UnknownEvent(t *testing.T) {
	t.Parallel()

	events := noopEventRepo()
	events.getByIDFn = func(_ context.Context, id uint) (*models.Event, error) {
		return nil, models.NewNotFoundError("Event", id)
	}
	svc := NewReportService(noopGuestRepo(), events)

	var buf bytes.Buffer
	err := svc.ExportGuestsCSV(context.Background(), 99, &buf)
	assertErrorCode(t, err, "NOT_FOUND")
	assert.Zero(t, buf.Len(), "no body bytes written on error")
}

package service

import (
	"context"
	"testing"

	"doorlist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent_Validation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input EventInput
	}{
		{"empty name", EventInput{Name: "  ", Date: "2026-09-12"}},
		{"bad date format", EventInput{Name: "Baile", Date: "12/09/2026"}},
		{"bad time format", EventInput{Name: "Baile", Date: "2026-09-12", Time: "10pm"}},
		{"unknown status", EventInput{Name: "Baile", Date: "2026-09-12", Status: "draft"}},
		{"negative capacity", EventInput{Name: "Baile", Date: "2026-09-12", Capacity: -1}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			events := noopEventRepo()
			created := false
			events.createFn = func(context.Context, *models.Event) error {
				created = true
				return nil
			}
			svc := NewEventService(events, noopActivityRepo())

			_, err := svc.CreateEvent(context.Background(), tc.input, 1)
			assertValidationError(t, err)
			assert.False(t, created, "invalid input must not reach the repository")
		})
	}
}

func TestEventService_CreateEvent(t *testing.T) {
	t.Parallel()

	events := noopEventRepo()
	var saved *models.Event
	events.createFn = func(_ context.Context, e *models.Event) error {
		e.ID = 11
		saved = e
		return nil
	}
	activity := noopActivityRepo()
	var logged *models.ActivityLog
	activity.appendFn = func(_ context.Context, entry *models.ActivityLog) error {
		logged = entry
		return nil
	}
	svc := NewEventService(events, activity)

	event, err := svc.CreateEvent(context.Background(), EventInput{
		Name:     "  Noite Eletrônica  ",
		Date:     "2026-09-12",
		Time:     "22:00",
		Location: "Armazém 14",
		Capacity: 500,
	}, 4)
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "Noite Eletrônica", event.Name, "name is trimmed")
	assert.Equal(t, models.EventStatusActive, event.Status, "status defaults to active")
	assert.EqualValues(t, 4, event.CreatedBy)

	require.NotNil(t, logged, "creation is audited")
	assert.Equal(t, models.ActionEventCreated, logged.Action)
	require.NotNil(t, logged.EventID)
	assert.EqualValues(t, 11, *logged.EventID)
	require.NotNil(t, logged.UserID)
	assert.EqualValues(t, 4, *logged.UserID)
}

func TestEventService_UpdateEvent(t *testing.T) {
	t.Parallel()

	t.Run("unknown event", func(t *testing.T) {
		t.Parallel()
		events := noopEventRepo()
		events.getByIDFn = func(_ context.Context, id uint) (*models.Event, error) {
			return nil, models.NewNotFoundError("Event", id)
		}
		svc := NewEventService(events, noopActivityRepo())

		_, err := svc.UpdateEvent(context.Background(), 99, EventInput{Name: "Baile", Date: "2026-09-12"}, 1)
		assertErrorCode(t, err, "NOT_FOUND")
	})

	t.Run("blank status keeps the current one", func(t *testing.T) {
		t.Parallel()
		events := noopEventRepo()
		events.getByIDFn = func(_ context.Context, id uint) (*models.Event, error) {
			return &models.Event{ID: id, Name: "Baile", Status: models.EventStatusCompleted}, nil
		}
		var saved *models.Event
		events.updateFn = func(_ context.Context, e *models.Event) error {
			saved = e
			return nil
		}
		svc := NewEventService(events, noopActivityRepo())

		_, err := svc.UpdateEvent(context.Background(), 3, EventInput{Name: "Baile de Verão", Date: "2026-09-12"}, 1)
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Baile de Verão", saved.Name)
		assert.Equal(t, models.EventStatusCompleted, saved.Status)
	})
}

func TestEventService_DeleteEvent(t *testing.T) {
	t.Parallel()

	events := noopEventRepo()
	events.getByIDFn = func(_ context.Context, id uint) (*models.Event, error) {
		return &models.Event{ID: id, Name: "Baile"}, nil
	}
	deleted := false
	events.deleteFn = func(_ context.Context, id uint) error {
		deleted = true
		return nil
	}
	activity := noopActivityRepo()
	var logged *models.ActivityLog
	activity.appendFn = func(_ context.Context, entry *models.ActivityLog) error {
		logged = entry
		return nil
	}
	svc := NewEventService(events, activity)

	require.NoError(t, svc.DeleteEvent(context.Background(), 3, 1))
	assert.True(t, deleted)
	require.NotNil(t, logged)
	assert.Equal(t, models.ActionEventDeleted, logged.Action)
}

func TestEventService_ListEvents(t *testing.T) {
	t.Parallel()

	all := []models.Event{
		{ID: 1, Name: "Noite Eletrônica", Location: "Armazém 14", Status: models.EventStatusActive},
		{ID: 2, Name: "Baile Funk", Location: "Clube Central", Status: models.EventStatusActive},
		{ID: 3, Name: "Festa Junina", Location: "Armazém 14", Status: models.EventStatusCompleted},
	}
	events := noopEventRepo()
	events.listFn = func(context.Context) ([]models.Event, error) { return all, nil }
	svc := NewEventService(events, noopActivityRepo())

	t.Run("unknown status filter rejected", func(t *testing.T) {
		t.Parallel()
		_, _, err := svc.ListEvents(context.Background(), "", "draft", 1, 20)
		assertValidationError(t, err)
	})

	t.Run("status filter", func(t *testing.T) {
		t.Parallel()
		page, info, err := svc.ListEvents(context.Background(), "", models.EventStatusCompleted, 1, 20)
		require.NoError(t, err)
		require.Len(t, page, 1)
		assert.EqualValues(t, 3, page[0].ID)
		assert.Equal(t, 1, info.TotalItems)
	})

	t.Run("query matches location", func(t *testing.T) {
		t.Parallel()
		page, _, err := svc.ListEvents(context.Background(), "armazém", "", 1, 20)
		require.NoError(t, err)
		assert.Len(t, page, 2)
	})

	t.Run("pagination clamps out-of-range pages", func(t *testing.T) {
		t.Parallel()
		page, info, err := svc.ListEvents(context.Background(), "", "", 9, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, info.Page, "page past the end clamps to the last page")
		assert.Len(t, page, 1)
	})
}

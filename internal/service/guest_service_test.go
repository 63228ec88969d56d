package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"doorlist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultPolicy() fixedPolicy {
	return fixedPolicy{maxNames: 50, maxLen: 100}
}

func listOfCapacity(max int) *eventListRepoStub {
	repo := noopEventListRepo()
	repo.getByIDFn = func(_ context.Context, id uint) (*models.EventList, error) {
		return &models.EventList{ID: id, EventID: 3, Name: "Lista VIP", MaxCapacity: max}, nil
	}
	return repo
}

func TestGuestService_SubmitGuests_Validation(t *testing.T) {
	t.Parallel()

	t.Run("empty submission", func(t *testing.T) {
		t.Parallel()
		svc := NewGuestService(noopGuestRepo(), listOfCapacity(0), defaultPolicy())
		_, err := svc.SubmitGuests(context.Background(), SubmitGuestsInput{
			EventListID: 1,
			RawNames:    "\n  \n\t\n",
		})
		assertErrorCode(t, err, "EMPTY_SUBMISSION")
	})

	t.Run("too many names", func(t *testing.T) {
		t.Parallel()
		svc := NewGuestService(noopGuestRepo(), listOfCapacity(0), fixedPolicy{maxNames: 3, maxLen: 100})
		_, err := svc.SubmitGuests(context.Background(), SubmitGuestsInput{
			EventListID: 1,
			RawNames:    "ana\nbia\ncarla\ndani",
		})
		assertErrorCode(t, err, "TOO_MANY_NAMES")
	})

	t.Run("name too long", func(t *testing.T) {
		t.Parallel()
		svc := NewGuestService(noopGuestRepo(), listOfCapacity(0), fixedPolicy{maxNames: 50, maxLen: 10})
		_, err := svc.SubmitGuests(context.Background(), SubmitGuestsInput{
			EventListID: 1,
			RawNames:    "ana\n" + strings.Repeat("x", 11),
		})
		assertErrorCode(t, err, "NAME_TOO_LONG")
	})

	t.Run("no names persisted on validation failure", func(t *testing.T) {
		t.Parallel()
		repo := noopGuestRepo()
		called := false
		repo.submitBatchFn = func(context.Context, []models.Guest, *models.ActivityLog) error {
			called = true
			return nil
		}
		svc := NewGuestService(repo, listOfCapacity(0), fixedPolicy{maxNames: 1, maxLen: 100})
		_, err := svc.SubmitGuests(context.Background(), SubmitGuestsInput{
			EventListID: 1,
			RawNames:    "ana\nbia",
		})
		require.Error(t, err)
		assert.False(t, called, "nothing may be written when validation fails")
	})
}

func TestGuestService_SubmitGuests_CapacityGuard(t *testing.T) {
	t.Parallel()

	t.Run("overflow reports the exact excess", func(t *testing.T) {
		t.Parallel()
		repo := noopGuestRepo()
		repo.countActiveByListFn = func(context.Context, uint) (int, error) { return 48, nil }
		svc := NewGuestService(repo, listOfCapacity(50), defaultPolicy())

		_, err := svc.SubmitGuests(context.Background(), SubmitGuestsInput{
			EventListID: 1,
			RawNames:    "ana\nbia\ncarla",
		})
		assertErrorCode(t, err, "CAPACITY_EXCEEDED")
		assert.Contains(t, err.Error(), "1", "48 existing + 3 incoming over a cap of 50 overflows by 1")
	})

	t.Run("exactly filling the list is allowed", func(t *testing.T) {
		t.Parallel()
		repo := noopGuestRepo()
		repo.countActiveByListFn = func(context.Context, uint) (int, error) { return 48, nil }
		svc := NewGuestService(repo, listOfCapacity(50), defaultPolicy())

		guests, err := svc.SubmitGuests(context.Background(), SubmitGuestsInput{
			EventListID: 1,
			RawNames:    "ana\nbia",
		})
		require.NoError(t, err)
		assert.Len(t, guests, 2)
	})

	t.Run("zero capacity means unbounded", func(t *testing.T) {
		t.Parallel()
		repo := noopGuestRepo()
		counted := false
		repo.countActiveByListFn = func(context.Context, uint) (int, error) {
			counted = true
			return 0, nil
		}
		svc := NewGuestService(repo, listOfCapacity(0), defaultPolicy())

		_, err := svc.SubmitGuests(context.Background(), SubmitGuestsInput{
			EventListID: 1,
			RawNames:    "ana",
		})
		require.NoError(t, err)
		assert.False(t, counted, "unbounded lists skip the occupancy count")
	})
}

func TestGuestService_SubmitGuests_Normalization(t *testing.T) {
	t.Parallel()

	var submitted []models.Guest
	var loggedAction string
	repo := noopGuestRepo()
	repo.submitBatchFn = func(_ context.Context, guests []models.Guest, log *models.ActivityLog) error {
		submitted = guests
		if log != nil {
			loggedAction = log.Action
		}
		return nil
	}

	submitter := uint(9)
	svc := NewGuestService(repo, listOfCapacity(0), defaultPolicy())
	guests, err := svc.SubmitGuests(context.Background(), SubmitGuestsInput{
		EventListID: 1,
		RawNames:    "joão silva\n\nMARIA DE SOUZA\n",
		SubmittedBy: &submitter,
	})
	require.NoError(t, err)
	require.Len(t, guests, 2)
	assert.Equal(t, "João Silva", guests[0].Name)
	assert.Equal(t, "Maria de Souza", guests[1].Name)

	require.Len(t, submitted, 2)
	assert.Equal(t, uint(3), submitted[0].EventID, "event derived from the list")
	require.NotNil(t, submitted[0].EventListID)
	assert.Equal(t, uint(1), *submitted[0].EventListID)
	assert.Equal(t, models.GuestStatusPending, submitted[0].Status)
	require.NotNil(t, submitted[0].SubmittedBy)
	assert.Equal(t, submitter, *submitted[0].SubmittedBy)
	assert.Equal(t, models.ActionGuestsSubmitted, loggedAction)
}

func TestGuestService_CheckInCheckOut(t *testing.T) {
	t.Parallel()

	t.Run("check-in sets timestamp and actor", func(t *testing.T) {
		t.Parallel()
		repo := noopGuestRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Guest, error) {
			return &models.Guest{ID: id, Name: "João Silva", EventID: 3}, nil
		}
		var saved *models.Guest
		var loggedAction string
		repo.updateCheckinFn = func(_ context.Context, g *models.Guest, log *models.ActivityLog) error {
			saved = g
			loggedAction = log.Action
			return nil
		}

		svc := NewGuestService(repo, noopEventListRepo(), defaultPolicy())
		guest, err := svc.CheckIn(context.Background(), 7, 2)
		require.NoError(t, err)
		assert.True(t, guest.CheckedIn)
		require.NotNil(t, guest.CheckedInAt)
		require.NotNil(t, guest.CheckedInBy)
		assert.Equal(t, uint(2), *guest.CheckedInBy)
		require.NotNil(t, saved)
		assert.Equal(t, models.ActionGuestCheckedIn, loggedAction)
	})

	t.Run("repeat check-in is a no-op preserving the original record", func(t *testing.T) {
		t.Parallel()
		original := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
		firstActor := uint(2)
		repo := noopGuestRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Guest, error) {
			return &models.Guest{ID: id, CheckedIn: true, CheckedInAt: &original, CheckedInBy: &firstActor}, nil
		}
		written := false
		repo.updateCheckinFn = func(context.Context, *models.Guest, *models.ActivityLog) error {
			written = true
			return nil
		}

		svc := NewGuestService(repo, noopEventListRepo(), defaultPolicy())
		guest, err := svc.CheckIn(context.Background(), 7, 5)
		require.NoError(t, err)
		assert.False(t, written, "no write may happen on a repeat check-in")
		assert.Equal(t, original, *guest.CheckedInAt)
		assert.Equal(t, firstActor, *guest.CheckedInBy)
	})

	t.Run("check-out clears the check-in fields", func(t *testing.T) {
		t.Parallel()
		arrived := time.Now()
		actor := uint(2)
		repo := noopGuestRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Guest, error) {
			return &models.Guest{ID: id, CheckedIn: true, CheckedInAt: &arrived, CheckedInBy: &actor}, nil
		}
		var loggedAction string
		repo.updateCheckinFn = func(_ context.Context, _ *models.Guest, log *models.ActivityLog) error {
			loggedAction = log.Action
			return nil
		}

		svc := NewGuestService(repo, noopEventListRepo(), defaultPolicy())
		guest, err := svc.CheckOut(context.Background(), 7, 2)
		require.NoError(t, err)
		assert.False(t, guest.CheckedIn)
		assert.Nil(t, guest.CheckedInAt)
		assert.Nil(t, guest.CheckedInBy)
		assert.Equal(t, models.ActionGuestCheckedOut, loggedAction)
	})

	t.Run("check-out of a pending guest is a no-op", func(t *testing.T) {
		t.Parallel()
		repo := noopGuestRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Guest, error) {
			return &models.Guest{ID: id}, nil
		}
		written := false
		repo.updateCheckinFn = func(context.Context, *models.Guest, *models.ActivityLog) error {
			written = true
			return nil
		}

		svc := NewGuestService(repo, noopEventListRepo(), defaultPolicy())
		_, err := svc.CheckOut(context.Background(), 7, 2)
		require.NoError(t, err)
		assert.False(t, written)
	})
}

func TestGuestService_SetStatus(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown status", func(t *testing.T) {
		t.Parallel()
		svc := NewGuestService(noopGuestRepo(), noopEventListRepo(), defaultPolicy())
		_, err := svc.SetStatus(context.Background(), 1, 2, models.GuestStatus("vip"))
		assertValidationError(t, err)
	})

	t.Run("approve logs the approval", func(t *testing.T) {
		t.Parallel()
		repo := noopGuestRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Guest, error) {
			return &models.Guest{ID: id, Name: "Maria de Souza", Status: models.GuestStatusPending}, nil
		}
		var loggedAction string
		repo.updateStatusFn = func(_ context.Context, _ *models.Guest, log *models.ActivityLog) error {
			loggedAction = log.Action
			return nil
		}

		svc := NewGuestService(repo, noopEventListRepo(), defaultPolicy())
		guest, err := svc.SetStatus(context.Background(), 1, 2, models.GuestStatusApproved)
		require.NoError(t, err)
		assert.Equal(t, models.GuestStatusApproved, guest.Status)
		assert.Equal(t, models.ActionGuestApproved, loggedAction)
	})
}

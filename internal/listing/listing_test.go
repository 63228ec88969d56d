package listing

import (
	"testing"

	"doorlist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := intRange(47)

	t.Run("first page", func(t *testing.T) {
		t.Parallel()
		page, info := Paginate(items, 1, 20)
		require.Len(t, page, 20)
		assert.Equal(t, 1, page[0])
		assert.Equal(t, 20, page[19])
		assert.Equal(t, 1, info.StartIndex)
		assert.Equal(t, 20, info.EndIndex)
		assert.Equal(t, 3, info.TotalPages)
		assert.Equal(t, 47, info.TotalItems)
	})

	t.Run("last partial page", func(t *testing.T) {
		t.Parallel()
		page, info := Paginate(items, 3, 20)
		require.Len(t, page, 7)
		assert.Equal(t, 41, page[0])
		assert.Equal(t, 47, page[6])
		assert.Equal(t, 41, info.StartIndex)
		assert.Equal(t, 47, info.EndIndex)
	})

	t.Run("page zero clamps to first", func(t *testing.T) {
		t.Parallel()
		page, info := Paginate(items, 0, 20)
		require.Len(t, page, 20)
		assert.Equal(t, 1, info.Page)
		assert.Equal(t, 1, page[0])
	})

	t.Run("page past end clamps to last", func(t *testing.T) {
		t.Parallel()
		page, info := Paginate(items, 4, 20)
		require.Len(t, page, 7)
		assert.Equal(t, 3, info.Page)
		assert.Equal(t, 41, page[0])
	})

	t.Run("empty collection", func(t *testing.T) {
		t.Parallel()
		page, info := Paginate([]int{}, 1, 20)
		assert.Empty(t, page)
		assert.Equal(t, 1, info.Page)
		assert.Equal(t, 1, info.TotalPages)
		assert.Equal(t, 0, info.StartIndex)
		assert.Equal(t, 0, info.EndIndex)
	})

	t.Run("non-positive page size falls back to default", func(t *testing.T) {
		t.Parallel()
		page, info := Paginate(items, 1, 0)
		assert.Len(t, page, 20)
		assert.Equal(t, 20, info.PageSize)
	})
}

func testGuests() []models.Guest {
	vip := &models.ListType{Name: "VIP"}
	pista := &models.Sector{Name: "Pista"}
	ev1 := &models.Event{ID: 1, Name: "Baile da Cidade"}
	ev2 := &models.Event{ID: 2, Name: "Sunset Rooftop"}
	return []models.Guest{
		{ID: 1, Name: "João Silva", EventID: 1, Event: ev1, CheckedIn: true,
			EventList: &models.EventList{Name: "Lista VIP", ListType: vip, Sector: pista}},
		{ID: 2, Name: "Maria de Souza", EventID: 1, Event: ev1},
		{ID: 3, Name: "Pedro dos Santos", EventID: 2, Event: ev2, CheckedIn: true},
	}
}

func TestFilterGuests(t *testing.T) {
	t.Parallel()

	guests := testGuests()

	t.Run("status checked-in", func(t *testing.T) {
		t.Parallel()
		got := FilterGuests(guests, "", StatusCheckedIn)
		require.Len(t, got, 2)
		assert.Equal(t, uint(1), got[0].ID)
		assert.Equal(t, uint(3), got[1].ID)
	})

	t.Run("status pending", func(t *testing.T) {
		t.Parallel()
		got := FilterGuests(guests, "", StatusPending)
		require.Len(t, got, 1)
		assert.Equal(t, "Maria de Souza", got[0].Name)
	})

	t.Run("search is case-insensitive across fields", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, FilterGuests(guests, "MARIA", StatusAll), 1)
		assert.Len(t, FilterGuests(guests, "baile", StatusAll), 2, "matches event name")
		assert.Len(t, FilterGuests(guests, "vip", StatusAll), 1, "matches list type name")
		assert.Len(t, FilterGuests(guests, "pista", StatusAll), 1, "matches sector name")
		assert.Empty(t, FilterGuests(guests, "nope", StatusAll))
	})

	t.Run("empty query matches all", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, FilterGuests(guests, "  ", StatusAll), 3)
	})
}

func TestGroupByEvent(t *testing.T) {
	t.Parallel()

	groups := GroupByEvent(testGuests())
	require.Len(t, groups, 2)
	assert.Equal(t, uint(1), groups[0].EventID)
	assert.Len(t, groups[0].Guests, 2)
	assert.Equal(t, uint(2), groups[1].EventID)
	assert.Len(t, groups[1].Guests, 1)
	require.NotNil(t, groups[0].Event)
	assert.Equal(t, "Baile da Cidade", groups[0].Event.Name)
}

func TestFilterEvents(t *testing.T) {
	t.Parallel()

	events := []models.Event{
		{ID: 1, Name: "Baile da Cidade", Location: "Centro", Status: models.EventStatusActive},
		{ID: 2, Name: "Sunset Rooftop", Description: "open air", Status: models.EventStatusCompleted},
	}

	assert.Len(t, FilterEvents(events, "", ""), 2)
	assert.Len(t, FilterEvents(events, "", models.EventStatusActive), 1)
	assert.Len(t, FilterEvents(events, "centro", ""), 1)
	assert.Len(t, FilterEvents(events, "OPEN", ""), 1)
	assert.Empty(t, FilterEvents(events, "open", models.EventStatusActive))
}

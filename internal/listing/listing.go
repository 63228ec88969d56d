// Package listing implements in-memory search, filtering, grouping, and
// pagination for guest and event collections. Collections are fetched whole
// and narrowed here, which bounds this design to small-to-moderate volumes;
// pushing filters into the query layer is the escape hatch if that changes.
package listing

import (
	"sort"
	"strings"

	"doorlist/internal/models"
)

// StatusFilter narrows guests by check-in state.
type StatusFilter string

const (
	// StatusAll keeps every guest.
	StatusAll StatusFilter = "all"
	// StatusCheckedIn keeps only checked-in guests.
	StatusCheckedIn StatusFilter = "checked-in"
	// StatusPending keeps only guests not yet checked in.
	StatusPending StatusFilter = "pending"
)

// PageInfo describes one page of a paginated collection. Pages are 1-based.
type PageInfo struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
	// StartIndex and EndIndex are 1-based display indices ("showing 21-40 of 47").
	StartIndex int `json:"start_index"`
	EndIndex   int `json:"end_index"`
}

// Paginate slices items for the requested 1-based page. Out-of-range pages
// clamp to the nearest valid page: 0 becomes 1, pages past the end become the
// last page. An empty collection yields an empty page 1.
func Paginate[T any](items []T, page, pageSize int) ([]T, PageInfo) {
	if pageSize <= 0 {
		pageSize = 20
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	info := PageInfo{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		StartIndex: 0,
		EndIndex:   end,
	}
	if total > 0 {
		info.StartIndex = start + 1
	}

	return items[start:end], info
}

// matches reports whether needle is a case-insensitive substring of haystack.
func matches(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// FilterGuests applies a free-text search and a status filter. The search
// matches guest name, event name, list type name, and sector name of loaded
// associations. An empty query matches everything.
func FilterGuests(guests []models.Guest, query string, status StatusFilter) []models.Guest {
	query = strings.TrimSpace(query)

	out := make([]models.Guest, 0, len(guests))
	for _, g := range guests {
		switch status {
		case StatusCheckedIn:
			if !g.CheckedIn {
				continue
			}
		case StatusPending:
			if g.CheckedIn {
				continue
			}
		}

		if query != "" && !guestMatches(g, query) {
			continue
		}
		out = append(out, g)
	}
	return out
}

func guestMatches(g models.Guest, query string) bool {
	if matches(g.Name, query) {
		return true
	}
	if g.Event != nil && matches(g.Event.Name, query) {
		return true
	}
	if g.EventList != nil {
		if matches(g.EventList.Name, query) {
			return true
		}
		if g.EventList.ListType != nil && matches(g.EventList.ListType.Name, query) {
			return true
		}
		if g.EventList.Sector != nil && matches(g.EventList.Sector.Name, query) {
			return true
		}
	}
	return false
}

// EventGroup is a set of guests submitted for the same event.
type EventGroup struct {
	EventID uint           `json:"event_id"`
	Event   *models.Event  `json:"event,omitempty"`
	Guests  []models.Guest `json:"guests"`
}

// GroupByEvent buckets guests by originating event, ordered by event ID for
// stable output.
func GroupByEvent(guests []models.Guest) []EventGroup {
	byEvent := make(map[uint]*EventGroup)
	for _, g := range guests {
		grp, ok := byEvent[g.EventID]
		if !ok {
			grp = &EventGroup{EventID: g.EventID, Event: g.Event}
			byEvent[g.EventID] = grp
		}
		if grp.Event == nil && g.Event != nil {
			grp.Event = g.Event
		}
		grp.Guests = append(grp.Guests, g)
	}

	out := make([]EventGroup, 0, len(byEvent))
	for _, grp := range byEvent {
		out = append(out, *grp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].EventID < out[j].EventID })
	return out
}

// FilterEvents applies a free-text search over event name, description, and
// location, and an optional status filter ("" matches all statuses).
func FilterEvents(events []models.Event, query string, status models.EventStatus) []models.Event {
	query = strings.TrimSpace(query)

	out := make([]models.Event, 0, len(events))
	for _, e := range events {
		if status != "" && e.Status != status {
			continue
		}
		if query != "" && !matches(e.Name, query) && !matches(e.Description, query) && !matches(e.Location, query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

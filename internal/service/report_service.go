package service

import (
	"context"
	"encoding/csv"
	"io"
	"time"

	"doorlist/internal/models"
	"doorlist/internal/repository"
)

// ReportService produces door reports and exports.
type ReportService struct {
	guestRepo repository.GuestRepository
	eventRepo repository.EventRepository
}

func NewReportService(guestRepo repository.GuestRepository, eventRepo repository.EventRepository) *ReportService {
	return &ReportService{guestRepo: guestRepo, eventRepo: eventRepo}
}

// EventReport summarizes arrivals for one event.
type EventReport struct {
	Event       *models.Event `json:"event"`
	TotalGuests int           `json:"total_guests"`
	CheckedIn   int           `json:"checked_in"`
	Pending     int           `json:"pending"`
	ByList      []ListReport  `json:"by_list"`
}

// ListReport summarizes arrivals for one list within an event.
type ListReport struct {
	ListID    uint   `json:"list_id"`
	ListName  string `json:"list_name"`
	Total     int    `json:"total"`
	CheckedIn int    `json:"checked_in"`
}

// EventSummary aggregates check-in counts for the event and each of its lists.
func (s *ReportService) EventSummary(ctx context.Context, eventID uint) (*EventReport, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	guests, err := s.guestRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	report := &EventReport{Event: event, TotalGuests: len(guests)}
	byList := make(map[uint]*ListReport)
	var order []uint

	for _, g := range guests {
		if g.CheckedIn {
			report.CheckedIn++
		}
		if g.EventListID == nil {
			continue
		}
		lr, ok := byList[*g.EventListID]
		if !ok {
			lr = &ListReport{ListID: *g.EventListID}
			if g.EventList != nil {
				lr.ListName = g.EventList.Name
			}
			byList[*g.EventListID] = lr
			order = append(order, *g.EventListID)
		}
		lr.Total++
		if g.CheckedIn {
			lr.CheckedIn++
		}
	}
	report.Pending = report.TotalGuests - report.CheckedIn

	for _, id := range order {
		report.ByList = append(report.ByList, *byList[id])
	}
	return report, nil
}

// ExportGuestsCSV streams the event's guest list as CSV.
func (s *ReportService) ExportGuestsCSV(ctx context.Context, eventID uint, w io.Writer) error {
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return err
	}
	guests, err := s.guestRepo.ListByEvent(ctx, eventID)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "list", "type", "sector", "status", "checked_in", "checked_in_at"}); err != nil {
		return models.NewInternalError(err)
	}

	for _, g := range guests {
		var listName, typeName, sectorName string
		if g.EventList != nil {
			listName = g.EventList.Name
			if g.EventList.ListType != nil {
				typeName = g.EventList.ListType.Name
			}
			if g.EventList.Sector != nil {
				sectorName = g.EventList.Sector.Name
			}
		}
		checkedIn := "no"
		var checkedInAt string
		if g.CheckedIn {
			checkedIn = "yes"
			if g.CheckedInAt != nil {
				checkedInAt = g.CheckedInAt.Format(time.RFC3339)
			}
		}
		row := []string{g.Name, listName, typeName, sectorName, string(g.Status), checkedIn, checkedInAt}
		if err := cw.Write(row); err != nil {
			return models.NewInternalError(err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

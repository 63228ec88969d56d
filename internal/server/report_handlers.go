package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// GetEventReport handles GET /api/events/:id/report
// @Summary Event check-in summary
// @Tags reports
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} service.EventReport
// @Failure 404 {object} models.ErrorResponse
// @Router /events/{id}/report [get]
func (s *Server) GetEventReport(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	report, err := s.reportService.EventSummary(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(report)
}

// ExportEventGuests handles GET /api/events/:id/export, streaming the guest
// list as a CSV attachment.
func (s *Server) ExportEventGuests(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="event-%d-guests.csv"`, id))

	if err := s.reportService.ExportGuestsCSV(c.Context(), id, c.Response().BodyWriter()); err != nil {
		return respondServiceError(c, err)
	}
	return nil
}

// GetActivity handles GET /api/admin/activity
func (s *Server) GetActivity(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	entries, total, err := s.activityService.ListActivity(c.Context(), limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"activity": entries,
		"total":    total,
	})
}

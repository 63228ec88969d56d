package server

import (
	"doorlist/internal/models"
	"doorlist/internal/service"

	"github.com/gofiber/fiber/v2"
)

type eventRequest struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	Location    string             `json:"location"`
	Status      models.EventStatus `json:"status"`
	Capacity    int                `json:"capacity"`
}

func (r eventRequest) toInput() service.EventInput {
	return service.EventInput{
		Name:        r.Name,
		Description: r.Description,
		Date:        r.Date,
		Time:        r.Time,
		Location:    r.Location,
		Status:      r.Status,
		Capacity:    r.Capacity,
	}
}

// GetEvents handles GET /api/events
// @Summary List events
// @Description Search and filter events with pagination
// @Tags events
// @Produce json
// @Param q query string false "Free-text search"
// @Param status query string false "Status filter (active|inactive|completed)"
// @Param page query int false "1-based page"
// @Param page_size query int false "Page size (default 20)"
// @Success 200 {object} object{events=[]models.Event,page_info=listing.PageInfo}
// @Router /events [get]
func (s *Server) GetEvents(c *fiber.Ctx) error {
	page, pageSize := parsePage(c)
	events, info, err := s.eventService.ListEvents(
		c.Context(), c.Query("q"), models.EventStatus(c.Query("status")), page, pageSize)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"events":    events,
		"page_info": info,
	})
}

// GetEvent handles GET /api/events/:id
func (s *Server) GetEvent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	event, err := s.eventService.GetEventWithLists(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"event": event})
}

// CreateEvent handles POST /api/events
func (s *Server) CreateEvent(c *fiber.Ctx) error {
	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	event, err := s.eventService.CreateEvent(c.Context(), req.toInput(), actorID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"event": event})
}

// UpdateEvent handles PUT /api/events/:id
func (s *Server) UpdateEvent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req eventRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	event, err := s.eventService.UpdateEvent(c.Context(), id, req.toInput(), actorID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"event": event})
}

// DeleteEvent handles DELETE /api/events/:id
func (s *Server) DeleteEvent(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.eventService.DeleteEvent(c.Context(), id, actorID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Event deleted"})
}

// GetEventActivity handles GET /api/events/:id/activity
func (s *Server) GetEventActivity(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	entries, err := s.activityService.ListActivityByEvent(c.Context(), id, limit, offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"activity": entries})
}

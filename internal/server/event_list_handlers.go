package server

import (
	"doorlist/internal/models"
	"doorlist/internal/service"

	"github.com/gofiber/fiber/v2"
)

type eventListRequest struct {
	Name        string `json:"name"`
	EventID     uint   `json:"event_id"`
	ListTypeID  uint   `json:"list_type_id"`
	SectorID    uint   `json:"sector_id"`
	MaxCapacity int    `json:"max_capacity"`
}

func (r eventListRequest) toInput() service.EventListInput {
	return service.EventListInput{
		Name:        r.Name,
		EventID:     r.EventID,
		ListTypeID:  r.ListTypeID,
		SectorID:    r.SectorID,
		MaxCapacity: r.MaxCapacity,
	}
}

// GetLists handles GET /api/lists
func (s *Server) GetLists(c *fiber.Ctx) error {
	lists, err := s.listService.AllLists(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"lists": lists})
}

// GetEventLists handles GET /api/events/:id/lists
func (s *Server) GetEventLists(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	lists, err := s.listService.ListsByEvent(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"lists": lists})
}

// GetList handles GET /api/lists/:id
func (s *Server) GetList(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	list, err := s.listService.GetListByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"list": list})
}

// CreateList handles POST /api/lists
func (s *Server) CreateList(c *fiber.Ctx) error {
	var req eventListRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	list, err := s.listService.CreateList(c.Context(), req.toInput(), actorID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"list": list})
}

// UpdateList handles PUT /api/lists/:id
func (s *Server) UpdateList(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req eventListRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	list, err := s.listService.UpdateList(c.Context(), id, req.toInput(), actorID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"list": list})
}

// DeleteList handles DELETE /api/lists/:id
func (s *Server) DeleteList(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.listService.DeleteList(c.Context(), id, actorID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "List deleted"})
}

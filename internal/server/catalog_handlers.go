package server

import (
	"doorlist/internal/models"
	"doorlist/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetListTypes handles GET /api/list-types
func (s *Server) GetListTypes(c *fiber.Ctx) error {
	types, err := s.catalogService.ListTypes(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"list_types": types})
}

// CreateListType handles POST /api/list-types
func (s *Server) CreateListType(c *fiber.Ctx) error {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Color       string `json:"color"`
		Active      *bool  `json:"active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	lt, err := s.catalogService.CreateListType(c.Context(), service.ListTypeInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Active:      req.Active,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"list_type": lt})
}

// UpdateListType handles PUT /api/list-types/:id
func (s *Server) UpdateListType(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Color       string `json:"color"`
		Active      *bool  `json:"active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	lt, err := s.catalogService.UpdateListType(c.Context(), id, service.ListTypeInput{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Active:      req.Active,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"list_type": lt})
}

// DeleteListType handles DELETE /api/list-types/:id
func (s *Server) DeleteListType(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.catalogService.DeleteListType(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "List type deleted"})
}

// GetSectors handles GET /api/sectors
func (s *Server) GetSectors(c *fiber.Ctx) error {
	sectors, err := s.catalogService.ListSectors(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"sectors": sectors})
}

// CreateSector handles POST /api/sectors
func (s *Server) CreateSector(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Color    string `json:"color"`
		Capacity int    `json:"capacity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	sector, err := s.catalogService.CreateSector(c.Context(), service.SectorInput{
		Name:     req.Name,
		Color:    req.Color,
		Capacity: req.Capacity,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sector": sector})
}

// UpdateSector handles PUT /api/sectors/:id
func (s *Server) UpdateSector(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name     string `json:"name"`
		Color    string `json:"color"`
		Capacity int    `json:"capacity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	sector, err := s.catalogService.UpdateSector(c.Context(), id, service.SectorInput{
		Name:     req.Name,
		Color:    req.Color,
		Capacity: req.Capacity,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"sector": sector})
}

// DeleteSector handles DELETE /api/sectors/:id
func (s *Server) DeleteSector(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.catalogService.DeleteSector(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Sector deleted"})
}

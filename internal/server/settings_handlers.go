package server

import (
	"doorlist/internal/models"

	"github.com/gofiber/fiber/v2"
)

// publicSettingKeys is the subset of settings exposed without authentication.
var publicSettingKeys = []string{
	models.SettingSiteName,
	models.SettingSiteDescription,
	models.SettingPublicSubmissionEnabled,
}

// GetPublicSettings handles GET /api/settings/public
func (s *Server) GetPublicSettings(c *fiber.Ctx) error {
	all, err := s.settingsService.GetAll(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	public := make(map[string]string, len(publicSettingKeys))
	for _, key := range publicSettingKeys {
		if v, ok := all[key]; ok {
			public[key] = v
		}
	}
	return c.JSON(fiber.Map{"settings": public})
}

// GetSettings handles GET /api/settings
func (s *Server) GetSettings(c *fiber.Ctx) error {
	all, err := s.settingsService.GetAll(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"settings": all})
}

// UpdateSetting handles PUT /api/settings/:key
func (s *Server) UpdateSetting(c *fiber.Ctx) error {
	key := c.Params("key")

	var req struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.settingsService.Update(c.Context(), key, req.Value, actorID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Setting updated"})
}

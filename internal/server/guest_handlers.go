package server

import (
	"doorlist/internal/models"
	"doorlist/internal/service"

	"github.com/gofiber/fiber/v2"
)

// SubmitGuests handles POST /api/guests
// @Summary Submit guest names
// @Description Validate and add a batch of guest names to an event list. All names land or none do.
// @Tags guests
// @Accept json
// @Produce json
// @Param request body object{event_list_id=int,names=string} true "Submission"
// @Success 201 {object} object{guests=[]models.Guest}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /guests [post]
func (s *Server) SubmitGuests(c *fiber.Ctx) error {
	var req struct {
		EventListID uint   `json:"event_list_id"`
		Names       string `json:"names"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	submitter := actorID(c)
	guests, err := s.guestService.SubmitGuests(c.Context(), service.SubmitGuestsInput{
		EventListID: req.EventListID,
		RawNames:    req.Names,
		SubmittedBy: &submitter,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"guests": guests})
}

// SubmitGuestsPublic handles POST /api/public/guests: the anonymous submission
// form. Gated by the public_submission_enabled site setting and rate-limited.
func (s *Server) SubmitGuestsPublic(c *fiber.Ctx) error {
	if !s.settingsService.PublicSubmissionEnabled(c.Context()) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("Public guest submission is disabled"))
	}

	var req struct {
		EventListID uint   `json:"event_list_id"`
		Names       string `json:"names"`
		SenderName  string `json:"sender_name"`
		SenderEmail string `json:"sender_email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.SenderName == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Sender name is required"))
	}

	guests, err := s.guestService.SubmitGuests(c.Context(), service.SubmitGuestsInput{
		EventListID: req.EventListID,
		RawNames:    req.Names,
		SenderName:  req.SenderName,
		SenderEmail: req.SenderEmail,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"guests": guests})
}

// GetGuests handles GET /api/guests with search, status filter, and pagination.
func (s *Server) GetGuests(c *fiber.Ctx) error {
	page, pageSize := parsePage(c)
	guests, info, err := s.guestService.ListGuests(
		c.Context(), c.Query("q"), parseStatusFilter(c), page, pageSize)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"guests":    guests,
		"page_info": info,
	})
}

// GetGuestsGrouped handles GET /api/guests/grouped, bucketing matches per event
// for the door view.
func (s *Server) GetGuestsGrouped(c *fiber.Ctx) error {
	groups, err := s.guestService.GroupedByEvent(c.Context(), c.Query("q"), parseStatusFilter(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"groups": groups})
}

// GetEventGuests handles GET /api/events/:id/guests
func (s *Server) GetEventGuests(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	guests, err := s.guestService.ListGuestsByEvent(c.Context(), id, c.Query("q"), parseStatusFilter(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"guests": guests})
}

// GetListGuests handles GET /api/lists/:id/guests
func (s *Server) GetListGuests(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	guests, err := s.guestService.ListGuestsByList(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"guests": guests})
}

// GetGuest handles GET /api/guests/:id
func (s *Server) GetGuest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	guest, err := s.guestService.GetGuestByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"guest": guest})
}

// CheckInGuest handles POST /api/guests/:id/checkin
// @Summary Check in a guest
// @Description Mark a guest as arrived. Repeat check-ins are no-ops that keep the original record.
// @Tags guests
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} object{guest=models.Guest}
// @Failure 404 {object} models.ErrorResponse
// @Router /guests/{id}/checkin [post]
func (s *Server) CheckInGuest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	guest, err := s.guestService.CheckIn(c.Context(), id, actorID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"guest": guest})
}

// CheckOutGuest handles POST /api/guests/:id/checkout
func (s *Server) CheckOutGuest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	guest, err := s.guestService.CheckOut(c.Context(), id, actorID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"guest": guest})
}

// SetGuestStatus handles POST /api/guests/:id/status
func (s *Server) SetGuestStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status models.GuestStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	guest, err := s.guestService.SetStatus(c.Context(), id, actorID(c), req.Status)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"guest": guest})
}

// DeleteGuest handles DELETE /api/guests/:id
func (s *Server) DeleteGuest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.guestService.DeleteGuest(c.Context(), id, actorID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Guest deleted"})
}

package server

import (
	"errors"

	"doorlist/internal/listing"
	"doorlist/internal/models"
	"doorlist/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// parsePage extracts 1-based page and page_size query parameters.
func parsePage(c *fiber.Ctx) (page, pageSize int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	pageSize = c.QueryInt("page_size", defaultPageSize)
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}

// parseStatusFilter reads the ?status= query parameter, defaulting to all.
func parseStatusFilter(c *fiber.Ctx) listing.StatusFilter {
	switch listing.StatusFilter(c.Query("status")) {
	case listing.StatusCheckedIn:
		return listing.StatusCheckedIn
	case listing.StatusPending:
		return listing.StatusPending
	default:
		return listing.StatusAll
	}
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// actorID returns the authenticated user's ID stored by AuthRequired.
func actorID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}

// respondServiceError maps the AppError taxonomy onto HTTP statuses and writes
// the standard error body. Unknown errors become 500.
func respondServiceError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	observability.RecordErrorInContext(c.UserContext(), err)

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "VALIDATION_ERROR", "EMPTY_SUBMISSION", "TOO_MANY_NAMES", "NAME_TOO_LONG":
			status = fiber.StatusBadRequest
		case "UNAUTHORIZED":
			status = fiber.StatusUnauthorized
		case "FORBIDDEN":
			status = fiber.StatusForbidden
		case "CONFLICT", "CAPACITY_EXCEEDED":
			status = fiber.StatusConflict
		}
	}

	return models.RespondWithError(c, status, err)
}

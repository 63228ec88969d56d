package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError represents a custom application error
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Predefined error constructors
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
	}
}

func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    "CONFLICT",
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "Internal server error",
		Err:     err,
	}
}

// Guest submission error constructors. These carry distinct codes so clients
// can render specific messages without parsing text.
func NewEmptySubmissionError() *AppError {
	return &AppError{
		Code:    "EMPTY_SUBMISSION",
		Message: "No guest names provided",
	}
}

func NewTooManyNamesError(got, max int) *AppError {
	return &AppError{
		Code:    "TOO_MANY_NAMES",
		Message: fmt.Sprintf("Too many names: %d exceeds the limit of %d per submission", got, max),
	}
}

func NewNameTooLongError(name string, max int) *AppError {
	return &AppError{
		Code:    "NAME_TOO_LONG",
		Message: fmt.Sprintf("Name %q exceeds the maximum length of %d characters", name, max),
	}
}

// NewCapacityExceededError reports by how many guests the submission would
// overflow the list's maximum capacity.
func NewCapacityExceededError(overflow int) *AppError {
	return &AppError{
		Code:    "CAPACITY_EXCEEDED",
		Message: fmt.Sprintf("List capacity exceeded by %d guest(s)", overflow),
	}
}

// RespondWithError creates a standardized error response
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var response ErrorResponse

	if appErr, ok := err.(*AppError); ok {
		response = ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		}
		if appErr.Err != nil {
			response.Details = appErr.Err.Error()
		}
	} else {
		response = ErrorResponse{
			Error: err.Error(),
		}
	}

	return c.Status(status).JSON(response)
}

package server

import (
	"doorlist/internal/models"
	"doorlist/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /api/admin/users
// @Summary Create a staff account
// @Description Create a user with an explicit role. The user row and the audit entry commit together.
// @Tags admin
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string,name=string,role=string} true "New user"
// @Success 200 {object} object{success=bool,message=string,user=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /admin/users [post]
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Name     string      `json:"name"`
		Role     models.Role `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.CreateUser(c.Context(), service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		ActorID:  actorID(c),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"user":    user,
	})
}

// GetUsers handles GET /api/admin/users
// @Summary List all users
// @Tags admin
// @Produce json
// @Success 200 {object} object{users=[]models.User}
// @Router /admin/users [get]
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"users": users})
}

// UpdateUserRole handles PUT /api/admin/users/:id/role
func (s *Server) UpdateUserRole(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Role models.Role `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateRole(c.Context(), id, req.Role)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}

// DeleteUser handles DELETE /api/admin/users/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(c.Context(), id, actorID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}

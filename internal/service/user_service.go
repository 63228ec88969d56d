package service

import (
	"context"
	"fmt"

	"doorlist/internal/models"
	"doorlist/internal/repository"
	"doorlist/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
	ActorID  uint
}

// CreateUser creates a staff account with an explicit role. The user row and
// the audit entry commit in one transaction.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if err := validation.ValidateDisplayName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateRole(in.Role); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("A user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: string(hashed),
		Role:     in.Role,
	}

	actorID := in.ActorID
	log := &models.ActivityLog{
		UserID:  &actorID,
		Action:  models.ActionUserCreated,
		Details: fmt.Sprintf("Created user %s (%s) with role %s", in.Name, in.Email, in.Role),
	}
	if actorID == 0 {
		log.UserID = nil
	}

	if err := s.userRepo.CreateWithLog(ctx, user, log); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and returns the user.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid email or password")
	}
	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers returns all staff accounts, newest first.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateRole changes a user's role.
func (s *UserService) UpdateRole(ctx context.Context, targetID uint, role models.Role) (*models.User, error) {
	if err := validation.ValidateRole(role); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a staff account. Admins cannot delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, targetID, actorID uint) error {
	if targetID == actorID {
		return models.NewValidationError("You cannot delete your own account")
	}
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	log := &models.ActivityLog{
		UserID:  &actorID,
		Action:  models.ActionUserDeleted,
		Details: fmt.Sprintf("Deleted user %s (%s)", target.Name, target.Email),
	}
	return s.userRepo.DeleteWithLog(ctx, targetID, log)
}

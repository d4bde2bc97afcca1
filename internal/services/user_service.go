package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	apierrors "github.com/taskops/taskstore/internal/errors"
	"github.com/taskops/taskstore/internal/models"
	"github.com/taskops/taskstore/internal/repository"
)

// UserService handles user business logic
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents validated input for creating a user. The nested
// profile arrives already flattened.
type CreateUserInput struct {
	Username string
	FullName string
	Role     models.UserRole
	Email    string
	Phone    string
	Address  string
}

// ListUsers returns all users, or only those with the given role.
func (s *UserService) ListUsers(role *models.UserRole) ([]models.User, error) {
	users, err := s.userRepo.List(role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CreateUser persists a new user after checking username uniqueness.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	_, err := s.userRepo.FindByUsername(input.Username)
	if err == nil {
		return nil, apierrors.NewUsernameTaken(input.Username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	phone := input.Phone
	address := input.Address
	user := &models.User{
		Username: input.Username,
		FullName: input.FullName,
		Role:     input.Role,
		Email:    input.Email,
		Phone:    &phone,
		Address:  &address,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUser returns the user with the given ID.
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewUserNotFound(id)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

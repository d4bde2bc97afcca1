package dto

import (
	"time"

	"github.com/taskops/taskstore/internal/models"
)

// ProfileRequest carries the nested contact information of a new user.
type ProfileRequest struct {
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Username string         `json:"username" validate:"required,min=3,max=50"`
	FullName string         `json:"full_name" validate:"required"`
	Role     string         `json:"role" validate:"required,oneof=admin manager team_member"`
	Profile  ProfileRequest `json:"profile" validate:"required"`
}

// UserResponse represents a user in API responses. Profile fields are
// flattened onto the top level.
type UserResponse struct {
	ID        uint64          `json:"id"`
	Username  string          `json:"username"`
	FullName  string          `json:"full_name"`
	Role      models.UserRole `json:"role"`
	Email     string          `json:"email"`
	Phone     *string         `json:"phone"`
	Address   *string         `json:"address"`
	CreatedAt time.Time       `json:"created_at"`
}

// ToUserResponse converts a User model to UserResponse
func ToUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Role:      user.Role,
		Email:     user.Email,
		Phone:     user.Phone,
		Address:   user.Address,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserResponses converts a slice of users, keeping an empty (non-nil) slice
// so list responses marshal as [].
func ToUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}

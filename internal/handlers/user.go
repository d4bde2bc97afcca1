package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskops/taskstore/internal/dto"
	apierrors "github.com/taskops/taskstore/internal/errors"
	"github.com/taskops/taskstore/internal/models"
	"github.com/taskops/taskstore/internal/services"
	"github.com/taskops/taskstore/internal/validation"
)

// UserHandler coordinates user-related HTTP handlers.
type UserHandler struct {
	userService *services.UserService
	validator   *validation.Validator
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService, validator *validation.Validator) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
	}
}

// ListUsers returns all users, optionally filtered by role.
func (h *UserHandler) ListUsers(c *gin.Context) {
	var role *models.UserRole
	if roleStr := c.Query("role"); roleStr != "" {
		r := models.UserRole(roleStr)
		role = &r
	}

	users, err := h.userService.ListUsers(role)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

// CreateUser creates a new user.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if verr := h.validator.ValidateCreateUser(&req); verr != nil {
		apierrors.UnprocessableEntity(c, verr)
		return
	}

	user, err := h.userService.CreateUser(services.CreateUserInput{
		Username: req.Username,
		FullName: req.FullName,
		Role:     models.UserRole(req.Role),
		Email:    req.Profile.Email,
		Phone:    req.Profile.Phone,
		Address:  req.Profile.Address,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(*user))
}

// GetUser returns a specific user by ID.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(*user))
}

package repository

import (
	"github.com/taskops/taskstore/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// ExistsByID reports whether a user with the given ID exists
	ExistsByID(id uint64) (bool, error)

	// List retrieves users, optionally filtered by role, in insertion order
	List(role *models.UserRole) ([]models.User, error)
}

// TaskFilter holds the optional equality filters for listing tasks. All set
// filters are combined with AND semantics.
type TaskFilter struct {
	Status     *models.TaskStatus
	Priority   *int
	AssignedTo *uint64
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)

	// List retrieves tasks matching the filter, in insertion order
	List(filter TaskFilter) ([]models.Task, error)

	// Update persists all fields of an existing task
	Update(task *models.Task) error
}

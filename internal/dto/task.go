package dto

import (
	"time"

	"github.com/taskops/taskstore/internal/models"
)

// TaskRequest is the body of POST /tasks and PUT /tasks/:id. Updates take the
// full field set; there are no partial patch semantics.
type TaskRequest struct {
	Title       string  `json:"title" validate:"required,capitalized"`
	Description string  `json:"description" validate:"required,max=1000"`
	Priority    int     `json:"priority" validate:"required,min=1,max=5"`
	Status      string  `json:"status" validate:"required,oneof=pending in_progress completed"`
	AssignedTo  *uint64 `json:"assigned_to" validate:"omitempty,min=1"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Priority    int               `json:"priority"`
	Status      models.TaskStatus `json:"status"`
	AssignedTo  *uint64           `json:"assigned_to"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   *time.Time        `json:"updated_at"`
}

// ToTaskResponse converts a Task model to TaskResponse
func ToTaskResponse(task models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		Status:      task.Status,
		AssignedTo:  task.AssignedTo,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskResponses converts a slice of tasks, keeping an empty (non-nil) slice
// so list responses marshal as [].
func ToTaskResponses(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskResponse(task)
	}
	return responses
}

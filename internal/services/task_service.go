package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apierrors "github.com/taskops/taskstore/internal/errors"
	"github.com/taskops/taskstore/internal/models"
	"github.com/taskops/taskstore/internal/repository"
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
	}
}

// TaskInput represents validated input for creating or updating a task.
// Updates always carry the full field set.
type TaskInput struct {
	Title       string
	Description string
	Priority    int
	Status      models.TaskStatus
	AssignedTo  *uint64
}

// ListTasksInput represents the optional filters for listing tasks.
type ListTasksInput struct {
	Status     *models.TaskStatus
	Priority   *int
	AssignedTo *uint64
}

// ListTasks returns tasks matching every set filter.
func (s *TaskService) ListTasks(input ListTasksInput) ([]models.Task, error) {
	tasks, err := s.taskRepo.List(repository.TaskFilter{
		Status:     input.Status,
		Priority:   input.Priority,
		AssignedTo: input.AssignedTo,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask persists a new task. When an assignee is given the referenced
// user must exist at the moment of write.
func (s *TaskService) CreateTask(input TaskInput) (*models.Task, error) {
	if err := s.ensureAssigneeExists(input.AssignedTo); err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
		AssignedTo:  input.AssignedTo,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// GetTask returns the task with the given ID.
func (s *TaskService) GetTask(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewTaskNotFound(id)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// UpdateTask overwrites every mutable field of an existing task and refreshes
// its updated_at timestamp.
func (s *TaskService) UpdateTask(id uint64, input TaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.NewTaskNotFound(id)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.ensureAssigneeExists(input.AssignedTo); err != nil {
		return nil, err
	}

	now := time.Now()
	task.Title = input.Title
	task.Description = input.Description
	task.Priority = input.Priority
	task.Status = input.Status
	task.AssignedTo = input.AssignedTo
	task.UpdatedAt = &now

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

func (s *TaskService) ensureAssigneeExists(assignedTo *uint64) error {
	if assignedTo == nil {
		return nil
	}

	exists, err := s.userRepo.ExistsByID(*assignedTo)
	if err != nil {
		return fmt.Errorf("failed to verify assigned user: %w", err)
	}
	if !exists {
		return apierrors.NewAssigneeNotFound(*assignedTo)
	}
	return nil
}

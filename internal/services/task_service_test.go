package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	apierrors "github.com/taskops/taskstore/internal/errors"
	"github.com/taskops/taskstore/internal/models"
	"github.com/taskops/taskstore/internal/repository"
)

func newTestServices(t *testing.T) (*TaskService, *UserService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	return NewTaskService(taskRepo, userRepo), NewUserService(userRepo)
}

func validTaskInput() TaskInput {
	return TaskInput{
		Title:       "Deploy service",
		Description: "desc",
		Priority:    5,
		Status:      models.TaskStatusPending,
	}
}

func TestCreateTask_WithoutAssigneeSucceeds(t *testing.T) {
	taskService, _ := newTestServices(t)

	task, err := taskService.CreateTask(validTaskInput())
	require.NoError(t, err)

	assert.NotZero(t, task.ID)
	assert.NotZero(t, task.CreatedAt)
	assert.Nil(t, task.UpdatedAt)
	assert.Nil(t, task.AssignedTo)
}

func TestCreateTask_DanglingAssignee(t *testing.T) {
	taskService, _ := newTestServices(t)

	input := validTaskInput()
	missing := uint64(42)
	input.AssignedTo = &missing

	_, err := taskService.CreateTask(input)

	var conflict *apierrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "User with ID 42 not found", conflict.Message)
}

func TestCreateTask_ExistingAssignee(t *testing.T) {
	taskService, userService := newTestServices(t)

	user, err := userService.CreateUser(CreateUserInput{
		Username: "john_doe",
		FullName: "John Doe",
		Role:     models.RoleManager,
		Email:    "j@x.com",
		Phone:    "+1",
		Address:  "A",
	})
	require.NoError(t, err)

	input := validTaskInput()
	input.AssignedTo = &user.ID

	task, err := taskService.CreateTask(input)
	require.NoError(t, err)
	require.NotNil(t, task.AssignedTo)
	assert.Equal(t, user.ID, *task.AssignedTo)
}

func TestGetTask_NotFound(t *testing.T) {
	taskService, _ := newTestServices(t)

	_, err := taskService.GetTask(7)

	var notFound *apierrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Task with ID 7 not found", notFound.Message)
}

func TestUpdateTask_NotFound(t *testing.T) {
	taskService, _ := newTestServices(t)

	_, err := taskService.UpdateTask(99, validTaskInput())

	var notFound *apierrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Task with ID 99 not found", notFound.Message)
}

func TestUpdateTask_OverwritesAllFieldsAndRefreshesTimestamp(t *testing.T) {
	taskService, _ := newTestServices(t)

	created, err := taskService.CreateTask(validTaskInput())
	require.NoError(t, err)
	require.Nil(t, created.UpdatedAt)

	updated, err := taskService.UpdateTask(created.ID, TaskInput{
		Title:       "Redeploy service",
		Description: "new desc",
		Priority:    1,
		Status:      models.TaskStatusCompleted,
	})
	require.NoError(t, err)

	assert.Equal(t, "Redeploy service", updated.Title)
	assert.Equal(t, "new desc", updated.Description)
	assert.Equal(t, 1, updated.Priority)
	assert.Equal(t, models.TaskStatusCompleted, updated.Status)
	assert.Nil(t, updated.AssignedTo)
	require.NotNil(t, updated.UpdatedAt)

	first := *updated.UpdatedAt
	again, err := taskService.UpdateTask(created.ID, TaskInput{
		Title:       "Redeploy service",
		Description: "new desc",
		Priority:    1,
		Status:      models.TaskStatusPending,
	})
	require.NoError(t, err)
	require.NotNil(t, again.UpdatedAt)
	assert.False(t, again.UpdatedAt.Before(first))
}

func TestUpdateTask_DanglingAssignee(t *testing.T) {
	taskService, _ := newTestServices(t)

	created, err := taskService.CreateTask(validTaskInput())
	require.NoError(t, err)

	input := validTaskInput()
	missing := uint64(5)
	input.AssignedTo = &missing

	_, err = taskService.UpdateTask(created.ID, input)

	var conflict *apierrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "User with ID 5 not found", conflict.Message)
}

func TestListTasks_FiltersAreConjunctive(t *testing.T) {
	taskService, _ := newTestServices(t)

	seeds := []TaskInput{
		{Title: "Match", Description: "d", Priority: 3, Status: models.TaskStatusPending},
		{Title: "Wrong priority", Description: "d", Priority: 1, Status: models.TaskStatusPending},
		{Title: "Wrong status", Description: "d", Priority: 3, Status: models.TaskStatusCompleted},
	}
	for _, seed := range seeds {
		_, err := taskService.CreateTask(seed)
		require.NoError(t, err)
	}

	status := models.TaskStatusPending
	priority := 3
	tasks, err := taskService.ListTasks(ListTasksInput{Status: &status, Priority: &priority})
	require.NoError(t, err)

	require.Len(t, tasks, 1)
	assert.Equal(t, "Match", tasks[0].Title)
}

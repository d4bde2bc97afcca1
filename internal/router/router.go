package router

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/taskops/taskstore/internal/config"
	"github.com/taskops/taskstore/internal/handlers"
	"github.com/taskops/taskstore/internal/middleware"
	"github.com/taskops/taskstore/internal/repository"
	"github.com/taskops/taskstore/internal/services"
	"github.com/taskops/taskstore/internal/validation"
)

// Setup builds the gin engine with all dependencies wired. The database
// handle is passed down explicitly; nothing here holds global state.
func Setup(cfg *config.Config, logger *logrus.Logger, db *gorm.DB) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestLogger(logger))
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS))

	validator := validation.New()

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	userService := services.NewUserService(userRepo)
	taskService := services.NewTaskService(taskRepo, userRepo)

	userHandler := handlers.NewUserHandler(userService, validator)
	taskHandler := handlers.NewTaskHandler(taskService, validator)
	systemHandler := handlers.NewSystemHandler(db, cfg.Static.Dir)

	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)

	if cfg.Static.Dir != "" {
		r.Static("/static", cfg.Static.Dir)
	}

	users := r.Group("/users")
	{
		users.GET("", userHandler.ListUsers)
		users.POST("", userHandler.CreateUser)
		users.GET("/:id", userHandler.GetUser)
	}

	tasks := r.Group("/tasks")
	{
		tasks.GET("", taskHandler.ListTasks)
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:id", taskHandler.GetTask)
		tasks.PUT("/:id", taskHandler.UpdateTask)
	}

	return r
}

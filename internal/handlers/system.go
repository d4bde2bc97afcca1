package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/taskops/taskstore/internal/database"
)

// SystemHandler serves the root and health endpoints.
type SystemHandler struct {
	db        *gorm.DB
	staticDir string
}

// NewSystemHandler creates a new SystemHandler. staticDir may be empty.
func NewSystemHandler(db *gorm.DB, staticDir string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		staticDir: staticDir,
	}
}

// Root serves the frontend index when a static directory is configured,
// falling back to a JSON welcome payload.
func (h *SystemHandler) Root(c *gin.Context) {
	if h.staticDir != "" {
		index := filepath.Join(h.staticDir, "index.html")
		if _, err := os.Stat(index); err == nil {
			c.File(index)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Task Management API",
		"endpoints": gin.H{
			"users": "/users",
			"tasks": "/tasks",
		},
	})
}

// Health reports service and database status.
func (h *SystemHandler) Health(c *gin.Context) {
	dbStatus := "connected"
	if err := database.Ping(h.db); err != nil {
		dbStatus = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbStatus,
	})
}

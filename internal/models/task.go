package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// ValidTaskStatus reports whether s is one of the known task statuses.
func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description string     `gorm:"type:varchar(1000);not null" json:"description"`
	Priority    int        `gorm:"not null" json:"priority"`
	Status      TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	AssignedTo  *uint64    `gorm:"index" json:"assigned_to"`

	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt stays NULL until the first successful update; the service
	// sets it explicitly instead of relying on GORM's tracking.
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`

	// Relations
	AssignedUser *User `gorm:"foreignKey:AssignedTo" json:"-"`
}

package models

import "time"

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleManager    UserRole = "manager"
	RoleTeamMember UserRole = "team_member"
)

type User struct {
	ID       uint64   `gorm:"primarykey" json:"id"`
	Username string   `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	FullName string   `gorm:"type:varchar(100);not null" json:"full_name"`
	Role     UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Profile fields, stored flat on the user row
	Email   string  `gorm:"type:varchar(100);not null" json:"email"`
	Phone   *string `gorm:"type:varchar(20)" json:"phone"`
	Address *string `gorm:"type:varchar(200)" json:"address"`

	CreatedAt time.Time `json:"created_at"`

	// Relations
	Tasks []Task `gorm:"foreignKey:AssignedTo" json:"-"`
}

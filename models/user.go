package models

import "time"

// User roles
const (
	UserRoleAdmin    = "admin"
	UserRoleOperator = "operator"
)

// User represents a console operator account
type User struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:255;not null" json:"email" validate:"required,email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	DisplayName  *string    `gorm:"size:255" json:"display_name,omitempty"`
	Role         string     `gorm:"size:50;not null;default:operator" json:"role"`
	IsActive     bool       `gorm:"default:true;index" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// UserFilter represents filter criteria for user queries
type UserFilter struct {
	ID       *uint   `json:"id,omitempty"`
	Email    *string `json:"email,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

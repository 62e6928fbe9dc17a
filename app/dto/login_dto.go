package dto

import (
	"time"
)

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255" example:"operator@example.com"`
	Password string `json:"password" validate:"required,min=8,max=100" example:"SecurePass123!"`
}

// UserInfo represents user information returned in login response
type UserInfo struct {
	ID          uint    `json:"id" example:"123"`
	Email       string  `json:"email" example:"operator@example.com"`
	DisplayName *string `json:"display_name,omitempty" example:"Ops Desk"`
	Role        string  `json:"role" example:"operator"`
	IsActive    bool    `json:"is_active" example:"true"`
	CreatedAt   string  `json:"created_at" example:"2024-01-15T10:30:00Z"`
}

// SessionDTO represents the issued token pair
type SessionDTO struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type" example:"Bearer"`
	ExpiresIn    int       `json:"expires_in" example:"86400"`
	ExpiresAt    time.Time `json:"expires_at" example:"2024-01-16T10:30:00Z"`
}

// LoginResponse represents the successful login response
type LoginResponse struct {
	User    UserInfo   `json:"user"`
	Session SessionDTO `json:"session"`
}

// RefreshTokenRequest represents the request to refresh a token pair
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

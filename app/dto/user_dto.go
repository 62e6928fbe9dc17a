package dto

// CreateUserRequest represents the request to create a console user
type CreateUserRequest struct {
	Email       string  `json:"email" validate:"required,email,max=255" example:"new.operator@example.com"`
	Password    string  `json:"password" validate:"required,min=8,max=100" example:"SecurePass123!"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=255"`
	Role        string  `json:"role,omitempty" validate:"omitempty,oneof=admin operator" example:"operator"`
}

// UpdateUserRequest represents the request to patch a console user
type UpdateUserRequest struct {
	UserID      uint    `json:"-"`
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,max=255"`
	Role        *string `json:"role,omitempty" validate:"omitempty,oneof=admin operator"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// ListUsersResponse represents the console user roster
type ListUsersResponse struct {
	Users []UserInfo `json:"users"`
	Total int64      `json:"total" example:"4"`
}

package businessflow

import (
	"context"
	"strings"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/repository"
	"github.com/prospectra/lead-console/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserFlow handles console user administration
type UserFlow interface {
	List(ctx context.Context) (*dto.ListUsersResponse, error)
	Create(ctx context.Context, request *dto.CreateUserRequest, metadata *ClientMetadata) (*dto.UserInfo, error)
	Update(ctx context.Context, request *dto.UpdateUserRequest, metadata *ClientMetadata) (*dto.UserInfo, error)
	Delete(ctx context.Context, userID uint) error
}

// UserFlowImpl implements the user administration business flow
type UserFlowImpl struct {
	userRepo repository.UserRepository
	db       *gorm.DB
}

// NewUserFlow creates a new user flow instance
func NewUserFlow(userRepo repository.UserRepository, db *gorm.DB) UserFlow {
	return &UserFlowImpl{
		userRepo: userRepo,
		db:       db,
	}
}

// List returns all console users, newest first
func (uf *UserFlowImpl) List(ctx context.Context) (*dto.ListUsersResponse, error) {
	users, err := uf.userRepo.ByFilter(ctx, models.UserFilter{}, "", 0, 0)
	if err != nil {
		return nil, NewBusinessError("USER_LIST_FAILED", "Failed to list users", err)
	}

	total, err := uf.userRepo.Count(ctx, models.UserFilter{})
	if err != nil {
		return nil, NewBusinessError("USER_LIST_FAILED", "Failed to count users", err)
	}

	out := make([]dto.UserInfo, 0, len(users))
	for _, user := range users {
		out = append(out, ToUserInfo(*user))
	}

	return &dto.ListUsersResponse{
		Users: out,
		Total: total,
	}, nil
}

// Create provisions a new console account with a hashed password
func (uf *UserFlowImpl) Create(ctx context.Context, request *dto.CreateUserRequest, metadata *ClientMetadata) (*dto.UserInfo, error) {
	email := strings.TrimSpace(strings.ToLower(request.Email))

	existing, err := uf.userRepo.ByEmail(ctx, email)
	if err != nil {
		return nil, NewBusinessError("USER_CREATE_FAILED", "Failed to check email", err)
	}
	if existing != nil {
		return nil, NewBusinessError("USER_EMAIL_EXISTS", "Email already registered", ErrEmailAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewBusinessError("USER_CREATE_FAILED", "Failed to hash password", err)
	}

	role := request.Role
	if role == "" {
		role = models.UserRoleOperator
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  request.DisplayName,
		Role:         role,
		IsActive:     true,
	}

	if err := uf.userRepo.Save(ctx, user); err != nil {
		return nil, NewBusinessError("USER_CREATE_FAILED", "Failed to create user", err)
	}

	out := ToUserInfo(*user)
	return &out, nil
}

// Update patches display name, role, or the active flag of a user
func (uf *UserFlowImpl) Update(ctx context.Context, request *dto.UpdateUserRequest, metadata *ClientMetadata) (*dto.UserInfo, error) {
	if request.DisplayName == nil && request.Role == nil && request.IsActive == nil {
		return nil, NewBusinessError("USER_VALIDATION_FAILED", "No fields to update", ErrUserUpdateFieldsRequired)
	}

	user, err := uf.userRepo.ByID(ctx, int64(request.UserID))
	if err != nil {
		return nil, NewBusinessError("USER_LOOKUP_FAILED", "Failed to load user", err)
	}
	if user == nil {
		return nil, NewBusinessError("USER_NOT_FOUND", "User not found", ErrUserNotFound)
	}

	if request.DisplayName != nil {
		user.DisplayName = utils.TrimToNil(*request.DisplayName)
	}
	if request.Role != nil {
		user.Role = *request.Role
	}
	if request.IsActive != nil {
		user.IsActive = *request.IsActive
	}

	if err := uf.userRepo.Update(ctx, user); err != nil {
		return nil, NewBusinessError("USER_UPDATE_FAILED", "Failed to update user", err)
	}

	out := ToUserInfo(*user)
	return &out, nil
}

// Delete removes a console account
func (uf *UserFlowImpl) Delete(ctx context.Context, userID uint) error {
	user, err := uf.userRepo.ByID(ctx, int64(userID))
	if err != nil {
		return NewBusinessError("USER_LOOKUP_FAILED", "Failed to load user", err)
	}
	if user == nil {
		return NewBusinessError("USER_NOT_FOUND", "User not found", ErrUserNotFound)
	}

	if err := uf.userRepo.Delete(ctx, userID); err != nil {
		return NewBusinessError("USER_DELETE_FAILED", "Failed to delete user", err)
	}
	return nil
}

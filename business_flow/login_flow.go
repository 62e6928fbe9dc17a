package businessflow

import (
	"context"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/app/services"
	"github.com/prospectra/lead-console/repository"
	"github.com/prospectra/lead-console/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// LoginFlow handles operator authentication
type LoginFlow interface {
	Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, request *dto.RefreshTokenRequest, metadata *ClientMetadata) (*dto.LoginResponse, error)
}

// LoginFlowImpl implements the login business flow
type LoginFlowImpl struct {
	userRepo     repository.UserRepository
	tokenService services.TokenService
	db           *gorm.DB
}

// NewLoginFlow creates a new login flow instance
func NewLoginFlow(userRepo repository.UserRepository, tokenService services.TokenService, db *gorm.DB) LoginFlow {
	return &LoginFlowImpl{
		userRepo:     userRepo,
		tokenService: tokenService,
		db:           db,
	}
}

// Login authenticates a user with email and password
func (lf *LoginFlowImpl) Login(ctx context.Context, request *dto.LoginRequest, metadata *ClientMetadata) (*dto.LoginResponse, error) {
	user, err := lf.userRepo.ByEmail(ctx, request.Email)
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", err)
	}
	if user == nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", ErrUserNotFound)
	}

	if !user.IsActive {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", ErrAccountInactive)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)); err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Login failed", ErrIncorrectPassword)
	}

	accessToken, refreshToken, err := lf.tokenService.GenerateTokens(user.ID)
	if err != nil {
		return nil, NewBusinessError("LOGIN_FAILED", "Failed to issue tokens", err)
	}

	now := utils.UTCNow()
	// A missed login stamp does not fail the login.
	_ = lf.userRepo.UpdateLastLogin(ctx, user.ID, now)

	return &dto.LoginResponse{
		User: ToUserInfo(*user),
		Session: dto.SessionDTO{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			TokenType:    "Bearer",
			ExpiresIn:    utils.AccessTokenTTLSeconds,
			ExpiresAt:    now.Add(utils.AccessTokenTTL),
		},
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (lf *LoginFlowImpl) Refresh(ctx context.Context, request *dto.RefreshTokenRequest, metadata *ClientMetadata) (*dto.LoginResponse, error) {
	claims, err := lf.tokenService.ValidateToken(request.RefreshToken)
	if err != nil {
		return nil, NewBusinessError("REFRESH_FAILED", "Invalid refresh token", err)
	}

	user, err := lf.userRepo.ByID(ctx, int64(claims.UserID))
	if err != nil {
		return nil, NewBusinessError("REFRESH_FAILED", "Refresh failed", err)
	}
	if user == nil {
		return nil, NewBusinessError("REFRESH_FAILED", "Refresh failed", ErrUserNotFound)
	}
	if !user.IsActive {
		return nil, NewBusinessError("REFRESH_FAILED", "Refresh failed", ErrAccountInactive)
	}

	accessToken, refreshToken, err := lf.tokenService.RefreshToken(request.RefreshToken)
	if err != nil {
		return nil, NewBusinessError("REFRESH_FAILED", "Failed to refresh tokens", err)
	}

	now := utils.UTCNow()
	return &dto.LoginResponse{
		User: ToUserInfo(*user),
		Session: dto.SessionDTO{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			TokenType:    "Bearer",
			ExpiresIn:    utils.AccessTokenTTLSeconds,
			ExpiresAt:    now.Add(utils.AccessTokenTTL),
		},
	}, nil
}

// Package tests contains integration tests for the business flows
package tests

import (
	"context"
	"testing"
	"time"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/app/services"
	businessflow "github.com/prospectra/lead-console/business_flow"
	"github.com/prospectra/lead-console/repository"
	testingutil "github.com/prospectra/lead-console/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) services.TokenService {
	t.Helper()
	tokenService, err := services.NewTokenService(
		1*time.Hour, 24*time.Hour,
		"test-issuer", "test-audience",
		false, "", "", "integration-test-secret-key-1234567890",
	)
	require.NoError(t, err)
	return tokenService
}

func TestLoginFlow(t *testing.T) {
	err := testingutil.TestWithDB(func(testDB *testingutil.TestDB) error {
		fixtures := testingutil.NewTestFixtures(testDB)

		userRepo := repository.NewUserRepository(testDB.DB)
		tokenService := newTestTokenService(t)
		loginFlow := businessflow.NewLoginFlow(userRepo, tokenService, testDB.DB)

		metadata := businessflow.NewClientMetadata("127.0.0.1", "Test User Agent")

		t.Run("SuccessfulLogin", func(t *testing.T) {
			user, err := fixtures.CreateTestUser()
			require.NoError(t, err)

			resp, err := loginFlow.Login(context.Background(), &dto.LoginRequest{
				Email:    user.Email,
				Password: testingutil.TestUserPassword,
			}, metadata)
			require.NoError(t, err)
			require.NotNil(t, resp)

			assert.Equal(t, user.ID, resp.User.ID)
			assert.Equal(t, user.Email, resp.User.Email)
			assert.NotEmpty(t, resp.Session.AccessToken)
			assert.NotEmpty(t, resp.Session.RefreshToken)
			assert.Equal(t, "Bearer", resp.Session.TokenType)

			claims, err := tokenService.ValidateToken(resp.Session.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, user.ID, claims.UserID)

			// Login stamps last_login_at
			stored, err := userRepo.ByEmail(context.Background(), user.Email)
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.NotNil(t, stored.LastLoginAt)
		})

		t.Run("WrongPassword", func(t *testing.T) {
			user, err := fixtures.CreateTestUser()
			require.NoError(t, err)

			_, err = loginFlow.Login(context.Background(), &dto.LoginRequest{
				Email:    user.Email,
				Password: "WrongPass456!",
			}, metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsIncorrectPassword(err))
		})

		t.Run("UnknownEmail", func(t *testing.T) {
			_, err := loginFlow.Login(context.Background(), &dto.LoginRequest{
				Email:    "nobody@example.com",
				Password: testingutil.TestUserPassword,
			}, metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsUserNotFound(err))
		})

		t.Run("InactiveAccount", func(t *testing.T) {
			user, err := fixtures.CreateTestUser()
			require.NoError(t, err)

			user.IsActive = false
			require.NoError(t, testDB.DB.Save(user).Error)

			_, err = loginFlow.Login(context.Background(), &dto.LoginRequest{
				Email:    user.Email,
				Password: testingutil.TestUserPassword,
			}, metadata)
			require.Error(t, err)
			assert.True(t, businessflow.IsAccountInactive(err))
		})

		t.Run("RefreshTokenPair", func(t *testing.T) {
			user, err := fixtures.CreateTestUser()
			require.NoError(t, err)

			loginResp, err := loginFlow.Login(context.Background(), &dto.LoginRequest{
				Email:    user.Email,
				Password: testingutil.TestUserPassword,
			}, metadata)
			require.NoError(t, err)

			refreshed, err := loginFlow.Refresh(context.Background(), &dto.RefreshTokenRequest{
				RefreshToken: loginResp.Session.RefreshToken,
			}, metadata)
			require.NoError(t, err)

			assert.Equal(t, user.ID, refreshed.User.ID)
			assert.NotEmpty(t, refreshed.Session.AccessToken)
		})

		t.Run("RefreshRejectsAccessToken", func(t *testing.T) {
			user, err := fixtures.CreateTestUser()
			require.NoError(t, err)

			loginResp, err := loginFlow.Login(context.Background(), &dto.LoginRequest{
				Email:    user.Email,
				Password: testingutil.TestUserPassword,
			}, metadata)
			require.NoError(t, err)

			_, err = loginFlow.Refresh(context.Background(), &dto.RefreshTokenRequest{
				RefreshToken: loginResp.Session.AccessToken,
			}, metadata)
			require.Error(t, err)
		})

		return nil
	})
	require.NoError(t, err)
}

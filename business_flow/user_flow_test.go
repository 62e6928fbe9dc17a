package businessflow

import (
	"context"
	"testing"
	"time"

	"github.com/prospectra/lead-console/app/dto"
	"github.com/prospectra/lead-console/models"
	"github.com/prospectra/lead-console/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo serves users from fixed maps and records writes
type fakeUserRepo struct {
	users   map[uint]*models.User
	byEmail map[string]*models.User
	saved   []*models.User
	updated []*models.User
	deleted []uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:   make(map[uint]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (f *fakeUserRepo) ByID(ctx context.Context, id int64) (*models.User, error) {
	return f.users[uint(id)], nil
}

func (f *fakeUserRepo) ByFilter(ctx context.Context, filter models.UserFilter, orderBy string, limit, offset int) ([]*models.User, error) {
	out := make([]*models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Save(ctx context.Context, user *models.User) error {
	if user.ID == 0 {
		user.ID = uint(len(f.saved) + 1)
	}
	f.saved = append(f.saved, user)
	return nil
}

func (f *fakeUserRepo) SaveBatch(ctx context.Context, users []*models.User) error { return nil }

func (f *fakeUserRepo) Count(ctx context.Context, filter models.UserFilter) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) Exists(ctx context.Context, filter models.UserFilter) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) ByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, userID uint, at time.Time) error {
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.updated = append(f.updated, user)
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, userID uint) error {
	f.deleted = append(f.deleted, userID)
	return nil
}

func newUserFixture() (*fakeUserRepo, UserFlow) {
	repo := newFakeUserRepo()
	flow := NewUserFlow(repo, nil)
	return repo, flow
}

func TestUserCreateHashesPasswordAndDefaultsRole(t *testing.T) {
	repo, flow := newUserFixture()

	result, err := flow.Create(context.Background(), &dto.CreateUserRequest{
		Email:    "Ops.Desk@Example.COM",
		Password: "correct-horse",
	}, NewClientMetadata("10.0.0.1", "test-agent"))
	require.NoError(t, err)

	assert.Equal(t, "ops.desk@example.com", result.Email)
	assert.Equal(t, models.UserRoleOperator, result.Role)
	assert.True(t, result.IsActive)
	assert.NotZero(t, result.ID)

	require.Len(t, repo.saved, 1)
	saved := repo.saved[0]
	assert.NotEqual(t, "correct-horse", saved.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("correct-horse")))
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	repo, flow := newUserFixture()
	repo.byEmail["taken@example.com"] = &models.User{ID: 3, Email: "taken@example.com"}

	_, err := flow.Create(context.Background(), &dto.CreateUserRequest{
		Email:    "taken@example.com",
		Password: "correct-horse",
	}, nil)
	require.Error(t, err)
	assert.True(t, IsEmailAlreadyExists(err))
	assert.Empty(t, repo.saved)
}

func TestUserCreateWithExplicitAdminRole(t *testing.T) {
	repo, flow := newUserFixture()

	result, err := flow.Create(context.Background(), &dto.CreateUserRequest{
		Email:    "root@example.com",
		Password: "correct-horse",
		Role:     models.UserRoleAdmin,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, result.Role)
	require.Len(t, repo.saved, 1)
}

func TestUserUpdateRequiresAField(t *testing.T) {
	_, flow := newUserFixture()

	_, err := flow.Update(context.Background(), &dto.UpdateUserRequest{UserID: 1}, nil)
	require.Error(t, err)

	var bizErr *BusinessError
	require.ErrorAs(t, err, &bizErr)
	assert.Equal(t, "USER_VALIDATION_FAILED", bizErr.Code)
}

func TestUserUpdateDeactivates(t *testing.T) {
	repo, flow := newUserFixture()
	repo.users[5] = &models.User{ID: 5, Email: "ops@example.com", Role: models.UserRoleOperator, IsActive: true}

	result, err := flow.Update(context.Background(), &dto.UpdateUserRequest{
		UserID:   5,
		IsActive: utils.ToPtr(false),
	}, nil)
	require.NoError(t, err)

	assert.False(t, result.IsActive)
	require.Len(t, repo.updated, 1)
	assert.False(t, repo.updated[0].IsActive)
}

func TestUserUpdatePatchesRole(t *testing.T) {
	repo, flow := newUserFixture()
	repo.users[5] = &models.User{ID: 5, Email: "ops@example.com", Role: models.UserRoleOperator, IsActive: true}

	result, err := flow.Update(context.Background(), &dto.UpdateUserRequest{
		UserID: 5,
		Role:   utils.ToPtr(models.UserRoleAdmin),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, result.Role)
}

func TestUserUpdateNotFound(t *testing.T) {
	_, flow := newUserFixture()

	_, err := flow.Update(context.Background(), &dto.UpdateUserRequest{
		UserID: 99,
		Role:   utils.ToPtr(models.UserRoleAdmin),
	}, nil)
	require.Error(t, err)
	assert.True(t, IsUserNotFound(err))
}

func TestUserDeleteRemovesAccount(t *testing.T) {
	repo, flow := newUserFixture()
	repo.users[5] = &models.User{ID: 5, Email: "ops@example.com"}

	err := flow.Delete(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []uint{5}, repo.deleted)
}

func TestUserDeleteNotFound(t *testing.T) {
	repo, flow := newUserFixture()

	err := flow.Delete(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, IsUserNotFound(err))
	assert.Empty(t, repo.deleted)
}

func TestUserListReturnsAllWithTotal(t *testing.T) {
	repo, flow := newUserFixture()
	repo.users[1] = &models.User{ID: 1, Email: "a@example.com", Role: models.UserRoleAdmin, IsActive: true}
	repo.users[2] = &models.User{ID: 2, Email: "b@example.com", Role: models.UserRoleOperator, IsActive: false}

	result, err := flow.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.Total)
	assert.Len(t, result.Users, 2)
}

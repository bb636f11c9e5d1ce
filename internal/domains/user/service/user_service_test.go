package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"virtualbiblio-backend/internal/domains/user/model"
	"virtualbiblio-backend/pkg/jwt"
)

type fakeRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: map[int64]*model.User{}, nextID: 1}
}

func (f *fakeRepo) List(ctx context.Context, filter *model.UserFilter) ([]model.User, int, error) {
	var out []model.User
	for _, u := range f.users {
		if !u.IsActive {
			continue
		}
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(u.Name), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(u.Email), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *u)
	}
	return out, len(out), nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok || !u.IsActive {
		return nil, model.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeRepo) GetActiveByEmail(ctx context.Context, email string) (*model.User, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) && u.IsActive {
			copied := *u
			return &copied, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Create(ctx context.Context, u *model.User) error {
	u.ID = f.nextID
	f.nextID++
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, u *model.User) error {
	stored, ok := f.users[u.ID]
	if !ok {
		return model.ErrUserNotFound
	}
	stored.Name = u.Name
	stored.AvatarURL = u.AvatarURL
	return nil
}

func (f *fakeRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	u, ok := f.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (f *fakeRepo) UpdateRole(ctx context.Context, id int64, role string) error {
	u, ok := f.users[id]
	if !ok || !u.IsActive {
		return model.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (f *fakeRepo) Deactivate(ctx context.Context, id int64) error {
	u, ok := f.users[id]
	if !ok || !u.IsActive {
		return model.ErrUserNotFound
	}
	u.IsActive = false
	return nil
}

func newService(repo *fakeRepo) Service {
	return NewUserService(repo, jwt.NewManager("test-secret", 7))
}

func registerRequest() *model.RegisterRequest {
	return &model.RegisterRequest{
		Name:     "Ana López",
		Email:    "ana@example.com",
		Password: "secreto123",
	}
}

func TestRegisterIssuesTokenAndDefaultRole(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleUser, resp.User.Role)
	assert.NotEqual(t, "secreto123", resp.User.PasswordHash, "password is never stored in clear")
}

func TestRegisterAcceptsOptionalAvatarAndRole(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	avatar := "https://cdn.example.com/ana.png"
	req := registerRequest()
	req.AvatarURL = &avatar
	req.Role = model.RoleAdmin

	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, resp.User.Role)
	require.NotNil(t, resp.User.AvatarURL)
	assert.Equal(t, avatar, *resp.User.AvatarURL)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	req := registerRequest()
	req.Email = "ANA@example.com"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestRegisterCollidesWithDeactivatedAccount(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	require.NoError(t, svc.DeleteAccount(context.Background(), resp.User.ID))

	_, err = svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &model.LoginRequest{
		Email:    "ana@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), &model.LoginRequest{
		Email: "ana@example.com", Password: "incorrecta",
	})
	_, unknownEmail := svc.Login(context.Background(), &model.LoginRequest{
		Email: "nadie@example.com", Password: "secreto123",
	})

	assert.ErrorIs(t, wrongPassword, model.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, model.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	id := resp.User.ID

	err = svc.ChangePassword(context.Background(), id, &model.ChangePasswordRequest{
		CurrentPassword: "incorrecta", NewPassword: "nueva123",
	})
	assert.ErrorIs(t, err, model.ErrWrongPassword)

	err = svc.ChangePassword(context.Background(), id, &model.ChangePasswordRequest{
		CurrentPassword: "secreto123", NewPassword: "secreto123",
	})
	assert.ErrorIs(t, err, model.ErrSamePassword)

	err = svc.ChangePassword(context.Background(), id, &model.ChangePasswordRequest{
		CurrentPassword: "secreto123", NewPassword: "nueva123",
	})
	require.NoError(t, err)

	stored := repo.users[id]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("nueva123")))
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	avatar := "https://cdn.example.com/ana.png"
	u, err := svc.UpdateProfile(context.Background(), resp.User.ID, &model.UpdateProfileRequest{
		AvatarURL: &avatar,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana López", u.Name, "unsupplied name survives")
	require.NotNil(t, u.AvatarURL)
	assert.Equal(t, avatar, *u.AvatarURL)
}

func TestUpdateAvatar(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	u, err := svc.UpdateAvatar(context.Background(), resp.User.ID, "https://cdn.example.com/nueva.png")
	require.NoError(t, err)
	require.NotNil(t, u.AvatarURL)
	assert.Equal(t, "https://cdn.example.com/nueva.png", *u.AvatarURL)
}

func TestUpdateRole(t *testing.T) {
	repo := newFakeRepo()
	svc := newService(repo)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	u, err := svc.UpdateRole(context.Background(), resp.User.ID, model.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, u.Role)

	_, err = svc.UpdateRole(context.Background(), 404, model.RoleAdmin)
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

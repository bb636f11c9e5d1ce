package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtualbiblio-backend/internal/domains/user/model"
)

type stubService struct {
	roleCalls []roleCall
}

type roleCall struct {
	id   int64
	role string
}

func (s *stubService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	return nil, nil
}

func (s *stubService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	return nil, nil
}

func (s *stubService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return nil, nil
}

func (s *stubService) UpdateProfile(ctx context.Context, id int64, req *model.UpdateProfileRequest) (*model.User, error) {
	return nil, nil
}

func (s *stubService) UpdateAvatar(ctx context.Context, id int64, avatarURL string) (*model.User, error) {
	return nil, nil
}

func (s *stubService) ChangePassword(ctx context.Context, id int64, req *model.ChangePasswordRequest) error {
	return nil
}

func (s *stubService) DeleteAccount(ctx context.Context, id int64) error {
	return nil
}

func (s *stubService) List(ctx context.Context, filter *model.UserFilter) ([]model.User, int, error) {
	return nil, 0, nil
}

func (s *stubService) UpdateRole(ctx context.Context, id int64, role string) (*model.User, error) {
	s.roleCalls = append(s.roleCalls, roleCall{id: id, role: role})
	return &model.User{ID: id, Role: role, IsActive: true}, nil
}

func newRoleRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/api/auth/role", NewUserHandler(svc).UpdateUserRole)
	return router
}

func TestUpdateUserRoleTargetsBodyUser(t *testing.T) {
	svc := &stubService{}
	router := newRoleRouter(svc)

	body, err := json.Marshal(model.UpdateUserRoleRequest{UserID: 42, Role: model.RoleAdmin})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/auth/role", bytes.NewReader(body))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.roleCalls, 1)
	assert.Equal(t, int64(42), svc.roleCalls[0].id)
	assert.Equal(t, model.RoleAdmin, svc.roleCalls[0].role)
}

func TestUpdateUserRoleRequiresTarget(t *testing.T) {
	svc := &stubService{}
	router := newRoleRouter(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/auth/role",
		bytes.NewReader([]byte(`{"rol":"admin"}`)))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.roleCalls)
}

package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"virtualbiblio-backend/internal/domains/user/model"
	"virtualbiblio-backend/internal/domains/user/repository"
	"virtualbiblio-backend/pkg/jwt"
)

const bcryptCost = 12

// Service covers registration, authentication, profile self-management and
// the admin account operations.
type Service interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateProfile(ctx context.Context, id int64, req *model.UpdateProfileRequest) (*model.User, error)
	UpdateAvatar(ctx context.Context, id int64, avatarURL string) (*model.User, error)
	ChangePassword(ctx context.Context, id int64, req *model.ChangePasswordRequest) error
	DeleteAccount(ctx context.Context, id int64) error
	List(ctx context.Context, filter *model.UserFilter) ([]model.User, int, error)
	UpdateRole(ctx context.Context, id int64, role string) (*model.User, error)
}

type userService struct {
	repo repository.Repository
	jwt  *jwt.Manager
}

func NewUserService(repo repository.Repository, jwtManager *jwt.Manager) Service {
	return &userService{repo: repo, jwt: jwtManager}
}

// Register creates an account with the default role and signs it in. Emails
// collide against deactivated accounts too.
func (s *userService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	taken, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.RoleUser
	}

	u := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		AvatarURL:    req.AvatarURL,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.issueToken(u)
}

// Login verifies the credentials. A missing account and a wrong password
// produce the same error so the response never reveals which one failed.
func (s *userService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	u, err := s.repo.GetActiveByEmail(ctx, req.Email)
	if errors.Is(err, model.ErrUserNotFound) {
		return nil, model.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	return s.issueToken(u)
}

func (s *userService) issueToken(u *model.User) (*model.AuthResponse, error) {
	token, err := s.jwt.GenerateToken(u.ID, u.Name, u.Email, u.Role)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{Token: token, User: u}, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, id int64, req *model.UpdateProfileRequest) (*model.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		u.Name = req.Name
	}
	if req.AvatarURL != nil {
		u.AvatarURL = req.AvatarURL
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *userService) UpdateAvatar(ctx context.Context, id int64, avatarURL string) (*model.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.AvatarURL = &avatarURL
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// ChangePassword requires the current password and rejects reusing it.
func (s *userService) ChangePassword(ctx context.Context, id int64, req *model.ChangePasswordRequest) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return model.ErrWrongPassword
	}
	if req.NewPassword == req.CurrentPassword {
		return model.ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, id, string(hash))
}

// DeleteAccount deactivates, never erases: the email stays reserved.
func (s *userService) DeleteAccount(ctx context.Context, id int64) error {
	return s.repo.Deactivate(ctx, id)
}

func (s *userService) List(ctx context.Context, filter *model.UserFilter) ([]model.User, int, error) {
	filter.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *userService) UpdateRole(ctx context.Context, id int64, role string) (*model.User, error) {
	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

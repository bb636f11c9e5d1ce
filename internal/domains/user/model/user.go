package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Roles known to the application. Roles are stored as plain strings so new
// ones can appear without a migration.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account holder. Accounts are deactivated, never deleted, so a
// re-registration with the same email still collides.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"nombre" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	AvatarURL    *string   `json:"avatarUrl" db:"avatar_url"`
	Role         string    `json:"rol" db:"role"`
	IsActive     bool      `json:"activo" db:"is_active"`
	CreatedAt    time.Time `json:"fechaCreacion" db:"created_at"`
}

// AuthResponse carries the signed token together with the account profile.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// RegisterRequest - POST /api/auth/register. Avatar and role are optional;
// an empty role falls back to "user".
type RegisterRequest struct {
	Name      string  `json:"nombre"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	AvatarURL *string `json:"avatarUrl"`
	Role      string  `json:"rol"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("El nombre es obligatorio"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("El email es obligatorio"),
			is.Email.Error("El email no es válido"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("La contraseña es obligatoria"),
			validation.Length(6, 72).Error("La contraseña debe tener entre 6 y 72 caracteres"),
		),
		validation.Field(&r.Role, validation.Length(2, 30)),
	)
}

// LoginRequest - POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required.Error("El email es obligatorio")),
		validation.Field(&r.Password, validation.Required.Error("La contraseña es obligatoria")),
	)
}

// UpdateProfileRequest - PUT /api/auth/profile. Both fields optional.
type UpdateProfileRequest struct {
	Name      string  `json:"nombre"`
	AvatarURL *string `json:"avatarUrl"`
}

// UpdateAvatarRequest - PUT /api/auth/avatar
type UpdateAvatarRequest struct {
	AvatarURL string `json:"avatarUrl"`
}

func (r UpdateAvatarRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AvatarURL,
			validation.Required.Error("La URL del avatar es obligatoria"),
			validation.Length(1, 500),
		),
	)
}

// ChangePasswordRequest - PUT /api/auth/password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r ChangePasswordRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CurrentPassword,
			validation.Required.Error("La contraseña actual es obligatoria"),
		),
		validation.Field(&r.NewPassword,
			validation.Required.Error("La nueva contraseña es obligatoria"),
			validation.Length(6, 72).Error("La contraseña debe tener entre 6 y 72 caracteres"),
		),
	)
}

// UpdateRoleRequest - PUT /api/admin/users/:id/role
type UpdateRoleRequest struct {
	Role string `json:"rol"`
}

func (r UpdateRoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Role,
			validation.Required.Error("El rol es obligatorio"),
			validation.Length(2, 30),
		),
	)
}

// UpdateUserRoleRequest - PUT /api/auth/role. The target account travels in
// the body instead of the path.
type UpdateUserRoleRequest struct {
	UserID int64  `json:"userId"`
	Role   string `json:"rol"`
}

func (r UpdateUserRoleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.UserID,
			validation.Required.Error("El usuario es obligatorio"),
		),
		validation.Field(&r.Role,
			validation.Required.Error("El rol es obligatorio"),
			validation.Length(2, 30),
		),
	)
}

// UserFilter carries the admin listing filters and the paging window.
type UserFilter struct {
	Role     string `form:"role"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	PageSize int    `form:"pageSize"`
}

const DefaultPageSize = 20

func (f *UserFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > 100 {
		f.PageSize = 100
	}
}

func (f *UserFilter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

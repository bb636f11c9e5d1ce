package model

import "errors"

var (
	ErrUserNotFound       = errors.New("Usuario no encontrado")
	ErrEmailTaken         = errors.New("El email ya está registrado.")
	ErrInvalidCredentials = errors.New("Email o contraseña incorrectos.")
	ErrWrongPassword      = errors.New("La contraseña actual es incorrecta.")
	ErrSamePassword       = errors.New("La nueva contraseña debe ser diferente a la actual.")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, ErrEmailTaken):
		return "EMAIL_TAKEN"
	case errors.Is(err, ErrInvalidCredentials):
		return "INVALID_CREDENTIALS"
	case errors.Is(err, ErrWrongPassword):
		return "WRONG_PASSWORD"
	case errors.Is(err, ErrSamePassword):
		return "SAME_PASSWORD"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return 404
	case errors.Is(err, ErrInvalidCredentials):
		return 401
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrWrongPassword), errors.Is(err, ErrSamePassword):
		return 400
	default:
		return 500
	}
}

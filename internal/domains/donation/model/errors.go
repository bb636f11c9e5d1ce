package model

import "errors"

var (
	ErrDonationNotFound = errors.New("Donación no encontrada")
	ErrBookDoesNotExist = errors.New("El libro especificado no existe")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrDonationNotFound):
		return "DONATION_NOT_FOUND"
	case errors.Is(err, ErrBookDoesNotExist):
		return "BOOK_DOES_NOT_EXIST"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrDonationNotFound):
		return 404
	case errors.Is(err, ErrBookDoesNotExist):
		return 400
	default:
		return 500
	}
}

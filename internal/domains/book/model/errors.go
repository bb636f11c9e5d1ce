package model

import "errors"

var (
	ErrBookNotFound       = errors.New("Libro no encontrado")
	ErrDuplicateSKU       = errors.New("El SKU ya existe")
	ErrAuthorDoesNotExist = errors.New("El autor especificado no existe")
)

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrDuplicateSKU):
		return "DUPLICATE_SKU"
	case errors.Is(err, ErrAuthorDoesNotExist):
		return "AUTHOR_DOES_NOT_EXIST"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts an error to an HTTP status code. Duplicates report
// 400, not 409, matching the external contract.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrDuplicateSKU), errors.Is(err, ErrAuthorDoesNotExist):
		return 400
	default:
		return 500
	}
}

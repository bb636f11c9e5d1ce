package model

import "errors"

var ErrBlogNotFound = errors.New("Blog no encontrado")

// ToErrorCode converts an error to its API error code.
func ToErrorCode(err error) string {
	if errors.Is(err, ErrBlogNotFound) {
		return "BLOG_NOT_FOUND"
	}
	return "INTERNAL_ERROR"
}

// ToHTTPStatus converts an error to an HTTP status code.
func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrBlogNotFound) {
		return 404
	}
	return 500
}

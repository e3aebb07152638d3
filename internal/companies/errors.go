package companies

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/sustainassess/pkg/validation"
)

var (
	ErrNotFound           = errors.New("company not found")
	ErrDuplicate          = errors.New("a company with this email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// MapHTTPStatus maps company domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, validation.ErrInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

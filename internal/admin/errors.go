package admin

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/sustainassess/internal/companies"
)

var ErrInvalidCredentials = errors.New("invalid administrator credentials")

// MapHTTPStatus maps admin errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, companies.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

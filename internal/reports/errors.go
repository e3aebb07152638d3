package reports

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/sustainassess/pkg/auth"
)

var (
	ErrNotFound     = errors.New("report not found")
	ErrDuplicate    = errors.New("report already exists")
	ErrNoSubmission = errors.New("no submitted assessment to report on")
)

// MapHTTPStatus maps report errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoSubmission):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

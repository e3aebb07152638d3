package uploads

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/sustainassess/internal/assessments"
)

var (
	ErrNotFound = errors.New("no evidence uploaded for this question")

	ErrInvalidFile  = assessments.ErrInvalidFile
	ErrFileTooLarge = assessments.ErrFileTooLarge
)

// MapHTTPStatus maps upload errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, assessments.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidFile):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

package questions

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/sustainassess/pkg/validation"
)

var (
	ErrNotFound        = errors.New("question not found")
	ErrUnknownIndustry = errors.New("unknown industry")
)

// MapHTTPStatus maps question errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnknownIndustry), errors.Is(err, validation.ErrInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

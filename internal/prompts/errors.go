package prompts

import (
	"errors"
	"net/http"
)

// Domain errors for prompt operations.
var (
	ErrNotFound      = errors.New("prompt not found")
	ErrDuplicate     = errors.New("prompt name already exists")
	ErrInvalidStage  = errors.New("stage must be summary or suggestions")
	ErrInvalidPrompt = errors.New("prompt name and instructions are required")
)

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidStage), errors.Is(err, ErrInvalidPrompt):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

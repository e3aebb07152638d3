package assessments

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/sustainassess/pkg/auth"
)

var (
	ErrNotFound    = errors.New("assessment not found")
	ErrDuplicate   = errors.New("assessment already exists")
	ErrInvalidForm = errors.New("invalid assessment form")
	ErrTooLarge    = errors.New("assessment form exceeds maximum size")

	// Evidence stores report these for rejected files.
	ErrInvalidFile  = errors.New("invalid file")
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
)

// MapHTTPStatus maps assessment domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidForm), errors.Is(err, ErrInvalidFile):
		return http.StatusBadRequest
	case errors.Is(err, ErrTooLarge), errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, auth.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

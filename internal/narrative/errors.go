package narrative

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResponse is reported when a model returns only whitespace.
var ErrEmptyResponse = errors.New("empty response")

// ErrNoGenerators is reported by a chain with no links.
var ErrNoGenerators = errors.New("no generators configured")

// GenerationError is returned when every link in a chain failed.
type GenerationError struct {
	Models []string
	Err    error
}

func (e *GenerationError) Error() string {
	if len(e.Models) == 0 {
		return fmt.Sprintf("generation failed: %v", e.Err)
	}
	return fmt.Sprintf(
		"generation failed after %d models (%s): %v",
		len(e.Models), strings.Join(e.Models, ", "), e.Err,
	)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Package prompts manages the instructions sent to the text-generation
// service for each narrative stage. Administrators can store named overrides;
// at most one per stage is active, and the built-in default applies otherwise.
package prompts

import (
	"strings"

	"github.com/google/uuid"
)

// Prompt is a named instruction override for a narrative stage.
type Prompt struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Stage        Stage     `json:"stage"`
	Instructions string    `json:"instructions"`
	Description  *string   `json:"description"`
	Active       bool      `json:"active"`
}

// CreateCommand carries the data needed to create a new prompt override.
type CreateCommand struct {
	Name         string  `json:"name"`
	Stage        Stage   `json:"stage"`
	Instructions string  `json:"instructions"`
	Description  *string `json:"description"`
}

// UpdateCommand carries the data needed to update an existing prompt override.
type UpdateCommand struct {
	Name         string  `json:"name"`
	Stage        Stage   `json:"stage"`
	Instructions string  `json:"instructions"`
	Description  *string `json:"description"`
}

// validate checks the fields shared by create and update commands.
func validate(stage Stage, name, instructions string) error {
	if _, err := ParseStage(string(stage)); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(instructions) == "" {
		return ErrInvalidPrompt
	}
	return nil
}

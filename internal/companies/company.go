// Package companies registers and authenticates the organizations that
// complete sustainability assessments.
package companies

import (
	"strings"
	"time"
)

// Company is a registered organization. The password hash never leaves the
// repository.
type Company struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Industry     string    `json:"industry"`
	Active       bool      `json:"active"`
	RegisteredAt time.Time `json:"registered_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterCommand carries a self-service registration.
type RegisterCommand struct {
	Name            string `json:"name" validate:"required,max=200"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	Industry        string `json:"industry" validate:"required,industry"`
}

// LoginCommand carries company credentials.
type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *RegisterCommand) normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = normalizeEmail(c.Email)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

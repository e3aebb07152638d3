package companies

import (
	"context"

	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/pagination"
)

// System defines the public contract for company operations.
type System interface {
	Handler(tokens *auth.Tokens) *Handler

	// Register validates cmd, hashes the password, and stores the company
	// under a fresh COMP identifier.
	Register(ctx context.Context, cmd RegisterCommand) (*Company, error)
	// Authenticate returns the active company matching the credentials or
	// ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (*Company, error)

	Find(ctx context.Context, id string) (*Company, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Company], error)
	Count(ctx context.Context) (int, error)
}

// Package auth provides session tokens, password hashing, and role-gated
// middleware for company and administrator sessions.
package auth

import "context"

// Roles carried by a Principal.
const (
	RoleCompany = "company"
	RoleAdmin   = "admin"
)

// Principal identifies the signed-in party. Subject is the company ID for
// company sessions and the admin username for admin sessions.
type Principal struct {
	Subject string `json:"sub"`
	Name    string `json:"name"`
	Role    string `json:"role"`
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the Principal stored in ctx, if any.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// SubjectFrom returns the Subject of the Principal in ctx, or
// ErrUnauthenticated when there is none.
func SubjectFrom(ctx context.Context) (string, error) {
	p, ok := FromContext(ctx)
	if !ok || p.Subject == "" {
		return "", ErrUnauthenticated
	}
	return p.Subject, nil
}

package auth

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/sustainassess/pkg/handlers"
)

// Authenticate attaches the Principal from the session cookie or bearer token
// when one verifies. Requests without a valid token pass through anonymously;
// Require enforces access.
func (t *Tokens) Authenticate(logger *slog.Logger) func(http.Handler) http.Handler {
	logger = logger.With("middleware", "auth")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := t.fromRequest(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			p, err := t.Parse(raw)
			if err != nil {
				logger.Debug("session token rejected", "path", r.URL.Path, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

// Require returns middleware admitting only principals with the given role.
func Require(role string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := FromContext(r.Context())
			if !ok {
				handlers.RespondError(w, logger, http.StatusUnauthorized, ErrUnauthenticated)
				return
			}
			if p.Role != role {
				handlers.RespondError(w, logger, http.StatusForbidden, ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

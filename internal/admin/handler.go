package admin

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/sustainassess/internal/reports"
	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/handlers"
	"github.com/JaimeStill/sustainassess/pkg/pagination"
	"github.com/JaimeStill/sustainassess/pkg/routes"
)

// Handler provides HTTP endpoints for the administrator console.
type Handler struct {
	sys        System
	tokens     *auth.Tokens
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler with the given system, token issuer, logger,
// and pagination config.
func NewHandler(
	sys System,
	tokens *auth.Tokens,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		tokens:     tokens,
		logger:     logger.With("handler", "admin"),
		pagination: pagination,
	}
}

// SessionRoutes returns the unauthenticated login and logout endpoints.
func (h *Handler) SessionRoutes() routes.Group {
	return routes.Group{
		Prefix: "/admin",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/login", Handler: h.Login},
			{Method: "POST", Pattern: "/logout", Handler: h.Logout},
		},
	}
}

// Routes returns the endpoints that require an administrator session.
// Callers attach the role check and any child groups.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/admin",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/dashboard", Handler: h.Dashboard},
			{Method: "GET", Pattern: "/compliance-scores", Handler: h.ComplianceScores},
			{Method: "GET", Pattern: "/companies/{id}/report", Handler: h.CompanyReport},
		},
	}
}

// Login verifies administrator credentials and starts a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var cmd LoginCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	p, err := h.sys.Login(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if err := h.tokens.SetCookie(w, p); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, p)
}

// Logout ends the administrator session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.tokens.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Dashboard returns platform totals and the most recent reports.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.sys.Dashboard(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, d)
}

// ComplianceScores returns a paginated list of reports with query parameter filters.
func (h *Handler) ComplianceScores(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := reports.FiltersFromQuery(r.URL.Query())

	result, err := h.sys.ComplianceScores(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// CompanyReport returns a company with its latest report.
func (h *Handler) CompanyReport(w http.ResponseWriter, r *http.Request) {
	cr, err := h.sys.CompanyReport(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, cr)
}

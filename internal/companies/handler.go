package companies

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/handlers"
	"github.com/JaimeStill/sustainassess/pkg/pagination"
	"github.com/JaimeStill/sustainassess/pkg/routes"
)

// Handler provides HTTP endpoints for company sessions and administration.
type Handler struct {
	sys        System
	tokens     *auth.Tokens
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a Handler. tokens issues and clears session cookies.
func NewHandler(
	sys System,
	tokens *auth.Tokens,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		tokens:     tokens,
		logger:     logger.With("handler", "companies"),
		pagination: pagination,
	}
}

// Routes returns the public session endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/auth",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/industries", Handler: h.Industries},
			{Method: "POST", Pattern: "/register", Handler: h.Register},
			{Method: "POST", Pattern: "/login", Handler: h.Login},
			{Method: "POST", Pattern: "/logout", Handler: h.Logout},
		},
	}
}

// AdminRoutes returns the company listing endpoints for administrators.
func (h *Handler) AdminRoutes() routes.Group {
	return routes.Group{
		Prefix: "/companies",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
		},
	}
}

func (h *Handler) Industries(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Industries())
}

// Register creates a company and signs it in.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var cmd RegisterCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	company, err := h.sys.Register(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if err := h.tokens.SetCookie(w, principal(company)); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, company)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var cmd LoginCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	company, err := h.sys.Authenticate(r.Context(), cmd.Email, cmd.Password)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if err := h.tokens.SetCookie(w, principal(company)); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	h.logger.Info("company signed in", "id", company.ID)
	handlers.RespondJSON(w, http.StatusOK, company)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.tokens.ClearCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	company, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, company)
}

func principal(c *Company) auth.Principal {
	return auth.Principal{Subject: c.ID, Name: c.Name, Role: auth.RoleCompany}
}

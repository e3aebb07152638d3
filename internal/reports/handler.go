package reports

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/handlers"
	"github.com/JaimeStill/sustainassess/pkg/routes"
)

// Handler provides HTTP endpoints for the signed-in company's reports.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "reports"),
	}
}

// Routes returns the route group definition for report endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/reports",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/current", Handler: h.Current},
			{Method: "POST", Pattern: "/regenerate", Handler: h.Regenerate},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "GET", Pattern: "/{id}/pdf", Handler: h.View},
			{Method: "GET", Pattern: "/{id}/download", Handler: h.Download},
			{Method: "GET", Pattern: "/{id}/text", Handler: h.Text},
		},
	}
}

// Current returns the report for the latest submitted assessment,
// generating it on first request.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.sys.Generate)
}

// Regenerate replaces the company's reports with a freshly generated one.
func (h *Handler) Regenerate(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.sys.Regenerate)
}

// Find returns one of the company's reports by its id path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.company(w, r)
	if !ok {
		return
	}

	rep, err := h.sys.Find(r.Context(), companyID, r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rep)
}

// View renders the report PDF for display in the browser.
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
	h.document(w, r, false)
}

// Download renders the report PDF as an attachment and counts the download.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	h.document(w, r, true)
}

// Text returns the plain-text export as an attachment.
func (h *Handler) Text(w http.ResponseWriter, r *http.Request) {
	companyID, ok := h.company(w, r)
	if !ok {
		return
	}

	f, err := h.sys.Text(r.Context(), companyID, r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondFile(w, f.ContentType, f.Name, true, f.Data)
}

func (h *Handler) document(w http.ResponseWriter, r *http.Request, download bool) {
	companyID, ok := h.company(w, r)
	if !ok {
		return
	}

	f, err := h.sys.Document(r.Context(), companyID, r.PathValue("id"), download)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondFile(w, f.ContentType, f.Name, download, f.Data)
}

func (h *Handler) respond(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, companyID string) (*Report, error),
) {
	companyID, ok := h.company(w, r)
	if !ok {
		return
	}

	rep, err := fn(r.Context(), companyID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rep)
}

func (h *Handler) company(w http.ResponseWriter, r *http.Request) (string, bool) {
	companyID, err := auth.SubjectFrom(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return "", false
	}
	return companyID, true
}

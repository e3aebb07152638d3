package questions

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/sustainassess/pkg/handlers"
	"github.com/JaimeStill/sustainassess/pkg/routes"
)

// Handler provides the administrative HTTP endpoints for question sets.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// ReplaceRequest carries a complete question set.
type ReplaceRequest struct {
	Questions []Question `json:"questions"`
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "questions"),
	}
}

// Routes returns the route group definition for question management.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/questions",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/general", Handler: h.General},
			{Method: "PUT", Pattern: "/general", Handler: h.ReplaceGeneral},
			{Method: "PUT", Pattern: "/general/{id}", Handler: h.UpdateGeneral},
			{Method: "DELETE", Pattern: "/general/{id}", Handler: h.RemoveGeneral},
			{Method: "GET", Pattern: "/industries/{industry}", Handler: h.Industry},
			{Method: "PUT", Pattern: "/industries/{industry}", Handler: h.ReplaceIndustry},
			{Method: "PUT", Pattern: "/industries/{industry}/{id}", Handler: h.UpdateIndustry},
			{Method: "DELETE", Pattern: "/industries/{industry}/{id}", Handler: h.RemoveIndustry},
			{Method: "POST", Pattern: "", Handler: h.Add},
		},
	}
}

// General returns the general question set.
func (h *Handler) General(w http.ResponseWriter, r *http.Request) {
	qs, err := h.sys.General(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, qs)
}

// Industry returns the set stored for the industry path parameter.
func (h *Handler) Industry(w http.ResponseWriter, r *http.Request) {
	qs, err := h.sys.Industry(r.Context(), r.PathValue("industry"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, qs)
}

// ReplaceGeneral overwrites the general set with the request body.
func (h *Handler) ReplaceGeneral(w http.ResponseWriter, r *http.Request) {
	var req ReplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	qs, err := h.sys.ReplaceGeneral(r.Context(), req.Questions)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, qs)
}

// ReplaceIndustry overwrites an industry set with the request body.
func (h *Handler) ReplaceIndustry(w http.ResponseWriter, r *http.Request) {
	var req ReplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	qs, err := h.sys.ReplaceIndustry(r.Context(), r.PathValue("industry"), req.Questions)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, qs)
}

// Add appends a question and returns it with its assigned id.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var cmd AddCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	q, err := h.sys.Add(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, q)
}

func (h *Handler) UpdateGeneral(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, KindGeneral, "")
}

func (h *Handler) UpdateIndustry(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, KindIndustry, r.PathValue("industry"))
}

func (h *Handler) RemoveGeneral(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, KindGeneral, "")
}

func (h *Handler) RemoveIndustry(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, KindIndustry, r.PathValue("industry"))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request, kind Kind, industry string) {
	var q Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	updated, err := h.sys.Update(r.Context(), kind, industry, r.PathValue("id"), q)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, updated)
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request, kind Kind, industry string) {
	if err := h.sys.Remove(r.Context(), kind, industry, r.PathValue("id")); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

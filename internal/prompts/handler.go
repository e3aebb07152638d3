package prompts

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/sustainassess/pkg/handlers"
	"github.com/JaimeStill/sustainassess/pkg/pagination"
	"github.com/JaimeStill/sustainassess/pkg/routes"
)

// Handler serves the admin endpoints for narrative prompt overrides.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// StageView is what the text-generation service receives for one narrative
// stage: the effective instructions and the fixed output specification.
type StageView struct {
	Stage        Stage  `json:"stage"`
	Instructions string `json:"instructions"`
	Overridden   bool   `json:"overridden"`
	Spec         string `json:"spec"`
}

func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "prompts"),
		pagination: pagination,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/prompts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "GET", Pattern: "/stages", Handler: h.Stages},
			{Method: "GET", Pattern: "/stages/{stage}", Handler: h.Stage},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete},
			{Method: "POST", Pattern: "/{id}/activate", Handler: h.toggle(true)},
			{Method: "POST", Pattern: "/{id}/deactivate", Handler: h.toggle(false)},
		},
	}
}

// List pages through overrides, filtered by stage, name, and active flag.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := pagination.PageRequestFromQuery(query, h.pagination)

	result, err := h.sys.List(r.Context(), page, FiltersFromQuery(query))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Stages describes every narrative stage.
func (h *Handler) Stages(w http.ResponseWriter, r *http.Request) {
	views := make([]StageView, 0, len(Stages()))
	for _, stage := range Stages() {
		view, err := h.view(r, stage)
		if err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}
		views = append(views, view)
	}

	handlers.RespondJSON(w, http.StatusOK, views)
}

// Stage describes one narrative stage.
func (h *Handler) Stage(w http.ResponseWriter, r *http.Request) {
	stage, err := ParseStage(r.PathValue("stage"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	view, err := h.view(r, stage)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}

	prompt, err := h.sys.Find(r.Context(), id)
	h.respond(w, http.StatusOK, prompt, err)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	prompt, err := h.sys.Create(r.Context(), cmd)
	h.respond(w, http.StatusCreated, prompt, err)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}

	var cmd UpdateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	prompt, err := h.sys.Update(r.Context(), id, cmd)
	h.respond(w, http.StatusOK, prompt, err)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.id(w, r)
	if !ok {
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// toggle switches an override on or off. Activating one replaces whichever
// override was active for the same stage; with none active the stage uses
// its default instructions.
func (h *Handler) toggle(active bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.id(w, r)
		if !ok {
			return
		}

		var (
			prompt *Prompt
			err    error
		)
		if active {
			prompt, err = h.sys.Activate(r.Context(), id)
		} else {
			prompt, err = h.sys.Deactivate(r.Context(), id)
		}
		h.respond(w, http.StatusOK, prompt, err)
	}
}

func (h *Handler) view(r *http.Request, stage Stage) (StageView, error) {
	instructions, err := h.sys.Instructions(r.Context(), stage)
	if err != nil {
		return StageView{}, err
	}

	spec, err := h.sys.Spec(r.Context(), stage)
	if err != nil {
		return StageView{}, err
	}

	def, err := DefaultInstructions(stage)
	if err != nil {
		return StageView{}, err
	}

	return StageView{
		Stage:        stage,
		Instructions: instructions,
		Overridden:   instructions != def,
		Spec:         spec,
	}, nil
}

// id parses the {id} path value, answering 400 when it is not a UUID.
func (h *Handler) id(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) respond(w http.ResponseWriter, status int, prompt *Prompt, err error) {
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, status, prompt)
}

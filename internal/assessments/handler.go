package assessments

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"

	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/handlers"
	"github.com/JaimeStill/sustainassess/pkg/routes"
)

// Handler provides HTTP endpoints for the signed-in company's assessments.
type Handler struct {
	sys         System
	evidence    Evidence
	logger      *slog.Logger
	maxFormSize int64
}

// SaveResult reports a save along with any evidence stored with it.
type SaveResult struct {
	Assessment *Assessment `json:"assessment"`
	Uploads    []Upload    `json:"uploads"`
	Submitted  bool        `json:"submitted"`
}

// NewHandler creates a Handler. evidence stores files that arrive with a
// multipart save; maxFormSize bounds the request body.
func NewHandler(sys System, evidence Evidence, logger *slog.Logger, maxFormSize int64) *Handler {
	return &Handler{
		sys:         sys,
		evidence:    evidence,
		logger:      logger.With("handler", "assessments"),
		maxFormSize: maxFormSize,
	}
}

// Routes returns the route group definition for assessment endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/assessments",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/current", Handler: h.Current},
			{Method: "POST", Pattern: "/save", Handler: h.Save},
			{Method: "POST", Pattern: "/submit", Handler: h.Submit},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
		},
	}
}

// Current returns the open assessment, starting one if needed.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	companyID, err := auth.SubjectFrom(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	a, err := h.sys.Current(r.Context(), companyID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, a)
}

// Save accepts a JSON SaveCommand or a questionnaire form. Form files are
// stored as evidence before the answers are written.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	companyID, err := auth.SubjectFrom(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFormSize)

	var (
		cmd     SaveCommand
		uploads = make([]Upload, 0)
	)

	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(bodyError(err)), err)
			return
		}
	} else {
		fields, err := ReadForm(r, func(field string, f File) error {
			u, err := h.evidence.Store(r.Context(), companyID, QuestionID(field), f)
			if err != nil {
				return err
			}
			uploads = append(uploads, *u)
			return nil
		})
		if err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}
		cmd = FromFields(fields)
	}

	a, err := h.sys.Save(r.Context(), companyID, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SaveResult{
		Assessment: a,
		Uploads:    uploads,
		Submitted:  a.Status == StatusSubmitted,
	})
}

// Submit moves the completed assessment to submitted.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	companyID, err := auth.SubjectFrom(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	a, err := h.sys.Submit(r.Context(), companyID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, a)
}

// Find returns one of the signed-in company's assessments. Assessments of
// other companies are reported as not found.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	companyID, err := auth.SubjectFrom(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	a, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err == nil && a.CompanyID != companyID {
		err = ErrNotFound
	}
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, a)
}

func isJSON(r *http.Request) bool {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return mediaType == "application/json"
}

package uploads

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/sustainassess/internal/assessments"
	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/handlers"
	"github.com/JaimeStill/sustainassess/pkg/routes"
)

// multipartOverhead allows for boundaries and headers around the file part.
const multipartOverhead = 1 << 20

// Handler provides HTTP endpoints for evidence files.
type Handler struct {
	sys     System
	logger  *slog.Logger
	maxSize int64
}

// NewHandler creates a Handler that accepts files up to maxSize bytes.
func NewHandler(sys System, logger *slog.Logger, maxSize int64) *Handler {
	return &Handler{
		sys:     sys,
		logger:  logger.With("handler", "uploads"),
		maxSize: maxSize,
	}
}

// Routes returns the route group definition for upload endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/uploads",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{questionID}", Handler: h.Upload},
			{Method: "GET", Pattern: "/{questionID}", Handler: h.Download},
		},
	}
}

// Upload stores the multipart "file" field as evidence for a question.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	companyID, err := auth.SubjectFrom(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+multipartOverhead)
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrFileTooLarge)
			return
		}
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidFile)
		return
	}

	u, err := h.sys.Store(r.Context(), companyID, r.PathValue("questionID"), assessments.File{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, u)
}

// Download streams the stored evidence for a question inline.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	companyID, err := auth.SubjectFrom(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	blob, err := h.sys.Open(r.Context(), companyID, r.PathValue("questionID"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	defer blob.Body.Close()

	w.Header().Set("Content-Type", blob.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(blob.SizeBytes, 10))
	w.Header().Set("Content-Disposition", "inline; filename="+strconv.Quote(blob.Filename))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, blob.Body); err != nil {
		h.logger.Warn("evidence stream interrupted", "question", blob.QuestionID, "error", err)
	}
}

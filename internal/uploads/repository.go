package uploads

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/JaimeStill/sustainassess/internal/assessments"
	"github.com/JaimeStill/sustainassess/pkg/storage"
)

type repo struct {
	assessments assessments.System
	storage     storage.System
	maxSize     int64
	logger      *slog.Logger
	now         func() time.Time
}

// New creates the upload system. Files larger than maxSize are rejected;
// a non-positive maxSize uses DefaultMaxSize.
func New(
	assessmentSys assessments.System,
	store storage.System,
	maxSize int64,
	logger *slog.Logger,
) System {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &repo{
		assessments: assessmentSys,
		storage:     store,
		maxSize:     maxSize,
		logger:      logger.With("system", "uploads"),
		now:         time.Now,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.maxSize)
}

func (r *repo) Store(
	ctx context.Context,
	companyID, questionID string,
	f assessments.File,
) (*assessments.Upload, error) {
	contentType := detectContentType(f.ContentType, f.Data)
	if err := Validate(f.Name, contentType, int64(len(f.Data)), r.maxSize); err != nil {
		return nil, err
	}

	previous := r.previous(ctx, companyID, questionID)

	key := buildStorageKey(companyID, uuid.New(), sanitizeFilename(f.Name))
	if err := r.storage.Upload(ctx, key, bytes.NewReader(f.Data), contentType); err != nil {
		return nil, fmt.Errorf("upload evidence blob: %w", err)
	}

	u := assessments.Upload{
		QuestionID:  questionID,
		Filename:    f.Name,
		ContentType: contentType,
		SizeBytes:   int64(len(f.Data)),
		PageCount:   r.pageCount(f.Data, contentType),
		StorageKey:  key,
		UploadedAt:  r.now().UTC(),
	}

	if _, err := r.assessments.AttachUpload(ctx, companyID, u); err != nil {
		if delErr := r.storage.Delete(ctx, key); delErr != nil {
			r.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, err
	}

	if previous != nil {
		if err := r.storage.Delete(ctx, previous.StorageKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
			r.logger.Warn("replaced evidence blob not removed", "key", previous.StorageKey, "error", err)
		}
	}

	r.logger.Info(
		"evidence stored",
		"company", companyID,
		"question", questionID,
		"size", u.SizeBytes,
		"content_type", u.ContentType,
	)
	return &u, nil
}

func (r *repo) Open(ctx context.Context, companyID, questionID string) (*Blob, error) {
	a, err := r.assessments.Latest(ctx, companyID)
	if err != nil {
		return nil, err
	}

	u, ok := a.Uploads[questionID]
	if !ok {
		return nil, ErrNotFound
	}

	body, err := r.storage.Download(ctx, u.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("download evidence: %w", err)
	}

	return &Blob{Upload: u, Body: body}, nil
}

// previous returns the upload that a new file for questionID will replace.
func (r *repo) previous(ctx context.Context, companyID, questionID string) *assessments.Upload {
	a, err := r.assessments.Latest(ctx, companyID)
	if err != nil || !a.Status.Open() {
		return nil
	}
	if u, ok := a.Uploads[questionID]; ok {
		return &u
	}
	return nil
}

func (r *repo) pageCount(data []byte, contentType string) *int {
	if contentType != "application/pdf" {
		return nil
	}

	count, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		r.logger.Warn("failed to extract PDF page count", "error", err)
		return nil
	}

	return &count
}

package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/sustainassess/pkg/query"
	"github.com/JaimeStill/sustainassess/pkg/repository"
	"github.com/JaimeStill/sustainassess/pkg/sequence"
)

const (
	pkeyConstraint = "assessments_pkey"
	openConstraint = "assessments_open_company_key"
)

type repo struct {
	db     *sql.DB
	ids    sequence.Source
	logger *slog.Logger
}

// New creates an assessment repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		ids:    sequence.New(db, "assessments", "ASS"),
		logger: logger.With("system", "assessments"),
	}
}

func (r *repo) Handler(evidence Evidence, maxFormSize int64) *Handler {
	return NewHandler(r, evidence, r.logger, maxFormSize)
}

func (r *repo) Current(ctx context.Context, companyID string) (*Assessment, error) {
	a, err := r.open(ctx, companyID)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	q := `
		INSERT INTO assessments(id, company_id)
		VALUES ($1, $2)` + returning

	created, err := sequence.Assign(ctx, r.ids, pkeyConstraint, sequence.DefaultAttempts, func(id string) (Assessment, error) {
		return repository.QueryOne(ctx, r.db, q, []any{id, companyID}, scanAssessment)
	})

	if err != nil {
		// another request opened one first
		if repository.IsUniqueViolation(err, openConstraint) {
			return r.open(ctx, companyID)
		}
		return nil, fmt.Errorf("create assessment: %w", err)
	}

	r.logger.Info("assessment started", "id", created.ID, "company", companyID)
	return &created, nil
}

func (r *repo) open(ctx context.Context, companyID string) (*Assessment, error) {
	q, args := query.
		NewBuilder(projection, newestFirst).
		WhereEquals("CompanyID", companyID).
		WhereIn("Status", []any{StatusInProgress, StatusCompleted}).
		BuildFirst()

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAssessment)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) Latest(ctx context.Context, companyID string) (*Assessment, error) {
	q, args := query.
		NewBuilder(projection, newestFirst).
		WhereEquals("CompanyID", companyID).
		BuildFirst()

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAssessment)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) LatestSubmitted(ctx context.Context, companyID string) (*Assessment, error) {
	q, args := query.
		NewBuilder(projection, latestSubmission, newestFirst).
		WhereEquals("CompanyID", companyID).
		WhereEquals("Status", StatusSubmitted).
		BuildFirst()

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAssessment)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Assessment, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAssessment)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) Save(ctx context.Context, companyID string, cmd SaveCommand) (*Assessment, error) {
	general, specific, err := encodeAnswers(cmd)
	if err != nil {
		return nil, err
	}

	status := StatusCompleted
	if cmd.Submit {
		status = StatusSubmitted
	}

	q := `
		UPDATE assessments
		SET general_answers = $1::json,
			specific_answers = $2::json,
			status = $3,
			submitted_at = CASE WHEN $3::text = 'submitted' THEN NOW() ELSE submitted_at END,
			updated_at = NOW()
		WHERE company_id = $4 AND status IN ('in-progress', 'completed')` + returning

	args := []any{general, specific, status, companyID}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Assessment, error) {
		return repository.QueryOne(ctx, tx, q, args, scanAssessment)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"assessment saved",
		"id", a.ID,
		"status", a.Status,
		"general", len(a.General),
		"specific", len(a.Specific),
	)
	return &a, nil
}

func (r *repo) AttachUpload(ctx context.Context, companyID string, u Upload) (*Assessment, error) {
	meta, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encode upload: %w", err)
	}

	q := `
		UPDATE assessments
		SET uploads = uploads || jsonb_build_object($1::text, $2::jsonb),
			updated_at = NOW()
		WHERE company_id = $3 AND status IN ('in-progress', 'completed')` + returning

	args := []any{u.QuestionID, string(meta), companyID}

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Assessment, error) {
		return repository.QueryOne(ctx, tx, q, args, scanAssessment)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("upload attached", "id", a.ID, "question", u.QuestionID, "key", u.StorageKey)
	return &a, nil
}

func (r *repo) Submit(ctx context.Context, companyID string) (*Assessment, error) {
	q := `
		UPDATE assessments
		SET status = 'submitted', submitted_at = NOW(), updated_at = NOW()
		WHERE company_id = $1 AND status = 'completed'` + returning

	a, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Assessment, error) {
		return repository.QueryOne(ctx, tx, q, []any{companyID}, scanAssessment)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("assessment submitted", "id", a.ID, "company", companyID)
	return &a, nil
}

func (r *repo) Count(ctx context.Context, status *Status) (int, error) {
	q, args := query.
		NewBuilder(projection).
		WhereEquals("Status", status).
		BuildCount()

	n, err := repository.Count(ctx, r.db, q, args...)
	if err != nil {
		return 0, fmt.Errorf("count assessments: %w", err)
	}
	return n, nil
}

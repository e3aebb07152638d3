package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/sustainassess/internal/assessments"
	"github.com/JaimeStill/sustainassess/internal/companies"
	"github.com/JaimeStill/sustainassess/internal/narrative"
	"github.com/JaimeStill/sustainassess/internal/reportpdf"
	"github.com/JaimeStill/sustainassess/internal/workflow"
	"github.com/JaimeStill/sustainassess/pkg/pagination"
	"github.com/JaimeStill/sustainassess/pkg/query"
	"github.com/JaimeStill/sustainassess/pkg/repository"
	"github.com/JaimeStill/sustainassess/pkg/sequence"
)

const (
	pkeyConstraint       = "reports_pkey"
	assessmentConstraint = "reports_company_assessment_key"
)

type repo struct {
	db          *sql.DB
	ids         sequence.Source
	rt          *workflow.Runtime
	assessments assessments.System
	companies   companies.System
	logger      *slog.Logger
	pagination  pagination.Config
	now         func() time.Time
}

// New creates a report repository implementing the System interface.
// It internally constructs the workflow runtime from the provided composer.
func New(
	db *sql.DB,
	composer *narrative.Composer,
	assessmentSys assessments.System,
	companySys companies.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	rt := &workflow.Runtime{
		Composer: composer,
		Logger:   logger.With("workflow", "report"),
	}
	return &repo{
		db:          db,
		ids:         sequence.New(db, "reports", "REP"),
		rt:          rt,
		assessments: assessmentSys,
		companies:   companySys,
		logger:      logger.With("system", "reports"),
		pagination:  pagination,
		now:         time.Now,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Generate(ctx context.Context, companyID string) (*Report, error) {
	a, err := r.submitted(ctx, companyID)
	if err != nil {
		return nil, err
	}

	existing, err := r.ForAssessment(ctx, companyID, a.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return r.create(ctx, a, false)
}

func (r *repo) Regenerate(ctx context.Context, companyID string) (*Report, error) {
	a, err := r.submitted(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return r.create(ctx, a, true)
}

func (r *repo) Find(ctx context.Context, companyID, id string) (*Report, error) {
	q, args := query.NewBuilder(projection).
		WhereEquals("ID", id).
		WhereEquals("CompanyID", companyID).
		Build()

	rep, err := repository.QueryOne(ctx, r.db, q, args, scanReport)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &rep, nil
}

func (r *repo) ForAssessment(ctx context.Context, companyID, assessmentID string) (*Report, error) {
	q, args := query.NewBuilder(projection).
		WhereEquals("CompanyID", companyID).
		WhereEquals("AssessmentID", assessmentID).
		Build()

	rep, err := repository.QueryOne(ctx, r.db, q, args, scanReport)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &rep, nil
}

func (r *repo) Latest(ctx context.Context, companyID string) (*Report, error) {
	q, args := query.NewBuilder(projection, defaultSort).
		WhereEquals("CompanyID", companyID).
		BuildFirst()

	rep, err := repository.QueryOne(ctx, r.db, q, args, scanReport)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &rep, nil
}

func (r *repo) Document(ctx context.Context, companyID, id string, download bool) (*File, error) {
	rep, err := r.Find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	company, a, err := r.load(ctx, rep)
	if err != nil {
		return nil, err
	}

	data, err := reportpdf.Render(documentInput(rep, company, a))
	if err != nil {
		return nil, fmt.Errorf("render report %s: %w", rep.ID, err)
	}

	pages, err := reportpdf.Validate(data)
	if err != nil {
		return nil, err
	}

	if download {
		if err := repository.ExecExpectOne(
			ctx, r.db,
			"UPDATE reports SET download_count = download_count + 1, is_downloaded = true WHERE id = $1",
			rep.ID,
		); err != nil {
			return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
	}

	r.logger.Info("report rendered",
		"id", rep.ID,
		"pages", pages,
		"bytes", len(data),
		"download", download,
	)

	return &File{
		Name:        reportpdf.Filename(company.Name, r.now()),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (r *repo) Text(ctx context.Context, companyID, id string) (*File, error) {
	rep, err := r.Find(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	company, a, err := r.load(ctx, rep)
	if err != nil {
		return nil, err
	}

	now := r.now()
	return &File{
		Name:        TextFilename(rep.ID),
		ContentType: "text/plain; charset=utf-8",
		Data:        []byte(RenderText(rep, company, a, now)),
	}, nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Report], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "CompanyName", "ID")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.Count(ctx, r.db, countSQL, countArgs...)
	if err != nil {
		return nil, fmt.Errorf("count reports: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanReport)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Recent(ctx context.Context, limit int) ([]Report, error) {
	q, args := query.NewBuilder(projection, defaultSort).BuildPage(1, limit)

	items, err := repository.QueryMany(ctx, r.db, q, args, scanReport)
	if err != nil {
		return nil, fmt.Errorf("query recent reports: %w", err)
	}
	return items, nil
}

func (r *repo) Count(ctx context.Context) (int, error) {
	return repository.Count(ctx, r.db, "SELECT COUNT(*) FROM reports")
}

func (r *repo) submitted(ctx context.Context, companyID string) (*assessments.Assessment, error) {
	a, err := r.assessments.LatestSubmitted(ctx, companyID)
	if err != nil {
		if errors.Is(err, assessments.ErrNotFound) {
			return nil, ErrNoSubmission
		}
		return nil, err
	}
	return a, nil
}

// create runs the report workflow for a and stores the result. With replace
// set, the company's earlier reports are removed in the same transaction as
// the insert, once the workflow has succeeded.
func (r *repo) create(ctx context.Context, a *assessments.Assessment, replace bool) (*Report, error) {
	company, err := r.companies.Find(ctx, a.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("load company %s: %w", a.CompanyID, err)
	}

	result, err := workflow.Execute(ctx, r.rt, workflow.Input{
		Company:  company.Name,
		Industry: company.Industry,
		General:  a.General,
		Specific: a.Specific,
	})
	if err != nil {
		return nil, fmt.Errorf("generate report for %s: %w", a.ID, err)
	}

	args, err := insertArgs(a, result)
	if err != nil {
		return nil, err
	}

	var id string
	if replace {
		id, err = repository.WithTx(ctx, r.db, func(tx *sql.Tx) (string, error) {
			removed, err := repository.ExecAffected(ctx, tx, "DELETE FROM reports WHERE company_id = $1", a.CompanyID)
			if err != nil {
				return "", fmt.Errorf("remove reports: %w", err)
			}
			r.logger.Info("reports removed for regeneration", "company", a.CompanyID, "count", removed)

			return r.insert(ctx, tx, args, func(f func() error) error {
				return repository.Savepoint(ctx, tx, "report_insert", f)
			})
		})
	} else {
		id, err = r.insert(ctx, r.db, args, func(f func() error) error { return f() })
	}

	if err != nil {
		if repository.IsUniqueViolation(err, assessmentConstraint) {
			return r.ForAssessment(ctx, a.CompanyID, a.ID)
		}
		return nil, fmt.Errorf("store report: %w", err)
	}

	r.logger.Info("report generated",
		"id", id,
		"company", a.CompanyID,
		"assessment", a.ID,
		"score", result.Evaluation.Score,
		"replaced", replace,
		"summary_source", result.Summary.Provenance.Source,
		"suggestions_source", result.Recommendations.Provenance.Source,
	)

	return r.Find(ctx, a.CompanyID, id)
}

const insertQuery = `
	INSERT INTO reports(
		id, company_id, assessment_id, compliance_score,
		report_data, suggestions, provenance, generated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// insert stores the report under a fresh identifier. Each attempt runs through
// attempt, which inside a transaction isolates a colliding insert so the next
// identifier can be tried.
func (r *repo) insert(
	ctx context.Context,
	e repository.Executor,
	args []any,
	attempt func(func() error) error,
) (string, error) {
	return sequence.Assign(ctx, r.ids, pkeyConstraint, sequence.DefaultAttempts, func(id string) (string, error) {
		return id, attempt(func() error {
			return repository.ExecExpectOne(ctx, e, insertQuery, append([]any{id}, args...)...)
		})
	})
}

// load fetches the company and assessment behind a report concurrently.
func (r *repo) load(ctx context.Context, rep *Report) (*companies.Company, *assessments.Assessment, error) {
	var (
		company *companies.Company
		a       *assessments.Assessment
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c, err := r.companies.Find(gctx, rep.CompanyID)
		if err != nil {
			return fmt.Errorf("load company %s: %w", rep.CompanyID, err)
		}
		company = c
		return nil
	})

	g.Go(func() error {
		found, err := r.assessments.Find(gctx, rep.AssessmentID)
		if err != nil {
			return fmt.Errorf("load assessment %s: %w", rep.AssessmentID, err)
		}
		a = found
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return company, a, nil
}

func insertArgs(a *assessments.Assessment, result *workflow.Result) ([]any, error) {
	data, err := json.Marshal(Data{
		Summary:    result.Summary.Text,
		Evaluation: result.Evaluation,
		Analytics:  result.Analytics,
	})
	if err != nil {
		return nil, fmt.Errorf("encode report data: %w", err)
	}

	suggestions, err := json.Marshal(result.Recommendations.Suggestions)
	if err != nil {
		return nil, fmt.Errorf("encode suggestions: %w", err)
	}

	provenance, err := json.Marshal(Provenance{
		Summary:     result.Summary.Provenance,
		Suggestions: result.Recommendations.Provenance,
	})
	if err != nil {
		return nil, fmt.Errorf("encode provenance: %w", err)
	}

	return []any{
		a.CompanyID,
		a.ID,
		result.Evaluation.Score,
		data,
		suggestions,
		provenance,
		result.CompletedAt,
	}, nil
}

func documentInput(rep *Report, c *companies.Company, a *assessments.Assessment) reportpdf.Input {
	return reportpdf.Input{
		ReportID:     rep.ID,
		AssessmentID: rep.AssessmentID,
		Company: reportpdf.Company{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			Industry: c.Industry,
		},
		SubmittedAt: a.SubmittedAt,
		GeneratedAt: rep.GeneratedAt,
		Evaluation:  rep.Data.Evaluation,
		Summary:     rep.Data.Summary,
		Analytics:   rep.Data.Analytics,
		Suggestions: rep.Suggestions,
		Provenance:  rep.Provenance.Suggestions,
		General:     a.General,
		Specific:    a.Specific,
	}
}

package companies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/pagination"
	"github.com/JaimeStill/sustainassess/pkg/query"
	"github.com/JaimeStill/sustainassess/pkg/repository"
	"github.com/JaimeStill/sustainassess/pkg/sequence"
	"github.com/JaimeStill/sustainassess/pkg/validation"
)

const (
	pkeyConstraint  = "companies_pkey"
	emailConstraint = "companies_email_key"
)

type repo struct {
	db         *sql.DB
	ids        sequence.Source
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a company repository implementing the System interface.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		ids:        sequence.New(db, "companies", "COMP"),
		logger:     logger.With("system", "companies"),
		pagination: pagination,
	}
}

func (r *repo) Handler(tokens *auth.Tokens) *Handler {
	return NewHandler(r, tokens, r.logger, r.pagination)
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*Company, error) {
	cmd.normalize()
	if err := validation.Struct(cmd); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	q := `
		INSERT INTO companies(id, name, email, password_hash, industry)
		VALUES ($1, $2, $3, $4, $5)
		` + returning

	c, err := sequence.Assign(ctx, r.ids, pkeyConstraint, sequence.DefaultAttempts, func(id string) (Company, error) {
		args := []any{id, cmd.Name, cmd.Email, hash, cmd.Industry}
		return repository.QueryOne(ctx, r.db, q, args, scanCompany)
	})

	if err != nil {
		if repository.IsUniqueViolation(err, emailConstraint) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("register company: %w", err)
	}

	r.logger.Info("company registered", "id", c.ID, "industry", c.Industry)
	return &c, nil
}

func (r *repo) Authenticate(ctx context.Context, email, password string) (*Company, error) {
	q := `
		SELECT id, name, email, industry, active, registered_at, updated_at, password_hash
		FROM public.companies
		WHERE email = $1`

	c, err := repository.QueryOne(ctx, r.db, q, []any{normalizeEmail(email)}, scanCredentials)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	ok, err := auth.ComparePassword(c.hash, password)
	if err != nil {
		return nil, fmt.Errorf("compare password: %w", err)
	}
	if !ok || !c.Active {
		return nil, ErrInvalidCredentials
	}

	return &c.Company, nil
}

func (r *repo) Find(ctx context.Context, id string) (*Company, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanCompany)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Company], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Email", "ID")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.Count(ctx, r.db, countSQL, countArgs...)
	if err != nil {
		return nil, fmt.Errorf("count companies: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanCompany)
	if err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Count(ctx context.Context) (int, error) {
	q, args := query.NewBuilder(projection).BuildCount()
	n, err := repository.Count(ctx, r.db, q, args...)
	if err != nil {
		return 0, fmt.Errorf("count companies: %w", err)
	}
	return n, nil
}

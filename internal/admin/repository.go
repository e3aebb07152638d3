package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/sustainassess/internal/assessments"
	"github.com/JaimeStill/sustainassess/internal/companies"
	"github.com/JaimeStill/sustainassess/internal/reports"
	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/pagination"
)

type repo struct {
	cfg         *auth.Config
	companies   companies.System
	assessments assessments.System
	reports     reports.System
	logger      *slog.Logger
	pagination  pagination.Config
}

// New creates the admin system over the domain systems it reports on.
func New(
	cfg *auth.Config,
	companySys companies.System,
	assessmentSys assessments.System,
	reportSys reports.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		cfg:         cfg,
		companies:   companySys,
		assessments: assessmentSys,
		reports:     reportSys,
		logger:      logger.With("system", "admin"),
		pagination:  pagination,
	}
}

func (r *repo) Handler(tokens *auth.Tokens) *Handler {
	return NewHandler(r, tokens, r.logger, r.pagination)
}

func (r *repo) Login(_ context.Context, cmd LoginCommand) (auth.Principal, error) {
	userOK := subtle.ConstantTimeCompare([]byte(cmd.Username), []byte(r.cfg.AdminUsername)) == 1

	passOK, err := auth.ComparePassword(r.cfg.AdminPasswordHash, cmd.Password)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("compare admin password: %w", err)
	}

	if !userOK || !passOK {
		r.logger.Warn("administrator login rejected", "username", cmd.Username)
		return auth.Principal{}, ErrInvalidCredentials
	}

	r.logger.Info("administrator signed in", "username", cmd.Username)
	return auth.Principal{
		Subject: r.cfg.AdminUsername,
		Name:    "Administrator",
		Role:    auth.RoleAdmin,
	}, nil
}

func (r *repo) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		d.TotalCompanies, err = r.companies.Count(gctx)
		return err
	})

	g.Go(func() (err error) {
		d.TotalAssessments, err = r.assessments.Count(gctx, nil)
		return err
	})

	g.Go(func() (err error) {
		d.TotalReports, err = r.reports.Count(gctx)
		return err
	})

	g.Go(func() (err error) {
		d.RecentReports, err = r.reports.Recent(gctx, RecentLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}

	if d.RecentReports == nil {
		d.RecentReports = []reports.Report{}
	}
	return &d, nil
}

func (r *repo) ComplianceScores(
	ctx context.Context,
	page pagination.PageRequest,
	filters reports.Filters,
) (*pagination.PageResult[reports.Report], error) {
	return r.reports.List(ctx, page, filters)
}

func (r *repo) CompanyReport(ctx context.Context, companyID string) (*CompanyReport, error) {
	c, err := r.companies.Find(ctx, companyID)
	if err != nil {
		return nil, err
	}

	rep, err := r.reports.Latest(ctx, companyID)
	if err != nil && !errors.Is(err, reports.ErrNotFound) {
		return nil, err
	}

	return &CompanyReport{Company: c, Report: rep}, nil
}

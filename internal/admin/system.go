package admin

import (
	"context"

	"github.com/JaimeStill/sustainassess/internal/reports"
	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/pagination"
)

// System defines the public contract for administrator operations.
type System interface {
	Handler(tokens *auth.Tokens) *Handler

	// Login checks the configured administrator credentials.
	Login(ctx context.Context, cmd LoginCommand) (auth.Principal, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	// ComplianceScores lists every company's reports, newest first.
	ComplianceScores(ctx context.Context, page pagination.PageRequest, filters reports.Filters) (*pagination.PageResult[reports.Report], error)
	CompanyReport(ctx context.Context, companyID string) (*CompanyReport, error)
}

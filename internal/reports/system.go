package reports

import (
	"context"

	"github.com/JaimeStill/sustainassess/pkg/pagination"
)

// System defines the public contract for report operations. Company-facing
// operations only see the signed-in company's reports.
type System interface {
	Handler() *Handler

	// Generate returns the report for the company's latest submitted
	// assessment, producing and storing it on first request.
	Generate(ctx context.Context, companyID string) (*Report, error)
	// Regenerate discards every report the company has and produces a new
	// one for the latest submitted assessment.
	Regenerate(ctx context.Context, companyID string) (*Report, error)

	Find(ctx context.Context, companyID, id string) (*Report, error)
	// ForAssessment returns the report produced for one assessment.
	ForAssessment(ctx context.Context, companyID, assessmentID string) (*Report, error)
	// Latest returns the company's most recently generated report.
	Latest(ctx context.Context, companyID string) (*Report, error)

	// Document renders the report as a PDF. A download is counted on the
	// report.
	Document(ctx context.Context, companyID, id string, download bool) (*File, error)
	// Text renders the report as a plain-text export.
	Text(ctx context.Context, companyID, id string) (*File, error)

	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Report], error)
	Recent(ctx context.Context, limit int) ([]Report, error)
	Count(ctx context.Context) (int, error)
}

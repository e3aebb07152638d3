package assessments

import "context"

// System defines the public contract for assessment operations. Every
// company-facing operation is scoped to the company that owns the assessment.
type System interface {
	Handler(evidence Evidence, maxFormSize int64) *Handler

	// Current returns the open assessment for the company, creating one when
	// none exists.
	Current(ctx context.Context, companyID string) (*Assessment, error)
	// Latest returns the company's most recently created assessment.
	Latest(ctx context.Context, companyID string) (*Assessment, error)
	// LatestSubmitted returns the company's most recent submitted assessment.
	LatestSubmitted(ctx context.Context, companyID string) (*Assessment, error)
	Find(ctx context.Context, id string) (*Assessment, error)

	// Save replaces the answers on the open assessment.
	Save(ctx context.Context, companyID string, cmd SaveCommand) (*Assessment, error)
	// AttachUpload records evidence metadata on the open assessment,
	// replacing any earlier upload for the same question.
	AttachUpload(ctx context.Context, companyID string, u Upload) (*Assessment, error)
	// Submit moves a completed assessment to submitted.
	Submit(ctx context.Context, companyID string) (*Assessment, error)

	// Count returns the number of assessments, optionally narrowed to status.
	Count(ctx context.Context, status *Status) (int, error)
}

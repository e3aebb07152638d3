package uploads

import (
	"context"

	"github.com/JaimeStill/sustainassess/internal/assessments"
)

// System defines the public contract for evidence uploads. It satisfies
// assessments.Evidence.
type System interface {
	Handler() *Handler

	// Store validates f, writes it to blob storage, and attaches it to the
	// open assessment. A failed attach removes the blob again.
	Store(ctx context.Context, companyID, questionID string, f assessments.File) (*assessments.Upload, error)
	// Open streams the evidence recorded for questionID on the company's
	// latest assessment.
	Open(ctx context.Context, companyID, questionID string) (*Blob, error)
}

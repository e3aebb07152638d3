package questions

import "context"

// System defines the public contract for questionnaire management.
type System interface {
	Handler() *Handler

	// Load returns the questionnaire for industry. An industry without a set
	// of its own uses the Other set.
	Load(ctx context.Context, industry string) (*Set, error)
	General(ctx context.Context) ([]Question, error)
	// Industry returns the set stored for exactly this industry, which is
	// empty when none exists.
	Industry(ctx context.Context, industry string) ([]Question, error)

	ReplaceGeneral(ctx context.Context, qs []Question) ([]Question, error)
	ReplaceIndustry(ctx context.Context, industry string, qs []Question) ([]Question, error)

	// Add appends a question with the next GQ or IQ identifier.
	Add(ctx context.Context, cmd AddCommand) (*Question, error)
	Update(ctx context.Context, kind Kind, industry, id string, q Question) (*Question, error)
	Remove(ctx context.Context, kind Kind, industry, id string) error
}

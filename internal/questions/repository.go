package questions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/JaimeStill/sustainassess/internal/companies"
	"github.com/JaimeStill/sustainassess/pkg/storage"
	"github.com/JaimeStill/sustainassess/pkg/validation"
)

const (
	generalKey    = "questions/general.json"
	industryKeyFn = "questions/industries/%s.json"
)

type repo struct {
	mu      sync.Mutex
	storage storage.System
	logger  *slog.Logger
}

// New creates a question system that keeps its sets in store.
func New(store storage.System, logger *slog.Logger) System {
	return &repo{
		storage: store,
		logger:  logger.With("system", "questions"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Load(ctx context.Context, industry string) (*Set, error) {
	general, err := r.General(ctx)
	if err != nil {
		return nil, err
	}

	resolved := industry
	specific, found, err := r.industry(ctx, industry)
	if err != nil {
		return nil, err
	}

	if !found && industry != companies.IndustryOther {
		resolved = companies.IndustryOther
		if specific, _, err = r.industry(ctx, resolved); err != nil {
			return nil, err
		}
	}

	return &Set{
		Industry: resolved,
		General:  general,
		Specific: specific,
	}, nil
}

func (r *repo) General(ctx context.Context) ([]Question, error) {
	qs, found, err := r.read(ctx, generalKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return DefaultGeneral(), nil
	}
	return qs, nil
}

func (r *repo) Industry(ctx context.Context, industry string) ([]Question, error) {
	if !companies.IsIndustry(industry) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIndustry, industry)
	}

	qs, _, err := r.industry(ctx, industry)
	return qs, err
}

func (r *repo) ReplaceGeneral(ctx context.Context, qs []Question) ([]Question, error) {
	if err := validateSet(qs); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.write(ctx, generalKey, qs); err != nil {
		return nil, err
	}

	r.logger.Info("general questions replaced", "count", len(qs))
	return qs, nil
}

func (r *repo) ReplaceIndustry(ctx context.Context, industry string, qs []Question) ([]Question, error) {
	if !companies.IsIndustry(industry) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownIndustry, industry)
	}
	if err := validateSet(qs); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.write(ctx, industryKey(industry), qs); err != nil {
		return nil, err
	}

	r.logger.Info("industry questions replaced", "industry", industry, "count", len(qs))
	return qs, nil
}

func (r *repo) Add(ctx context.Context, cmd AddCommand) (*Question, error) {
	if cmd.Kind != KindGeneral && cmd.Kind != KindIndustry {
		return nil, &validation.Error{Fields: map[string]string{
			"type": "must be one of: general industry",
		}}
	}

	q := cmd.Question
	if cmd.RequiresDocument {
		q.Type = TypeFileUpload
		q.RequiresDocument = true
	}
	if q.Options == nil {
		q.Options = []string{}
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key, qs, err := r.own(ctx, cmd.Kind, cmd.Industry)
	if err != nil {
		return nil, err
	}

	q.ID = NextID(cmd.Kind, qs)
	qs = append(qs, q)

	if err := r.write(ctx, key, qs); err != nil {
		return nil, err
	}

	r.logger.Info("question added", "kind", cmd.Kind, "industry", cmd.Industry, "id", q.ID)
	return &q, nil
}

func (r *repo) Update(ctx context.Context, kind Kind, industry, id string, q Question) (*Question, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key, qs, err := r.own(ctx, kind, industry)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(qs, func(existing Question) bool { return existing.ID == id })
	if i < 0 {
		return nil, ErrNotFound
	}

	q.ID = id
	qs[i] = q

	if err := r.write(ctx, key, qs); err != nil {
		return nil, err
	}

	r.logger.Info("question updated", "kind", kind, "industry", industry, "id", id)
	return &q, nil
}

func (r *repo) Remove(ctx context.Context, kind Kind, industry, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key, qs, err := r.own(ctx, kind, industry)
	if err != nil {
		return err
	}

	kept := slices.DeleteFunc(qs, func(q Question) bool { return q.ID == id })
	if len(kept) == len(qs) {
		return ErrNotFound
	}

	if err := r.write(ctx, key, kept); err != nil {
		return err
	}

	r.logger.Info("question removed", "kind", kind, "industry", industry, "id", id)
	return nil
}

// NextID returns the identifier for a question appended to qs: the kind's
// prefix followed by one more than the highest number already used.
func NextID(kind Kind, qs []Question) string {
	prefix := kind.prefix()
	highest := 0
	for _, q := range qs {
		digits, ok := strings.CutPrefix(q.ID, prefix)
		if !ok {
			continue
		}
		if n, err := strconv.Atoi(digits); err == nil && n > highest {
			highest = n
		}
	}
	return prefix + strconv.Itoa(highest+1)
}

// own returns the storage key and current contents of the set an edit
// applies to. Industry sets never fall back to another industry here.
func (r *repo) own(ctx context.Context, kind Kind, industry string) (string, []Question, error) {
	if kind == KindGeneral {
		qs, err := r.General(ctx)
		return generalKey, qs, err
	}

	if !companies.IsIndustry(industry) {
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownIndustry, industry)
	}

	qs, _, err := r.industry(ctx, industry)
	return industryKey(industry), qs, err
}

// industry returns the stored set, else the built-in one, and whether either
// exists.
func (r *repo) industry(ctx context.Context, industry string) ([]Question, bool, error) {
	qs, found, err := r.read(ctx, industryKey(industry))
	if err != nil || found {
		return qs, found, err
	}

	qs, ok := DefaultIndustry(industry)
	return qs, ok, nil
}

func (r *repo) read(ctx context.Context, key string) ([]Question, bool, error) {
	body, err := r.storage.Download(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	defer body.Close()

	var qs []Question
	if err := json.NewDecoder(body).Decode(&qs); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}
	if qs == nil {
		qs = []Question{}
	}
	return qs, true, nil
}

func (r *repo) write(ctx context.Context, key string, qs []Question) error {
	if qs == nil {
		qs = []Question{}
	}

	data, err := json.MarshalIndent(qs, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := r.storage.Upload(ctx, key, bytes.NewReader(data), "application/json"); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func industryKey(industry string) string {
	return fmt.Sprintf(industryKeyFn, url.PathEscape(industry))
}

func validateSet(qs []Question) error {
	seen := make(map[string]bool, len(qs))
	for i, q := range qs {
		if q.ID == "" {
			return &validation.Error{Fields: map[string]string{
				"questions[" + strconv.Itoa(i) + "].id": "id is required",
			}}
		}
		if seen[q.ID] {
			return &validation.Error{Fields: map[string]string{
				"questions[" + strconv.Itoa(i) + "].id": "duplicate id " + q.ID,
			}}
		}
		seen[q.ID] = true

		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %s: %w", q.ID, err)
		}
	}
	return nil
}

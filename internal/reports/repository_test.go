package reports_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/google/uuid"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/sustainassess/internal/assessments"
	"github.com/JaimeStill/sustainassess/internal/companies"
	"github.com/JaimeStill/sustainassess/internal/narrative"
	"github.com/JaimeStill/sustainassess/internal/reports"
	"github.com/JaimeStill/sustainassess/internal/scoring"
	"github.com/JaimeStill/sustainassess/pkg/pagination"
)

// openDatabase connects to the migrated database named by
// SUSTAINASSESS_DB_DSN, skipping the test when none is configured.
func openDatabase(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("SUSTAINASSESS_DB_DSN")
	if dsn == "" {
		t.Skip("SUSTAINASSESS_DB_DSN not set")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	var migrated bool
	if err := db.QueryRowContext(context.Background(), "SELECT to_regclass('public.reports') IS NOT NULL").Scan(&migrated); err != nil {
		t.Fatalf("check schema: %v", err)
	}
	if !migrated {
		t.Skip("reports table missing; run cmd/migrate -up first")
	}

	return db
}

type reportFixture struct {
	company     *companies.Company
	assessments assessments.System
	reports     reports.System
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()

	db := openDatabase(t)
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	page := pagination.Config{DefaultPageSize: 20, MaxPageSize: 100}

	companySys := companies.New(db, logger, page)
	assessmentSys := assessments.New(db, logger)
	reportSys := reports.New(
		db,
		narrative.NewComposer(nil, nil, logger),
		assessmentSys,
		companySys,
		logger,
		page,
	)

	company, err := companySys.Register(ctx, companies.RegisterCommand{
		Name:            "Regeneration Works",
		Email:           "regen-" + uuid.NewString() + "@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Industry:        "Manufacturing",
	})
	if err != nil {
		t.Fatalf("register company: %v", err)
	}

	t.Cleanup(func() {
		for _, q := range []string{
			"DELETE FROM reports WHERE company_id = $1",
			"DELETE FROM assessments WHERE company_id = $1",
			"DELETE FROM companies WHERE id = $1",
		} {
			if _, err := db.ExecContext(context.Background(), q, company.ID); err != nil {
				t.Errorf("cleanup: %v", err)
			}
		}
	})

	return &reportFixture{company: company, assessments: assessmentSys, reports: reportSys}
}

func (f *reportFixture) submit(t *testing.T, general scoring.Answers) *assessments.Assessment {
	t.Helper()
	ctx := context.Background()

	if _, err := f.assessments.Current(ctx, f.company.ID); err != nil {
		t.Fatalf("current assessment: %v", err)
	}

	a, err := f.assessments.Save(ctx, f.company.ID, assessments.SaveCommand{
		General: general,
		Submit:  true,
	})
	if err != nil {
		t.Fatalf("submit assessment: %v", err)
	}
	if a.Status != assessments.StatusSubmitted {
		t.Fatalf("status = %s, want submitted", a.Status)
	}
	return a
}

func TestGenerateWithoutSubmission(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.reports.Generate(context.Background(), f.company.ID)
	if !errors.Is(err, reports.ErrNoSubmission) {
		t.Errorf("err = %v, want ErrNoSubmission", err)
	}
}

func TestGenerateAndRegenerate(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	first := f.submit(t, scoring.Answers{
		{Key: scoring.KeySustainabilityPolicy, Answer: scoring.Text("No")},
		{Key: scoring.KeyWasteManagement, Answer: scoring.Text("Standard disposal")},
	})

	original, err := f.reports.Generate(ctx, f.company.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if original.AssessmentID != first.ID || original.Score != 0 {
		t.Errorf("original report = %s for %s with score %d", original.ID, original.AssessmentID, original.Score)
	}
	if original.Provenance.Summary.Source != narrative.SourceFallback {
		t.Errorf("summary source = %s, want fallback", original.Provenance.Summary.Source)
	}

	again, err := f.reports.Generate(ctx, f.company.ID)
	if err != nil {
		t.Fatalf("generate again: %v", err)
	}
	if again.ID != original.ID {
		t.Errorf("lazy generate produced %s, want existing %s", again.ID, original.ID)
	}

	second := f.submit(t, scoring.Answers{
		{Key: scoring.KeySustainabilityPolicy, Answer: scoring.Text("Yes")},
		{Key: scoring.KeyWasteManagement, Answer: scoring.Text("Recycling program")},
	})

	fresh, err := f.reports.Regenerate(ctx, f.company.ID)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if fresh.ID == original.ID {
		t.Fatal("regenerate reused the old report id")
	}
	if fresh.AssessmentID != second.ID {
		t.Errorf("regenerated report is for %s, want %s", fresh.AssessmentID, second.ID)
	}
	if fresh.Score != 100 {
		t.Errorf("regenerated score = %d, want 100", fresh.Score)
	}

	if _, err := f.reports.Find(ctx, f.company.ID, original.ID); !errors.Is(err, reports.ErrNotFound) {
		t.Errorf("find old report: err = %v, want ErrNotFound", err)
	}
	if _, err := f.reports.ForAssessment(ctx, f.company.ID, first.ID); !errors.Is(err, reports.ErrNotFound) {
		t.Errorf("report for first assessment: err = %v, want ErrNotFound", err)
	}

	latest, err := f.reports.Latest(ctx, f.company.ID)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.ID != fresh.ID {
		t.Errorf("latest = %s, want %s", latest.ID, fresh.ID)
	}

	after, err := f.reports.Generate(ctx, f.company.ID)
	if err != nil {
		t.Fatalf("generate after regenerate: %v", err)
	}
	if after.ID != fresh.ID {
		t.Errorf("generate after regenerate produced %s, want %s", after.ID, fresh.ID)
	}
}

func TestRegenerateTwice(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()

	f.submit(t, scoring.Answers{
		{Key: scoring.KeySustainabilityPolicy, Answer: scoring.Text("Partial")},
	})

	first, err := f.reports.Regenerate(ctx, f.company.ID)
	if err != nil {
		t.Fatalf("regenerate without prior report: %v", err)
	}

	second, err := f.reports.Regenerate(ctx, f.company.ID)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if second.ID == first.ID {
		t.Error("second regeneration kept the first report id")
	}
	if second.Score != 50 {
		t.Errorf("score = %d, want 50", second.Score)
	}
	if _, err := f.reports.Find(ctx, f.company.ID, first.ID); !errors.Is(err, reports.ErrNotFound) {
		t.Errorf("find replaced report: err = %v, want ErrNotFound", err)
	}
}

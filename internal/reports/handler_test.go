package reports_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/JaimeStill/sustainassess/internal/reports"
	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/pagination"
	"github.com/JaimeStill/sustainassess/pkg/routes"
)

type mockSystem struct {
	generateFn   func(ctx context.Context, companyID string) (*reports.Report, error)
	regenerateFn func(ctx context.Context, companyID string) (*reports.Report, error)
	findFn       func(ctx context.Context, companyID, id string) (*reports.Report, error)
	documentFn   func(ctx context.Context, companyID, id string, download bool) (*reports.File, error)
	textFn       func(ctx context.Context, companyID, id string) (*reports.File, error)
}

func (m *mockSystem) Handler() *reports.Handler {
	return reports.NewHandler(m, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (m *mockSystem) Generate(ctx context.Context, companyID string) (*reports.Report, error) {
	return m.generateFn(ctx, companyID)
}

func (m *mockSystem) Regenerate(ctx context.Context, companyID string) (*reports.Report, error) {
	return m.regenerateFn(ctx, companyID)
}

func (m *mockSystem) Find(ctx context.Context, companyID, id string) (*reports.Report, error) {
	return m.findFn(ctx, companyID, id)
}

func (m *mockSystem) ForAssessment(context.Context, string, string) (*reports.Report, error) {
	return nil, reports.ErrNotFound
}

func (m *mockSystem) Latest(context.Context, string) (*reports.Report, error) {
	return nil, reports.ErrNotFound
}

func (m *mockSystem) Document(ctx context.Context, companyID, id string, download bool) (*reports.File, error) {
	return m.documentFn(ctx, companyID, id, download)
}

func (m *mockSystem) Text(ctx context.Context, companyID, id string) (*reports.File, error) {
	return m.textFn(ctx, companyID, id)
}

func (m *mockSystem) List(context.Context, pagination.PageRequest, reports.Filters) (*pagination.PageResult[reports.Report], error) {
	return nil, errors.New("not implemented")
}

func (m *mockSystem) Recent(context.Context, int) ([]reports.Report, error) { return nil, nil }

func (m *mockSystem) Count(context.Context) (int, error) { return 0, nil }

func setupMux(sys reports.System) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, sys.Handler().Routes())
	return mux
}

func asCompany(r *http.Request, id string) *http.Request {
	return r.WithContext(auth.WithPrincipal(r.Context(), auth.Principal{
		Subject: id,
		Role:    auth.RoleCompany,
	}))
}

func sampleReport(companyID string) *reports.Report {
	return &reports.Report{
		ID:           "REP000001",
		CompanyID:    companyID,
		CompanyName:  "Acme Metals",
		AssessmentID: "ASS000001",
		Score:        72,
		GeneratedAt:  time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestHandlerCurrent(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"generated", nil, http.StatusOK},
		{"nothing submitted", reports.ErrNoSubmission, http.StatusNotFound},
		{"workflow failure", errors.New("graph failed"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotCompany string
			sys := &mockSystem{
				generateFn: func(_ context.Context, companyID string) (*reports.Report, error) {
					gotCompany = companyID
					if tt.err != nil {
						return nil, tt.err
					}
					return sampleReport(companyID), nil
				},
			}

			rec := httptest.NewRecorder()
			setupMux(sys).ServeHTTP(rec, asCompany(httptest.NewRequest(http.MethodGet, "/reports/current", nil), "COMP000004"))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if gotCompany != "COMP000004" {
				t.Errorf("company = %s", gotCompany)
			}
			if tt.err != nil {
				return
			}

			var got reports.Report
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if got.ID != "REP000001" || got.Score != 72 {
				t.Errorf("report = %+v", got)
			}
		})
	}
}

func TestHandlerRegenerate(t *testing.T) {
	called := false
	sys := &mockSystem{
		regenerateFn: func(_ context.Context, companyID string) (*reports.Report, error) {
			called = true
			return sampleReport(companyID), nil
		},
	}

	rec := httptest.NewRecorder()
	setupMux(sys).ServeHTTP(rec, asCompany(httptest.NewRequest(http.MethodPost, "/reports/regenerate", nil), "COMP000001"))

	if rec.Code != http.StatusOK || !called {
		t.Errorf("status = %d, called = %v", rec.Code, called)
	}
}

func TestHandlerFindScoped(t *testing.T) {
	sys := &mockSystem{
		findFn: func(_ context.Context, companyID, id string) (*reports.Report, error) {
			if companyID != "COMP000001" {
				return nil, reports.ErrNotFound
			}
			return sampleReport(companyID), nil
		},
	}
	mux := setupMux(sys)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, asCompany(httptest.NewRequest(http.MethodGet, "/reports/REP000001", nil), "COMP000001"))
	if rec.Code != http.StatusOK {
		t.Errorf("owner status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, asCompany(httptest.NewRequest(http.MethodGet, "/reports/REP000001", nil), "COMP000002"))
	if rec.Code != http.StatusNotFound {
		t.Errorf("other company status = %d", rec.Code)
	}
}

func TestHandlerDocument(t *testing.T) {
	var downloads []bool
	sys := &mockSystem{
		documentFn: func(_ context.Context, _, id string, download bool) (*reports.File, error) {
			downloads = append(downloads, download)
			return &reports.File{
				Name:        "sustainability-report-Acme-2026-03-14.pdf",
				ContentType: "application/pdf",
				Data:        []byte("%PDF-1.4"),
			}, nil
		},
		textFn: func(_ context.Context, _, id string) (*reports.File, error) {
			return &reports.File{
				Name:        reports.TextFilename(id),
				ContentType: "text/plain; charset=utf-8",
				Data:        []byte("SUSTAINABILITY ASSESSMENT REPORT"),
			}, nil
		},
	}
	mux := setupMux(sys)

	tests := []struct {
		path        string
		disposition string
		contentType string
	}{
		{"/reports/REP000001/pdf", `inline; filename="sustainability-report-Acme-2026-03-14.pdf"`, "application/pdf"},
		{"/reports/REP000001/download", `attachment; filename="sustainability-report-Acme-2026-03-14.pdf"`, "application/pdf"},
		{"/reports/REP000001/text", `attachment; filename="sustainability-report-REP000001.txt"`, "text/plain; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, asCompany(httptest.NewRequest(http.MethodGet, tt.path, nil), "COMP000001"))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d", rec.Code)
			}
			if got := rec.Header().Get("Content-Disposition"); got != tt.disposition {
				t.Errorf("disposition = %s", got)
			}
			if got := rec.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("content type = %s", got)
			}
		})
	}

	if len(downloads) != 2 || downloads[0] || !downloads[1] {
		t.Errorf("download flags = %v", downloads)
	}
}

func TestHandlerUnauthenticated(t *testing.T) {
	rec := httptest.NewRecorder()
	setupMux(&mockSystem{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports/current", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d", rec.Code)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{reports.ErrNotFound, http.StatusNotFound},
		{reports.ErrNoSubmission, http.StatusNotFound},
		{reports.ErrDuplicate, http.StatusConflict},
		{auth.ErrUnauthenticated, http.StatusUnauthorized},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := reports.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

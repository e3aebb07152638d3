package companies_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/sustainassess/internal/companies"
	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/pagination"
	"github.com/JaimeStill/sustainassess/pkg/routes"
)

type mockSystem struct {
	registerFn     func(ctx context.Context, cmd companies.RegisterCommand) (*companies.Company, error)
	authenticateFn func(ctx context.Context, email, password string) (*companies.Company, error)
	findFn         func(ctx context.Context, id string) (*companies.Company, error)
	listFn         func(ctx context.Context, page pagination.PageRequest, filters companies.Filters) (*pagination.PageResult[companies.Company], error)
}

func (m *mockSystem) Handler(tokens *auth.Tokens) *companies.Handler {
	return newTestHandler(m, tokens)
}

func (m *mockSystem) Register(ctx context.Context, cmd companies.RegisterCommand) (*companies.Company, error) {
	return m.registerFn(ctx, cmd)
}

func (m *mockSystem) Authenticate(ctx context.Context, email, password string) (*companies.Company, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockSystem) Find(ctx context.Context, id string) (*companies.Company, error) {
	return m.findFn(ctx, id)
}

func (m *mockSystem) List(ctx context.Context, page pagination.PageRequest, filters companies.Filters) (*pagination.PageResult[companies.Company], error) {
	return m.listFn(ctx, page, filters)
}

func (m *mockSystem) Count(context.Context) (int, error) { return 0, nil }

func testTokens(t *testing.T) *auth.Tokens {
	t.Helper()
	cfg := &auth.Config{
		Secret:            "0123456789abcdef0123456789abcdef",
		AdminPasswordHash: "$2a$10$abcdefghijklmnopqrstuuS6fIhYvyKdQWwSHmzcUZf3EPpY6LqHW",
	}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	return auth.NewTokens(cfg)
}

func newTestHandler(sys companies.System, tokens *auth.Tokens) *companies.Handler {
	return companies.NewHandler(
		sys,
		tokens,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		pagination.Config{DefaultPageSize: 20, MaxPageSize: 100},
	)
}

func setupMux(groups ...routes.Group) *http.ServeMux {
	mux := http.NewServeMux()
	for _, group := range groups {
		for _, route := range group.Routes {
			pattern := route.Method + " " + group.Prefix + route.Pattern
			mux.HandleFunc(pattern, route.Handler)
		}
	}
	return mux
}

func sampleCompany() companies.Company {
	return companies.Company{
		ID:           "COMP000001",
		Name:         "Acme Metals",
		Email:        "esg@acme.example",
		Industry:     "Manufacturing",
		Active:       true,
		RegisteredAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "sustainassess_session" {
			return c
		}
	}
	return nil
}

func TestHandlerRegister(t *testing.T) {
	tokens := testTokens(t)
	c := sampleCompany()

	sys := &mockSystem{
		registerFn: func(_ context.Context, cmd companies.RegisterCommand) (*companies.Company, error) {
			if cmd.Email == "taken@acme.example" {
				return nil, companies.ErrDuplicate
			}
			return &c, nil
		},
	}
	h := newTestHandler(sys, tokens)
	mux := setupMux(h.Routes())

	tests := []struct {
		name       string
		body       string
		want       int
		wantCookie bool
	}{
		{"created", `{"name":"Acme Metals","email":"esg@acme.example","password":"secret1","confirm_password":"secret1","industry":"Manufacturing"}`, http.StatusCreated, true},
		{"duplicate", `{"name":"Acme","email":"taken@acme.example"}`, http.StatusConflict, false},
		{"malformed", `{"name":`, http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/register", strings.NewReader(tt.body)))

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}

			cookie := sessionCookie(t, rec)
			if (cookie != nil) != tt.wantCookie {
				t.Fatalf("cookie present = %v, want %v", cookie != nil, tt.wantCookie)
			}
			if cookie == nil {
				return
			}

			p, err := tokens.Parse(cookie.Value)
			if err != nil {
				t.Fatalf("parse session: %v", err)
			}
			if p.Subject != c.ID || p.Role != auth.RoleCompany {
				t.Errorf("principal = %+v", p)
			}
		})
	}
}

func TestHandlerLogin(t *testing.T) {
	c := sampleCompany()
	sys := &mockSystem{
		authenticateFn: func(_ context.Context, email, password string) (*companies.Company, error) {
			if email == c.Email && password == "secret1" {
				return &c, nil
			}
			return nil, companies.ErrInvalidCredentials
		},
	}
	mux := setupMux(newTestHandler(sys, testTokens(t)).Routes())

	t.Run("valid", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := `{"email":"esg@acme.example","password":"secret1"}`
		mux.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(body)))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if sessionCookie(t, rec) == nil {
			t.Error("missing session cookie")
		}

		var got companies.Company
		if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if got.ID != c.ID {
			t.Errorf("id = %s", got.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := httptest.NewRecorder()
		body := `{"email":"esg@acme.example","password":"nope"}`
		mux.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/login", strings.NewReader(body)))

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if sessionCookie(t, rec) != nil {
			t.Error("session cookie set on failed login")
		}
	})
}

func TestHandlerLogout(t *testing.T) {
	mux := setupMux(newTestHandler(&mockSystem{}, testTokens(t)).Routes())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/auth/logout", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	cookie := sessionCookie(t, rec)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Errorf("cookie = %+v, want expired session cookie", cookie)
	}
}

func TestHandlerAdminRoutes(t *testing.T) {
	c := sampleCompany()
	var captured companies.Filters

	sys := &mockSystem{
		listFn: func(_ context.Context, _ pagination.PageRequest, f companies.Filters) (*pagination.PageResult[companies.Company], error) {
			captured = f
			result := pagination.NewPageResult([]companies.Company{c}, 1, 1, 20)
			return &result, nil
		},
		findFn: func(_ context.Context, id string) (*companies.Company, error) {
			if id == c.ID {
				return &c, nil
			}
			return nil, companies.ErrNotFound
		},
	}
	mux := setupMux(newTestHandler(sys, testTokens(t)).AdminRoutes())

	tests := []struct {
		name string
		path string
		want int
	}{
		{"list", "/companies?industry=Manufacturing", http.StatusOK},
		{"find", "/companies/COMP000001", http.StatusOK},
		{"missing", "/companies/COMP999999", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}

	if captured.Industry == nil || *captured.Industry != "Manufacturing" {
		t.Errorf("industry filter = %v", captured.Industry)
	}
}

func TestHandlerIndustries(t *testing.T) {
	mux := setupMux(newTestHandler(&mockSystem{}, testTokens(t)).Routes())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/auth/industries", nil))

	var got []string
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != len(companies.Industries()) {
		t.Errorf("industries = %d", len(got))
	}
}

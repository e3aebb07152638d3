package pagination_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/JaimeStill/sustainassess/pkg/pagination"
)

func TestPageRequestFromQuery(t *testing.T) {
	cfg := pagination.Config{DefaultPageSize: 20, MaxPageSize: 50}

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
		wantSearch   string
	}{
		{"defaults", "", 1, 20, ""},
		{"explicit", "page=3&page_size=10&search=acme", 3, 10, "acme"},
		{"clamped", "page=-1&page_size=500", 1, 50, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tt.query)
			req := pagination.PageRequestFromQuery(values, cfg)

			if req.Page != tt.wantPage || req.PageSize != tt.wantPageSize {
				t.Errorf("page=%d size=%d, want %d/%d", req.Page, req.PageSize, tt.wantPage, tt.wantPageSize)
			}
			search := ""
			if req.Search != nil {
				search = *req.Search
			}
			if search != tt.wantSearch {
				t.Errorf("search = %q, want %q", search, tt.wantSearch)
			}
		})
	}
}

func TestNewPageResult(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
	}

	for _, tt := range tests {
		r := pagination.NewPageResult[string](nil, tt.total, 1, tt.size)
		if r.TotalPages != tt.want {
			t.Errorf("total=%d size=%d: pages = %d, want %d", tt.total, tt.size, r.TotalPages, tt.want)
		}
		if r.Data == nil {
			t.Error("data should never be nil")
		}
	}
}

func TestSortFieldsUnmarshal(t *testing.T) {
	var req pagination.PageRequest
	if err := json.Unmarshal([]byte(`{"sort":"-created_at,name"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(req.Sort) != 2 || !req.Sort[0].Descending || req.Sort[1].Field != "name" {
		t.Errorf("sort = %+v", req.Sort)
	}
}

func TestConfigFinalize(t *testing.T) {
	t.Setenv("TEST_PAGE_SIZE", "15")

	cfg := pagination.Config{}
	if err := cfg.Finalize(&pagination.ConfigEnv{DefaultPageSize: "TEST_PAGE_SIZE"}); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if cfg.DefaultPageSize != 15 || cfg.MaxPageSize != 100 {
		t.Errorf("cfg = %+v", cfg)
	}

	bad := pagination.Config{DefaultPageSize: 200, MaxPageSize: 100}
	if err := bad.Finalize(nil); err == nil {
		t.Error("expected error when default exceeds max")
	}
}

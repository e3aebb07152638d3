package reports

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/JaimeStill/sustainassess/pkg/query"
	"github.com/JaimeStill/sustainassess/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "reports", "r").
	Join("JOIN public.companies c ON c.id = r.company_id").
	Project("id", "ID").
	Project("company_id", "CompanyID").
	ProjectFrom("c", "name", "CompanyName").
	ProjectFrom("c", "industry", "Industry").
	Project("assessment_id", "AssessmentID").
	Project("compliance_score", "Score").
	Project("report_data", "Data").
	Project("suggestions", "Suggestions").
	Project("provenance", "Provenance").
	Project("is_downloaded", "IsDownloaded").
	Project("download_count", "DownloadCount").
	Project("generated_at", "GeneratedAt")

var defaultSort = query.SortField{
	Field:      "GeneratedAt",
	Descending: true,
}

// Filters narrows report listings. Nil fields are ignored.
type Filters struct {
	CompanyID *string `json:"company_id,omitempty"`
	Industry  *string `json:"industry,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("CompanyID", f.CompanyID).
		WhereEquals("Industry", f.Industry)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("company_id"); c != "" {
		f.CompanyID = &c
	}

	if i := values.Get("industry"); i != "" {
		f.Industry = &i
	}

	return f
}

func scanReport(s repository.Scanner) (Report, error) {
	var (
		r                             Report
		data, suggestions, provenance []byte
	)

	err := s.Scan(
		&r.ID,
		&r.CompanyID,
		&r.CompanyName,
		&r.Industry,
		&r.AssessmentID,
		&r.Score,
		&data,
		&suggestions,
		&provenance,
		&r.IsDownloaded,
		&r.DownloadCount,
		&r.GeneratedAt,
	)
	if err != nil {
		return r, err
	}

	if err := json.Unmarshal(data, &r.Data); err != nil {
		return r, fmt.Errorf("decode report_data: %w", err)
	}
	if err := json.Unmarshal(suggestions, &r.Suggestions); err != nil {
		return r, fmt.Errorf("decode suggestions: %w", err)
	}
	if err := json.Unmarshal(provenance, &r.Provenance); err != nil {
		return r, fmt.Errorf("decode provenance: %w", err)
	}

	return r, nil
}

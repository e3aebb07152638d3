package companies

import (
	"net/url"
	"strconv"

	"github.com/JaimeStill/sustainassess/pkg/query"
	"github.com/JaimeStill/sustainassess/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "companies", "c").
	Project("id", "ID").
	Project("name", "Name").
	Project("email", "Email").
	Project("industry", "Industry").
	Project("active", "Active").
	Project("registered_at", "RegisteredAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "RegisteredAt",
	Descending: true,
}

const returning = "RETURNING id, name, email, industry, active, registered_at, updated_at"

// Filters narrows company listings. Nil fields are ignored.
type Filters struct {
	Industry *string `json:"industry,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Industry", f.Industry).
		WhereEquals("Active", f.Active)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if i := values.Get("industry"); i != "" {
		f.Industry = &i
	}

	if a := values.Get("active"); a != "" {
		if v, err := strconv.ParseBool(a); err == nil {
			f.Active = &v
		}
	}

	return f
}

func scanCompany(s repository.Scanner) (Company, error) {
	var c Company
	err := s.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Industry,
		&c.Active,
		&c.RegisteredAt,
		&c.UpdatedAt,
	)
	return c, err
}

type credentials struct {
	Company
	hash string
}

func scanCredentials(s repository.Scanner) (credentials, error) {
	var c credentials
	err := s.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Industry,
		&c.Active,
		&c.RegisteredAt,
		&c.UpdatedAt,
		&c.hash,
	)
	return c, err
}

// Package admin serves the administrator console: credential login, platform
// totals, and the compliance scores of every company.
package admin

import (
	"github.com/JaimeStill/sustainassess/internal/companies"
	"github.com/JaimeStill/sustainassess/internal/reports"
)

// RecentLimit is how many reports the dashboard lists.
const RecentLimit = 10

// Dashboard summarizes the platform.
type Dashboard struct {
	TotalCompanies   int              `json:"total_companies"`
	TotalAssessments int              `json:"total_assessments"`
	TotalReports     int              `json:"total_reports"`
	RecentReports    []reports.Report `json:"recent_reports"`
}

// CompanyReport pairs a company with its most recent report, which is nil
// when the company has none.
type CompanyReport struct {
	Company *companies.Company `json:"company"`
	Report  *reports.Report    `json:"report"`
}

// LoginCommand carries administrator credentials.
type LoginCommand struct {
	Username string `json:"id"`
	Password string `json:"password"`
}

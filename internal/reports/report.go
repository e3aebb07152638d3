// Package reports produces and stores compliance reports for submitted
// assessments and renders them as PDF or plain-text documents.
package reports

import (
	"time"

	"github.com/JaimeStill/sustainassess/internal/narrative"
	"github.com/JaimeStill/sustainassess/internal/scoring"
)

// Report is a stored compliance report. Company fields are joined from the
// companies table.
type Report struct {
	ID            string                `json:"id"`
	CompanyID     string                `json:"company_id"`
	CompanyName   string                `json:"company_name"`
	Industry      string                `json:"industry"`
	AssessmentID  string                `json:"assessment_id"`
	Score         int                   `json:"compliance_score"`
	Data          Data                  `json:"report_data"`
	Suggestions   narrative.Suggestions `json:"ai_suggestions"`
	Provenance    Provenance            `json:"provenance"`
	IsDownloaded  bool                  `json:"is_downloaded"`
	DownloadCount int                   `json:"download_count"`
	GeneratedAt   time.Time             `json:"generated_at"`
}

// Data is the deterministic evaluation together with the executive summary
// and the response analytics it was computed from.
type Data struct {
	Summary string `json:"summary"`
	scoring.Evaluation
	Analytics scoring.Analytics `json:"analytics"`
}

// Provenance records how each narrative part of the report was produced.
type Provenance struct {
	Summary     narrative.Provenance `json:"summary"`
	Suggestions narrative.Provenance `json:"suggestions"`
}

// File is a rendered report ready to send.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Package reportpdf lays out a compliance report as a paginated A4 document
// with vector charts drawn from the report's scores and response analytics.
package reportpdf

import (
	"bytes"
	"fmt"
	"regexp"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/JaimeStill/sustainassess/internal/narrative"
	"github.com/JaimeStill/sustainassess/internal/scoring"
	"github.com/JaimeStill/sustainassess/pkg/layout"
)

// Company is the profile printed in the report header table.
type Company struct {
	ID       string
	Name     string
	Email    string
	Industry string
}

// Input carries everything a report document shows.
type Input struct {
	ReportID     string
	AssessmentID string
	Company      Company
	SubmittedAt  *time.Time
	GeneratedAt  time.Time

	Evaluation  scoring.Evaluation
	Summary     string
	Analytics   scoring.Analytics
	Suggestions narrative.Suggestions
	Provenance  narrative.Provenance

	General  scoring.Answers
	Specific scoring.Answers
}

// Render draws the report onto a PDF surface and returns the document bytes.
// The document metadata is stamped with GeneratedAt, so equal inputs produce
// equal output.
func Render(in Input) ([]byte, error) {
	s := layout.NewPDFSurface("Sustainability Compliance Report - "+in.Company.Name, in.GeneratedAt)
	Draw(s, in)

	var buf bytes.Buffer
	if err := s.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate parses a rendered document and returns its page count.
func Validate(data []byte) (int, error) {
	pages, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return 0, fmt.Errorf("validate pdf: %w", err)
	}
	return pages, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename returns the attachment name for a company's report generated on date.
func Filename(company string, date time.Time) string {
	return fmt.Sprintf(
		"sustainability-report-%s-%s.pdf",
		unsafeChars.ReplaceAllString(company, "-"),
		date.Format(time.DateOnly),
	)
}

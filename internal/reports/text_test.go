package reports_test

import (
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/sustainassess/internal/assessments"
	"github.com/JaimeStill/sustainassess/internal/companies"
	"github.com/JaimeStill/sustainassess/internal/narrative"
	"github.com/JaimeStill/sustainassess/internal/reports"
	"github.com/JaimeStill/sustainassess/internal/scoring"
)

func TestRenderText(t *testing.T) {
	rep := sampleReport("COMP000001")
	rep.DownloadCount = 3
	rep.Data = reports.Data{
		Summary: "Acme is progressing well.",
		Evaluation: scoring.Evaluation{
			Score:     72,
			Strengths: []string{scoring.StrengthPolicy},
		},
	}
	rep.Suggestions = narrative.Suggestions{
		Improvements:  []string{"Install rooftop solar", "Audit suppliers"},
		PriorityLevel: narrative.PriorityHigh,
	}

	company := &companies.Company{
		ID:       "COMP000001",
		Name:     "Acme Metals",
		Email:    "esg@acme.example",
		Industry: "Manufacturing",
	}
	a := &assessments.Assessment{
		ID:        "ASS000001",
		Status:    assessments.StatusSubmitted,
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	got := reports.RenderText(rep, company, a, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))

	for _, want := range []string{
		"SUSTAINABILITY ASSESSMENT REPORT",
		"Company Name: Acme Metals",
		"Report ID: REP000001",
		"Generated Date: March 14, 2026",
		"Downloaded Date: March 20, 2026",
		"Acme is progressing well.",
		"Overall Compliance Score: 72%",
		"• " + scoring.StrengthPolicy,
		"No critical weak areas identified.",
		"1. Install rooftop solar\n2. Audit suppliers",
		"Priority: High",
		"Assessment Status: submitted",
		"Assessment Date: March 1, 2026",
		"Download Count: 3",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("export missing %q", want)
		}
	}

	if strings.Index(got, "Executive Summary") > strings.Index(got, "Strengths Identified") {
		t.Error("summary should precede strengths")
	}
}

func TestRenderTextWithoutAssessment(t *testing.T) {
	got := reports.RenderText(sampleReport("COMP000001"), &companies.Company{Name: "Acme"}, nil, time.Now())

	if !strings.Contains(got, "Assessment Status: N/A") {
		t.Error("missing N/A status")
	}
	if !strings.Contains(got, "No AI suggestions available") {
		t.Error("missing empty suggestions placeholder")
	}
}

package reports

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/JaimeStill/sustainassess/internal/assessments"
	"github.com/JaimeStill/sustainassess/internal/companies"
)

const textDate = "January 2, 2006"

// TextFilename returns the attachment name for a plain-text export.
func TextFilename(reportID string) string {
	return "sustainability-report-" + reportID + ".txt"
}

// RenderText formats the report as the plain-text export. a may be nil when
// the assessment is no longer available.
func RenderText(rep *Report, c *companies.Company, a *assessments.Assessment, downloaded time.Time) string {
	var b strings.Builder

	section := func(title string) {
		b.WriteString("\n" + title + ":\n")
		b.WriteString(strings.Repeat("-", len(title)+1) + "\n")
	}
	bullets := func(items []string, empty string) {
		if len(items) == 0 {
			b.WriteString(empty + "\n")
			return
		}
		for _, item := range items {
			b.WriteString("• " + item + "\n")
		}
	}

	b.WriteString("SUSTAINABILITY ASSESSMENT REPORT\n")
	b.WriteString(strings.Repeat("=", 31) + "\n")

	section("Company Information")
	fmt.Fprintf(&b, "Company Name: %s\n", c.Name)
	fmt.Fprintf(&b, "Industry: %s\n", c.Industry)
	fmt.Fprintf(&b, "Email: %s\n", c.Email)
	fmt.Fprintf(&b, "Report ID: %s\n", rep.ID)
	fmt.Fprintf(&b, "Generated Date: %s\n", rep.GeneratedAt.Format(textDate))
	fmt.Fprintf(&b, "Downloaded Date: %s\n", downloaded.Format(textDate))

	section("Executive Summary")
	b.WriteString(rep.Data.Summary + "\n")
	fmt.Fprintf(&b, "\nOverall Compliance Score: %d%%\n", rep.Score)

	section("Strengths Identified")
	bullets(rep.Data.Strengths, "No specific strengths identified.")

	section("Areas for Improvement")
	bullets(rep.Data.WeakAreas, "No critical weak areas identified.")

	section("AI-Powered Recommendations")
	if len(rep.Suggestions.Improvements) == 0 {
		b.WriteString("No AI suggestions available\n")
	}
	for i, s := range rep.Suggestions.Improvements {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	if rep.Suggestions.PriorityLevel != "" {
		fmt.Fprintf(&b, "Priority: %s\n", rep.Suggestions.PriorityLevel)
	}

	status, date := "N/A", "N/A"
	if a != nil {
		status = string(a.Status)
		date = a.CreatedAt.Format(textDate)
	}

	section("Assessment Details")
	fmt.Fprintf(&b, "Assessment Status: %s\n", status)
	fmt.Fprintf(&b, "Assessment Date: %s\n", date)

	section("Report Statistics")
	b.WriteString("Download Count: " + strconv.Itoa(rep.DownloadCount) + "\n")
	b.WriteString("Report Version: 1.0\n")

	b.WriteString("\n---\n")
	b.WriteString("This report was generated by the Sustainability Assessment Platform.\n")
	b.WriteString("For questions or support, please contact your system administrator.\n")

	return b.String()
}

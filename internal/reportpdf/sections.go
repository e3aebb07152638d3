package reportpdf

import (
	"fmt"
	"strconv"
	"time"

	"github.com/JaimeStill/sustainassess/internal/narrative"
	"github.com/JaimeStill/sustainassess/internal/scoring"
	"github.com/JaimeStill/sustainassess/pkg/layout"
)

// Draw lays the report out on s, one section after another, and finishes
// with a footer on every page.
func Draw(s layout.Surface, in Input) {
	f := newFlow(s)

	header(f, in)
	companyInfo(f, in)
	complianceScore(f, in.Evaluation.Score)
	scoreBreakdown(f, in.Evaluation.Score)
	analytics(f, in.Analytics)
	qualityChart(f, in.Analytics.Quality)
	categoryChart(f, in.Analytics)
	textSection(f, "Executive Summary", in.Summary)
	textSection(f, "Industry Observations", in.Evaluation.IndustryObservations)
	listSection(f, "Key Strengths", in.Evaluation.Strengths, "No specific strengths were identified in this assessment.")
	listSection(f, "Areas for Improvement", in.Evaluation.WeakAreas, "No critical weak areas were identified in this assessment.")
	recommendations(f, in.Suggestions, in.Provenance)
	transcript(f, in.General, in.Specific)

	f.p.Finish(footer(in.ReportID))
}

func header(f *flow, in Input) {
	w, _ := f.s.Size()

	f.s.SetFillColor(brand)
	f.s.Rect(0, 0, w, headerHeight, layout.Fill)

	f.s.SetTextColor(layout.White)
	f.s.SetFont(layout.Bold, 22)
	f.s.Text(margin, 30, 0, "Sustainability Compliance Report", layout.AlignLeft)
	f.s.SetFont(layout.Regular, 11)
	f.s.Text(margin, 62, 0, "Generated on "+in.GeneratedAt.Format("January 2, 2006"), layout.AlignLeft)

	f.p.SetY(headerHeight + 30)
}

func companyInfo(f *flow, in Input) {
	submitted := "Not submitted"
	if in.SubmittedAt != nil {
		submitted = in.SubmittedAt.Format(time.DateOnly)
	}

	f.heading("Company Information", 18*3)
	f.rows([][2]string{
		{"Company Name", in.Company.Name},
		{"Company ID", in.Company.ID},
		{"Email", in.Company.Email},
		{"Industry", in.Company.Industry},
		{"Assessment ID", in.AssessmentID},
		{"Submission Date", submitted},
		{"Report ID", in.ReportID},
	})
	f.gap()
}

func complianceScore(f *flow, score int) {
	const (
		badgeWidth  = 90.0
		badgeHeight = 44.0
	)

	f.heading("Compliance Score", badgeHeight)
	y := f.p.Y()

	f.s.SetFillColor(scoreColor(score))
	f.s.Rect(f.left, y, badgeWidth, badgeHeight, layout.Fill)
	f.s.SetFont(layout.Bold, 20)
	f.s.SetTextColor(layout.White)
	f.s.Text(f.left, y+12, badgeWidth, strconv.Itoa(score)+"%", layout.AlignCenter)

	f.s.SetFont(layout.Regular, bodySize)
	f.s.SetTextColor(ink)
	f.s.Paragraph(f.left+badgeWidth+16, y+8, f.width-badgeWidth-16, lineHeight, scoreInterpretation(score), layout.AlignLeft)

	f.p.Advance(badgeHeight)
	f.gap()
}

func scoreBreakdown(f *flow, score int) {
	f.heading("Score Breakdown", chartHeight)
	cx := f.left + chartRadius + 10
	cy := f.p.Y() + chartRadius + 5

	layout.Pie{
		CX: cx, CY: cy, R: chartRadius,
		Slices: []layout.Slice{
			{Value: float64(score), Color: scoreColor(score)},
			{Value: float64(100 - score), Color: neutral},
		},
		Hole:     0.6,
		NoLabels: true,
	}.Draw(f.s)

	f.s.SetFont(layout.Bold, 12)
	f.s.SetTextColor(ink)
	f.s.Text(cx-12, cy-6, 0, strconv.Itoa(score)+"%", layout.AlignLeft)

	f.legend(f.left+2*chartRadius+50, f.p.Y()+30, []legendEntry{
		{fmt.Sprintf("Achieved: %d%%", score), scoreColor(score)},
		{fmt.Sprintf("Remaining: %d%%", 100-score), neutral},
	})

	f.p.Advance(chartHeight)
}

func analytics(f *flow, a scoring.Analytics) {
	f.heading("Assessment Analytics", 18*3)
	f.rows([][2]string{
		{"Total Questions", strconv.Itoa(a.TotalQuestions)},
		{"General Questions", strconv.Itoa(a.TotalGeneral)},
		{"Industry-Specific Questions", strconv.Itoa(a.TotalIndustry)},
		{"High Quality Responses", strconv.Itoa(a.Quality.High)},
		{"Medium Quality Responses", strconv.Itoa(a.Quality.Medium)},
		{"Basic Responses", strconv.Itoa(a.Quality.Basic)},
	})
	f.gap()
}

func qualityChart(f *flow, q scoring.QualityBreakdown) {
	f.heading("Response Quality Distribution", chartHeight)
	y := f.p.Y()

	layout.Pie{
		CX: f.left + chartRadius + 10, CY: y + chartRadius + 5, R: chartRadius,
		Slices: []layout.Slice{
			{Value: float64(q.High), Color: brand},
			{Value: float64(q.Medium), Color: brandMid},
			{Value: float64(q.Basic), Color: brandSoft},
		},
		Hole:           0.3,
		LabelThreshold: 8,
	}.Draw(f.s)

	f.legend(f.left+2*chartRadius+50, y+20, []legendEntry{
		{fmt.Sprintf("High Quality: %d", q.High), brand},
		{fmt.Sprintf("Medium Quality: %d", q.Medium), brandMid},
		{fmt.Sprintf("Basic Response: %d", q.Basic), brandSoft},
	})

	f.p.Advance(chartHeight)
}

func categoryChart(f *flow, a scoring.Analytics) {
	if a.TotalGeneral == 0 && a.TotalIndustry == 0 {
		return
	}

	f.heading("Question Categories", chartHeight)
	y := f.p.Y()

	layout.Pie{
		CX: f.left + chartRadius + 10, CY: y + chartRadius + 5, R: chartRadius,
		Slices: []layout.Slice{
			{Value: float64(a.TotalGeneral), Color: brand},
			{Value: float64(a.TotalIndustry), Color: brandMid},
		},
		LabelThreshold: 15,
	}.Draw(f.s)

	f.legend(f.left+2*chartRadius+50, y+30, []legendEntry{
		{fmt.Sprintf("%s: %d", scoring.CategoryGeneral, a.TotalGeneral), brand},
		{fmt.Sprintf("%s: %d", scoring.CategoryIndustry, a.TotalIndustry), brandMid},
	})

	f.p.Advance(chartHeight)
}

func textSection(f *flow, title, text string) {
	f.heading(title, lineHeight*2)
	f.paragraph(text, 0, layout.Regular, ink)
	f.gap()
}

func listSection(f *flow, title string, items []string, empty string) {
	f.heading(title, lineHeight*2)
	if len(items) == 0 {
		f.paragraph(empty, 0, layout.Italic, muted)
	}
	for _, item := range items {
		f.item("•", item)
	}
	f.gap()
}

func recommendations(f *flow, sg narrative.Suggestions, prov narrative.Provenance) {
	const badgeHeight = 22.0

	f.heading("AI-Powered Recommendations", badgeHeight+lineHeight)

	y := f.p.Y()
	label := "Priority: " + string(sg.PriorityLevel)
	f.s.SetFont(layout.Bold, bodySize)
	f.s.SetFillColor(priorityColor(sg.PriorityLevel))
	f.s.Rect(f.left, y, 130, badgeHeight, layout.Fill)
	f.s.SetTextColor(layout.White)
	f.s.Text(f.left, y+6, 130, label, layout.AlignCenter)
	f.p.Advance(badgeHeight + 8)

	f.paragraph(sourceLine(prov), 0, layout.Italic, muted)
	f.p.Advance(6)

	numbered(f, "Improvement Suggestions", sg.Improvements)
	numbered(f, "Industry Best Practices", sg.BestPractices)
	f.gap()
}

func sourceLine(prov narrative.Provenance) string {
	if prov.Source == narrative.SourceAI {
		if prov.Model != "" {
			return "Generated with AI analysis (" + prov.Model + ")."
		}
		return "Generated with AI analysis."
	}
	return "Standard recommendations for the industry."
}

func numbered(f *flow, title string, items []string) {
	if len(items) == 0 {
		return
	}
	f.subheading(title, lineHeight)
	for i, item := range items {
		f.item(strconv.Itoa(i+1)+".", item)
	}
}

func transcript(f *flow, general, specific scoring.Answers) {
	f.heading("Assessment Responses", lineHeight*3)
	answerBlock(f, "General Sustainability Questions", general)
	answerBlock(f, "Industry-Specific Questions", specific)
}

func answerBlock(f *flow, title string, answers scoring.Answers) {
	f.subheading(title, lineHeight*2)
	if len(answers) == 0 {
		f.paragraph("No responses recorded.", 0, layout.Italic, muted)
		f.gap()
		return
	}

	for _, e := range answers {
		f.paragraph(FormatLabel(e.Key)+": "+e.Answer.String(), 0, layout.Regular, ink)
		f.p.Advance(4)
	}
	f.gap()
}

func footer(reportID string) func(s layout.Surface, page, total int) {
	return func(s layout.Surface, page, total int) {
		w, h := s.Size()

		s.SetDrawColor(rule)
		s.SetLineWidth(0.5)
		s.Line(margin, h-footerRule, w-margin, h-footerRule)

		s.SetFont(layout.Regular, 8)
		s.SetTextColor(muted)
		s.Text(margin, h-40, 0, "Generated by SustainAssess Platform", layout.AlignLeft)
		s.Text(margin, h-40, w-2*margin, fmt.Sprintf("Page %d of %d", page, total), layout.AlignRight)
		s.Text(margin, h-28, w-2*margin, "Report ID: "+reportID, layout.AlignRight)
	}
}

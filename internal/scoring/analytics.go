package scoring

// Category names used in analytics.
const (
	CategoryGeneral  = "General Sustainability"
	CategoryIndustry = "Industry-Specific"
)

// QualityBreakdown counts answers per quality level.
type QualityBreakdown struct {
	High   int `json:"highQuality"`
	Medium int `json:"mediumQuality"`
	Basic  int `json:"basicResponse"`
}

// CategoryCount is the number of answers in one question category.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Analytics summarizes answer counts for charts and tables.
type Analytics struct {
	TotalQuestions int              `json:"totalQuestions"`
	TotalGeneral   int              `json:"totalGeneral"`
	TotalIndustry  int              `json:"totalIndustry"`
	Quality        QualityBreakdown `json:"qualityBreakdown"`
	Categories     []CategoryCount  `json:"categories"`
}

// Analyze counts answers by category and quality.
func Analyze(general, industry Answers) Analytics {
	a := Analytics{
		TotalGeneral:   len(general),
		TotalIndustry:  len(industry),
		TotalQuestions: len(general) + len(industry),
		Categories: []CategoryCount{
			{Name: CategoryGeneral, Count: len(general)},
			{Name: CategoryIndustry, Count: len(industry)},
		},
	}

	tally := func(answers Answers, industrySpecific bool) {
		for _, e := range answers {
			switch Quality(Score(e.Answer, industrySpecific)) {
			case QualityHigh:
				a.Quality.High++
			case QualityMedium:
				a.Quality.Medium++
			default:
				a.Quality.Basic++
			}
		}
	}
	tally(general, false)
	tally(industry, true)

	return a
}

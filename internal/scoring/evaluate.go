package scoring

import (
	"fmt"
	"math"
)

// Question keys the evaluator inspects.
const (
	KeySustainabilityPolicy = "sustainability_policy"
	KeyWasteManagement      = "waste_management"
)

// Fixed evaluation phrases.
const (
	StrengthPolicy   = "Formal sustainability policy in place"
	StrengthWaste    = "Active waste management and recycling program"
	WeakPolicy       = "Lack of formal sustainability policy"
	WeakOverallScore = "Overall compliance score needs improvement"
)

var recommendations = []string{
	"Implement regular sustainability audits",
	"Develop measurable sustainability goals",
	"Consider industry-specific certifications",
	"Engage employees in sustainability initiatives",
}

// Evaluation is the deterministic assessment outcome.
type Evaluation struct {
	Score                int      `json:"complianceScore"`
	Strengths            []string `json:"strengths"`
	WeakAreas            []string `json:"weakAreas"`
	IndustryObservations string   `json:"industryObservations"`
	Recommendations      []string `json:"recommendations"`
}

// Evaluate scores every answer and derives strengths, weak areas, and the
// industry commentary. The score is 0 when nothing was answered.
func Evaluate(general, industry Answers, industryName string) Evaluation {
	points := 0
	for _, e := range general {
		points += Score(e.Answer, false)
	}
	for _, e := range industry {
		points += Score(e.Answer, true)
	}

	score := ComplianceScore(points, len(general)+len(industry))

	ev := Evaluation{
		Score:                score,
		Strengths:            []string{},
		WeakAreas:            []string{},
		IndustryObservations: IndustryObservations(industryName),
		Recommendations:      append([]string(nil), recommendations...),
	}

	policy, ok := general.Get(KeySustainabilityPolicy)
	if ok && policy.kind == KindText && policy.text == "Yes" {
		ev.Strengths = append(ev.Strengths, StrengthPolicy)
	} else {
		ev.WeakAreas = append(ev.WeakAreas, WeakPolicy)
	}

	if waste, ok := general.Get(KeyWasteManagement); ok && waste.Contains("Recycling") {
		ev.Strengths = append(ev.Strengths, StrengthWaste)
	}

	if score < 50 {
		ev.WeakAreas = append(ev.WeakAreas, WeakOverallScore)
	}

	return ev
}

// ComplianceScore returns round(100 * points / (2 * questions)), or 0 when
// there are no questions.
func ComplianceScore(points, questions int) int {
	if questions <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(points) / float64(2*questions)))
}

// IndustryObservations returns the industry commentary sentence.
func IndustryObservations(industry string) string {
	return fmt.Sprintf(
		"As a %s company, specific attention should be paid to industry-standard sustainability practices and regulatory compliance.",
		industry,
	)
}

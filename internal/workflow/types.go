package workflow

import (
	"time"

	"github.com/JaimeStill/sustainassess/internal/narrative"
	"github.com/JaimeStill/sustainassess/internal/scoring"
)

const (
	KeyInput           = "input"
	KeyEvaluation      = "evaluation"
	KeyAnalytics       = "analytics"
	KeySummary         = "summary"
	KeyRecommendations = "recommendations"
)

// Input is the submitted assessment a report is produced from.
type Input struct {
	Company  string          `json:"company"`
	Industry string          `json:"industry"`
	General  scoring.Answers `json:"general"`
	Specific scoring.Answers `json:"specific"`
}

// Result is the content of a generated report.
type Result struct {
	Evaluation      scoring.Evaluation        `json:"evaluation"`
	Analytics       scoring.Analytics         `json:"analytics"`
	Summary         narrative.Summary         `json:"summary"`
	Recommendations narrative.Recommendations `json:"recommendations"`
	CompletedAt     time.Time                 `json:"completed_at"`
}

func (in Input) narrative(score int) narrative.Input {
	return narrative.Input{
		Company:  in.Company,
		Industry: in.Industry,
		Score:    score,
		General:  in.General,
		Specific: in.Specific,
	}
}

package reportpdf

import (
	"strings"

	"github.com/JaimeStill/sustainassess/internal/narrative"
	"github.com/JaimeStill/sustainassess/pkg/layout"
)

const (
	margin       = 50.0
	headerHeight = 100.0
	footerRule   = 50.0
	contentFloor = 70.0

	headingSize   = 14.0
	headingHeight = 26.0
	bodySize      = 10.0
	lineHeight    = 14.0
	blockGap      = 12.0

	chartRadius = 55.0
	chartHeight = 2*chartRadius + 20
)

var (
	brand     = layout.Hex("#059669")
	brandMid  = layout.Hex("#10b981")
	brandSoft = layout.Hex("#34d399")
	ink       = layout.Hex("#333333")
	muted     = layout.Hex("#666666")
	rule      = layout.Hex("#cccccc")
	neutral   = layout.Hex("#e9ecef")
	warning   = layout.Hex("#ffc107")
	danger    = layout.Hex("#dc3545")
	urgent    = layout.Hex("#fd7e14")
)

// scoreColor is the band color for a compliance score.
func scoreColor(score int) layout.Color {
	switch {
	case score >= 80:
		return brand
	case score >= 60:
		return warning
	default:
		return danger
	}
}

func scoreInterpretation(score int) string {
	switch {
	case score >= 80:
		return "Excellent sustainability performance with strong practices across most areas."
	case score >= 60:
		return "Good sustainability performance with clear opportunities for enhancement."
	case score >= 40:
		return "Moderate sustainability performance requiring focused improvements."
	default:
		return "Sustainability performance needs significant improvement and strategic intervention."
	}
}

func priorityColor(p narrative.Priority) layout.Color {
	switch p {
	case narrative.PriorityCritical:
		return danger
	case narrative.PriorityHigh:
		return urgent
	case narrative.PriorityLow:
		return brand
	default:
		return warning
	}
}

// FormatLabel turns a question key such as "waste_management" into "Waste Management".
func FormatLabel(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

package scoring

import (
	"slices"
	"strings"
)

var (
	highSignals  = []string{"yes", "comprehensive", "high", "fully", "reduction", "renewable", "recycling", "energy-efficient"}
	highRanges   = []string{"61-80", "81-100"}
	mediumSignal = []string{"partial", "moderate", "planning", "development"}
	mediumRanges = []string{"41-60", "21-40"}
)

// Score returns 0, 1, or 2 points for one answer. Industry-specific answers
// additionally recognize percentage-range options.
//
// Text is matched case-insensitively by substring, so it is a keyword
// heuristic rather than an interpretation of the answer.
func Score(a Answer, industrySpecific bool) int {
	if a.kind == KindMultiSelect {
		positive := 0
		for _, o := range a.options {
			if o != None && o != "" {
				positive++
			}
		}
		switch {
		case positive >= 3:
			return 2
		case positive >= 1:
			return 1
		default:
			return 0
		}
	}

	text := strings.ToLower(a.text)
	if containsAny(text, highSignals) || (industrySpecific && containsAny(text, highRanges)) {
		return 2
	}
	if containsAny(text, mediumSignal) || (industrySpecific && containsAny(text, mediumRanges)) {
		return 1
	}
	return 0
}

func containsAny(s string, subs []string) bool {
	return slices.ContainsFunc(subs, func(sub string) bool {
		return strings.Contains(s, sub)
	})
}

// QualityLevel buckets an answer by its points.
type QualityLevel string

const (
	QualityHigh   QualityLevel = "high"
	QualityMedium QualityLevel = "medium"
	QualityBasic  QualityLevel = "basic"
)

// Quality maps points to a quality level.
func Quality(points int) QualityLevel {
	switch points {
	case 2:
		return QualityHigh
	case 1:
		return QualityMedium
	default:
		return QualityBasic
	}
}

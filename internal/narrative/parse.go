package narrative

import (
	"regexp"
	"slices"
	"strings"

	"github.com/JaimeStill/sustainassess/pkg/formatting"
)

const (
	maxItems   = 5
	minItemLen = 10
)

var numbered = regexp.MustCompile(`^\d+\.`)

var priorityKeywords = []struct {
	level    Priority
	keywords []string
}{
	{PriorityCritical, []string{"critical", "urgent", "immediate", "severe"}},
	{PriorityHigh, []string{"high", "important", "significant"}},
	{PriorityLow, []string{"low", "minor", "minimal"}},
}

// ParseSuggestions reads a model response. A JSON object, bare or fenced, is
// used when it carries at least one item. Otherwise list lines are extracted
// from the text and the same items fill every category.
func ParseSuggestions(text string) Suggestions {
	if parsed, err := formatting.Parse[Suggestions](text); err == nil && parsed.hasItems() {
		return Suggestions{
			Improvements:  nonNil(parsed.Improvements),
			BestPractices: nonNil(parsed.BestPractices),
			ActionItems:   nonNil(parsed.ActionItems),
			PriorityLevel: normalizePriority(parsed.PriorityLevel, text),
		}
	}

	items := ExtractItems(text)
	return Suggestions{
		Improvements:  items,
		BestPractices: slices.Clone(items),
		ActionItems:   slices.Clone(items),
		PriorityLevel: DetectPriority(text),
	}
}

// ExtractItems collects up to five list entries from text. A line qualifies
// when, trimmed, it starts with "N.", "-", or "•"; the marker is removed and
// entries of ten characters or fewer are skipped.
func ExtractItems(text string) []string {
	items := []string{}

	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)

		var item string
		switch {
		case numbered.MatchString(line):
			item = numbered.ReplaceAllString(line, "")
		case strings.HasPrefix(line, "-"):
			item = strings.TrimPrefix(line, "-")
		case strings.HasPrefix(line, "•"):
			item = strings.TrimPrefix(line, "•")
		default:
			continue
		}

		item = strings.TrimSpace(item)
		if len(item) <= minItemLen {
			continue
		}

		items = append(items, item)
		if len(items) == maxItems {
			break
		}
	}

	return items
}

// DetectPriority scans text for urgency keywords. Critical outranks High,
// which outranks Low; Medium applies when nothing matches.
func DetectPriority(text string) Priority {
	lower := strings.ToLower(text)
	for _, p := range priorityKeywords {
		for _, kw := range p.keywords {
			if strings.Contains(lower, kw) {
				return p.level
			}
		}
	}
	return PriorityMedium
}

func normalizePriority(p Priority, text string) Priority {
	for _, level := range []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical} {
		if strings.EqualFold(string(p), string(level)) {
			return level
		}
	}
	return DetectPriority(text)
}

func (s Suggestions) hasItems() bool {
	return len(s.Improvements)+len(s.BestPractices)+len(s.ActionItems) > 0
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

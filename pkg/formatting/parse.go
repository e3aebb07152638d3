package formatting

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrParseFailed is returned when content cannot be parsed as JSON directly,
// from its outermost object, or from a markdown code fence.
var ErrParseFailed = errors.New("failed to parse response")

var (
	objectRegex    = regexp.MustCompile(`(?s)\{.*\}`)
	jsonBlockRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")
)

// Parse unmarshals content as JSON into T. Model output often wraps the payload
// in prose or a code fence, so when direct decoding fails it retries with the
// span from the first '{' to the last '}', then with the first fenced block.
func Parse[T any](content string) (T, error) {
	var result T
	content = strings.TrimSpace(content)

	if err := json.Unmarshal([]byte(content), &result); err == nil {
		return result, nil
	}

	if match := objectRegex.FindString(content); match != "" {
		var obj T
		if err := json.Unmarshal([]byte(match), &obj); err == nil {
			return obj, nil
		}
	}

	if matches := jsonBlockRegex.FindStringSubmatch(content); len(matches) >= 2 {
		var fenced T
		if err := json.Unmarshal([]byte(strings.TrimSpace(matches[1])), &fenced); err == nil {
			return fenced, nil
		}
	}

	return result, fmt.Errorf("%w: %s", ErrParseFailed, truncate(content, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

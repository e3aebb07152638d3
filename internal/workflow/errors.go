// Package workflow produces the content of a sustainability report. A state
// graph scores the answers, then writes the executive summary and the
// improvement suggestions (evaluate → summarize → suggest).
package workflow

import "errors"

// Sentinel errors for workflow operations.
var (
	ErrMissingInput   = errors.New("workflow input missing")
	ErrEvaluateFailed = errors.New("evaluation failed")
	ErrNarrateFailed  = errors.New("narrative generation failed")
)

// Package narrative turns a scored assessment into prose: an executive summary
// and a set of improvement suggestions. Text comes from a chain of generative
// models and falls back to fixed templates when every model fails, so callers
// always receive content together with a record of where it came from.
package narrative

import (
	"context"
	"time"
)

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Source records whether narrative content was generated or templated.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Provenance describes how a piece of narrative content was produced.
type Provenance struct {
	Source    Source    `json:"source"`
	Model     string    `json:"model,omitempty"`
	Error     string    `json:"error,omitempty"`
	Excerpt   string    `json:"rawResponse,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Priority is the overall urgency assigned to a set of suggestions.
type Priority string

const (
	PriorityLow      Priority = "Low"
	PriorityMedium   Priority = "Medium"
	PriorityHigh     Priority = "High"
	PriorityCritical Priority = "Critical"
)

// Suggestions groups improvement recommendations by kind.
type Suggestions struct {
	Improvements  []string `json:"improvements"`
	BestPractices []string `json:"bestPractices"`
	ActionItems   []string `json:"actionItems"`
	PriorityLevel Priority `json:"priorityLevel"`
}

// Summary is an executive summary paired with its provenance.
type Summary struct {
	Text       string     `json:"text"`
	Provenance Provenance `json:"provenance"`
}

// Recommendations are suggestions paired with their provenance.
type Recommendations struct {
	Suggestions
	Provenance Provenance `json:"provenance"`
}

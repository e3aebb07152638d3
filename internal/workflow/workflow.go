package workflow

import (
	"context"
	"fmt"
	"time"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/sustainassess/internal/narrative"
	"github.com/JaimeStill/sustainassess/internal/scoring"
)

// Execute runs the report workflow for a submitted assessment and extracts
// the Result from the final state.
func Execute(ctx context.Context, rt *Runtime, in Input) (*Result, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyInput, in)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("sustainassess-report")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("evaluate", EvaluateNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("summarize", SummarizeNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("suggest", SuggestNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("evaluate", "summarize", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("summarize", "suggest", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("evaluate"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("suggest"); err != nil {
		return nil, err
	}

	return graph, nil
}

func extractResult(s state.State) (*Result, error) {
	eval, err := extractEvaluation(s)
	if err != nil {
		return nil, err
	}

	analyticsVal, ok := s.Get(KeyAnalytics)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyAnalytics)
	}

	analytics, ok := analyticsVal.(scoring.Analytics)
	if !ok {
		return nil, fmt.Errorf("%s is not Analytics", KeyAnalytics)
	}

	summaryVal, ok := s.Get(KeySummary)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeySummary)
	}

	summary, ok := summaryVal.(narrative.Summary)
	if !ok {
		return nil, fmt.Errorf("%s is not Summary", KeySummary)
	}

	recsVal, ok := s.Get(KeyRecommendations)
	if !ok {
		return nil, fmt.Errorf("missing %s in final state", KeyRecommendations)
	}

	recs, ok := recsVal.(narrative.Recommendations)
	if !ok {
		return nil, fmt.Errorf("%s is not Recommendations", KeyRecommendations)
	}

	return &Result{
		Evaluation:      eval,
		Analytics:       analytics,
		Summary:         summary,
		Recommendations: recs,
		CompletedAt:     time.Now(),
	}, nil
}

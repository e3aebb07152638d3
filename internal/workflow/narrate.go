package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/sustainassess/internal/scoring"
)

// SummarizeNode writes the executive summary. Generation failures resolve to
// the templated summary inside the composer, so the node only fails on
// malformed state.
func SummarizeNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		in, eval, err := narrativeState(s)
		if err != nil {
			return s, fmt.Errorf("summarize: %w", err)
		}

		summary := rt.Composer.Summarize(ctx, in.narrative(eval.Score))

		rt.Logger.InfoContext(
			ctx, "summarize node complete",
			"source", summary.Provenance.Source,
			"model", summary.Provenance.Model,
		)

		return s.Set(KeySummary, summary), nil
	})
}

// SuggestNode writes the improvement suggestions.
func SuggestNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		in, eval, err := narrativeState(s)
		if err != nil {
			return s, fmt.Errorf("suggest: %w", err)
		}

		recs := rt.Composer.Suggest(ctx, in.narrative(eval.Score))

		rt.Logger.InfoContext(
			ctx, "suggest node complete",
			"source", recs.Provenance.Source,
			"priority", recs.PriorityLevel,
			"improvements", len(recs.Improvements),
		)

		return s.Set(KeyRecommendations, recs), nil
	})
}

func narrativeState(s state.State) (Input, scoring.Evaluation, error) {
	in, err := extractInput(s)
	if err != nil {
		return Input{}, scoring.Evaluation{}, fmt.Errorf("%w: %w", ErrNarrateFailed, err)
	}

	eval, err := extractEvaluation(s)
	if err != nil {
		return Input{}, scoring.Evaluation{}, fmt.Errorf("%w: %w", ErrNarrateFailed, err)
	}

	return in, eval, nil
}

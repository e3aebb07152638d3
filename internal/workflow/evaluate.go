package workflow

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents-orchestration/pkg/state"

	"github.com/JaimeStill/sustainassess/internal/scoring"
)

// EvaluateNode scores the answers and computes the response analytics.
func EvaluateNode(rt *Runtime) state.StateNode {
	return state.NewFunctionNode(func(ctx context.Context, s state.State) (state.State, error) {
		in, err := extractInput(s)
		if err != nil {
			return s, fmt.Errorf("%w: %w", ErrEvaluateFailed, err)
		}

		eval := scoring.Evaluate(in.General, in.Specific, in.Industry)
		analytics := scoring.Analyze(in.General, in.Specific)

		rt.Logger.InfoContext(
			ctx, "evaluate node complete",
			"score", eval.Score,
			"questions", analytics.TotalQuestions,
		)

		s = s.Set(KeyEvaluation, eval)
		s = s.Set(KeyAnalytics, analytics)
		return s, nil
	})
}

func extractInput(s state.State) (Input, error) {
	val, ok := s.Get(KeyInput)
	if !ok {
		return Input{}, fmt.Errorf("%w: missing %s in state", ErrMissingInput, KeyInput)
	}

	in, ok := val.(Input)
	if !ok {
		return Input{}, fmt.Errorf("%w: %s is not Input", ErrMissingInput, KeyInput)
	}

	return in, nil
}

func extractEvaluation(s state.State) (scoring.Evaluation, error) {
	val, ok := s.Get(KeyEvaluation)
	if !ok {
		return scoring.Evaluation{}, fmt.Errorf("missing %s in state", KeyEvaluation)
	}

	eval, ok := val.(scoring.Evaluation)
	if !ok {
		return scoring.Evaluation{}, fmt.Errorf("%s is not Evaluation", KeyEvaluation)
	}

	return eval, nil
}

package prompts

const summaryInstructions = `As a sustainability expert, create a comprehensive executive summary for the following assessment.`

const suggestionsInstructions = `As a sustainability expert, analyze the following company assessment and provide actionable recommendations.`

var instructions = map[Stage]string{
	StageSummary:     summaryInstructions,
	StageSuggestions: suggestionsInstructions,
}

// DefaultInstructions returns the built-in instructions for a stage.
// Returns ErrInvalidStage if the stage is not recognized.
func DefaultInstructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}

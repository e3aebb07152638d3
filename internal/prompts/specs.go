package prompts

const summarySpec = `Generate a detailed executive summary of 6-7 lines that covers:
- Overall assessment performance and score context
- Key sustainability strengths identified
- Major areas requiring attention
- Industry-specific observations
- Risk assessment implications
- Strategic recommendations overview

Write in a professional, analytical tone suitable for executive reporting.
Provide only the summary text, no JSON formatting or additional structure.`

const suggestionsSpec = `Please provide:
1. Top 5 improvement suggestions
2. Industry best practices specific to the company's industry
3. Priority action items
4. Risk assessment (Low/Medium/High/Critical)

Format your response as JSON with the following structure:
{
  "improvements": ["suggestion 1", "suggestion 2"],
  "bestPractices": ["practice 1", "practice 2"],
  "actionItems": ["action 1", "action 2"],
  "priorityLevel": "Medium"
}`

var specs = map[Stage]string{
	StageSummary:     summarySpec,
	StageSuggestions: suggestionsSpec,
}

// DefaultSpec returns the fixed output specification for a stage.
// Specifications are not overridable; they pin the response shape the
// narrative parser depends on.
func DefaultSpec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}

package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/JaimeStill/sustainassess/internal/prompts"
	"github.com/JaimeStill/sustainassess/internal/scoring"
)

const excerptLen = 200

// InstructionSource resolves the instructions and output specification for a stage.
// prompts.System satisfies it.
type InstructionSource interface {
	Instructions(ctx context.Context, stage prompts.Stage) (string, error)
	Spec(ctx context.Context, stage prompts.Stage) (string, error)
}

type defaultSource struct{}

func (defaultSource) Instructions(_ context.Context, stage prompts.Stage) (string, error) {
	return prompts.DefaultInstructions(stage)
}

func (defaultSource) Spec(_ context.Context, stage prompts.Stage) (string, error) {
	return prompts.DefaultSpec(stage)
}

// Input is the assessment context a narrative is written about.
type Input struct {
	Company  string
	Industry string
	Score    int
	General  scoring.Answers
	Specific scoring.Answers
}

// Composer writes summaries and suggestions through a Chain, substituting
// templated content whenever generation fails.
type Composer struct {
	chain  *Chain
	source InstructionSource
	logger *slog.Logger
	now    func() time.Time
}

// NewComposer creates a Composer. A nil source uses the built-in instructions.
// A nil chain always falls back.
func NewComposer(chain *Chain, source InstructionSource, logger *slog.Logger) *Composer {
	if chain == nil {
		chain = NewChain(0)
	}
	if source == nil {
		source = defaultSource{}
	}
	return &Composer{
		chain:  chain,
		source: source,
		logger: logger.With("system", "narrative"),
		now:    time.Now,
	}
}

// Summarize returns an executive summary for in.
func (c *Composer) Summarize(ctx context.Context, in Input) Summary {
	text, prov := c.generate(ctx, prompts.StageSummary, summaryContext(in))
	if prov.Source == SourceFallback {
		return Summary{
			Text:       FallbackSummary(in.Company, in.Industry, in.Score),
			Provenance: prov,
		}
	}
	return Summary{Text: text, Provenance: prov}
}

// Suggest returns improvement suggestions for in.
func (c *Composer) Suggest(ctx context.Context, in Input) Recommendations {
	text, prov := c.generate(ctx, prompts.StageSuggestions, suggestionsContext(in))
	if prov.Source == SourceFallback {
		return Recommendations{
			Suggestions: FallbackSuggestions(in.Industry),
			Provenance:  prov,
		}
	}
	prov.Excerpt = excerpt(text)
	return Recommendations{Suggestions: ParseSuggestions(text), Provenance: prov}
}

func (c *Composer) generate(ctx context.Context, stage prompts.Stage, body string) (string, Provenance) {
	prompt, err := c.compose(ctx, stage, body)
	if err == nil {
		var text, model string
		text, model, err = c.chain.Generate(ctx, prompt)
		if err == nil {
			c.logger.InfoContext(ctx, "narrative generated", "stage", stage, "model", model, "length", len(text))
			return text, Provenance{Source: SourceAI, Model: model, Timestamp: c.now()}
		}
	}

	c.logger.WarnContext(ctx, "narrative fallback", "stage", stage, "source", SourceFallback, "error", err)
	return "", Provenance{Source: SourceFallback, Error: err.Error(), Timestamp: c.now()}
}

func (c *Composer) compose(ctx context.Context, stage prompts.Stage, body string) (string, error) {
	instructions, err := c.source.Instructions(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load instructions for %s: %w", stage, err)
	}

	spec, err := c.source.Spec(ctx, stage)
	if err != nil {
		return "", fmt.Errorf("load spec for %s: %w", stage, err)
	}

	var sb strings.Builder
	sb.WriteString(instructions)
	sb.WriteString("\n\n")
	sb.WriteString(body)
	sb.WriteString("\n\n")
	sb.WriteString(spec)

	return sb.String(), nil
}

func summaryContext(in Input) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Company: %s\n", in.Company)
	fmt.Fprintf(&sb, "Industry: %s\n", in.Industry)
	fmt.Fprintf(&sb, "Compliance Score: %d%%\n\n", in.Score)
	sb.WriteString("Assessment Responses:\n")
	fmt.Fprintf(&sb, "General: %s\n", indent(in.General))
	fmt.Fprintf(&sb, "Industry-Specific: %s", indent(in.Specific))
	return sb.String()
}

func suggestionsContext(in Input) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Company: %s\n", in.Company)
	fmt.Fprintf(&sb, "Industry: %s\n\n", in.Industry)
	fmt.Fprintf(&sb, "General Answers:\n%s\n\n", indent(in.General))
	fmt.Fprintf(&sb, "Industry-Specific Answers:\n%s", indent(in.Specific))
	return sb.String()
}

func indent(a scoring.Answers) string {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func excerpt(text string) string {
	r := []rune(text)
	if len(r) <= excerptLen {
		return text
	}
	return string(r[:excerptLen]) + "..."
}

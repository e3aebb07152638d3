package narrative

import (
	"context"
	"fmt"
	"time"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// AgentGenerator sends prompts to a go-agents chat agent.
type AgentGenerator struct {
	cfg gaconfig.AgentConfig
}

// NewAgentGenerator copies base and points it at model. An empty model keeps
// the model configured on base.
func NewAgentGenerator(base gaconfig.AgentConfig, model string) *AgentGenerator {
	cfg := base
	if model != "" {
		m := gaconfig.ModelConfig{}
		if base.Model != nil {
			m = *base.Model
		}
		m.Name = model
		cfg.Model = &m
	}
	return &AgentGenerator{cfg: cfg}
}

// Generate creates an agent for the call and returns the chat response content.
func (g *AgentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	a, err := agent.New(&g.cfg)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("chat call: %w", err)
	}

	return resp.Content(), nil
}

// AgentChain builds a Chain with one AgentGenerator per model, in order.
// With no models the chain uses the model configured on base.
func AgentChain(base gaconfig.AgentConfig, models []string, timeout time.Duration) *Chain {
	if len(models) == 0 {
		name := ""
		if base.Model != nil {
			name = base.Model.Name
		}
		return NewChain(timeout, Link{Model: name, Generator: NewAgentGenerator(base, "")})
	}

	links := make([]Link, 0, len(models))
	for _, m := range models {
		links = append(links, Link{Model: m, Generator: NewAgentGenerator(base, m)})
	}
	return NewChain(timeout, links...)
}

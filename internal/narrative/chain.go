package narrative

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Link is a named Generator within a Chain.
type Link struct {
	Model     string
	Generator Generator
}

// Chain tries each link in order and returns the first non-empty response.
// Every attempt is bounded by the chain's timeout.
type Chain struct {
	links   []Link
	timeout time.Duration
}

// NewChain creates a Chain. A non-positive timeout leaves attempts bounded
// only by the caller's context.
func NewChain(timeout time.Duration, links ...Link) *Chain {
	return &Chain{links: links, timeout: timeout}
}

// Models returns the model names in attempt order.
func (c *Chain) Models() []string {
	models := make([]string, len(c.links))
	for i, l := range c.links {
		models[i] = l.Model
	}
	return models
}

// Generate returns the trimmed text and the model that produced it.
// When every link fails it returns a *GenerationError wrapping the last failure.
func (c *Chain) Generate(ctx context.Context, prompt string) (string, string, error) {
	if len(c.links) == 0 {
		return "", "", &GenerationError{Err: ErrNoGenerators}
	}

	var (
		tried []string
		last  error
	)

	for _, l := range c.links {
		if err := ctx.Err(); err != nil {
			last = err
			break
		}

		tried = append(tried, l.Model)

		text, err := c.attempt(ctx, l, prompt)
		if err == nil {
			return text, l.Model, nil
		}
		last = fmt.Errorf("%s: %w", l.Model, err)
	}

	return "", "", &GenerationError{Models: tried, Err: last}
}

func (c *Chain) attempt(ctx context.Context, l Link, prompt string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	text, err := l.Generator.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

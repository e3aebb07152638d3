package config

import (
	"fmt"
	"time"

	"github.com/JaimeStill/sustainassess/pkg/envvar"
)

const (
	EnvNarrativeModels  = "SUSTAINASSESS_NARRATIVE_MODELS"
	EnvNarrativeTimeout = "SUSTAINASSESS_NARRATIVE_TIMEOUT"
)

// DefaultNarrativeModels is the order in which text generation models are
// tried before falling back to the built-in narrative.
var DefaultNarrativeModels = []string{
	"gemini-1.5-flash",
	"gemini-1.5-pro",
	"gemini-pro",
	"gemini-1.0-pro",
}

// NarrativeConfig controls the model fallback chain used for report summaries
// and recommendations.
type NarrativeConfig struct {
	Models  []string `toml:"models"`
	Timeout string   `toml:"timeout"`
}

// TimeoutDuration returns the per-model timeout.
func (c *NarrativeConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *NarrativeConfig) Finalize() error {
	if len(c.Models) == 0 {
		c.Models = append([]string(nil), DefaultNarrativeModels...)
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}

	envvar.List(&c.Models, EnvNarrativeModels)
	envvar.String(&c.Timeout, EnvNarrativeTimeout)

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *NarrativeConfig) Merge(overlay *NarrativeConfig) {
	if len(overlay.Models) > 0 {
		c.Models = overlay.Models
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

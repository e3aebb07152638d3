package api

import (
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/JaimeStill/sustainassess/internal/config"
	"github.com/JaimeStill/sustainassess/internal/infrastructure"
	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Agent         gaconfig.AgentConfig
	Narrative     config.NarrativeConfig
	Auth          *auth.Config
	Tokens        *auth.Tokens
	Pagination    pagination.Config
	MaxUploadSize int64
	MaxFormSize   int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
		},
		Agent:         cfg.Agent,
		Narrative:     cfg.Narrative,
		Auth:          &cfg.Auth,
		Tokens:        auth.NewTokens(&cfg.Auth),
		Pagination:    cfg.API.Pagination,
		MaxUploadSize: cfg.API.MaxUploadSizeBytes(),
		MaxFormSize:   cfg.API.MaxFormSizeBytes(),
	}
}

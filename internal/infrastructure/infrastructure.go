// Package infrastructure builds the shared services every domain system
// depends on: the lifecycle coordinator, the logger, Postgres, and blob storage.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/sustainassess/internal/config"
	"github.com/JaimeStill/sustainassess/pkg/database"
	"github.com/JaimeStill/sustainassess/pkg/lifecycle"
	"github.com/JaimeStill/sustainassess/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
}

// New creates an Infrastructure from the application configuration.
// Nothing connects until Start.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("env", cfg.Env())

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("storage init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Database:  db,
		Storage:   store,
	}, nil
}

// Start registers the database and storage hooks with the lifecycle
// coordinator and makes readiness depend on both.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Storage.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("storage start failed: %w", err)
	}

	i.Lifecycle.Require(i.Database)
	i.Lifecycle.Require(i.Storage)
	return nil
}

// Package storage provides blob storage for uploaded evidence and question documents,
// backed by Azure Blob Storage or an in-process map.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/JaimeStill/sustainassess/pkg/lifecycle"
)

// System manages blob storage operations and lifecycle coordination.
type System interface {
	lifecycle.ReadinessChecker

	// Start registers a startup hook that initializes the storage container.
	Start(lc *lifecycle.Coordinator) error
	// Upload streams data to a blob at the given key with the specified content type.
	Upload(ctx context.Context, key string, reader io.Reader, contentType string) error
	// Download returns a stream for the blob at the given key. The caller must close the reader.
	// Returns ErrNotFound if the blob does not exist.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the blob at the given key. Returns ErrNotFound if the blob does not exist.
	Delete(ctx context.Context, key string) error
	// Exists reports whether a blob exists at the given key.
	Exists(ctx context.Context, key string) (bool, error)
}

// New creates the storage system selected by cfg.Provider.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	switch cfg.Provider {
	case ProviderMemory:
		return NewMemory(), nil
	case ProviderAzure, "":
		return newAzure(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Provider)
	}
}

func validateKey(key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	for segment := range strings.SplitSeq(key, "/") {
		if segment == ".." {
			return ErrInvalidKey
		}
	}
	return nil
}

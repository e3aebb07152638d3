package config

import (
	"fmt"

	"github.com/JaimeStill/sustainassess/pkg/envvar"
	"github.com/JaimeStill/sustainassess/pkg/formatting"
	"github.com/JaimeStill/sustainassess/pkg/middleware"
	"github.com/JaimeStill/sustainassess/pkg/pagination"
)

const (
	EnvAPIBasePath      = "SUSTAINASSESS_API_BASE_PATH"
	EnvAPIMaxUploadSize = "SUSTAINASSESS_API_MAX_UPLOAD_SIZE"
	EnvAPIMaxFormSize   = "SUSTAINASSESS_API_MAX_FORM_SIZE"

	defaultMaxUploadSize = 10 << 20
	defaultMaxFormSize   = 50 << 20
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "SUSTAINASSESS_CORS_ENABLED",
	Origins:          "SUSTAINASSESS_CORS_ORIGINS",
	AllowedMethods:   "SUSTAINASSESS_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "SUSTAINASSESS_CORS_ALLOWED_HEADERS",
	AllowCredentials: "SUSTAINASSESS_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "SUSTAINASSESS_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "SUSTAINASSESS_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "SUSTAINASSESS_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds routing, request size limits, CORS, and pagination settings.
// MaxUploadSize bounds a single evidence file; MaxFormSize bounds an
// assessment save or submit body.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	MaxFormSize   string                `toml:"max_form_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
	Pagination    pagination.Config     `toml:"pagination"`
}

// MaxUploadSizeBytes returns MaxUploadSize in bytes.
func (c *APIConfig) MaxUploadSizeBytes() int64 {
	return bytesOr(c.MaxUploadSize, defaultMaxUploadSize)
}

// MaxFormSizeBytes returns MaxFormSize in bytes.
func (c *APIConfig) MaxFormSizeBytes() int64 {
	return bytesOr(c.MaxFormSize, defaultMaxFormSize)
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and pagination configs.
func (c *APIConfig) Finalize() error {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}
	if c.MaxFormSize == "" {
		c.MaxFormSize = "50MB"
	}

	envvar.String(&c.BasePath, EnvAPIBasePath)
	envvar.String(&c.MaxUploadSize, EnvAPIMaxUploadSize)
	envvar.String(&c.MaxFormSize, EnvAPIMaxFormSize)

	if _, err := formatting.ParseBytes(c.MaxUploadSize); err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if _, err := formatting.ParseBytes(c.MaxFormSize); err != nil {
		return fmt.Errorf("invalid max_form_size: %w", err)
	}

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
	if overlay.MaxFormSize != "" {
		c.MaxFormSize = overlay.MaxFormSize
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
}

func bytesOr(s string, fallback int64) int64 {
	n, err := formatting.ParseBytes(s)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

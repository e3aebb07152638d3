// Package config loads the service configuration from config.toml, an optional
// environment overlay, and SUSTAINASSESS_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/sustainassess/pkg/auth"
	"github.com/JaimeStill/sustainassess/pkg/database"
	"github.com/JaimeStill/sustainassess/pkg/envvar"
	"github.com/JaimeStill/sustainassess/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvName            = "SUSTAINASSESS_ENV"
	EnvShutdownTimeout = "SUSTAINASSESS_SHUTDOWN_TIMEOUT"
	EnvVersion         = "SUSTAINASSESS_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "SUSTAINASSESS_DB_HOST",
	Port:            "SUSTAINASSESS_DB_PORT",
	Name:            "SUSTAINASSESS_DB_NAME",
	User:            "SUSTAINASSESS_DB_USER",
	Password:        "SUSTAINASSESS_DB_PASSWORD",
	SSLMode:         "SUSTAINASSESS_DB_SSL_MODE",
	MaxOpenConns:    "SUSTAINASSESS_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "SUSTAINASSESS_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "SUSTAINASSESS_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "SUSTAINASSESS_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	Provider:         "SUSTAINASSESS_STORAGE_PROVIDER",
	ContainerName:    "SUSTAINASSESS_STORAGE_CONTAINER_NAME",
	ConnectionString: "SUSTAINASSESS_STORAGE_CONNECTION_STRING",
}

var authEnv = &auth.Env{
	Secret:            "SUSTAINASSESS_AUTH_SECRET",
	TokenTTL:          "SUSTAINASSESS_AUTH_TOKEN_TTL",
	CookieName:        "SUSTAINASSESS_AUTH_COOKIE_NAME",
	SecureCookie:      "SUSTAINASSESS_AUTH_SECURE_COOKIE",
	AdminUsername:     "SUSTAINASSESS_ADMIN_USERNAME",
	AdminPassword:     "SUSTAINASSESS_ADMIN_PASSWORD",
	AdminPasswordHash: "SUSTAINASSESS_ADMIN_PASSWORD_HASH",
}

// Config is the root configuration for the assessment service.
type Config struct {
	Server          ServerConfig         `toml:"server"`
	Database        database.Config      `toml:"database"`
	Storage         storage.Config       `toml:"storage"`
	API             APIConfig            `toml:"api"`
	Auth            auth.Config          `toml:"auth"`
	Agent           gaconfig.AgentConfig `toml:"agent"`
	Narrative       NarrativeConfig      `toml:"narrative"`
	ShutdownTimeout string               `toml:"shutdown_timeout"`
	Version         string               `toml:"version"`
}

// Env returns the SUSTAINASSESS_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvName); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads config.toml when present, merges the overlay named by
// SUSTAINASSESS_ENV, and finalizes every section. Without a config file,
// defaults and environment variables supply everything.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// LoadDatabase resolves only the database section, for tools such as the
// migrator that need no other configuration.
func LoadDatabase() (*database.Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Database.Merge(&overlay.Database)
	}

	if err := cfg.Database.Finalize(databaseEnv); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	return &cfg.Database, nil
}

// Merge overwrites non-zero fields from overlay across all sections.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
	c.Auth.Merge(&overlay.Auth)
	c.Agent.Merge(&overlay.Agent)
	c.Narrative.Merge(&overlay.Narrative)
}

// Finalize applies defaults, environment overrides, and validation to
// every section.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Auth.Finalize(authEnv); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := FinalizeAgent(&c.Agent); err != nil {
		return fmt.Errorf("agent: %w", err)
	}
	if err := c.Narrative.Finalize(); err != nil {
		return fmt.Errorf("narrative: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	envvar.String(&c.ShutdownTimeout, EnvShutdownTimeout)
	envvar.String(&c.Version, EnvVersion)
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvName); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

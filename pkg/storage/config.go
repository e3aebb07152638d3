package storage

import (
	"fmt"

	"github.com/JaimeStill/sustainassess/pkg/envvar"
)

// Supported storage providers.
const (
	ProviderAzure  = "azure"
	ProviderMemory = "memory"
)

// Config holds blob storage parameters.
type Config struct {
	Provider         string `toml:"provider"`
	ContainerName    string `toml:"container_name"`
	ConnectionString string `toml:"connection_string"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Provider         string
	ContainerName    string
	ConnectionString string
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.ContainerName != "" {
		c.ContainerName = overlay.ContainerName
	}
	if overlay.ConnectionString != "" {
		c.ConnectionString = overlay.ConnectionString
	}
}

func (c *Config) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderAzure
	}
	if c.ContainerName == "" {
		c.ContainerName = "sustainassess"
	}
}

func (c *Config) loadEnv(env *Env) {
	envvar.String(&c.Provider, env.Provider)
	envvar.String(&c.ContainerName, env.ContainerName)
	envvar.String(&c.ConnectionString, env.ConnectionString)
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderMemory:
		return nil
	case ProviderAzure:
		if c.ContainerName == "" {
			return fmt.Errorf("container_name required")
		}
		if c.ConnectionString == "" {
			return fmt.Errorf("connection_string required")
		}
		return nil
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
}

package auth

import (
	"fmt"
	"time"

	"github.com/JaimeStill/sustainassess/pkg/envvar"
)

const defaultAdminPassword = "admin123"

// Config holds session token and administrator credential settings.
// AdminPassword is only read during Finalize to derive AdminPasswordHash
// and is cleared afterwards.
type Config struct {
	Secret            string `toml:"secret"`
	TokenTTL          string `toml:"token_ttl"`
	CookieName        string `toml:"cookie_name"`
	SecureCookie      bool   `toml:"secure_cookie"`
	AdminUsername     string `toml:"admin_username"`
	AdminPassword     string `toml:"admin_password"`
	AdminPasswordHash string `toml:"admin_password_hash"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	Secret            string
	TokenTTL          string
	CookieName        string
	SecureCookie      string
	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string
}

// TokenTTLDuration returns TokenTTL as a time.Duration.
func (c *Config) TokenTTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TokenTTL)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	if err := c.validate(); err != nil {
		return err
	}
	return c.deriveAdminHash()
}

// Merge overwrites non-zero fields from overlay. SecureCookie always applies.
func (c *Config) Merge(overlay *Config) {
	if overlay.Secret != "" {
		c.Secret = overlay.Secret
	}
	if overlay.TokenTTL != "" {
		c.TokenTTL = overlay.TokenTTL
	}
	if overlay.CookieName != "" {
		c.CookieName = overlay.CookieName
	}
	c.SecureCookie = overlay.SecureCookie
	if overlay.AdminUsername != "" {
		c.AdminUsername = overlay.AdminUsername
	}
	if overlay.AdminPassword != "" {
		c.AdminPassword = overlay.AdminPassword
	}
	if overlay.AdminPasswordHash != "" {
		c.AdminPasswordHash = overlay.AdminPasswordHash
	}
}

func (c *Config) loadDefaults() {
	if c.Secret == "" {
		c.Secret = "sustainassess-local-secret"
	}
	if c.TokenTTL == "" {
		c.TokenTTL = "24h"
	}
	if c.CookieName == "" {
		c.CookieName = "sustainassess_session"
	}
	if c.AdminUsername == "" {
		c.AdminUsername = "admin"
	}
}

func (c *Config) loadEnv(env *Env) {
	envvar.String(&c.Secret, env.Secret)
	envvar.String(&c.TokenTTL, env.TokenTTL)
	envvar.String(&c.CookieName, env.CookieName)
	envvar.Bool(&c.SecureCookie, env.SecureCookie)
	envvar.String(&c.AdminUsername, env.AdminUsername)
	envvar.String(&c.AdminPassword, env.AdminPassword)
	envvar.String(&c.AdminPasswordHash, env.AdminPasswordHash)
}

func (c *Config) validate() error {
	if len(c.Secret) < 16 {
		return fmt.Errorf("secret must be at least 16 characters")
	}
	d, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return fmt.Errorf("invalid token_ttl: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("token_ttl must be positive")
	}
	return nil
}

func (c *Config) deriveAdminHash() error {
	if c.AdminPasswordHash != "" && c.AdminPassword == "" {
		return nil
	}

	password := c.AdminPassword
	if password == "" {
		password = defaultAdminPassword
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	c.AdminPasswordHash = hash
	c.AdminPassword = ""
	return nil
}

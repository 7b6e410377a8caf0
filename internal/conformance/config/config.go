package config

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for a conformance run.
type Config struct {
	// Target Configuration
	TargetURL     string `env:"FAVCHECK_TARGET_URL" envDefault:"http://localhost:9099"`
	TokenPath     string `env:"FAVCHECK_TOKEN_PATH" envDefault:"/v1/auth/tokens"`
	FavoritesPath string `env:"FAVCHECK_FAVORITES_PATH" envDefault:"/v1/favorites"`
	CookieName    string `env:"FAVCHECK_COOKIE_NAME" envDefault:"favorites_session"`

	// HTTP Configuration
	HTTPTimeout time.Duration `env:"FAVCHECK_HTTP_TIMEOUT" envDefault:"10s"`

	// ExpiryWait is the wall-clock delay of the credential-expiry scenario.
	// It must exceed the target's session TTL (observed: ~2s).
	ExpiryWait time.Duration `env:"FAVCHECK_EXPIRY_WAIT" envDefault:"3s"`

	// Parallelism bounds concurrent scenarios. Scenarios are mutually
	// independent, so anything above 1 is safe against a conforming target.
	Parallelism int `env:"FAVCHECK_PARALLELISM" envDefault:"1"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load conformance configuration from environment: " + err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks invariants that env defaults alone cannot guarantee.
func (c *Config) Validate() error {
	if c.TargetURL == "" {
		return errors.New("target URL is required")
	}
	u, err := url.Parse(c.TargetURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("target URL must be an absolute http(s) URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("target URL scheme must be http or https")
	}

	if !strings.HasPrefix(c.TokenPath, "/") {
		return errors.New("token path must start with '/'")
	}
	if !strings.HasPrefix(c.FavoritesPath, "/") {
		return errors.New("favorites path must start with '/'")
	}
	if c.CookieName == "" {
		return errors.New("cookie name is required")
	}

	if c.HTTPTimeout <= 0 {
		return errors.New("HTTP timeout must be positive")
	}
	if c.ExpiryWait <= 0 {
		return errors.New("expiry wait must be positive")
	}
	if c.Parallelism < 1 {
		return errors.New("parallelism must be at least 1")
	}

	return nil
}

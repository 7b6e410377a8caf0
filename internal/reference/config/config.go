package config

import (
	"errors"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/google/uuid"
)

// Config holds all configuration for the reference favorites service.
type Config struct {
	// Server Configuration
	Addr         string        `env:"REFERENCE_ADDR" envDefault:"127.0.0.1:9099"`
	ReadTimeout  time.Duration `env:"REFERENCE_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"REFERENCE_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"REFERENCE_IDLE_TIMEOUT" envDefault:"30s"`

	// Session Configuration
	// TokenTTL is deliberately short: the suite's expiry scenario waits it out.
	TokenTTL  time.Duration `env:"REFERENCE_TOKEN_TTL" envDefault:"2s"`
	JWTSecret string        `env:"REFERENCE_JWT_SECRET" envDefault:""`
	JWTIssuer string        `env:"REFERENCE_JWT_ISSUER" envDefault:"favorites-reference"`

	// Cookie Configuration
	CookieName     string `env:"REFERENCE_COOKIE_NAME" envDefault:"favorites_session"`
	CookiePath     string `env:"REFERENCE_COOKIE_PATH" envDefault:"/"`
	CookieDomain   string `env:"REFERENCE_COOKIE_DOMAIN" envDefault:""`
	CookieSecure   bool   `env:"REFERENCE_COOKIE_SECURE" envDefault:"false"`
	CookieHTTPOnly bool   `env:"REFERENCE_COOKIE_HTTP_ONLY" envDefault:"true"`
	CookieSameSite string `env:"REFERENCE_COOKIE_SAME_SITE" envDefault:"Lax"`

	// Rate limiting. 0 disables it so a full conformance run is never throttled.
	RateLimitMax    int           `env:"REFERENCE_RATE_LIMIT_MAX" envDefault:"0"`
	RateLimitWindow time.Duration `env:"REFERENCE_RATE_LIMIT_WINDOW" envDefault:"1m"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load reference configuration from environment: " + err.Error())
	}

	// The service signs its own tokens and is its own only verifier, so a
	// generated per-process secret is a safe default.
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = uuid.NewString()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks invariants that env defaults alone cannot guarantee.
func (c *Config) Validate() error {
	if c.TokenTTL <= 0 {
		return errors.New("reference token TTL must be positive")
	}
	if c.JWTIssuer == "" {
		return errors.New("reference JWT issuer is required")
	}
	if c.CookieName == "" {
		return errors.New("reference cookie name is required")
	}

	c.CookieSameSite = strings.Title(strings.ToLower(c.CookieSameSite))
	switch c.CookieSameSite {
	case "Lax", "Strict", "None":
	default:
		return errors.New("reference cookie SameSite must be one of 'Lax', 'Strict', or 'None'")
	}

	if c.RateLimitMax < 0 {
		return errors.New("reference rate limit max cannot be negative")
	}

	return nil
}

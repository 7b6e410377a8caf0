package config_test

import (
	"testing"
	"time"

	"favorites-conformance/internal/conformance/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9099", cfg.TargetURL)
	assert.Equal(t, "/v1/auth/tokens", cfg.TokenPath)
	assert.Equal(t, "/v1/favorites", cfg.FavoritesPath)
	assert.Equal(t, "favorites_session", cfg.CookieName)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 3*time.Second, cfg.ExpiryWait)
	assert.Equal(t, 1, cfg.Parallelism)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("FAVCHECK_TARGET_URL", "https://favorites.example.com")
	t.Setenv("FAVCHECK_EXPIRY_WAIT", "5s")
	t.Setenv("FAVCHECK_PARALLELISM", "8")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://favorites.example.com", cfg.TargetURL)
	assert.Equal(t, 5*time.Second, cfg.ExpiryWait)
	assert.Equal(t, 8, cfg.Parallelism)
}

func validConfig() *config.Config {
	return &config.Config{
		TargetURL:     "http://localhost:9099",
		TokenPath:     "/v1/auth/tokens",
		FavoritesPath: "/v1/favorites",
		CookieName:    "favorites_session",
		HTTPTimeout:   10 * time.Second,
		ExpiryWait:    3 * time.Second,
		Parallelism:   1,
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"valid", func(c *config.Config) {}, false},
		{"https target", func(c *config.Config) { c.TargetURL = "https://example.com" }, false},
		{"empty target", func(c *config.Config) { c.TargetURL = "" }, true},
		{"relative target", func(c *config.Config) { c.TargetURL = "localhost:9099" }, true},
		{"non-http scheme", func(c *config.Config) { c.TargetURL = "ftp://example.com" }, true},
		{"token path without slash", func(c *config.Config) { c.TokenPath = "v1/auth/tokens" }, true},
		{"favorites path without slash", func(c *config.Config) { c.FavoritesPath = "v1/favorites" }, true},
		{"empty cookie name", func(c *config.Config) { c.CookieName = "" }, true},
		{"zero timeout", func(c *config.Config) { c.HTTPTimeout = 0 }, true},
		{"zero expiry wait", func(c *config.Config) { c.ExpiryWait = 0 }, true},
		{"zero parallelism", func(c *config.Config) { c.Parallelism = 0 }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

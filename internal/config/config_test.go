package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://smarteyes.se/glasogon/herr-bagar", cfg.Scraper.ListingURL)
	assert.Equal(t, "https://www.smarteyes.se", cfg.Scraper.ProductBaseURL)
	assert.Equal(t, "Mozilla/5.0", cfg.Scraper.UserAgent)
	assert.Equal(t, 100, cfg.Scraper.MaxPages)
	assert.Equal(t, 30*time.Second, cfg.Scraper.HTTPTimeout)
	assert.Equal(t, time.Duration(0), cfg.Scraper.RequestDelay)
	assert.Equal(t, "data/smarteyes-herrbagar.csv", cfg.Output.Path)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SMARTEYES_LISTING_URL", "http://localhost:9999/listing")
	t.Setenv("SMARTEYES_BASE_URL", "http://localhost:9999")
	t.Setenv("SCRAPER_MAX_PAGES", "5")
	t.Setenv("SCRAPER_HTTP_TIMEOUT", "10s")
	t.Setenv("SCRAPER_REQUEST_DELAY", "250ms")
	t.Setenv("OUTPUT_PATH", "out/test.csv")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/listing", cfg.Scraper.ListingURL)
	assert.Equal(t, "http://localhost:9999", cfg.Scraper.ProductBaseURL)
	assert.Equal(t, 5, cfg.Scraper.MaxPages)
	assert.Equal(t, 10*time.Second, cfg.Scraper.HTTPTimeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Scraper.RequestDelay)
	assert.Equal(t, "out/test.csv", cfg.Output.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SCRAPER_MAX_PAGES", "not-a-number")
	t.Setenv("SCRAPER_HTTP_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Scraper.MaxPages)
	assert.Equal(t, 30*time.Second, cfg.Scraper.HTTPTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "empty listing URL",
			mutate:  func(c *Config) { c.Scraper.ListingURL = "" },
			wantErr: "SMARTEYES_LISTING_URL",
		},
		{
			name:    "empty product base URL",
			mutate:  func(c *Config) { c.Scraper.ProductBaseURL = "" },
			wantErr: "SMARTEYES_BASE_URL",
		},
		{
			name:    "zero max pages",
			mutate:  func(c *Config) { c.Scraper.MaxPages = 0 },
			wantErr: "SCRAPER_MAX_PAGES",
		},
		{
			name:    "negative request delay",
			mutate:  func(c *Config) { c.Scraper.RequestDelay = -time.Second },
			wantErr: "SCRAPER_REQUEST_DELAY",
		},
		{
			name:    "empty output path",
			mutate:  func(c *Config) { c.Output.Path = "" },
			wantErr: "OUTPUT_PATH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

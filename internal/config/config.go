package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Scraper ScraperConfig
	Output  OutputConfig
	Logging LoggingConfig
}

type ScraperConfig struct {
	// ListingURL is the paginated catalog endpoint; page 1 is the bare URL,
	// later pages get an explicit ?page=N query parameter.
	ListingURL string

	// ProductBaseURL is the host the relative product hrefs resolve against.
	ProductBaseURL string

	UserAgent    string
	MaxPages     int
	HTTPTimeout  time.Duration
	RequestDelay time.Duration
}

type OutputConfig struct {
	Path string
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	// Optional .env for local runs; real env vars win either way.
	_ = godotenv.Load()

	cfg := &Config{
		Scraper: ScraperConfig{
			ListingURL:     getEnvOrDefault("SMARTEYES_LISTING_URL", "https://smarteyes.se/glasogon/herr-bagar"),
			ProductBaseURL: getEnvOrDefault("SMARTEYES_BASE_URL", "https://www.smarteyes.se"),
			UserAgent:      getEnvOrDefault("SCRAPER_USER_AGENT", "Mozilla/5.0"),
			MaxPages:       getIntOrDefault("SCRAPER_MAX_PAGES", 100),
			HTTPTimeout:    getDurationOrDefault("SCRAPER_HTTP_TIMEOUT", 30*time.Second),
			RequestDelay:   getDurationOrDefault("SCRAPER_REQUEST_DELAY", 0),
		},
		Output: OutputConfig{
			Path: getEnvOrDefault("OUTPUT_PATH", "data/smarteyes-herrbagar.csv"),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
		},
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Scraper.ListingURL == "" {
		return fmt.Errorf("SMARTEYES_LISTING_URL must not be empty")
	}

	if c.Scraper.ProductBaseURL == "" {
		return fmt.Errorf("SMARTEYES_BASE_URL must not be empty")
	}

	if c.Scraper.MaxPages < 1 {
		return fmt.Errorf("SCRAPER_MAX_PAGES must be at least 1")
	}

	if c.Scraper.RequestDelay < 0 {
		return fmt.Errorf("SCRAPER_REQUEST_DELAY must not be negative")
	}

	if c.Output.Path == "" {
		return fmt.Errorf("OUTPUT_PATH must not be empty")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

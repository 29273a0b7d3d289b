package xata

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// DefaultDimension is the embedding dimension used for provisioned
// tables when the configuration does not specify one.
const DefaultDimension = 8

// Config holds connection and behavior settings for the Xata adapter.
//
// It is intentionally minimal, readable, and easy to override from
// environment variables or programmatically via helper methods.
//
// Example (programmatic):
//
//	cfg := xata.DefaultConfig()
//	cfg.DatabaseURL = "https://ws-1234.eu-west-1.xata.sh/db/docs:main"
//	cfg.APIKey = os.Getenv("XATA_API_KEY")
//
// Example (builder style):
//
//	cfg := xata.FromDatabaseURL("https://ws-1234.eu-west-1.xata.sh/db/docs:main").
//	    WithAPIKey(os.Getenv("XATA_API_KEY")).
//	    WithDimension(1536)
type Config struct {
	// Xata database URL with region, database and, optionally, the
	// branch information. Required.
	DatabaseURL string `yaml:"database_url" env:"XATA_DATABASE_URL"`

	// Personal Xata API key. Required.
	APIKey string `yaml:"api_key" env:"XATA_API_KEY"`

	// Default dimension of the embeddings vector used when provisioning
	// tables. Defaults to DefaultDimension.
	Dimension int `yaml:"dimension" env:"XATA_DIMENSION"`

	// Maximum duration of one HTTP request before timing out.
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"XATA_HTTP_TIMEOUT"`
}

// DefaultConfig provides sensible defaults for most use cases.
func DefaultConfig() *Config {
	return &Config{
		Dimension:   DefaultDimension,
		HTTPTimeout: 30 * time.Second,
	}
}

// NewConfig reads the configuration from environment variables.
func NewConfig() *Config {
	cfg := DefaultConfig()
	cfg.DatabaseURL = os.Getenv("XATA_DATABASE_URL")
	cfg.APIKey = os.Getenv("XATA_API_KEY")

	if v := os.Getenv("XATA_DIMENSION"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Dimension = n
		}
	}
	if v := os.Getenv("XATA_HTTP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.HTTPTimeout = d
		}
	}

	return cfg
}

// Validate ensures required fields are present and defaults the rest.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("xata: missing XATA_DATABASE_URL")
	}
	if c.APIKey == "" {
		return fmt.Errorf("xata: missing XATA_API_KEY")
	}
	if c.Dimension <= 0 {
		c.Dimension = DefaultDimension
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 30 * time.Second
	}
	return nil
}

// FromDatabaseURL returns a default config pre-filled with a database URL.
func FromDatabaseURL(url string) *Config {
	cfg := DefaultConfig()
	cfg.DatabaseURL = url
	return cfg
}

// Builder-style helpers (optional, ergonomic)
func (c *Config) WithAPIKey(key string) *Config {
	c.APIKey = key
	return c
}

func (c *Config) WithDimension(dim int) *Config {
	c.Dimension = dim
	return c
}

func (c *Config) WithHTTPTimeout(d time.Duration) *Config {
	c.HTTPTimeout = d
	return c
}

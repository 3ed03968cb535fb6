// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

// defaultFetchTimeout bounds each source's document fetch.
const defaultFetchTimeout = 30 * time.Second

// Config holds the runtime settings, loaded from the environment. A .env
// file in the working directory is honored when present.
type Config struct {
	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string `json:"database_url" validate:"required"`

	// CSVDir receives the companion CSV export per source. Empty disables it.
	CSVDir string `json:"csv_dir"`

	// FetchTimeout bounds each source's HTTP fetch.
	FetchTimeout time.Duration `json:"fetch_timeout" validate:"min=0"`

	// Parallel runs all sources concurrently.
	Parallel bool `json:"parallel"`
}

// Override carries CLI flag values that take precedence over the
// environment. Zero values leave the environment setting in place.
type Override struct {
	DatabaseURL  string
	CSVDir       string
	FetchTimeout time.Duration
	Parallel     bool
}

// FromEnv builds a Config from environment variables — DATABASE_URL, CSV_DIR,
// FETCH_TIMEOUT (Go duration syntax), PARALLEL — applies the overrides, and
// validates the result.
func FromEnv(o Override) (*Config, error) {
	cfg := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		CSVDir:       os.Getenv("CSV_DIR"),
		FetchTimeout: defaultFetchTimeout,
		Parallel:     os.Getenv("PARALLEL") == "true",
	}

	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_TIMEOUT %q: %w", v, err)
		}
		cfg.FetchTimeout = d
	}

	if o.DatabaseURL != "" {
		cfg.DatabaseURL = o.DatabaseURL
	}
	if o.CSVDir != "" {
		cfg.CSVDir = o.CSVDir
	}
	if o.FetchTimeout > 0 {
		cfg.FetchTimeout = o.FetchTimeout
	}
	if o.Parallel {
		cfg.Parallel = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration using the validator.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

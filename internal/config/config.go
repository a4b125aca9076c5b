// Package config provides configuration loading and validation for the
// engine and its CLI driver.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the engine configuration, loadable from a JSON file. All fields
// are optional in the file; missing values use defaults or CLI flags. Oracle
// settings are handed to the adapter at construction time — nothing reads the
// environment at call time.
type Config struct {
	// TemplateDir is the root of the template file tree.
	TemplateDir string `json:"template_dir,omitempty" validate:"omitempty,dir"`

	// Oracle settings. An empty APIKey disables the AI path; classification
	// then always uses the deterministic keyword fallback.
	OracleAPIKey         string `json:"oracle_api_key,omitempty"`
	OracleModel          string `json:"oracle_model,omitempty"`
	OracleTimeoutSeconds int    `json:"oracle_timeout_seconds,omitempty" validate:"gte=0,lte=300"`

	// Logging behavior.
	JSONLogs bool `json:"json_logs,omitempty"`
	Debug    bool `json:"debug,omitempty"`
}

// envAPIKey is the environment variable consulted once at load time when the
// config file carries no key.
const envAPIKey = "GEMINI_API_KEY"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from a JSON file. An empty path returns the
// defaults with only the environment API key applied.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if !filepath.IsAbs(path) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			path = filepath.Join(cwd, path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	if cfg.OracleAPIKey == "" {
		cfg.OracleAPIKey = os.Getenv(envAPIKey)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field constraints via struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// OracleTimeout returns the configured oracle timeout as a duration, or zero
// when unset (the adapter applies its own default).
func (c *Config) OracleTimeout() time.Duration {
	return time.Duration(c.OracleTimeoutSeconds) * time.Second
}

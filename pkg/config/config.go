// Package config resolves the Gemini endpoint settings from the environment,
// an optional .env file and an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIKey     = "GENAI_API_KEY"
	EnvModel      = "GEMINI_MODEL"
	EnvAPIVersion = "GEMINI_API_VERSION"
	EnvBaseURL    = "GEMINI_BASE_URL"
	EnvTimeout    = "PROMPTLAB_TIMEOUT"
)

// Default values for Config.
const (
	DefaultModel      = "gemini-2.0-flash"
	DefaultAPIVersion = "v1beta"
	DefaultBaseURL    = "https://generativelanguage.googleapis.com"
	DefaultTimeout    = 2 * time.Minute
	DefaultEnvFile    = ".env"
)

// Config is the resolved client configuration.
type Config struct {
	APIKey     string
	Model      string
	APIVersion string
	BaseURL    string
	Timeout    time.Duration
}

// GenerateURL returns the generateContent endpoint for the configured model.
func (c *Config) GenerateURL() string {
	return fmt.Sprintf("%s/%s/models/%s:generateContent",
		strings.TrimRight(c.BaseURL, "/"), c.APIVersion, c.Model)
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
}

// Options controls where Load looks for settings.
type Options struct {
	// EnvFile is a KEY=VALUE file consulted for keys missing from the
	// environment. A missing file is not an error.
	EnvFile string

	// ConfigFile is an optional TOML file. When set it must exist.
	ConfigFile string

	// Getenv reads the process environment; os.Getenv when nil.
	Getenv func(string) string
}

type fileConfig struct {
	APIKey     string `toml:"api_key"`
	Model      string `toml:"model"`
	APIVersion string `toml:"api_version"`
	BaseURL    string `toml:"base_url"`
	Timeout    string `toml:"timeout"`
}

// Load resolves the configuration. Precedence, highest first: environment,
// env file, TOML file, defaults.
func Load(opts Options) (*Config, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	dotenv, err := readEnvFile(opts.EnvFile)
	if err != nil {
		return nil, err
	}

	var file fileConfig
	if opts.ConfigFile != "" {
		if _, err := toml.DecodeFile(opts.ConfigFile, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	lookup := func(key, fromFile, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		if v := dotenv[key]; v != "" {
			return v
		}
		if fromFile != "" {
			return fromFile
		}
		return fallback
	}

	cfg := &Config{
		APIKey:     lookup(EnvAPIKey, file.APIKey, ""),
		Model:      lookup(EnvModel, file.Model, DefaultModel),
		APIVersion: lookup(EnvAPIVersion, file.APIVersion, DefaultAPIVersion),
		BaseURL:    lookup(EnvBaseURL, file.BaseURL, DefaultBaseURL),
		Timeout:    DefaultTimeout,
	}

	if raw := lookup(EnvTimeout, file.Timeout, ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, ValidationError{Field: EnvTimeout, Message: "must be a positive duration"}
		}
		cfg.Timeout = d
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all config values are usable.
func Validate(cfg *Config) error {
	if cfg.APIKey == "" {
		return ValidationError{Field: EnvAPIKey, Message: "environment variable not set"}
	}
	if cfg.Model == "" {
		return ValidationError{Field: EnvModel, Message: "must not be empty"}
	}
	if cfg.APIVersion == "" {
		return ValidationError{Field: EnvAPIVersion, Message: "must not be empty"}
	}
	if cfg.BaseURL == "" {
		return ValidationError{Field: EnvBaseURL, Message: "must not be empty"}
	}
	return nil
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}
	return env, nil
}

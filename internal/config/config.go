// Package config loads the tool's environment-style configuration.
//
// Precedence, lowest to highest: built-in defaults, the optional TOML
// config file (~/.config/gaze-stars/config.toml), variables from a .env
// file in the working directory, then the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
)

// Environment variable names.
const (
	EnvUsername = "GITHUB_USERNAME"
	EnvToken    = "GITHUB_TOKEN"
	EnvTemplate = "TEMPLATE_PATH"
	EnvOutput   = "OUTPUT_PATH"
	EnvSortBy   = "SORT_BY"
	EnvDataFile = "DATA_FILE"
)

// Defaults.
const (
	DefaultTemplatePath = "template/template.md"
	DefaultOutputPath   = "README.md"
	DefaultSortBy       = string(domain.SortStars)
	DefaultDataFile     = "data.jsonl"
)

// Config holds the resolved configuration for one run.
type Config struct {
	// Username is the account whose stars are fetched. Required.
	Username string

	// Token is the API access credential. Required for fetching.
	Token string

	// TemplatePath is the README template file.
	TemplatePath string

	// OutputPath is the rendered README destination.
	OutputPath string

	// SortBy is the table sort mode ("stars" or reverse-scrape-order).
	SortBy domain.SortMode

	// DataFile is the durable record store path.
	DataFile string
}

// fileConfig mirrors Config for the optional TOML file.
type fileConfig struct {
	Username     string `toml:"username"`
	Token        string `toml:"token"`
	TemplatePath string `toml:"template_path"`
	OutputPath   string `toml:"output_path"`
	SortBy       string `toml:"sort_by"`
	DataFile     string `toml:"data_file"`
}

// Load resolves the configuration from defaults, the default config
// file location, .env and the environment.
func Load() (*Config, error) {
	return LoadFrom(defaultConfigPath())
}

// LoadFrom is Load with an explicit config file path. An empty path or
// a missing file skips the file layer.
func LoadFrom(configPath string) (*Config, error) {
	// Best-effort: a missing .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		TemplatePath: DefaultTemplatePath,
		OutputPath:   DefaultOutputPath,
		SortBy:       domain.SortMode(DefaultSortBy),
		DataFile:     DefaultDataFile,
	}

	if configPath != "" {
		if err := applyFile(cfg, configPath); err != nil {
			return nil, err
		}
	}
	applyEnv(cfg)

	return cfg, nil
}

// defaultConfigPath returns ~/.config/gaze-stars/config.toml, or "" when
// the home directory cannot be determined.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gaze-stars", "config.toml")
}

// applyFile overlays values from the TOML file, if it exists.
func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Username != "" {
		cfg.Username = fc.Username
	}
	if fc.Token != "" {
		cfg.Token = fc.Token
	}
	if fc.TemplatePath != "" {
		cfg.TemplatePath = fc.TemplatePath
	}
	if fc.OutputPath != "" {
		cfg.OutputPath = fc.OutputPath
	}
	if fc.SortBy != "" {
		cfg.SortBy = domain.SortMode(fc.SortBy)
	}
	if fc.DataFile != "" {
		cfg.DataFile = fc.DataFile
	}
	return nil
}

// applyEnv overlays values from the process environment.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvUsername); v != "" {
		cfg.Username = v
	}
	if v := os.Getenv(EnvToken); v != "" {
		cfg.Token = v
	}
	if v := os.Getenv(EnvTemplate); v != "" {
		cfg.TemplatePath = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv(EnvSortBy); v != "" {
		cfg.SortBy = domain.SortMode(v)
	}
	if v := os.Getenv(EnvDataFile); v != "" {
		cfg.DataFile = v
	}
}

// RequireUsername validates that an account identifier is configured.
func (c *Config) RequireUsername() error {
	if c.Username == "" {
		return domain.ErrMissingUsername
	}
	return nil
}

// RequireToken validates that an access credential is configured.
func (c *Config) RequireToken() error {
	if c.Token == "" {
		return domain.ErrMissingToken
	}
	return nil
}

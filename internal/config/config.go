package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	APIBaseURL     string `yaml:"apiBaseURL" validate:"required,url"`
	SessionFile    string `yaml:"sessionFile,omitempty"`
	LogDir         string `yaml:"logDir,omitempty"`
	RefreshSeconds int    `yaml:"refreshSeconds,omitempty" validate:"omitempty,min=5"`
}

const (
	configFileName = "shiftdash.yaml"

	// defaultRefreshSeconds matches the dashboard's periodic re-fetch cadence
	defaultRefreshSeconds = 30
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from shiftdash.yaml, looking in
// the current directory first and then in the user's home directory. A .env
// file, when present, supplies SHIFTDASH_API_URL and SHIFTDASH_SESSION_FILE
// overrides on top of the file values.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate validates the configuration struct
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// RefreshInterval returns the periodic refresh cadence as a duration
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

// applyEnvOverrides layers .env / environment values over the file config
func applyEnvOverrides(cfg *Config) {
	// Missing .env is the normal case; real env vars still apply.
	_ = godotenv.Load()

	if v := os.Getenv("SHIFTDASH_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("SHIFTDASH_SESSION_FILE"); v != "" {
		cfg.SessionFile = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.RefreshSeconds == 0 {
		cfg.RefreshSeconds = defaultRefreshSeconds
	}
}

// findConfigFile searches for shiftdash.yaml in current directory and home directory
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("%s not found in current directory or %s", configFileName, homeDir)
}

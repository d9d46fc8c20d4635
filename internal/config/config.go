package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultLogLevel     = "WARNING"
	defaultSource       = "math"
	defaultSettingsPath = "./passgen.toml"
)

// Config holds process-level settings read from the environment.
type Config struct {
	LogLevel     string
	Source       string
	SettingsPath string
}

// Load loads configuration from environment variables only.
func Load() (*Config, error) {
	return LoadWithFile("")
}

// LoadWithFile loads configuration from an optional .env file and environment variables.
func LoadWithFile(envFile string) (*Config, error) {
	// Attempt to load .env file if provided, but don't fail if it doesn't exist.
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		LogLevel:     strings.ToUpper(getEnvOrDefault("PASSGEN_LOG_LEVEL", defaultLogLevel)),
		Source:       strings.ToLower(getEnvOrDefault("PASSGEN_SOURCE", defaultSource)),
		SettingsPath: getEnvOrDefault("PASSGEN_SETTINGS", defaultSettingsPath),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that enumerated fields hold known values.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "DEBUG", "INFO", "WARNING", "ERROR":
	default:
		return fmt.Errorf("PASSGEN_LOG_LEVEL must be one of DEBUG, INFO, WARNING, ERROR, got %q", c.LogLevel)
	}
	switch c.Source {
	case "math", "crypto":
	default:
		return fmt.Errorf("PASSGEN_SOURCE must be math or crypto, got %q", c.Source)
	}
	if c.SettingsPath == "" {
		return fmt.Errorf("PASSGEN_SETTINGS is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLength      = 16
	DefaultSoftCeiling = 128
	DefaultFormat      = "plain"
)

// GeneratorSettings controls password requests made without an explicit length.
type GeneratorSettings struct {
	DefaultLength int `toml:"default_length" yaml:"default_length"`
	SoftCeiling   int `toml:"soft_ceiling" yaml:"soft_ceiling"`
}

// OutputSettings controls how batch results are printed.
type OutputSettings struct {
	Format string `toml:"format" yaml:"format"`
	Count  int    `toml:"count" yaml:"count"`
}

// Settings holds user-facing preferences. These are non-sensitive and
// may be edited freely.
// Source: TOML or YAML file, chosen by extension
type Settings struct {
	Generator GeneratorSettings `toml:"generator" yaml:"generator"`
	Output    OutputSettings    `toml:"output" yaml:"output"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Generator: GeneratorSettings{DefaultLength: DefaultLength, SoftCeiling: DefaultSoftCeiling},
		Output:    OutputSettings{Format: DefaultFormat, Count: 1},
	}
}

// LoadSettings reads settings from path. A missing file yields defaults;
// fields left out of the file keep their default values.
func LoadSettings(path string) (*Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), s); err != nil {
			return nil, fmt.Errorf("failed to parse TOML settings: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("failed to parse YAML settings: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported settings format %q", filepath.Ext(path))
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate rejects settings the generator or renderer cannot use.
func (s *Settings) Validate() error {
	if s.Generator.DefaultLength <= 0 {
		return fmt.Errorf("generator.default_length must be positive")
	}
	if s.Generator.SoftCeiling <= 0 {
		return fmt.Errorf("generator.soft_ceiling must be positive")
	}
	switch s.Output.Format {
	case "plain", "table", "json":
	default:
		return fmt.Errorf("output.format must be plain, table or json, got %q", s.Output.Format)
	}
	if s.Output.Count <= 0 {
		return fmt.Errorf("output.count must be positive")
	}
	return nil
}

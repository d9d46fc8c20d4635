package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{"PASSGEN_LOG_LEVEL", "PASSGEN_SOURCE", "PASSGEN_SETTINGS"}

func clearEnv(t *testing.T) {
	t.Helper()
	// t.Setenv saves the original for restore-on-cleanup; os.Unsetenv actually clears them.
	for _, key := range envKeys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "WARNING", cfg.LogLevel)
		assert.Equal(t, "math", cfg.Source)
		assert.Equal(t, "./passgen.toml", cfg.SettingsPath)
	})

	t.Run("values are normalized", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("PASSGEN_LOG_LEVEL", "debug")
		t.Setenv("PASSGEN_SOURCE", " Crypto ")
		t.Setenv("PASSGEN_SETTINGS", "/etc/passgen.yaml")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "DEBUG", cfg.LogLevel)
		assert.Equal(t, "crypto", cfg.Source)
		assert.Equal(t, "/etc/passgen.yaml", cfg.SettingsPath)
	})

	invalidTests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"bad log level", "PASSGEN_LOG_LEVEL", "LOUD", "PASSGEN_LOG_LEVEL must be one of"},
		{"bad source", "PASSGEN_SOURCE", "dice", "PASSGEN_SOURCE must be math or crypto"},
	}
	for _, tt := range invalidTests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadWithFile_RealEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	content := "PASSGEN_LOG_LEVEL=INFO\nPASSGEN_SOURCE=crypto\nPASSGEN_SETTINGS=/tmp/settings.yml\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o644))

	// godotenv.Load does NOT overwrite existing env vars.
	clearEnv(t)

	cfg, err := LoadWithFile(envFile)
	require.NoError(t, err)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, "crypto", cfg.Source)
	assert.Equal(t, "/tmp/settings.yml", cfg.SettingsPath)
}

func TestLoadWithFile_NonExistentFile(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadWithFile("/nonexistent/.env")
	require.NoError(t, err)
	assert.Equal(t, "math", cfg.Source)
}

func TestLoadWithFile_GodotenvError(t *testing.T) {
	// A directory path causes godotenv to return a non-IsNotExist error
	_, err := LoadWithFile(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading .env file")
}

func TestValidate(t *testing.T) {
	valid := Config{LogLevel: "ERROR", Source: "math", SettingsPath: "x.toml"}
	assert.NoError(t, valid.Validate())

	missing := valid
	missing.SettingsPath = ""
	err := missing.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PASSGEN_SETTINGS is required")
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("PASSGEN_TEST_KEY", "from_env")
	assert.Equal(t, "from_env", getEnvOrDefault("PASSGEN_TEST_KEY", "fallback"))

	t.Setenv("PASSGEN_TEST_KEY", "   ")
	assert.Equal(t, "fallback", getEnvOrDefault("PASSGEN_TEST_KEY", "fallback"))
}

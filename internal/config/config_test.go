package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
)

// clearEnv blanks all config variables for the test's duration.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvUsername, EnvToken, EnvTemplate, EnvOutput, EnvSortBy, EnvDataFile} {
		t.Setenv(key, "")
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom("")

	require.NoError(t, err)
	assert.Equal(t, "", cfg.Username)
	assert.Equal(t, "", cfg.Token)
	assert.Equal(t, DefaultTemplatePath, cfg.TemplatePath)
	assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, domain.SortStars, cfg.SortBy)
	assert.Equal(t, DefaultDataFile, cfg.DataFile)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvUsername, "octo")
	t.Setenv(EnvToken, "tok-123")
	t.Setenv(EnvSortBy, "updated")
	t.Setenv(EnvDataFile, "/tmp/stars.jsonl")

	cfg, err := LoadFrom("")

	require.NoError(t, err)
	assert.Equal(t, "octo", cfg.Username)
	assert.Equal(t, "tok-123", cfg.Token)
	assert.Equal(t, domain.SortMode("updated"), cfg.SortBy)
	assert.Equal(t, "/tmp/stars.jsonl", cfg.DataFile)
}

func TestLoadFrom_File(t *testing.T) {
	t.Run("file values apply", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
username = "filed"
output_path = "OUT.md"
`), 0o644))

		cfg, err := LoadFrom(path)

		require.NoError(t, err)
		assert.Equal(t, "filed", cfg.Username)
		assert.Equal(t, "OUT.md", cfg.OutputPath)
		assert.Equal(t, DefaultTemplatePath, cfg.TemplatePath, "unset keys keep defaults")
	})

	t.Run("environment beats file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvUsername, "enved")
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte(`username = "filed"`), 0o644))

		cfg, err := LoadFrom(path)

		require.NoError(t, err)
		assert.Equal(t, "enved", cfg.Username)
	})

	t.Run("missing file is skipped", func(t *testing.T) {
		clearEnv(t)

		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))

		require.NoError(t, err)
		assert.Equal(t, DefaultOutputPath, cfg.OutputPath)
	})

	t.Run("malformed file is fatal", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("not = = toml"), 0o644))

		_, err := LoadFrom(path)

		assert.Error(t, err)
	})
}

func TestConfig_Require(t *testing.T) {
	t.Run("missing username", func(t *testing.T) {
		cfg := &Config{}
		assert.ErrorIs(t, cfg.RequireUsername(), domain.ErrMissingUsername)
	})

	t.Run("missing token", func(t *testing.T) {
		cfg := &Config{Username: "octo"}
		assert.NoError(t, cfg.RequireUsername())
		assert.ErrorIs(t, cfg.RequireToken(), domain.ErrMissingToken)
	})

	t.Run("fully configured", func(t *testing.T) {
		cfg := &Config{Username: "octo", Token: "tok"}
		assert.NoError(t, cfg.RequireUsername())
		assert.NoError(t, cfg.RequireToken())
	})
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults fill missing keys", func(t *testing.T) {
		// Given: a file that only sets the difficulty
		path := writeConfig(t, "difficulty: easy\n")

		// When
		cfg, err := Load(path)

		// Then
		require.NoError(t, err)
		assert.Equal(t, "easy", cfg.Difficulty)
		assert.Equal(t, "hal", cfg.Persona)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 1.0, cfg.PacingScale)
		assert.False(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "traces.json", cfg.Telemetry.TraceFile)
	})

	t.Run("Nested telemetry keys are read", func(t *testing.T) {
		path := writeConfig(t, "persona: marvin\nseed: 42\npacing-scale: 0.25\ntelemetry:\n  enabled: true\n  trace-file: /tmp/t.json\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "marvin", cfg.Persona)
		assert.Equal(t, uint64(42), cfg.Seed)
		assert.Equal(t, 0.25, cfg.PacingScale)
		assert.True(t, cfg.Telemetry.Enabled)
		assert.Equal(t, "/tmp/t.json", cfg.Telemetry.TraceFile)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "difficulty: easy\n")
		t.Setenv("NOUGHTS_DIFFICULTY", "hard")

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "hard", cfg.Difficulty)
	})

	t.Run("Unknown values fail validation", func(t *testing.T) {
		path := writeConfig(t, "difficulty: impossible\npacing-scale: -1\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Config.Difficulty must satisfy oneof")
		assert.Contains(t, err.Error(), "Config.PacingScale must satisfy gte=0")
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		assert.ErrorContains(t, err, "unable to load config file")
	})

	t.Run("MustLoad panics on bad input", func(t *testing.T) {
		path := writeConfig(t, "persona: glados\n")

		assert.Panics(t, func() { MustLoad(path) })
	})
}

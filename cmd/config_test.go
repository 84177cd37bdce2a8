package cmd

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "playground", configBaseName)
	assert.Equal(t, "playground.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "session.dir", sessionDirConfigKey)
	assert.Equal(t, "session.id", sessionIDConfigKey)
	assert.Equal(t, ".playground/session", defaultSessionDir)
	assert.Equal(t, "default", defaultSessionID)
	assert.Equal(t, "PLAYGROUND", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty uses default", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", "INFO", slog.LevelInfo},
		{"warning alias", " warning ", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"unknown uses default", "loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestConfigureLogger_VerboseEnablesDebug(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	configureLogger(filepath.Join(t.TempDir(), "test.log"), true)

	require.NotNil(t, globalLogger)
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelDebug))
}

func TestConfigureLogger_UsesConfiguredLevel(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	viper.Set(logLevelKey, "error")
	t.Cleanup(func() { viper.Set(logLevelKey, defaultLogLevel) })

	configureLogger(filepath.Join(t.TempDir(), "test.log"), false)

	assert.False(t, globalLogger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, globalLogger.Enabled(t.Context(), slog.LevelError))
}

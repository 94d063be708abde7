package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" Error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLogLevel(tt.in))
		})
	}
}

func TestNewStructuredLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLoggerTo(&buf, "resep", "v0.1.0", "warn")

	logger.Info("hidden")
	assert.Zero(t, buf.Len(), "info should be filtered at warn level")

	logger.Warn("skipped recipe", "id", "52772")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "skipped recipe", entry["msg"])
	assert.Equal(t, "resep", entry["module"])
	assert.Equal(t, "v0.1.0", entry["version"])
	assert.Equal(t, "52772", entry["id"])
	assert.NotContains(t, entry, "source")
}

func TestNewStructuredLoggerTo_DebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLoggerTo(&buf, "resep", "dev", "debug")

	logger.Debug("catalog request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry, "source")
}

func TestNewStructuredLoggerTo_FallsBackToEnv(t *testing.T) {
	t.Setenv(EnvVarLogLevel, "error")

	var buf bytes.Buffer
	logger := NewStructuredLoggerTo(&buf, "resep", "dev", "")
	logger.Warn("dropped")
	assert.Zero(t, buf.Len())

	logger.Error("kept")
	assert.NotZero(t, buf.Len())
}

package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	require.NoError(t, SetupLoggerTo(&buf, level, "json"))
	return &buf
}

func TestLogHelpers(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		log       func()
		wantLevel string
		wantKey   string
	}{
		{
			name:      "info",
			level:     "info",
			log:       func() { LogInfo("Starting database migration", Fields{"database": "journal.db"}) },
			wantLevel: "INFO",
			wantKey:   "database",
		},
		{
			name:      "debug",
			level:     "debug",
			log:       func() { LogDebug("Matched beans", Fields{"matches": 3}) },
			wantLevel: "DEBUG",
			wantKey:   "matches",
		},
		{
			name:      "error",
			level:     "info",
			log:       func() { LogError(errors.New("boom"), "API request failed", Fields{"path": "/beans"}) },
			wantLevel: "ERROR",
			wantKey:   "path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureJSON(t, tt.level)
			tt.log()

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, tt.wantLevel, record["level"])
			assert.Contains(t, record, tt.wantKey)
		})
	}
}

func TestLogDebug_SuppressedAtInfo(t *testing.T) {
	buf := captureJSON(t, "info")
	LogDebug("Matched beans", Fields{"matches": 3})
	assert.Empty(t, buf.String())
}

func TestSetupLoggerTo_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"bad level", "loud", "json"},
		{"bad format", "info", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetupLoggerTo(&bytes.Buffer{}, tt.level, tt.format)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

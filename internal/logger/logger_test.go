package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", DebugLevel},
		{" DEBUG ", DebugLevel},
		{"info", InfoLevel},
		{"warning", WarnLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{"", InfoLevel},
		{"verbose", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestZerologAdapter_WritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerolog(&buf, InfoLevel)

	l.Info("CredentialStore", "user registered", map[string]interface{}{"username": "alice"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "CredentialStore", entry["component"])
	assert.Equal(t, "alice", entry["username"])
	assert.Equal(t, "user registered", entry["message"])
}

func TestZerologAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerolog(&buf, WarnLevel)

	l.Debug("Navigator", "transition", nil)
	l.Info("Navigator", "transition", nil)
	assert.Zero(t, buf.Len())

	l.Error("Navigator", errors.New("boom"), nil)
	assert.Contains(t, buf.String(), "boom")
}

func TestStructuredLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewStructuredLogger(DebugLevel, &buf, true)

	l.Debug("Canvas", "stroke committed", map[string]interface{}{"points": 4})
	l.Error("Canvas", errors.New("disk full"), nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "Canvas", first["component"])
	assert.Equal(t, float64(4), first["points"])

	var second map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "disk full", second["error"])
}

func TestStructuredLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewStructuredLogger(ErrorLevel, &buf, false)

	l.Info("App", "starting", nil)
	l.Warning("App", "slow", nil)
	assert.Zero(t, buf.Len())
}

func TestNew_SelectsBackend(t *testing.T) {
	tests := []struct {
		backend  string
		jsonOut  bool
		wantSlog bool
	}{
		{BackendZerolog, true, false},
		{BackendZerolog, false, false},
		{BackendSlog, true, true},
		{BackendSlog, false, true},
		{"", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			var buf bytes.Buffer
			l := newTo(&buf, tt.backend, InfoLevel, tt.jsonOut)

			_, isSlog := l.(*StructuredLogger)
			assert.Equal(t, tt.wantSlog, isSlog)

			l.Info("Application", "starting application", map[string]interface{}{"version": "1.0.0"})
			assert.Contains(t, buf.String(), "starting application")
			if tt.jsonOut {
				var entry map[string]interface{}
				require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
				assert.Equal(t, "Application", entry["component"])
			}
		})
	}
}

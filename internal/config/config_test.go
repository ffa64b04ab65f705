package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfigFile, EnvDataFile, EnvLogLevel, EnvLogBackend, EnvJSONLogs, EnvFont, EnvExportDir} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, color.NRGBA{R: 0xff, A: 0xff}, cfg.StrokeColor())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "hiragana.yaml")
	yml := `
data_file: /tmp/from-file.json
log_level: debug
log_backend: slog
window:
  width: 480
  height: 800
stroke:
  width: 5
  color: "#0000ff80"
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	t.Setenv(EnvConfigFile, path)
	t.Setenv(EnvDataFile, "/tmp/from-env.json")
	t.Setenv(EnvJSONLogs, "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/from-env.json", cfg.DataFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "slog", cfg.LogBackend)
	assert.True(t, cfg.JSONLogs)
	assert.Equal(t, float32(480), cfg.Window.Width)
	assert.Equal(t, float32(800), cfg.Window.Height)
	assert.Equal(t, float32(5), cfg.Stroke.Width)
	assert.Equal(t, color.NRGBA{B: 0xff, A: 0x80}, cfg.StrokeColor())
	assert.Equal(t, "practice", cfg.ExportDir, "unset keys keep their default")
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("unknown log backend", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvLogBackend, "logrus")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad bool", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvJSONLogs, "sometimes")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("bad colour", func(t *testing.T) {
		clearEnv(t)
		path := filepath.Join(t.TempDir(), "c.yaml")
		require.NoError(t, os.WriteFile(path, []byte("stroke:\n  color: red\n"), 0o600))
		t.Setenv(EnvConfigFile, path)
		_, err := Load()
		require.Error(t, err)
	})
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff0000", color.NRGBA{R: 0xff, A: 0xff}, false},
		{"00ff00", color.NRGBA{G: 0xff, A: 0xff}, false},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, false},
		{"#fff", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

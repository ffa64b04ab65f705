// Package config resolves application settings: built-in defaults, then an
// optional YAML file, then HIRAGANA_* environment variables.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfigFile = "HIRAGANA_CONFIG"
	EnvDataFile   = "HIRAGANA_DATA_FILE"
	EnvLogLevel   = "HIRAGANA_LOG_LEVEL"
	EnvLogBackend = "HIRAGANA_LOG_BACKEND"
	EnvJSONLogs   = "HIRAGANA_JSON_LOGS"
	EnvFont       = "HIRAGANA_FONT"
	EnvExportDir  = "HIRAGANA_EXPORT_DIR"
)

// Config is read once at start and treated as immutable afterwards.
type Config struct {
	DataFile   string       `yaml:"data_file"`
	LogLevel   string       `yaml:"log_level"`
	LogBackend string       `yaml:"log_backend"`
	JSONLogs   bool         `yaml:"json_logs"`
	FontPath   string       `yaml:"font"`
	ExportDir  string       `yaml:"export_dir"`
	Window     WindowConfig `yaml:"window"`
	Stroke     StrokeConfig `yaml:"stroke"`
}

type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type StrokeConfig struct {
	Width float32 `yaml:"width"`
	// Color is "#rrggbb" or "#rrggbbaa".
	Color string `yaml:"color"`
}

// Defaults mirrors a phone-sized portrait window with a red 3px pen.
func Defaults() Config {
	return Config{
		DataFile:   "user_data.json",
		LogLevel:   "info",
		LogBackend: "zerolog",
		ExportDir:  "practice",
		Window: WindowConfig{
			Width:  360,
			Height: 640,
		},
		Stroke: StrokeConfig{
			Width: 3,
			Color: "#ff0000",
		},
	}
}

// Load applies defaults, the file named by HIRAGANA_CONFIG if set, and env overrides.
func Load() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}

	if err := cfg.mergeEnv(); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

func (c *Config) mergeEnv() error {
	if v := os.Getenv(EnvDataFile); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogBackend); v != "" {
		c.LogBackend = v
	}
	if v := os.Getenv(EnvJSONLogs); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvJSONLogs, err)
		}
		c.JSONLogs = b
	}
	if v := os.Getenv(EnvFont); v != "" {
		c.FontPath = v
	}
	if v := os.Getenv(EnvExportDir); v != "" {
		c.ExportDir = v
	}
	return nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return errors.New("data_file must not be empty")
	}
	switch c.LogBackend {
	case "zerolog", "slog":
	default:
		return fmt.Errorf("unknown log_backend %q", c.LogBackend)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	if c.Stroke.Width <= 0 {
		return fmt.Errorf("invalid stroke width %v", c.Stroke.Width)
	}
	if _, err := ParseColor(c.Stroke.Color); err != nil {
		return err
	}
	return nil
}

// StrokeColor returns the parsed pen colour. Validate has already rejected bad input.
func (c Config) StrokeColor() color.NRGBA {
	col, err := ParseColor(c.Stroke.Color)
	if err != nil {
		return color.NRGBA{R: 0xff, A: 0xff}
	}
	return col
}

// ParseColor accepts #rrggbb or #rrggbbaa.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}

	if len(hex) == 6 {
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

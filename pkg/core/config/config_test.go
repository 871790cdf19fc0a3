package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/monkey/foundation/core/error"
	"github.com/msto63/monkey/foundation/monkey"
)

// clearEnv blanks every variable the package reads
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		EnvPrefix + "_CONFIG",
		envKey("general.log_level"),
		envKey("general.log_format"),
		envKey("parser.max_input_length"),
		envKey("output.format"),
		envKey("output.color"),
	} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.Parser.MaxInputLength != monkey.DefaultMaxInputLength {
		t.Errorf("Parser.MaxInputLength = %v, want %v", cfg.Parser.MaxInputLength, monkey.DefaultMaxInputLength)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %v, want text", cfg.Output.Format)
	}
	if cfg.Output.Color != "auto" {
		t.Errorf("Output.Color = %v, want auto", cfg.Output.Color)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"monkey.toml", FormatTOML},
		{"monkey.yaml", FormatYAML},
		{"monkey.YML", FormatYAML},
		{"monkey.conf", FormatTOML},
		{"monkey", FormatTOML},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	clearEnv(t)

	_, err := Load("/nonexistent/path/monkey.toml")
	if err == nil {
		t.Fatal("Load() should return error for nonexistent file")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Load() error code = %v, want NOT_FOUND", mdwerror.GetCode(err))
	}
}

func TestLoad_TOML(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "monkey.toml", `
[general]
log_level = "debug"
log_format = "json"

[parser]
max_input_length = 4096

[output]
format = "yaml"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "json" {
		t.Errorf("General.LogFormat = %v, want json", cfg.General.LogFormat)
	}
	if cfg.Parser.MaxInputLength != 4096 {
		t.Errorf("Parser.MaxInputLength = %v, want 4096", cfg.Parser.MaxInputLength)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("Output.Format = %v, want yaml", cfg.Output.Format)
	}
	// Not set in the file
	if cfg.Output.Color != "auto" {
		t.Errorf("Output.Color = %v, want auto", cfg.Output.Color)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %v, want %v", cfg.Path(), path)
	}
}

func TestLoad_YAML(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "monkey.yaml", `
general:
  log_level: error
parser:
  max_input_length: 128
output:
  color: never
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "error" {
		t.Errorf("General.LogLevel = %v, want error", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.Parser.MaxInputLength != 128 {
		t.Errorf("Parser.MaxInputLength = %v, want 128", cfg.Parser.MaxInputLength)
	}
	if cfg.Output.Color != "never" {
		t.Errorf("Output.Color = %v, want never", cfg.Output.Color)
	}
}

func TestParse_Malformed(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		content string
		format  Format
	}{
		{"broken toml", "[general\nlog_level = ", FormatTOML},
		{"broken yaml", "general: [unclosed", FormatYAML},
		{"wrong type", "[parser]\nmax_input_length = \"big\"", FormatTOML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content), tt.format)
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
				t.Errorf("error code = %v, want CONFIG_ERROR", mdwerror.GetCode(err))
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		key    string
	}{
		{"log level", func(c *Config) { c.General.LogLevel = "loud" }, "general.log_level"},
		{"log format", func(c *Config) { c.General.LogFormat = "xml" }, "general.log_format"},
		{"input length", func(c *Config) { c.Parser.MaxInputLength = -1 }, "parser.max_input_length"},
		{"output format", func(c *Config) { c.Output.Format = "html" }, "output.format"},
		{"color", func(c *Config) { c.Output.Color = "sometimes" }, "output.color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("error code = %v, want INVALID_CONFIG", mdwerror.GetCode(err))
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q should name %s", err.Error(), tt.key)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONKEY_GENERAL_LOG_LEVEL", "trace")
	t.Setenv("MONKEY_PARSER_MAX_INPUT_LENGTH", "64")
	t.Setenv("MONKEY_OUTPUT_FORMAT", "json")

	cfg, err := Parse([]byte("[general]\nlog_level = \"info\"\n"), FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.General.LogLevel != "trace" {
		t.Errorf("General.LogLevel = %v, want trace", cfg.General.LogLevel)
	}
	if cfg.Parser.MaxInputLength != 64 {
		t.Errorf("Parser.MaxInputLength = %v, want 64", cfg.Parser.MaxInputLength)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %v, want json", cfg.Output.Format)
	}
}

func TestEnvOverrides_BadInteger(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONKEY_PARSER_MAX_INPUT_LENGTH", "lots")

	_, err := Parse(nil, FormatTOML)
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("Parse() error = %v, want INVALID_CONFIG", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "custom.yaml", "general:\n  log_format: logfmt\n")
	t.Setenv("MONKEY_CONFIG", path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.LogFormat != "logfmt" {
		t.Errorf("General.LogFormat = %v, want logfmt", cfg.General.LogFormat)
	}
}

func TestLoadFromEnv_MissingExplicitFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONKEY_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	if _, err := LoadFromEnv(); err == nil {
		t.Error("LoadFromEnv() should fail when MONKEY_CONFIG names a missing file")
	}
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %v, want empty", cfg.Path())
	}
	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
}

func TestNewLogger(t *testing.T) {
	cfg := Default()
	cfg.General.LogLevel = "info"
	cfg.General.LogFormat = "logfmt"

	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry should be filtered at info level")
	}
	if !strings.Contains(out, `message="shown"`) || !strings.Contains(out, "logger=monkey") {
		t.Errorf("unexpected log output: %q", out)
	}
}

func TestString(t *testing.T) {
	out := Default().String()
	for _, want := range []string{"[general]", `log_level = "warn"`, "[parser]", "[output]"} {
		if !strings.Contains(out, want) {
			t.Errorf("String() missing %q:\n%s", want, out)
		}
	}
}

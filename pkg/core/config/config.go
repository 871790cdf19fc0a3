package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/monkey/foundation/core/error"
	mdwlog "github.com/msto63/monkey/foundation/core/log"
	"github.com/msto63/monkey/foundation/monkey"
)

// EnvPrefix prefixes every environment variable read by this package
const EnvPrefix = "MONKEY"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`

	path string
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig holds front end limits
type ParserConfig struct {
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // text, json or yaml
	Color  string `toml:"color" yaml:"color"`   // auto, always or never
}

// Format is a configuration file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// DetectFormat determines the configuration format from the file extension.
// Unknown extensions are read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.Newf("config file not found: %s", path).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeIO).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := Parse(content, DetectFormat(path))
	if err != nil {
		return nil, err
	}
	cfg.path = path

	return cfg, nil
}

// Parse decodes configuration content, then applies defaults and
// environment overrides and validates the result
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(content), &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Parse")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Parse")
		}
	default:
		return nil, mdwerror.Newf("unsupported format: %s", format).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Parse")
	}

	cfg.applyDefaults()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads the file named by MONKEY_CONFIG, or the first file
// found in the default locations. Without any file the defaults are used.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvPrefix + "_CONFIG"); path != "" {
		return Load(path)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPaths lists the locations searched by LoadFromEnv, in order
func DefaultPaths() []string {
	paths := []string{
		"./monkey.toml",
		"./monkey.yaml",
		"./configs/monkey.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "monkey", "config.toml"))
	}
	return paths
}

// Path returns the file the configuration was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Parser.MaxInputLength == 0 {
		c.Parser.MaxInputLength = monkey.DefaultMaxInputLength
	}

	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Color == "" {
		c.Output.Color = "auto"
	}
}

// applyEnv overrides settings from MONKEY_<SECTION>_<KEY> variables
func (c *Config) applyEnv() error {
	if v := os.Getenv(envKey("general.log_level")); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv(envKey("general.log_format")); v != "" {
		c.General.LogFormat = v
	}
	if v := os.Getenv(envKey("output.format")); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv(envKey("output.color")); v != "" {
		c.Output.Color = v
	}

	key := envKey("parser.max_input_length")
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return mdwerror.Wrap(err, "invalid integer in environment").
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.applyEnv").
				WithDetail("variable", key)
		}
		c.Parser.MaxInputLength = n
	}

	return nil
}

// envKey converts a config key to its environment variable name:
// general.log_level -> MONKEY_GENERAL_LOG_LEVEL
func envKey(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Validate checks that every setting holds a supported value
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat)
	}
	if c.Parser.MaxInputLength <= 0 {
		return invalid("parser.max_input_length", strconv.Itoa(c.Parser.MaxInputLength))
	}

	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return invalid("output.format", c.Output.Format)
	}

	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return invalid("output.color", c.Output.Color)
	}

	return nil
}

func invalid(key, value string) error {
	return mdwerror.Newf("invalid value %q for %s", value, key).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key)
}

// NewLogger builds the application logger described by the general
// section, writing to out
func (c *Config) NewLogger(out io.Writer) (*mdwlog.Logger, error) {
	level, err := mdwlog.ParseLevel(c.General.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := mdwlog.ParseFormat(c.General.LogFormat)
	if err != nil {
		return nil, err
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: out,
		Name:   "monkey",
	}), nil
}

// String renders the effective configuration as TOML
func (c *Config) String() string {
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return sb.String()
}

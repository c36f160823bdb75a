package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/bcomnes/semver-bump/internal/logging"
)

// DefaultFile is the config file looked up in the working directory when no
// path is given.
const DefaultFile = ".semver-bump.yml"

// Environment variables that override values read from the config file.
const (
	EnvFormat   = "SEMVER_BUMP_FORMAT"
	EnvLogLevel = "SEMVER_BUMP_LOG_LEVEL"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the .semver-bump.yml configuration file.
type Config struct {
	Format   string `yaml:"format,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{Format: FormatText, LogLevel: logging.DefaultLevel}
}

// Load reads the config file at path, then applies environment overrides and
// finally the non-empty fields of flags. An empty path means DefaultFile, which
// may be absent; an explicit path must exist.
func Load(path string, flags Config) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if cfg, err = decode(string(data)); err != nil {
			return nil, errors.Wrapf(err, "config file %s", path)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return nil, errors.Wrap(err, "failed to read config file")
	}

	cfg.applyEnv(os.Getenv)
	cfg.merge(flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse parses YAML config content on top of the defaults.
func Parse(content string) (*Config, error) {
	cfg, err := decode(content)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(content string) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	c.merge(Config{Format: getenv(EnvFormat), LogLevel: getenv(EnvLogLevel)})
}

func (c *Config) merge(o Config) {
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
}

// Validate lower-cases the format and checks that it and the log level are supported.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Errorf("unknown output format %q (supported values: %s)", c.Format, strings.Join(Formats(), ", "))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

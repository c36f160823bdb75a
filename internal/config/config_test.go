package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// chdir moves into a fresh directory for the rest of the test.
func chdir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvFormat, "")
	t.Setenv(EnvLogLevel, "")
}

func TestParse(t *testing.T) {
	cfg, err := Parse("format: JSON\nlog_level: debug\n")
	require.NoError(t, err)
	assert.Equal(t, &Config{Format: FormatJSON, LogLevel: "debug"}, cfg)

	cfg, err = Parse("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"bad yaml", "format: [json", "failed to parse config"},
		{"unknown format", "format: xml\n", `unknown output format "xml"`},
		{"unknown level", "log_level: trace\n", `unknown log level "trace"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.content)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoadWithoutFile(t *testing.T) {
	chdir(t)
	clearEnv(t)

	cfg, err := Load("", Config{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadDefaultFile(t *testing.T) {
	chdir(t)
	clearEnv(t)
	require.NoError(t, os.WriteFile(DefaultFile, []byte("format: yaml\n"), 0o644))

	cfg, err := Load("", Config{})
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, cfg.Format)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"), Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadPrecedence(t *testing.T) {
	path := writeConfig(t, "format: yaml\nlog_level: info\n")

	t.Run("file", func(t *testing.T) {
		clearEnv(t)
		cfg, err := Load(path, Config{})
		require.NoError(t, err)
		assert.Equal(t, &Config{Format: FormatYAML, LogLevel: "info"}, cfg)
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv(EnvFormat, "json")
		t.Setenv(EnvLogLevel, "")
		cfg, err := Load(path, Config{})
		require.NoError(t, err)
		assert.Equal(t, &Config{Format: FormatJSON, LogLevel: "info"}, cfg)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv(EnvFormat, "json")
		t.Setenv(EnvLogLevel, "error")
		cfg, err := Load(path, Config{Format: "text", LogLevel: "debug"})
		require.NoError(t, err)
		assert.Equal(t, &Config{Format: FormatText, LogLevel: "debug"}, cfg)
	})

	t.Run("flag fixes invalid env", func(t *testing.T) {
		t.Setenv(EnvFormat, "xml")
		t.Setenv(EnvLogLevel, "")
		cfg, err := Load(path, Config{Format: "json"})
		require.NoError(t, err)
		assert.Equal(t, FormatJSON, cfg.Format)
	})
}

func TestLoadInvalidFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "format: [json")

	_, err := Load(path, Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file "+path)
}

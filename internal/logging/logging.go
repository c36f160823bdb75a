// Package logging builds the zap logger used by the semver-bump command.
//
// Output is human-readable console encoding without timestamps, written to the
// given writer (stderr in practice) so it never mixes with the bumped version
// printed on stdout. The default level is warn, which keeps normal runs silent.
package logging

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

// ParseLevel converts a case-insensitive level name (debug, info, warn,
// warning, error) into a zap level. An empty name yields DefaultLevel.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "", "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InvalidLevel, errors.Errorf("unknown log level %q (supported values: debug, info, warn, error)", name)
	}
}

// New returns a logger writing to w at the named level.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), lvl)
	return zap.New(core).Named("semver-bump"), nil
}

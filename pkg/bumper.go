package semverbump

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Result describes a single bump.
type Result struct {
	Previous string `json:"previous" yaml:"previous"`
	Next     string `json:"next" yaml:"next"`
	Kind     string `json:"kind" yaml:"kind"`
}

// Bumper applies bumps to version strings. The zero value is not usable; call New.
// A Bumper holds no mutable state and may be shared.
type Bumper struct {
	log *zap.Logger
}

// Option configures a Bumper.
type Option func(*Bumper)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bumper) {
		if l != nil {
			b.log = l
		}
	}
}

// New returns a Bumper. Without options it logs nothing.
func New(opts ...Option) *Bumper {
	b := &Bumper{log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var defaultBumper = New()

// Bump parses current, applies kind and returns the serialized result.
// replacement is only meaningful for Prerelease and Build and may be empty.
func Bump(current string, kind Kind, replacement string) (string, error) {
	return defaultBumper.Bump(current, kind, replacement)
}

// Bump parses current, applies kind and returns the serialized result.
func (b *Bumper) Bump(current string, kind Kind, replacement string) (string, error) {
	res, err := b.Explain(current, kind, replacement)
	if err != nil {
		return "", err
	}
	return res.Next, nil
}

// Explain is like Bump but reports the previous version and kind as well.
func (b *Bumper) Explain(current string, kind Kind, replacement string) (Result, error) {
	log := b.log.With(zap.Stringer("kind", kind))

	v, err := Parse(current)
	if err != nil {
		log.Debug("rejected input", zap.String("input", current), zap.Error(err))
		return Result{}, err
	}
	log.Debug("parsed version",
		zap.Uint64("major", v.Major),
		zap.Uint64("minor", v.Minor),
		zap.Uint64("patch", v.Patch),
		zap.Strings("prerelease", v.Prerelease),
		zap.Strings("build", v.Build),
	)

	next, err := b.apply(v, kind, replacement)
	if err != nil {
		log.Debug("bump failed", zap.String("replacement", replacement), zap.Error(err))
		return Result{}, err
	}

	res := Result{Previous: v.String(), Next: next.String(), Kind: kind.String()}
	log.Debug("bumped version", zap.String("previous", res.Previous), zap.String("next", res.Next))
	return res, nil
}

func (b *Bumper) apply(v Version, kind Kind, replacement string) (Version, error) {
	switch kind {
	case Major, Minor, Patch:
		if replacement != "" {
			return Version{}, newError(ErrCodeInvalidIdentifier,
				"a %s bump does not take an identifier, got %q", kind, replacement)
		}
	}

	switch kind {
	case Major:
		return BumpMajor(v), nil
	case Minor:
		return BumpMinor(v), nil
	case Patch:
		return BumpPatch(v), nil
	case Prerelease:
		return BumpPrerelease(v, replacement)
	case Build:
		return BumpBuild(v, replacement)
	default:
		return Version{}, errors.Errorf("unknown bump kind %d", int(kind))
	}
}

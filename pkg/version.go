package semverbump

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/mod/semver"
)

// Version is a parsed semantic version. An empty Prerelease or Build slice
// means the version has no such suffix.
type Version struct {
	Major      uint64
	Minor      uint64
	Patch      uint64
	Prerelease []string
	Build      []string
}

// maxCore is the largest accepted major, minor or patch number. It leaves room
// for one more bump.
const maxCore = math.MaxUint64 - 1

// Parse parses a version in the canonical MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD]
// form. No "v" prefix is accepted and surrounding whitespace is not stripped.
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, parseErrorf("empty string, expected a semver version")
	}

	var v Version
	rest := s
	var err error
	if v.Major, rest, err = parseNumber(rest, "major"); err != nil {
		return Version{}, err
	}
	if rest, err = expectDot(rest, "major"); err != nil {
		return Version{}, err
	}
	if v.Minor, rest, err = parseNumber(rest, "minor"); err != nil {
		return Version{}, err
	}
	if rest, err = expectDot(rest, "minor"); err != nil {
		return Version{}, err
	}
	if v.Patch, rest, err = parseNumber(rest, "patch"); err != nil {
		return Version{}, err
	}

	if rest != "" && rest[0] != '-' && rest[0] != '+' {
		return Version{}, parseErrorf("unexpected character %q after patch version number", firstRune(rest))
	}

	pre, build, hasBuild := strings.Cut(rest, "+")
	if strings.HasPrefix(pre, "-") {
		if v.Prerelease, err = splitGroup(pre[1:], PrereleaseGrammar); err != nil {
			return Version{}, asParseError(err)
		}
	}
	if hasBuild {
		if v.Build, err = splitGroup(build, BuildGrammar); err != nil {
			return Version{}, asParseError(err)
		}
	}

	if !semver.IsValid("v" + s) {
		return Version{}, parseErrorf("%q is not a valid semantic version", s)
	}
	return v, nil
}

// parseNumber consumes one core version number from the front of s.
func parseNumber(s, pos string) (uint64, string, error) {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		if s == "" {
			return 0, s, parseErrorf("unexpected end of input while parsing %s version number", pos)
		}
		return 0, s, parseErrorf("unexpected character %q while parsing %s version number", firstRune(s), pos)
	}
	digits := s[:end]
	if len(digits) > 1 && digits[0] == '0' {
		return 0, s, parseErrorf("invalid leading zero in %s version number", pos)
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil || n > maxCore {
		return 0, s, parseErrorf("value of %s version number exceeds %d", pos, uint64(maxCore))
	}
	return n, s[end:], nil
}

func expectDot(s, after string) (string, error) {
	if s == "" {
		return s, parseErrorf("unexpected end of input after %s version number, expected '.'", after)
	}
	if s[0] != '.' {
		return s, parseErrorf("unexpected character %q after %s version number, expected '.'", firstRune(s), after)
	}
	return s[1:], nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// asParseError re-classifies an identifier error found while parsing the input.
func asParseError(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return &Error{Code: ErrCodeParse, Message: e.Message, Cause: e.Cause}
	}
	return err
}

// String serializes v. It is the exact inverse of Parse.
func (v Version) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.Major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Patch, 10))
	if len(v.Prerelease) > 0 {
		b.WriteByte('-')
		b.WriteString(joinGroup(v.Prerelease))
	}
	if len(v.Build) > 0 {
		b.WriteByte('+')
		b.WriteString(joinGroup(v.Build))
	}
	return b.String()
}

// Validate checks that every identifier of v matches its grammar and that the
// serialized form is accepted by golang.org/x/mod/semver.
func (v Version) Validate() error {
	if err := validateGroup(v.Prerelease, PrereleaseGrammar); err != nil {
		return err
	}
	if err := validateGroup(v.Build, BuildGrammar); err != nil {
		return err
	}
	if s := v.String(); !semver.IsValid("v"+s) {
		return newError(ErrCodeInvalidIdentifier, "%q is not a valid semantic version", s)
	}
	return nil
}

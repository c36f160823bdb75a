package semverbump

import "strings"

// Grammar selects which identifier rules apply to an identifier group.
type Grammar int

const (
	// PrereleaseGrammar forbids leading zeros in numeric identifiers.
	PrereleaseGrammar Grammar = iota
	// BuildGrammar treats every identifier as an opaque alphanumeric string.
	BuildGrammar
)

// String names the group in error messages.
func (g Grammar) String() string {
	if g == BuildGrammar {
		return "build metadata"
	}
	return "pre-release identifier"
}

// suffix is how the missing-identifier message refers to the group.
func (g Grammar) suffix() string {
	if g == BuildGrammar {
		return "build identifier"
	}
	return "prerelease suffix"
}

// splitGroup splits the text of an identifier group and validates every identifier.
func splitGroup(text string, g Grammar) ([]string, error) {
	ids := strings.Split(text, ".")
	if err := validateGroup(ids, g); err != nil {
		return nil, err
	}
	return ids, nil
}

// validateGroup checks each identifier of a group against g.
func validateGroup(ids []string, g Grammar) error {
	for _, id := range ids {
		if err := validateIdentifier(id, g); err != nil {
			return err
		}
	}
	return nil
}

func validateIdentifier(id string, g Grammar) error {
	if id == "" {
		return newError(ErrCodeInvalidIdentifier, "empty identifier segment in %s", g)
	}
	numeric := true
	for _, r := range id {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-':
			numeric = false
		default:
			return newError(ErrCodeInvalidIdentifier, "unexpected character %q in %s", r, g)
		}
	}
	if g == PrereleaseGrammar && numeric && len(id) > 1 && id[0] == '0' {
		return newError(ErrCodeInvalidIdentifier, "invalid leading zero in %s", g)
	}
	return nil
}

// joinGroup is the inverse of splitGroup.
func joinGroup(ids []string) string {
	return strings.Join(ids, ".")
}

package semverbump

// Kind selects which component of a version is bumped.
type Kind int

const (
	Major Kind = iota
	Minor
	Patch
	Prerelease
	Build
)

var kindNames = [...]string{
	Major:      "major",
	Minor:      "minor",
	Patch:      "patch",
	Prerelease: "prerelease",
	Build:      "build",
}

// String returns the command name of the kind.
func (k Kind) String() string {
	if k < Major || k > Build {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds lists every bump kind in command order.
func Kinds() []Kind {
	return []Kind{Major, Minor, Patch, Prerelease, Build}
}

// BumpMajor increments the major version and starts a fresh release line.
func BumpMajor(v Version) Version {
	return Version{Major: v.Major + 1}
}

// BumpMinor increments the minor version and starts a fresh release line.
func BumpMinor(v Version) Version {
	return Version{Major: v.Major, Minor: v.Minor + 1}
}

// BumpPatch increments the patch version and starts a fresh release line.
func BumpPatch(v Version) Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

// BumpPrerelease bumps the pre-release identifiers of v, optionally replacing
// them. Build metadata is dropped.
func BumpPrerelease(v Version, replacement string) (Version, error) {
	pre, err := BumpIdentifierGroup(v.Prerelease, replacement, PrereleaseGrammar)
	if err != nil {
		return Version{}, err
	}
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch, Prerelease: pre}, nil
}

// BumpBuild bumps the build metadata of v, optionally replacing it. The
// pre-release identifiers are left untouched.
func BumpBuild(v Version, replacement string) (Version, error) {
	build, err := BumpIdentifierGroup(v.Build, replacement, BuildGrammar)
	if err != nil {
		return Version{}, err
	}
	next := v
	next.Prerelease = append([]string(nil), v.Prerelease...)
	next.Build = build
	return next, nil
}

// BumpIdentifierGroup computes the next identifier group. An empty existing
// group means the version has none; an empty replacement means none was given.
//
// Without a replacement the trailing digit run of the last identifier is
// incremented ("alpha.4" -> "alpha.5", "cetialpha4" -> "cetialpha5",
// "ceti-alpha-4" -> "ceti-alpha-5"), or a counter of 1 is appended when there
// is none. A replacement that names the existing group, either verbatim or
// without its counter, bumps the existing group the same way. Any other
// replacement starts over with a counter of 1, joined like the existing
// group's counter, unless it already ends in digits.
func BumpIdentifierGroup(existing []string, replacement string, g Grammar) ([]string, error) {
	var next []string
	switch {
	case replacement != "":
		ids, err := splitGroup(replacement, g)
		if err != nil {
			return nil, err
		}
		if len(existing) > 0 && namesGroup(existing, replacement) {
			next = incrementGroup(existing)
		} else {
			next = withFreshCounter(ids, hyphenStyle(existing))
		}
	case len(existing) > 0:
		next = incrementGroup(existing)
	default:
		return nil, newError(ErrCodeMissingIdentifier,
			"the current version does not have a %s and you did not provide one", g.suffix())
	}

	if err := validateGroup(next, g); err != nil {
		return nil, err
	}
	return next, nil
}

// namesGroup reports whether replacement refers to the existing group.
func namesGroup(existing []string, replacement string) bool {
	return replacement == joinGroup(existing) || replacement == stem(existing)
}

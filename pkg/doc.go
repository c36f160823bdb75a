// Package semverbump parses semantic version strings and bumps one of their
// components.
//
// It provides functionalities for:
//   - Parsing a version in the canonical MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD] form
//     with descriptive errors for every grammar violation.
//   - Bumping the major, minor or patch number, which starts a fresh release line
//     and discards any pre-release and build identifiers.
//   - Bumping the counter at the end of the pre-release or build identifiers,
//     whatever separator joins it ("alpha.4", "cetialpha4", "ceti-alpha-4"),
//     optionally switching to a new identifier such as "beta".
//   - Serializing the result back to its canonical string form.
//
// Failures are reported as *Error values carrying an ErrorCode: ErrCodeParse for
// bad input, ErrCodeInvalidIdentifier for identifiers that break the grammar and
// ErrCodeMissingIdentifier when there is nothing to bump.
//
// Usage Example:
//
//	next, err := semverbump.Bump("1.2.3-ceti-alpha-5", semverbump.Prerelease, "beta")
//	if err != nil {
//	    log.Fatalf("bump failed: %v", err)
//	}
//	fmt.Println(next) // 1.2.3-beta-1
//
// The package does no I/O. The semver-bump command in the module root is a thin
// shell that reads the version from stdin and prints the result.
package semverbump

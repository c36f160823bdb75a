// Package main implements the semver-bump CLI tool.
//
// The semver-bump tool reads a semantic version from the first line of standard
// input, bumps the component named by its command and writes the new version to
// standard output. It never touches files or git, which makes it easy to drop
// into release pipelines.
//
// Command Usage:
//
//	semver-bump [flags] <command> [identifier]
//
// Commands:
//
//	major:       Bump the major version, resetting minor and patch (1.2.3 → 2.0.0).
//	minor:       Bump the minor version, resetting patch (1.2.3 → 1.3.0).
//	patch:       Bump the patch version (1.2.3-rc.1 → 1.2.4).
//	prerelease:  Bump the counter ending the pre-release identifier, or switch to
//	             the given identifier with a fresh counter.
//	build:       Same as prerelease, for the build metadata.
//
// Flags:
//
//	--config:     Path to a YAML config file (default ./.semver-bump.yml when present).
//	--format:     Output format: text (default), json or yaml.
//	--log-level:  Log level for diagnostics on stderr (debug, info, warn, error).
//	--verbose:    Shorthand for --log-level=debug.
//	--version:    Displays the version of the semver-bump CLI tool and exits.
//
// The config file accepts the keys "format" and "log_level", which the
// SEMVER_BUMP_FORMAT and SEMVER_BUMP_LOG_LEVEL environment variables override.
// Flags override both.
//
// Examples:
//
//	# Bump a pre-release counter (1.2.3-alpha.4 → 1.2.3-alpha.5)
//	echo 1.2.3-alpha.4 | semver-bump prerelease
//
//	# Counters joined by '-' or nothing at all work too
//	echo 1.2.3-ceti-alpha-4 | semver-bump prerelease   # 1.2.3-ceti-alpha-5
//	echo 1.2.3-cetialpha4 | semver-bump prerelease     # 1.2.3-cetialpha5
//
//	# Switch to a new pre-release identifier (1.2.3-ceti-alpha-5 → 1.2.3-beta-1)
//	echo 1.2.3-ceti-alpha-5 | semver-bump prerelease beta
//
//	# Bump build metadata, keeping the pre-release (1.0.3-rc.2+build-4 → 1.0.3-rc.2+build-5)
//	echo 1.0.3-rc.2+build-4 | semver-bump build
//
//	# Report the bump as JSON
//	echo 1.2.3 | semver-bump --format json major
//
// On failure the tool prints "Error: <message>" to stderr and exits with status 1.
//
// For the library API see the documentation of the "pkg" package.
package main

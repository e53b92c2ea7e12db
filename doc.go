// Package main implements the releasever CLI tool.
//
// releasever manages the semantic version declared across the project's
// manifest files during a release. It can compute the next version for a
// bump kind, report the version currently declared, and write a version
// into every manifest by replacing each file's version line in place.
//
// Command usage:
//
//	releasever next <current> <major|minor|patch>
//	releasever set [--dry] <version>
//	releasever current
//	releasever bump [--dry] <major|minor|patch>
//
// Flags:
//
//	--config:  TOML file defining the manifest targets. Without it the
//	           built-in set is used (overseer/Cargo.toml, host/package.json,
//	           ui/package.json).
//	--root:    Base directory for relative manifest paths. (Defaults to ".")
//	--verbose: Enable debug logging.
//	--dry:     Verify every manifest without writing any of them.
//
// Examples:
//
//	# Compute the next patch version (e.g. 1.2.3 -> 1.2.4)
//	releasever next 1.2.3 patch
//
//	# Write an explicit version into all manifests
//	releasever set 2.0.0
//
//	# Bump the minor version of whatever the manifests currently declare
//	releasever bump minor
//
//	# Check what a release would touch without modifying anything
//	releasever bump --dry major
//
// Writes are all-or-nothing up to the file system: every manifest is read
// and its version line verified to match exactly once before the first file
// is written. A missing or duplicated version line aborts the run with no
// files modified.
//
// For the programmatic API, see the pkg/releasever package.
package main

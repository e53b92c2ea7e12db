// Package releasever manages the release version declared across a fixed
// set of project manifest files.
//
// It provides:
//   - Strict parsing and bumping of plain X.Y.Z versions (no prerelease or
//     build metadata).
//   - Pattern-anchored, exactly-once substitution of the version line in
//     each manifest, staged and verified across the whole target set before
//     any file is written.
//   - Reading the current version back out of the primary manifest.
//
// The target set defaults to the repository's own manifests and can be
// overridden with a TOML config file. The package is used by the releasever
// CLI and can be embedded in other release tooling.
package releasever

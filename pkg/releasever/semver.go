package releasever

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidBump is returned when a bump argument is not one of
// "major", "minor" or "patch".
var ErrInvalidBump = errors.New("invalid bump kind")

// InvalidVersionError reports a string that is not a plain X.Y.Z version.
type InvalidVersionError struct {
	Input string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid semver: %q", e.Input)
}

// Bump names the version component to increment. Lower-order components
// reset to zero.
type Bump string

const (
	BumpMajor Bump = "major"
	BumpMinor Bump = "minor"
	BumpPatch Bump = "patch"
)

// ParseBump validates a bump argument.
func ParseBump(s string) (Bump, error) {
	switch b := Bump(s); b {
	case BumpMajor, BumpMinor, BumpPatch:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidBump, s)
}

// versionRe matches the entire input: three dot-separated integer groups,
// no "v" prefix, no prerelease or build suffix, no surrounding whitespace.
var versionRe = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// Version is a three-part dotted version. No prerelease or build metadata.
type Version struct {
	Major int
	Minor int
	Patch int
}

// Parse accepts exactly "X.Y.Z" with non-negative integer components.
func Parse(s string) (Version, error) {
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return Version{}, &InvalidVersionError{Input: s}
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, &InvalidVersionError{Input: s}
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, &InvalidVersionError{Input: s}
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, &InvalidVersionError{Input: s}
	}
	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// String returns the canonical "X.Y.Z" form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Bumped returns the version with the named component incremented and all
// lower-order components zeroed.
func (v Version) Bumped(kind Bump) Version {
	switch kind {
	case BumpMajor:
		return Version{Major: v.Major + 1}
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}
	default:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
	}
}

// Next parses current, bumps it according to kind, and returns the
// canonical string of the result.
func Next(current, kind string) (string, error) {
	v, err := Parse(current)
	if err != nil {
		return "", err
	}
	b, err := ParseBump(kind)
	if err != nil {
		return "", err
	}
	return v.Bumped(b).String(), nil
}

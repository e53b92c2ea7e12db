package releasever

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTargets(t *testing.T) {
	targets := DefaultTargets()
	require.Len(t, targets, 3)
	assert.Equal(t, "overseer/Cargo.toml", targets[0].Path)
	assert.Equal(t, "host/package.json", targets[1].Path)
	assert.Equal(t, "ui/package.json", targets[2].Path)

	for _, tgt := range targets {
		_, err := regexp.Compile(tgt.Pattern)
		assert.NoError(t, err, "pattern for %s must compile", tgt.Path)
		assert.Contains(t, tgt.Replace, versionPlaceholder)
	}
}

func TestTargetRendered(t *testing.T) {
	tgt := Target{Replace: `version = "{version}"`}
	assert.Equal(t, `version = "1.0.0"`, tgt.rendered("1.0.0"))
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "release.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTargets(t *testing.T) {
	path := writeConfigFile(t, `
[[target]]
path = "VERSION"
pattern = '^[0-9]+\.[0-9]+\.[0-9]+$'
replace = '{version}'

[[target]]
path = "app/package.json"
pattern = '^  "version": "[0-9]+\.[0-9]+\.[0-9]+",$'
replace = '  "version": "{version}",'
`)
	targets, err := LoadTargets(path)
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, "VERSION", targets[0].Path)
	assert.Equal(t, "app/package.json", targets[1].Path)
}

func TestLoadTargetsEmpty(t *testing.T) {
	path := writeConfigFile(t, "")
	_, err := LoadTargets(path)
	require.ErrorContains(t, err, "no targets defined")
}

func TestLoadTargetsMissingPlaceholder(t *testing.T) {
	path := writeConfigFile(t, `
[[target]]
path = "VERSION"
pattern = '^[0-9]+\.[0-9]+\.[0-9]+$'
replace = '1.0.0'
`)
	_, err := LoadTargets(path)
	require.ErrorContains(t, err, versionPlaceholder)
}

func TestLoadTargetsBadPattern(t *testing.T) {
	path := writeConfigFile(t, `
[[target]]
path = "VERSION"
pattern = '('
replace = '{version}'
`)
	_, err := LoadTargets(path)
	require.Error(t, err)
}

func TestLoadTargetsMissingPath(t *testing.T) {
	path := writeConfigFile(t, `
[[target]]
pattern = '^[0-9]+\.[0-9]+\.[0-9]+$'
replace = '{version}'
`)
	_, err := LoadTargets(path)
	require.ErrorContains(t, err, "path is required")
}

func TestLoadTargetsMissingFile(t *testing.T) {
	_, err := LoadTargets(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

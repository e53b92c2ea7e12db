package releasever

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cargoManifest = `[package]
name = "overseer"
version = "1.2.3"
edition = "2021"
`

const cargoPattern = `^version = "[0-9]+\.[0-9]+\.[0-9]+"$`

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readTestFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestStagePatchReplacesSingleLine(t *testing.T) {
	path := writeTestFile(t, "Cargo.toml", cargoManifest)

	p, err := stagePatch(path, cargoPattern, `version = "2.0.0"`)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", p.oldVersion)

	// Staging must not touch the file.
	assert.Equal(t, cargoManifest, readTestFile(t, path))

	require.NoError(t, p.commit())
	want := `[package]
name = "overseer"
version = "2.0.0"
edition = "2021"
`
	assert.Equal(t, want, readTestFile(t, path))
}

func TestStagePatchNoMatch(t *testing.T) {
	content := "[package]\nname = \"overseer\"\n"
	path := writeTestFile(t, "Cargo.toml", content)

	_, err := stagePatch(path, cargoPattern, `version = "2.0.0"`)
	var perr *PatchError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, path, perr.Path)
	assert.Equal(t, 0, perr.Matches)
	assert.Equal(t, content, readTestFile(t, path))
}

func TestStagePatchDuplicateVersionLines(t *testing.T) {
	content := "version = \"1.2.3\"\nname = \"x\"\nversion = \"4.5.6\"\n"
	path := writeTestFile(t, "Cargo.toml", content)

	_, err := stagePatch(path, cargoPattern, `version = "2.0.0"`)
	var perr *PatchError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Matches)
	assert.Equal(t, content, readTestFile(t, path))
}

func TestStagePatchMissingFile(t *testing.T) {
	_, err := stagePatch(filepath.Join(t.TempDir(), "nope.toml"), cargoPattern, `version = "2.0.0"`)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStagePatchAnchorsToLineStart(t *testing.T) {
	// Indented occurrences must not satisfy a line-anchored pattern.
	content := "[package]\n  version = \"1.2.3\"\n"
	path := writeTestFile(t, "Cargo.toml", content)

	_, err := stagePatch(path, cargoPattern, `version = "2.0.0"`)
	var perr *PatchError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 0, perr.Matches)
}

func TestStagePatchIndentedJSONLine(t *testing.T) {
	content := "{\n  \"name\": \"host\",\n  \"version\": \"9.9.9\",\n  \"private\": true\n}\n"
	path := writeTestFile(t, "package.json", content)

	p, err := stagePatch(path, `^  "version": "[0-9]+\.[0-9]+\.[0-9]+",$`, `  "version": "1.0.0",`)
	require.NoError(t, err)
	assert.Equal(t, "9.9.9", p.oldVersion)

	require.NoError(t, p.commit())
	want := "{\n  \"name\": \"host\",\n  \"version\": \"1.0.0\",\n  \"private\": true\n}\n"
	assert.Equal(t, want, readTestFile(t, path))
}

func TestCompileLinePatternInvalid(t *testing.T) {
	_, err := compileLinePattern("(")
	require.Error(t, err)
}

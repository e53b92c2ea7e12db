package releasever

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// PatchError reports a manifest whose version line did not match exactly
// once. Matches is the number of pattern matches found.
type PatchError struct {
	Path    string
	Matches int
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("failed to update version in %s: found %d version lines, want exactly 1", e.Path, e.Matches)
}

// numericVersion extracts the X.Y.Z substring from a matched version line.
var numericVersion = regexp.MustCompile(`\d+\.\d+\.\d+`)

// stagedPatch is a verified replacement that has not been written yet.
type stagedPatch struct {
	path       string
	content    []byte
	mode       os.FileMode
	oldVersion string
}

// compileLinePattern compiles pattern in multi-line mode so ^ and $ anchor
// to line boundaries.
func compileLinePattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("(?m)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling pattern %q: %w", pattern, err)
	}
	return re, nil
}

// stagePatch reads the file at path, requires the pattern to match exactly
// once, and returns the would-be file content with that match replaced.
// Nothing is written; the file on disk is untouched.
func stagePatch(path, pattern, replacement string) (*stagedPatch, error) {
	re, err := compileLinePattern(pattern)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	locs := re.FindAllIndex(data, -1)
	if len(locs) != 1 {
		return nil, &PatchError{Path: path, Matches: len(locs)}
	}
	loc := locs[0]

	var buf bytes.Buffer
	buf.Grow(len(data) + len(replacement))
	buf.Write(data[:loc[0]])
	buf.WriteString(replacement)
	buf.Write(data[loc[1]:])

	return &stagedPatch{
		path:       path,
		content:    buf.Bytes(),
		mode:       info.Mode().Perm(),
		oldVersion: string(numericVersion.Find(data[loc[0]:loc[1]])),
	}, nil
}

// commit writes the staged content through a temp file in the manifest's
// directory and renames it into place, so a partial write never leaves a
// corrupt manifest behind.
func (p *stagedPatch) commit() error {
	dir := filepath.Dir(p.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(p.path)+".releasever-*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", p.path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(p.content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", p.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", p.path, err)
	}
	if err := os.Chmod(tmpName, p.mode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", p.path, err)
	}
	if err := os.Rename(tmpName, p.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", p.path, err)
	}
	return nil
}

package releasever

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/mod/semver"
)

// Meta describes one completed (or simulated) version apply across the
// target set.
type Meta struct {
	OldVersion   string   // version found in the primary target before the apply
	NewVersion   string   // version written into every target
	UpdatedFiles []string // paths written, in target order
}

// Options configure Set, Current and BumpCurrent.
type Options struct {
	// Root is the base directory for relative target paths. Empty means
	// the current directory.
	Root string

	// Targets overrides the built-in target set. Nil means DefaultTargets.
	Targets []Target

	// DryRun stages and verifies every replacement without writing.
	DryRun bool

	// Logger receives debug and warning output. Nil means no logging.
	Logger *zap.Logger
}

func (o Options) targets() []Target {
	if o.Targets != nil {
		return o.Targets
	}
	return DefaultTargets()
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) resolve(path string) string {
	if o.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.Root, path)
}

// Set validates version and writes it into every manifest target. The apply
// is two-phase: every target is read and verified to match exactly once
// before the first file is written, so a verification failure leaves all
// manifests byte-identical.
func Set(version string, opts Options) (Meta, error) {
	if _, err := Parse(version); err != nil {
		return Meta{}, err
	}
	log := opts.logger()

	meta := Meta{NewVersion: version}
	var staged []*stagedPatch
	for i, t := range opts.targets() {
		p, err := stagePatch(opts.resolve(t.Path), t.Pattern, t.rendered(version))
		if err != nil {
			return Meta{}, err
		}
		if i == 0 {
			meta.OldVersion = p.oldVersion
		}
		if p.oldVersion != "" && semver.Compare("v"+version, "v"+p.oldVersion) < 0 {
			log.Warn("downgrading manifest version",
				zap.String("path", p.path),
				zap.String("from", p.oldVersion),
				zap.String("to", version))
		}
		log.Debug("staged version replacement",
			zap.String("path", p.path),
			zap.String("from", p.oldVersion),
			zap.String("to", version))
		staged = append(staged, p)
	}

	for _, p := range staged {
		if !opts.DryRun {
			if err := p.commit(); err != nil {
				return Meta{}, err
			}
			log.Debug("wrote manifest", zap.String("path", p.path))
		}
		meta.UpdatedFiles = append(meta.UpdatedFiles, p.path)
	}
	return meta, nil
}

// Current returns the version declared by the primary (first) target.
func Current(opts Options) (string, error) {
	targets := opts.targets()
	if len(targets) == 0 {
		return "", fmt.Errorf("no manifest targets configured")
	}
	t := targets[0]
	path := opts.resolve(t.Path)

	re, err := compileLinePattern(t.Pattern)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	locs := re.FindAllIndex(data, -1)
	if len(locs) != 1 {
		return "", &PatchError{Path: path, Matches: len(locs)}
	}
	v := numericVersion.Find(data[locs[0][0]:locs[0][1]])
	if v == nil {
		return "", fmt.Errorf("no version number in matched line of %s", path)
	}
	return string(v), nil
}

// BumpCurrent reads the current version from the primary target, computes
// the next one for kind, and applies it to every target.
func BumpCurrent(kind string, opts Options) (Meta, error) {
	current, err := Current(opts)
	if err != nil {
		return Meta{}, err
	}
	next, err := Next(current, kind)
	if err != nil {
		return Meta{}, err
	}
	return Set(next, opts)
}

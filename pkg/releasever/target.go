package releasever

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// versionPlaceholder is substituted with the new version when a target's
// replacement line is rendered.
const versionPlaceholder = "{version}"

// Target names one manifest file and the version line to rewrite in it.
// Pattern is applied as a multi-line regular expression and must match the
// version line exactly once; Replace is the full replacement line with a
// {version} placeholder.
type Target struct {
	Path    string `toml:"path"`
	Pattern string `toml:"pattern"`
	Replace string `toml:"replace"`
}

// rendered returns the replacement line for the given version.
func (t Target) rendered(version string) string {
	return strings.ReplaceAll(t.Replace, versionPlaceholder, version)
}

// Config is the optional TOML file overriding the built-in target set.
//
//	[[target]]
//	path = "overseer/Cargo.toml"
//	pattern = '^version = "[0-9]+\.[0-9]+\.[0-9]+"$'
//	replace = 'version = "{version}"'
type Config struct {
	Targets []Target `toml:"target"`
}

// DefaultTargets mirrors the repository layout this tool releases: the core
// crate manifest plus the two package.json manifests. The first target is
// the primary one consulted by Current.
func DefaultTargets() []Target {
	return []Target{
		{
			Path:    "overseer/Cargo.toml",
			Pattern: `^version = "[0-9]+\.[0-9]+\.[0-9]+"$`,
			Replace: `version = "{version}"`,
		},
		{
			Path:    "host/package.json",
			Pattern: `^  "version": "[0-9]+\.[0-9]+\.[0-9]+",$`,
			Replace: `  "version": "{version}",`,
		},
		{
			Path:    "ui/package.json",
			Pattern: `^  "version": "[0-9]+\.[0-9]+\.[0-9]+",$`,
			Replace: `  "version": "{version}",`,
		},
	}
}

// LoadTargets reads a target set from a TOML config file and validates it.
func LoadTargets(path string) ([]Target, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("loading targets from %s: %w", path, err)
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	for i, t := range cfg.Targets {
		if t.Path == "" {
			return nil, fmt.Errorf("target %d in %s: path is required", i+1, path)
		}
		if t.Pattern == "" {
			return nil, fmt.Errorf("target %d in %s: pattern is required", i+1, path)
		}
		if _, err := regexp.Compile(t.Pattern); err != nil {
			return nil, fmt.Errorf("target %d in %s: %w", i+1, path, err)
		}
		if !strings.Contains(t.Replace, versionPlaceholder) {
			return nil, fmt.Errorf("target %d in %s: replace must contain %s", i+1, path, versionPlaceholder)
		}
	}
	return cfg.Targets, nil
}

package localfind

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/glorpus-work/relic/pkg/errors"
	"github.com/glorpus-work/relic/pkg/model"
	"github.com/glorpus-work/relic/pkg/pattern"
)

// PatternFinder searches one base directory described by one path pattern.
// It performs filesystem existence checks only and never opens candidate
// files.
type PatternFinder struct {
	baseDir string
	pattern *pattern.Pattern
}

// NewPatternFinder creates a finder over baseDir using the compiled pattern.
func NewPatternFinder(baseDir string, p *pattern.Pattern) *PatternFinder {
	return &PatternFinder{baseDir: baseDir, pattern: p}
}

// BaseDir returns the directory this finder searches.
func (f *PatternFinder) BaseDir() string {
	return f.baseDir
}

// Find renders the expected path for the identity and returns it as a
// candidate if the file exists. Wildcard segments are resolved by listing
// the directory at the wildcard's position and trying each subdirectory in
// lexical order, so resolution is reproducible across filesystems.
func (f *PatternFinder) Find(id model.ArtifactIdentity) (*model.Candidate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	rendered := f.pattern.Render(id)
	path, err := resolveSegments(f.baseDir, strings.Split(rendered, "/"))
	if err != nil || path == "" {
		return nil, err
	}
	return &model.Candidate{Path: path, Identity: id}, nil
}

// resolveSegments walks the rendered path one segment at a time below dir.
// A wildcard segment expands to every subdirectory at that position, tried
// in sorted order until one leads to an existing regular file. Returns ""
// when nothing matches.
func resolveSegments(dir string, segments []string) (string, error) {
	if len(segments) == 0 {
		info, err := os.Stat(dir)
		if err != nil {
			if os.IsNotExist(err) {
				return "", nil
			}
			return "", errors.Wrapf(err, "stat %s", dir)
		}
		if !info.Mode().IsRegular() {
			return "", nil
		}
		return dir, nil
	}

	seg := segments[0]
	if seg != pattern.Wildcard {
		return resolveSegments(filepath.Join(dir, seg), segments[1:])
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "list %s", dir)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		found, err := resolveSegments(filepath.Join(dir, name), segments[1:])
		if err != nil {
			return "", err
		}
		if found != "" {
			return found, nil
		}
	}
	return "", nil
}

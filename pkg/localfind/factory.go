package localfind

import (
	"os"
	"path/filepath"

	"github.com/glorpus-work/relic/pkg/errors"
	"github.com/glorpus-work/relic/pkg/logger"
	"github.com/glorpus-work/relic/pkg/mavenrepo"
	"github.com/glorpus-work/relic/pkg/pattern"
)

// generation describes one historical cache layout: the directory it lives
// in below the caches root and the path pattern its artifacts follow. The
// list is effectively a versioned schema history and is hard-coded
// configuration.
type generation struct {
	dir     string
	pattern string
}

// Generations shipped by released versions of the tool, newest first. Every
// layout stores artifacts as <artifact>-<revision>(-<classifier>).<ext>
// with a sibling digest file; the wildcard segments cover per-download hash
// directories that are irrelevant to identity.
var generations = []generation{
	{"filestore-3", "store/[organisation]/[module](/[branch])/[revision]/[type]/*/[artifact]-[revision](-[classifier])(.[ext])"},
	{"filestore-2", "store/[organisation]/[module](/[branch])/[revision]/[type]/*/[artifact]-[revision](-[classifier])(.[ext])"},
	{"artifacts-1", "artifacts/*/[organisation]/[module](/[branch])/[revision]/[type]/[artifact]-[revision](-[classifier])(.[ext])"},
	{"legacy", "[organisation]/[module](/[branch])/*/[type]s/[artifact]-[revision](-[classifier])(.[ext])"},
	{"legacy", "[organisation]/[module](/[branch])/*/pom.originals/[artifact]-[revision](-[classifier])(.[ext])"},
	{"../cache", "[organisation]/[module](/[branch])/[type]s/[artifact]-[revision](-[classifier])(.[ext])"},
}

// ChainOptions configure NewChain.
type ChainOptions struct {
	// CachesRoot is the directory holding the cache generations.
	CachesRoot string
	// Store is the current content-addressed store; it heads the chain
	// because it is both the most likely to hold the artifact and the
	// cheapest to probe. Nil skips it.
	Store Searcher
	// MavenLocator resolves the external local Maven repository, searched
	// last: its artifacts are managed by a separate tool and are lower
	// trust. Nil skips the Maven repository.
	MavenLocator *mavenrepo.Locator
}

// NewChain builds the composite finder over the current store, each
// historical generation whose directory actually exists, and the local
// Maven repository. Non-existent generation directories are excluded up
// front so lookups never probe them. The chain is immutable once built and
// safe for concurrent lookups by resolution workers.
func NewChain(opts ChainOptions) (*Composite, error) {
	if opts.CachesRoot == "" {
		return nil, errors.Wrap(errors.ErrInvalidPath, "caches root")
	}

	var finders []Finder

	// Order is important here: the chain is searched in this order.
	if opts.Store != nil {
		finders = append(finders, NewStoreAdapter(opts.Store))
	}

	for _, g := range generations {
		baseDir := filepath.Join(opts.CachesRoot, g.dir)
		f, err := finderForPattern(baseDir, g.pattern)
		if err != nil {
			return nil, err
		}
		if f != nil {
			finders = append(finders, f)
		}
	}

	if opts.MavenLocator != nil {
		root, err := opts.MavenLocator.Locate()
		if err != nil {
			return nil, err
		}
		f, err := finderForPattern(root, mavenrepo.Pattern)
		if err != nil {
			return nil, err
		}
		if f != nil {
			finders = append(finders, f)
		}
	}

	return NewComposite(finders...), nil
}

// finderForPattern builds a pattern finder for the directory, or nil when
// the directory does not exist. Pattern compilation failures are fatal:
// they are configuration errors, not lookup misses.
func finderForPattern(baseDir, source string) (Finder, error) {
	info, err := os.Stat(baseDir)
	if err != nil || !info.IsDir() {
		logger.Debugf("Skipping cache layout %s: directory not present", baseDir)
		return nil, nil
	}
	p, err := pattern.Compile(source)
	if err != nil {
		return nil, err
	}
	return NewPatternFinder(baseDir, p), nil
}

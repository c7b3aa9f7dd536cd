// Package filestore implements the current cache generation's
// content-addressed artifact store. Artifacts are keyed by their
// coordinates and stored under their SHA-256 digest:
//
//	<root>/<organisation>/<module>/<revision>/<sha256>/<filename>
//
// The store supports direct lookup by identity, which makes it the cheapest
// and first-probed member of the local finder chain.
package filestore

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	version "github.com/hashicorp/go-version"

	"github.com/glorpus-work/relic/pkg/checksum"
	"github.com/glorpus-work/relic/pkg/errors"
	"github.com/glorpus-work/relic/pkg/fsutil"
	"github.com/glorpus-work/relic/pkg/model"
)

// Store is a content-addressed artifact store. All state is read-only after
// construction; lookups are safe for concurrent use.
type Store struct {
	root string
}

// New creates a store rooted at the given directory.
func New(root string) (*Store, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errors.ErrStoreDirectory
	}
	return &Store{root: root}, nil
}

// Root returns the store's base directory.
func (s *Store) Root() string {
	return s.root
}

// Add copies the source file into the store under its content digest and
// returns the final path. The copy goes through a temp file and an atomic
// move so a crashed process never leaves a partial artifact at the final
// location.
func (s *Store) Add(id model.ArtifactIdentity, sourcePath string) (string, error) {
	if err := id.Validate(); err != nil {
		return "", err
	}
	digest, err := checksum.Sum(sourcePath, checksum.SHA256)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(s.revisionDir(id), digest, id.FileName())
	if err := fsutil.EnsureFileDir(dest); err != nil {
		return "", errors.Wrapf(err, "could not create store directory for %s", id)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "store-*.tmp")
	if err != nil {
		return "", errors.Wrap(err, "could not create temp file")
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()

	if err := fsutil.Copy(sourcePath, tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", err
	}
	if err := fsutil.Move(tmpPath, dest); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.Wrapf(err, "could not finalize %s in store", id)
	}
	return dest, nil
}

// Search looks up a candidate for the identity by direct key access. When
// the identity's revision is dynamic (a constraint such as ">= 1.2" or the
// "1.+" shorthand), the highest stored revision satisfying it is chosen.
// A miss returns (nil, nil).
func (s *Store) Search(id model.ArtifactIdentity) (*model.Candidate, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	revision, err := s.selectRevision(id)
	if err != nil || revision == "" {
		return nil, err
	}
	concrete := id
	concrete.Revision = revision

	revDir := s.revisionDir(concrete)
	entries, err := os.ReadDir(revDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "could not list store directory %s", revDir)
	}

	// Hash directories are iterated in lexical order so resolution is
	// reproducible across filesystems.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(revDir, name, concrete.FileName())
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return &model.Candidate{Path: path, Identity: concrete}, nil
		}
	}
	return nil, nil
}

func (s *Store) moduleDir(id model.ArtifactIdentity) string {
	return filepath.Join(s.root, id.Organisation, id.Module)
}

func (s *Store) revisionDir(id model.ArtifactIdentity) string {
	return filepath.Join(s.moduleDir(id), id.Revision)
}

// selectRevision maps the identity's revision to a concrete stored revision.
// Static revisions pass through untouched; dynamic ones are matched against
// the stored revision directories.
func (s *Store) selectRevision(id model.ArtifactIdentity) (string, error) {
	constraint, dynamic := parseDynamicRevision(id.Revision)
	if !dynamic {
		return id.Revision, nil
	}

	entries, err := os.ReadDir(s.moduleDir(id))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "could not list revisions for %s:%s", id.Organisation, id.Module)
	}

	var best *version.Version
	var bestName string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		v, err := version.NewVersion(e.Name())
		if err != nil {
			continue // not a versioned revision directory
		}
		if constraint != nil && !constraint.Check(v) {
			continue
		}
		if best == nil || v.GreaterThan(best) || (v.Equal(best) && e.Name() > bestName) {
			best = v
			bestName = e.Name()
		}
	}
	return bestName, nil
}

// parseDynamicRevision recognizes dynamic revision notations. "latest" and
// "+" match any stored revision; "1.+" style shorthands and explicit
// constraint strings are handed to go-version.
func parseDynamicRevision(revision string) (version.Constraints, bool) {
	rev := strings.TrimSpace(revision)
	switch rev {
	case "", "+", "latest":
		return nil, rev != ""
	}
	if prefix, ok := strings.CutSuffix(rev, ".+"); ok {
		// "1.2.+" selects the newest 1.2.x, i.e. the pessimistic
		// constraint "~> 1.2.0".
		if c, err := version.NewConstraint("~> " + prefix + ".0"); err == nil {
			return c, true
		}
		return nil, false
	}
	if strings.ContainsAny(rev, "<>=~") {
		if c, err := version.NewConstraint(rev); err == nil {
			return c, true
		}
	}
	return nil, false
}

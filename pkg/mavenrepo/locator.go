// Package mavenrepo locates the developer's local Maven repository so the
// finder chain can search it as its lowest-priority member. The resolution
// order follows Maven's own: an explicit override, the localRepository
// element of ~/.m2/settings.xml, then the default ~/.m2/repository.
package mavenrepo

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"github.com/glorpus-work/relic/pkg/errors"
)

// Pattern is the path layout of a Maven local repository, relative to its
// root.
const Pattern = "[organisation-path]/[module]/[revision]/[artifact]-[revision](-[classifier])(.[ext])"

// Locator resolves the local Maven repository root once; the result is fixed
// for the process lifetime.
type Locator struct {
	// Override forces the repository root, bypassing settings.xml. Used
	// when the build configuration names the repository explicitly.
	Override string
	// home is the user home used for defaults; empty means the current
	// user's home.
	home string
}

// NewLocator creates a locator with no override.
func NewLocator() *Locator {
	return &Locator{}
}

// settings is the subset of Maven's settings.xml this tool reads.
type settings struct {
	XMLName         xml.Name `xml:"settings"`
	LocalRepository string   `xml:"localRepository"`
}

// Locate returns the local Maven repository root. A missing settings file is
// not an error; an unreadable or unparsable one is a configuration error
// surfaced immediately.
func (l *Locator) Locate() (string, error) {
	if l.Override != "" {
		return l.Override, nil
	}

	home := l.home
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "could not determine user home")
		}
		home = h
	}

	m2 := filepath.Join(home, ".m2")
	if root, err := localRepositoryFromSettings(filepath.Join(m2, "settings.xml"), home); err != nil {
		return "", err
	} else if root != "" {
		return root, nil
	}
	return filepath.Join(m2, "repository"), nil
}

// localRepositoryFromSettings reads the localRepository element from a
// settings file, expanding ${user.home}. Returns empty when the file does
// not exist or does not set a repository.
func localRepositoryFromSettings(path, home string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "read %s", path)
	}

	var s settings
	if err := xml.Unmarshal(raw, &s); err != nil {
		return "", errors.Wrapf(errors.ErrSettingsParse, "%s: %v", path, err)
	}

	root := strings.TrimSpace(s.LocalRepository)
	if root == "" {
		return "", nil
	}
	root = strings.ReplaceAll(root, "${user.home}", home)
	return filepath.Clean(root), nil
}

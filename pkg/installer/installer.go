// Package installer places resolved artifact files into working locations
// and applies their permission bits through the process-wide permission
// handler.
package installer

import (
	"os"
	"path/filepath"

	"github.com/glorpus-work/relic/pkg/errors"
	"github.com/glorpus-work/relic/pkg/fsutil"
	"github.com/glorpus-work/relic/pkg/logger"
)

// Installer copies resolved files into place. The permission handler is
// selected once at process start and injected here; it is never reselected.
type Installer struct {
	permissions fsutil.PermissionHandler
}

// New creates an installer using the given permission handler.
func New(permissions fsutil.PermissionHandler) *Installer {
	return &Installer{permissions: permissions}
}

// Install copies sourcePath into destDir under its base name and applies
// mode. The source is left untouched so cached artifacts survive installs.
// A chmod failure is propagated once with the file and OS error attached,
// never retried.
func (i *Installer) Install(sourcePath, destDir string, mode os.FileMode) (string, error) {
	if sourcePath == "" || destDir == "" {
		return "", errors.ErrEmptyPaths
	}

	dest := filepath.Join(destDir, filepath.Base(sourcePath))
	if err := fsutil.Copy(sourcePath, dest); err != nil {
		return "", err
	}
	if err := i.permissions.Chmod(dest, mode); err != nil {
		return "", err
	}
	logger.Debugf("Installed %s with mode %o", dest, mode)
	return dest, nil
}

// InstallExecutable installs a file with the executable mode used for
// native tool binaries and scripts.
func (i *Installer) InstallExecutable(sourcePath, destDir string) (string, error) {
	return i.Install(sourcePath, destDir, fsutil.FileModeExec)
}

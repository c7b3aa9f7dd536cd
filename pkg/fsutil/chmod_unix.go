//go:build unix

package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/glorpus-work/relic/pkg/errors"
)

// posixRuntimeSupported reports whether the runtime natively supports POSIX
// file permissions. On Unix builds it always does.
func posixRuntimeSupported() bool { return true }

// loadNativeChmod binds the chmod syscall directly. Failures carry the OS
// error code, the target file name and the intended mode so they surface in
// build output unchanged.
func loadNativeChmod() (ChmodFunc, error) {
	return func(path string, mode os.FileMode) error {
		// The syscall gets the absolute path; Go's syscall layer handles
		// the UTF-8 encoding and null termination the OS expects.
		abs, err := filepath.Abs(path)
		if err != nil {
			return errors.Wrapf(errors.ErrChmodFailed, "resolve %s: %v", path, err)
		}
		if err := unix.Chmod(abs, uint32(mode.Perm())); err != nil {
			errno, ok := err.(unix.Errno)
			if !ok {
				return errors.Wrapf(errors.ErrChmodFailed, "mode %o on file %s: %v", mode.Perm(), path, err)
			}
			return fmt.Errorf("%w: mode %o on file %s: errno %d", errors.ErrChmodFailed, mode.Perm(), path, int(errno))
		}
		return nil
	}, nil
}

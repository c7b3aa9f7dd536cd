package fsutil

import (
	"os"
	"runtime"

	"github.com/glorpus-work/relic/pkg/errors"
	"github.com/glorpus-work/relic/pkg/logger"
)

// PermissionHandler applies POSIX mode bits to a file. Implementations hold
// no mutable state and are safe for concurrent use by installer tasks.
type PermissionHandler interface {
	// Chmod sets the permission bits on the file. A failed call is
	// propagated once and never retried.
	Chmod(path string, mode os.FileMode) error
	// Name identifies the selected strategy.
	Name() string
}

// ChmodFunc is a low-level chmod binding.
type ChmodFunc func(path string, mode os.FileMode) error

// capabilities are the platform probes the handler factory consults. They
// are injectable so tests can simulate missing native support.
type capabilities struct {
	// goos is the platform the selection runs on.
	goos string
	// posixRuntime reports whether the runtime natively supports POSIX
	// file permissions on this platform.
	posixRuntime func() bool
	// loadNative attempts to bind the OS-level chmod call.
	loadNative func() (ChmodFunc, error)
}

func defaultCapabilities() capabilities {
	return capabilities{
		goos:         runtime.GOOS,
		posixRuntime: posixRuntimeSupported,
		loadNative:   loadNativeChmod,
	}
}

// NewPermissionHandler selects the best available permission strategy. The
// selection happens once at process start; the returned handler is
// process-wide immutable state and is never reselected, even if conditions
// could theoretically change mid-process.
//
// Selection order: the runtime's own POSIX permission support on non-Windows
// platforms, then a direct OS chmod binding, then a no-op that silently
// succeeds so the tool keeps functioning on platforms without any
// permission capability.
func NewPermissionHandler() PermissionHandler {
	return newPermissionHandler(defaultCapabilities())
}

func newPermissionHandler(caps capabilities) PermissionHandler {
	if caps.goos != "windows" && caps.posixRuntime() {
		return posixHandler{}
	}
	chmod, err := caps.loadNative()
	if err != nil {
		logger.Debugf("Unable to bind native chmod: %v. Falling back to no-op permission handling.", err)
		return noopHandler{}
	}
	return nativeHandler{chmod: chmod}
}

// posixHandler relies on the runtime's own POSIX permission support.
type posixHandler struct{}

func (posixHandler) Chmod(path string, mode os.FileMode) error {
	if err := os.Chmod(path, mode.Perm()); err != nil {
		return errors.Wrapf(errors.ErrChmodFailed, "mode %o on file %s: %v", mode.Perm(), path, err)
	}
	return nil
}

func (posixHandler) Name() string { return "posix" }

// nativeHandler applies permissions through a direct OS chmod binding.
type nativeHandler struct {
	chmod ChmodFunc
}

func (h nativeHandler) Chmod(path string, mode os.FileMode) error {
	return h.chmod(path, mode)
}

func (nativeHandler) Name() string { return "native" }

// noopHandler silently succeeds without changing anything. Used where no
// permission capability exists; this keeps builds working at the cost of
// not enforcing mode bits.
type noopHandler struct{}

func (noopHandler) Chmod(string, os.FileMode) error { return nil }

func (noopHandler) Name() string { return "noop" }

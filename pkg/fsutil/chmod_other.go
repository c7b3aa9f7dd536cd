//go:build !unix

package fsutil

import "fmt"

// posixRuntimeSupported reports whether the runtime natively supports POSIX
// file permissions. Non-Unix builds have no POSIX permission model.
func posixRuntimeSupported() bool { return false }

// loadNativeChmod has no OS binding to offer on this platform; the factory
// downgrades to the no-op handler.
func loadNativeChmod() (ChmodFunc, error) {
	return nil, fmt.Errorf("native chmod is not supported on this platform")
}

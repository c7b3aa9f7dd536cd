package fsutil

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name of the application used in paths.
	AppName = "relic"
)

// GetCacheDir returns the platform-specific cache directory for the
// application.
// On Linux: ~/.cache/relic/
// On macOS: ~/Library/Caches/relic/
// On Windows: %LOCALAPPDATA%\relic\cache\
func GetCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, AppName), nil
}

// GetCachesRoot returns the directory holding the artifact cache
// generations. Each released cache layout lives in its own subdirectory of
// this root (filestore-3, filestore-2, artifacts-1, legacy).
func GetCachesRoot() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "caches"), nil
}


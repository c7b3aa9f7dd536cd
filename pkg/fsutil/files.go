package fsutil

import (
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"syscall"

	"github.com/glorpus-work/relic/pkg/errors"
)

// Move moves a file from src to dst. It first attempts an atomic os.Rename
// and falls back to copy + delete when the rename crosses a filesystem
// boundary.
func Move(src, dst string) error {
	if src == "" || dst == "" {
		return errors.ErrEmptyPaths
	}
	if err := EnsureFileDir(dst); err != nil {
		return errors.Wrapf(err, "failed to create destination directory for %s", dst)
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossFilesystemError(err) {
		return errors.Wrapf(err, "failed to rename %s to %s", src, dst)
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return errors.Wrapf(err, "failed to stat source %s", src)
	}
	if err := Copy(src, dst); err != nil {
		return err
	}
	if err := os.Chmod(dst, srcInfo.Mode()); err != nil {
		return errors.Wrapf(err, "failed to set permissions on %s", dst)
	}
	if err := os.Remove(src); err != nil {
		return errors.Wrapf(err, "failed to remove source %s after copy", src)
	}
	return nil
}

// isCrossFilesystemError reports whether a rename failure indicates a
// cross-device move requiring the copy + delete fallback.
func isCrossFilesystemError(err error) bool {
	var linkErr *os.LinkError
	if stderrors.As(err, &linkErr) {
		if errno, ok := linkErr.Err.(syscall.Errno); ok {
			return errno == syscall.EXDEV
		}
	}
	var pathErr *os.PathError
	if stderrors.As(err, &pathErr) {
		return isCrossFilesystemError(pathErr.Err)
	}
	return false
}

// Copy copies the contents of srcFile to dstFile, creating parent
// directories as needed.
func Copy(srcFile, dstFile string) error {
	if srcFile == "" || dstFile == "" {
		return errors.ErrEmptyPaths
	}

	src, err := os.Open(srcFile)
	if err != nil {
		return errors.Wrapf(err, "failed to open source file %s", srcFile)
	}
	defer func() { _ = src.Close() }()

	if err := EnsureDir(filepath.Dir(dstFile)); err != nil {
		return errors.Wrapf(err, "failed to create destination directory for %s", dstFile)
	}
	dst, err := os.Create(dstFile)
	if err != nil {
		return errors.Wrapf(err, "failed to create destination file %s", dstFile)
	}
	defer func() { _ = dst.Close() }()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrapf(err, "failed to copy %s to %s", srcFile, dstFile)
	}
	return nil
}

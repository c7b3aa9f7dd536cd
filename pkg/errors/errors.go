// Package errors provides the common error values and wrapping helpers used
// across relic. Lookup misses are deliberately not represented here: a finder
// that does not match returns no candidate rather than an error. The values
// below cover construction-time misconfiguration and I/O failures that must
// reach the user.
package errors

import "fmt"

// Common error types.
var (
	// Pattern errors are fatal at construction time, never per-lookup.
	ErrUnknownToken    = fmt.Errorf("unknown pattern token")
	ErrUnbalancedGroup = fmt.Errorf("unbalanced optional group in pattern")
	ErrEmptyPattern    = fmt.Errorf("pattern cannot be empty")

	// Identity errors.
	ErrEmptyOrganisation = fmt.Errorf("artifact organisation cannot be empty")
	ErrEmptyModule       = fmt.Errorf("artifact module cannot be empty")

	// Path and store errors.
	ErrInvalidPath    = fmt.Errorf("invalid path")
	ErrEmptyPaths     = fmt.Errorf("source and destination paths cannot be empty")
	ErrFileNotFound   = fmt.Errorf("file not found")
	ErrStoreDirectory = fmt.Errorf("store directory cannot be empty")

	// Config errors.
	ErrEmptyConfigPath  = fmt.Errorf("config file path cannot be empty")
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigValidation = fmt.Errorf("invalid configuration")
	ErrConfigEncode     = fmt.Errorf("failed to encode config")

	// Maven local repository errors.
	ErrSettingsParse = fmt.Errorf("failed to parse maven settings")

	// Verification and resolution errors.
	ErrDigestMalformed  = fmt.Errorf("malformed digest")
	ErrChecksumMismatch = fmt.Errorf("checksum mismatch")
	ErrDownloadFailed   = fmt.Errorf("download failed")

	// Permission errors.
	ErrChmodFailed = fmt.Errorf("failed to set file permissions")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

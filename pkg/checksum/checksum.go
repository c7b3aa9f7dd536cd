// Package checksum implements the digest verification relic uses to trust a
// locally found artifact as a substitute for a fresh download. The historical
// cache layouts publish SHA-1 digest files next to each artifact; the current
// store is addressed by SHA-256.
package checksum

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/glorpus-work/relic/pkg/errors"
)

// Algorithm names a supported digest algorithm.
type Algorithm string

const (
	// SHA1 is the digest published by the historical cache layouts and by
	// Maven-style repositories.
	SHA1 Algorithm = "sha1"
	// SHA256 is the digest the current content-addressed store is keyed by.
	SHA256 Algorithm = "sha256"
)

// DigestFileSuffix returns the conventional sibling digest file suffix for
// the algorithm, e.g. ".sha1".
func (a Algorithm) DigestFileSuffix() string {
	return "." + string(a)
}

func (a Algorithm) newHash() hash.Hash {
	if a == SHA256 {
		return sha256.New()
	}
	return sha1.New()
}

// Sum computes the hex-encoded digest of the file's full byte content.
func Sum(path string, algo Algorithm) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "open %s for checksum", path)
	}
	defer func() { _ = f.Close() }()

	h := algo.newHash()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrapf(err, "hashing %s", path)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Verify computes the digest of the file and compares it against the
// expected hex value, case-insensitively. A mismatch is not an error: it is
// a boolean "not verified", leaving the caller to fall back to a download.
// Verification is idempotent; calling it repeatedly on the same file is
// harmless.
func Verify(path, expectedHex string, algo Algorithm) (bool, error) {
	got, err := Sum(path, algo)
	if err != nil {
		return false, err
	}
	return got == NormalizeHex(expectedHex), nil
}

// NormalizeHex trims surrounding whitespace and an optional "<algo>:" prefix
// and lowercases a published digest value. Digest files in the wild carry
// trailing newlines and occasionally a "sha1: " style prefix.
func NormalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ':'); i >= 0 {
		s = strings.TrimSpace(s[i+1:])
	}
	// Some tools publish "<digest>  <filename>" lines.
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(s)
}

// ReadDigestFile reads a published digest file (the text sibling of an
// artifact) and returns the normalized hex digest it contains.
func ReadDigestFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read digest file %s", path)
	}
	digest := NormalizeHex(string(raw))
	if digest == "" {
		return "", errors.Wrapf(errors.ErrDigestMalformed, "digest file %s is empty", path)
	}
	for _, r := range digest {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", errors.Wrapf(errors.ErrDigestMalformed, "digest file %s contains %q", path, r)
		}
	}
	return digest, nil
}

// VerifyAgainstDigestFile verifies the file against the digest published in
// its sibling digest file (<path>.<algo>). A missing digest file yields
// (false, nil): the candidate simply cannot be trusted.
func VerifyAgainstDigestFile(path string, algo Algorithm) (bool, error) {
	digestPath := path + algo.DigestFileSuffix()
	if _, err := os.Stat(digestPath); os.IsNotExist(err) {
		return false, nil
	}
	expected, err := ReadDigestFile(digestPath)
	if err != nil {
		return false, err
	}
	return Verify(path, expected, algo)
}

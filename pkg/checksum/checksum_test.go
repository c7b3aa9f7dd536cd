package checksum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glorpus-work/relic/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVerify_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "foo-1.0.jar", "artifact payload")

	digest, err := Sum(path, SHA1)
	require.NoError(t, err)

	ok, err := Verify(path, digest, SHA1)
	require.NoError(t, err)
	assert.True(t, ok)

	// Corrupt a single byte and re-verify against the original digest.
	require.NoError(t, os.WriteFile(path, []byte("artifact payloaX"), 0o644))
	ok, err = Verify(path, digest, SHA1)
	require.NoError(t, err)
	assert.False(t, ok)

	// The freshly recomputed digest must verify again.
	recomputed, err := Sum(path, SHA1)
	require.NoError(t, err)
	ok, err = Verify(path, recomputed, SHA1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_CaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "foo.jar", "payload")

	digest, err := Sum(path, SHA256)
	require.NoError(t, err)

	ok, err := Verify(path, strings.ToUpper(digest), SHA256)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerify_Idempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "foo.jar", "payload")

	digest, err := Sum(path, SHA1)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		ok, err := Verify(path, digest, SHA1)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestNormalizeHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "abc123", want: "abc123"},
		{name: "whitespace", in: "  abc123\n", want: "abc123"},
		{name: "uppercase", in: "ABC123", want: "abc123"},
		{name: "algo prefix", in: "sha1: ABC123", want: "abc123"},
		{name: "filename suffix", in: "abc123  foo-1.0.jar\n", want: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeHex(tt.in))
		})
	}
}

func TestReadDigestFile(t *testing.T) {
	dir := t.TempDir()

	good := writeFile(t, dir, "foo.jar.sha1", "da39a3ee5e6b4b0d3255bfef95601890afd80709\n")
	digest, err := ReadDigestFile(good)
	require.NoError(t, err)
	assert.Equal(t, "da39a3ee5e6b4b0d3255bfef95601890afd80709", digest)

	empty := writeFile(t, dir, "empty.sha1", "\n")
	_, err = ReadDigestFile(empty)
	assert.ErrorIs(t, err, errors.ErrDigestMalformed)

	garbage := writeFile(t, dir, "garbage.sha1", "not-a-digest!")
	_, err = ReadDigestFile(garbage)
	assert.ErrorIs(t, err, errors.ErrDigestMalformed)
}

func TestVerifyAgainstDigestFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "foo-1.0.jar", "artifact payload")

	// No sibling digest file: not trusted, not an error.
	ok, err := VerifyAgainstDigestFile(path, SHA1)
	require.NoError(t, err)
	assert.False(t, ok)

	digest, err := Sum(path, SHA1)
	require.NoError(t, err)
	writeFile(t, dir, "foo-1.0.jar.sha1", digest+"\n")

	ok, err = VerifyAgainstDigestFile(path, SHA1)
	require.NoError(t, err)
	assert.True(t, ok)
}

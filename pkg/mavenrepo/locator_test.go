package mavenrepo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/glorpus-work/relic/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, home, content string) {
	t.Helper()
	m2 := filepath.Join(home, ".m2")
	require.NoError(t, os.MkdirAll(m2, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(m2, "settings.xml"), []byte(content), 0o644))
}

func TestLocate_Override(t *testing.T) {
	l := &Locator{Override: "/custom/repo", home: t.TempDir()}
	root, err := l.Locate()
	require.NoError(t, err)
	assert.Equal(t, "/custom/repo", root)
}

func TestLocate_Default(t *testing.T) {
	home := t.TempDir()
	l := &Locator{home: home}
	root, err := l.Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".m2", "repository"), root)
}

func TestLocate_FromSettings(t *testing.T) {
	home := t.TempDir()
	custom := filepath.Join(home, "maven-repo")
	writeSettings(t, home, `<settings><localRepository>`+custom+`</localRepository></settings>`)

	l := &Locator{home: home}
	root, err := l.Locate()
	require.NoError(t, err)
	assert.Equal(t, custom, root)
}

func TestLocate_SettingsUserHomeExpansion(t *testing.T) {
	home := t.TempDir()
	writeSettings(t, home, `<settings><localRepository>${user.home}/repo</localRepository></settings>`)

	l := &Locator{home: home}
	root, err := l.Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "repo"), root)
}

func TestLocate_EmptySettingsElementFallsBack(t *testing.T) {
	home := t.TempDir()
	writeSettings(t, home, `<settings><localRepository>  </localRepository></settings>`)

	l := &Locator{home: home}
	root, err := l.Locate()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".m2", "repository"), root)
}

func TestLocate_MalformedSettings(t *testing.T) {
	home := t.TempDir()
	writeSettings(t, home, `<settings><localRepository>`)

	l := &Locator{home: home}
	_, err := l.Locate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrSettingsParse)
}

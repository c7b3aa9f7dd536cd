package resolve

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/glorpus-work/relic/pkg/checksum"
	"github.com/glorpus-work/relic/pkg/errors"
	"github.com/glorpus-work/relic/pkg/model"
	mock_resolve "github.com/glorpus-work/relic/pkg/resolve/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIdentity() model.ArtifactIdentity {
	return model.ArtifactIdentity{
		Organisation: "org.example",
		Module:       "foo",
		Revision:     "1.0",
		Artifact:     "foo",
		Type:         "jar",
		Ext:          "jar",
	}
}

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolve_LocalHitSkipsDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	local := writeArtifact(t, "foo-1.0.jar", "artifact payload")
	digest, err := checksum.Sum(local, checksum.SHA1)
	require.NoError(t, err)

	finder := mock_resolve.NewMockLocalFinder(ctrl)
	finder.EXPECT().Find(testIdentity()).Return(&model.Candidate{Path: local, Identity: testIdentity()}, nil)

	dl := mock_resolve.NewMockDownloader(ctrl)
	// No Fetch expectation: the downloader must never be consulted.

	r := &Resolver{Finder: finder, DL: dl}
	res, err := r.Resolve(context.Background(), Request{Identity: testIdentity(), Checksum: digest}, Options{})
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, res.Source)
	assert.Equal(t, local, res.Path)
}

func TestResolve_CorruptLocalFallsBackToDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	local := writeArtifact(t, "foo-1.0.jar", "tampered payload")
	downloaded := writeArtifact(t, "foo-1.0.jar", "artifact payload")
	digest, err := checksum.Sum(downloaded, checksum.SHA1)
	require.NoError(t, err)

	finder := mock_resolve.NewMockLocalFinder(ctrl)
	finder.EXPECT().Find(testIdentity()).Return(&model.Candidate{Path: local, Identity: testIdentity()}, nil)

	cacheDir := t.TempDir()
	dl := mock_resolve.NewMockDownloader(ctrl)
	dl.EXPECT().Fetch(gomock.Any(), testIdentity(), cacheDir).Return(downloaded, nil)

	r := &Resolver{Finder: finder, DL: dl}
	res, err := r.Resolve(context.Background(), Request{Identity: testIdentity(), Checksum: digest}, Options{CacheDir: cacheDir})
	require.NoError(t, err)
	assert.Equal(t, SourceDownload, res.Source)
	assert.Equal(t, downloaded, res.Path)
}

func TestResolve_LocalHitViaSiblingDigestFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	local := writeArtifact(t, "foo-1.0.jar", "artifact payload")
	digest, err := checksum.Sum(local, checksum.SHA1)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(local+".sha1", []byte(digest+"\n"), 0o644))

	finder := mock_resolve.NewMockLocalFinder(ctrl)
	finder.EXPECT().Find(testIdentity()).Return(&model.Candidate{Path: local, Identity: testIdentity()}, nil)

	r := &Resolver{Finder: finder}
	res, err := r.Resolve(context.Background(), Request{Identity: testIdentity()}, Options{})
	require.NoError(t, err)
	assert.Equal(t, SourceLocal, res.Source)
}

func TestResolve_MissWithoutDownloader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mock_resolve.NewMockLocalFinder(ctrl)
	finder.EXPECT().Find(testIdentity()).Return(nil, nil)

	r := &Resolver{Finder: finder}
	_, err := r.Resolve(context.Background(), Request{Identity: testIdentity()}, Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDownloadFailed)
}

func TestResolve_DownloadChecksumMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	downloaded := writeArtifact(t, "foo-1.0.jar", "wrong payload")

	finder := mock_resolve.NewMockLocalFinder(ctrl)
	finder.EXPECT().Find(testIdentity()).Return(nil, nil)

	cacheDir := t.TempDir()
	dl := mock_resolve.NewMockDownloader(ctrl)
	dl.EXPECT().Fetch(gomock.Any(), testIdentity(), cacheDir).Return(downloaded, nil)

	r := &Resolver{Finder: finder, DL: dl}
	_, err := r.Resolve(context.Background(), Request{
		Identity: testIdentity(),
		Checksum: "da39a3ee5e6b4b0d3255bfef95601890afd80709",
	}, Options{CacheDir: cacheDir})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrChecksumMismatch)
}

func TestResolve_RelativeCacheDirRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mock_resolve.NewMockLocalFinder(ctrl)
	finder.EXPECT().Find(testIdentity()).Return(nil, nil)

	r := &Resolver{Finder: finder, DL: mock_resolve.NewMockDownloader(ctrl)}
	_, err := r.Resolve(context.Background(), Request{Identity: testIdentity()}, Options{CacheDir: "relative/dir"})
	assert.ErrorIs(t, err, errors.ErrInvalidPath)
}

func TestResolveAll_Concurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ids := make([]Request, 0, 8)
	finder := mock_resolve.NewMockLocalFinder(ctrl)
	for i := 0; i < 8; i++ {
		id := testIdentity()
		id.Revision = string(rune('1'+i)) + ".0"
		local := writeArtifact(t, id.FileName(), "payload "+id.Revision)
		digest, err := checksum.Sum(local, checksum.SHA1)
		require.NoError(t, err)
		ids = append(ids, Request{Identity: id, Checksum: digest})
		finder.EXPECT().Find(id).Return(&model.Candidate{Path: local, Identity: id}, nil)
	}

	r := &Resolver{Finder: finder}
	results, err := r.ResolveAll(context.Background(), ids, Options{Concurrency: 4})
	require.NoError(t, err)
	require.Len(t, results, 8)
	for i, res := range results {
		assert.Equal(t, ids[i].Identity, res.Identity, "results must come back in request order")
		assert.Equal(t, SourceLocal, res.Source)
	}
}

func TestResolve_EmitsEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	local := writeArtifact(t, "foo-1.0.jar", "artifact payload")
	digest, err := checksum.Sum(local, checksum.SHA1)
	require.NoError(t, err)

	finder := mock_resolve.NewMockLocalFinder(ctrl)
	finder.EXPECT().Find(testIdentity()).Return(&model.Candidate{Path: local, Identity: testIdentity()}, nil)

	var phases []string
	r := &Resolver{
		Finder: finder,
		Hooks:  Hooks{OnEvent: func(e Event) { phases = append(phases, e.Phase) }},
	}
	_, err = r.Resolve(context.Background(), Request{Identity: testIdentity(), Checksum: digest}, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"searching", "verifying", "done"}, phases)
}

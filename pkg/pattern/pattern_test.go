package pattern

import (
	"testing"

	"github.com/glorpus-work/relic/pkg/errors"
	"github.com/glorpus-work/relic/pkg/model"
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

func TestCompile_UnknownToken(t *testing.T) {
	_, err := Compile("[organisation]/[modul]/[revision]")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownToken)
	assert.Contains(t, err.Error(), "[modul]")
}

func TestCompile_UnbalancedGroup(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{name: "unclosed group", source: "[module](/[branch]/[revision]"},
		{name: "stray close", source: "[module])/[revision]"},
		{name: "unterminated token", source: "[module/[revision]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.source)
			require.Error(t, err)
		})
	}
}

func TestCompile_Empty(t *testing.T) {
	_, err := Compile("  ")
	assert.ErrorIs(t, err, errors.ErrEmptyPattern)
}

func TestRender(t *testing.T) {
	withBranch := testIdentity()
	withBranch.Branch = "trunk"

	withClassifier := testIdentity()
	withClassifier.Classifier = "sources"

	noExt := testIdentity()
	noExt.Type = "pom"
	noExt.Ext = "pom"

	tests := []struct {
		name     string
		source   string
		identity model.ArtifactIdentity
		want     string
	}{
		{
			name:     "plain tokens",
			source:   "[organisation]/[module]/[revision]/[artifact]-[revision].[ext]",
			identity: testIdentity(),
			want:     "org.example/foo/1.0/foo-1.0.jar",
		},
		{
			name:     "organisation path",
			source:   "[organisation-path]/[module]/[revision]/[artifact]-[revision](-[classifier])(.[ext])",
			identity: testIdentity(),
			want:     "org/example/foo/1.0/foo-1.0.jar",
		},
		{
			name:     "optional branch omitted",
			source:   "[organisation]/[module](/[branch])/[revision]/[type]/[artifact]-[revision](-[classifier])(.[ext])",
			identity: testIdentity(),
			want:     "org.example/foo/1.0/jar/foo-1.0.jar",
		},
		{
			name:     "optional branch present",
			source:   "[organisation]/[module](/[branch])/[revision]/[type]/[artifact]-[revision](-[classifier])(.[ext])",
			identity: withBranch,
			want:     "org.example/foo/trunk/1.0/jar/foo-1.0.jar",
		},
		{
			name:     "classifier present",
			source:   "[artifact]-[revision](-[classifier])(.[ext])",
			identity: withClassifier,
			want:     "foo-1.0-sources.jar",
		},
		{
			name:     "wildcard segment survives rendering",
			source:   "store/[organisation]/[module]/[revision]/[type]/*/[artifact]-[revision](.[ext])",
			identity: testIdentity(),
			want:     "store/org.example/foo/1.0/jar/*/foo-1.0.jar",
		},
		{
			name:     "type pluralised literal",
			source:   "[organisation]/[module]/[type]s/[artifact]-[revision](.[ext])",
			identity: noExt,
			want:     "org.example/foo/poms/foo-1.0.pom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Compile(tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Render(tt.identity))
		})
	}
}

func TestRender_Deterministic(t *testing.T) {
	p := MustCompile("[organisation]/[module](/[branch])/[revision]/[type]/*/[artifact]-[revision](-[classifier])(.[ext])")
	id := testIdentity()

	first := p.Render(id)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, p.Render(id))
	}
}

func TestRender_OmittedGroupLeavesNoDelimiter(t *testing.T) {
	p := MustCompile("[artifact]-[revision](-[classifier])(.[ext])")
	id := testIdentity()
	id.Classifier = ""

	rendered := p.Render(id)
	assert.Equal(t, "foo-1.0.jar", rendered)
	assert.NotContains(t, rendered, "classifier")
	assert.NotContains(t, rendered, "-1.0-")
}

func TestHasWildcard(t *testing.T) {
	assert.True(t, MustCompile("artifacts/*/[module]/[revision]").HasWildcard())
	assert.False(t, MustCompile("[organisation]/[module]/[revision]").HasWildcard())
}

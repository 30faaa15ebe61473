// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

package compile_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavelpernicka/scoutcomp-sub001/catalog"
	"github.com/pavelpernicka/scoutcomp-sub001/compile"
	"github.com/pavelpernicka/scoutcomp-sub001/store"
)

const annotated = `{
  "rules": {
    // en: Rules
    "title": "Pravidla", // vars: count
    "subtitle": "[cs] rules.subtitle"
  }
}
`

func TestBuild_StripsAnnotations(t *testing.T) {
	t.Parallel()

	artifact, err := compile.Build([]byte(annotated))
	require.NoError(t, err)

	assert.NotContains(t, string(artifact), "//")
	assert.NotContains(t, string(artifact), "vars:")

	tree, err := catalog.ParseRuntime(artifact)
	require.NoError(t, err)

	want := [][2]string{
		{"rules.title", "Pravidla"},
		{"rules.subtitle", "[cs] rules.subtitle"},
	}

	if diff := cmp.Diff(want, tree.Pairs()); diff != "" {
		t.Errorf("artifact content mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	t.Parallel()

	first, err := compile.Build([]byte(annotated))
	require.NoError(t, err)

	second, err := compile.Build([]byte(annotated))
	require.NoError(t, err)

	assert.Equal(t, first, second, "same document must compile to byte-identical output")
}

func TestBuild_RejectsMalformedDocument(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{"Truncated", `{"a": "b"`},
		{"NumberLeaf", `{"a": 3}`},
		{"CommentOnly", "// nothing\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := compile.Build([]byte(tc.input))
			assert.Error(t, err)
		})
	}
}

func TestRun_BuildsUnderscoreNamedCatalog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st := store.New(filepath.Join(dir, "translations"), filepath.Join(dir, "out"))

	require.NoError(t, st.WriteAnnotated("pt_BR", []byte(annotated)))

	res, err := compile.Run(st)
	require.NoError(t, err)
	assert.Equal(t, compile.Result{Built: 1, Failed: 0}, res)

	data, err := st.ReadArtifact("pt-BR")
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
}

func TestRun_IsolatesFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	st := store.New(filepath.Join(dir, "translations"), filepath.Join(dir, "out"))

	require.NoError(t, st.WriteAnnotated("cs", []byte(annotated)))
	require.NoError(t, st.WriteAnnotated("en", []byte(`{"broken":`)))

	res, err := compile.Run(st)
	require.NoError(t, err)
	assert.Equal(t, compile.Result{Built: 1, Failed: 1}, res)

	_, err = st.ReadArtifact("cs")
	assert.NoError(t, err, "valid language should have an artifact")

	_, err = st.ReadArtifact("en")
	assert.True(t, errors.Is(err, fs.ErrNotExist), "invalid language must not produce an artifact")
}

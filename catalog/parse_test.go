// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavelpernicka/scoutcomp-sub001/catalog"
)

func TestParseAnnotated_PreservesDocumentOrder(t *testing.T) {
	t.Parallel()

	doc := `{
  // en: Rules
  "rules": {
    "title": "Pravidla", // vars: count
    "subtitle": "[cs] rules.subtitle"
  },
  "dashboard": {
    "greeting": "Ahoj, {{name}}!"
  }
}`

	tree, err := catalog.ParseAnnotated([]byte(doc))
	require.NoError(t, err)

	want := [][2]string{
		{"rules.title", "Pravidla"},
		{"rules.subtitle", "[cs] rules.subtitle"},
		{"dashboard.greeting", "Ahoj, {{name}}!"},
	}

	if diff := cmp.Diff(want, tree.Pairs()); diff != "" {
		t.Errorf("parsed tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAnnotated_EmptyDocument(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Whitespace", "  \n\t\n"},
		{"CommentOnly", "// nothing here yet\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			tree, err := catalog.ParseAnnotated([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, 0, tree.Leaves())
		})
	}
}

func TestParseAnnotated_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
	}{
		{"Truncated", `{"a": "b"`},
		{"RootArray", `["a", "b"]`},
		{"RootString", `"just text"`},
		{"NumberLeaf", `{"a": 1}`},
		{"BoolLeaf", `{"a": true}`},
		{"NullLeaf", `{"a": null}`},
		{"ArrayLeaf", `{"a": ["x"]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := catalog.ParseAnnotated([]byte(tc.input))
			assert.Error(t, err)
		})
	}
}

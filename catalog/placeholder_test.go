// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog_test

import (
	"testing"

	"github.com/pavelpernicka/scoutcomp-sub001/catalog"
)

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		lang string
		want string
	}{
		{"ReferenceLanguage", "en", "rules.title"},
		{"OtherLanguage", "cs", "[cs] rules.title"},
		{"RegionalTag", "pt-BR", "[pt-BR] rules.title"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := catalog.Placeholder(tc.lang, "en", "rules.title")
			if got != tc.want {
				t.Errorf("Placeholder(%q, en, rules.title) = %q, want %q", tc.lang, got, tc.want)
			}
		})
	}
}

func TestIsPlaceholder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		path  string
		want  bool
	}{
		{"BareKey", "rules.title", "rules.title", true},
		{"TaggedPrefix", "[cs] rules.title", "rules.title", true},
		{"RegionalTagPrefix", "[pt-BR] rules.title", "rules.title", true},
		{"RealValue", "Pravidla", "rules.title", false},
		{"BracketsMidValue", "viz [cs] sekce", "rules.title", false},
		{"ValueStartingWithBracketWord", "[important] read this", "rules.title", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := catalog.IsPlaceholder(tc.value, tc.path); got != tc.want {
				t.Errorf("IsPlaceholder(%q, %q) = %v, want %v", tc.value, tc.path, got, tc.want)
			}
		})
	}
}

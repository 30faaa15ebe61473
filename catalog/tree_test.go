// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/pavelpernicka/scoutcomp-sub001/catalog"
)

func TestTree_SetGet(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	tree.Set("rules.title", "Pravidla")
	tree.Set("rules.sections.intro", "Úvod")

	cases := []struct {
		name string
		path string
		want string
		ok   bool
	}{
		{"Leaf", "rules.title", "Pravidla", true},
		{"NestedLeaf", "rules.sections.intro", "Úvod", true},
		{"Branch", "rules", "", false},
		{"Missing", "rules.nope", "", false},
		{"MissingRoot", "nope.title", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tree.Get(tc.path)
			if got != tc.want || ok != tc.ok {
				t.Errorf("Get(%q) = (%q, %v), want (%q, %v)", tc.path, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestTree_WalkOrder(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	tree.Set("b.two", "2")
	tree.Set("a.one", "1")
	tree.Set("b.three", "3")
	tree.Set("top", "t")

	want := [][2]string{
		{"b.two", "2"},
		{"b.three", "3"},
		{"a.one", "1"},
		{"top", "t"},
	}

	if diff := cmp.Diff(want, tree.Pairs()); diff != "" {
		t.Errorf("Walk order mismatch (-want +got):\n%s", diff)
	}
}

func TestTree_SetOverwritesLeaf(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	tree.Set("a.b", "old")
	tree.Set("a.b", "new")

	if got, _ := tree.Get("a.b"); got != "new" {
		t.Errorf("Get(a.b) = %q, want %q", got, "new")
	}

	if tree.Leaves() != 1 {
		t.Errorf("Leaves() = %d, want 1", tree.Leaves())
	}
}

func TestTree_SetRejectsShapeConflicts(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	if err := tree.Set("a.b", "leaf"); err != nil {
		t.Fatalf("Set(a.b) = %v, want nil", err)
	}

	if err := tree.Set("a.b.c", "deeper"); !errors.Is(err, ErrPathConflict) {
		t.Errorf("Set(a.b.c) under a leaf = %v, want ErrPathConflict", err)
	}

	if err := tree.Set("a", "shallower"); !errors.Is(err, ErrPathConflict) {
		t.Errorf("Set(a) over a branch = %v, want ErrPathConflict", err)
	}

	// The failed calls must not have touched anything.
	if got, ok := tree.Get("a.b"); !ok || got != "leaf" {
		t.Errorf("Get(a.b) = (%q, %v), want (leaf, true)", got, ok)
	}

	if tree.Leaves() != 1 {
		t.Errorf("Leaves() = %d, want 1", tree.Leaves())
	}
}

func TestTree_Leaves(t *testing.T) {
	t.Parallel()

	tree := NewTree()
	if tree.Leaves() != 0 {
		t.Errorf("empty tree Leaves() = %d, want 0", tree.Leaves())
	}

	tree.Set("a.b", "1")
	tree.Set("a.c", "2")
	tree.Set("d.e.f", "3")

	if tree.Leaves() != 3 {
		t.Errorf("Leaves() = %d, want 3", tree.Leaves())
	}
}

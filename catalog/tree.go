// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"fmt"
	"strings"
)

// ErrPathConflict reports a Set whose path collides with the shape of the
// existing catalog: an ancestor of the path is already a value, or the path
// itself is already a nested section. Either way, storing the value would
// drop entries the catalog already holds, so the tree refuses.
var ErrPathConflict = fmt.Errorf("path conflicts with an existing entry")

// Tree is a language catalog: a nested mapping from key segments to string
// leaves. Child order is insertion order, which makes rendered documents
// stable across runs: keys already present keep their document position and
// new keys append after their siblings.
//
// Tree is not safe for concurrent mutation. The pipeline is synchronous, so
// no locking is provided.
type Tree struct {
	root *node
}

// node is either a leaf holding a value, or a branch holding ordered children.
type node struct {
	order    []string
	children map[string]*node
	value    string
	leaf     bool
}

func newBranch() *node {
	return &node{children: make(map[string]*node)}
}

// NewTree returns an empty catalog.
func NewTree() *Tree {
	return &Tree{root: newBranch()}
}

// Get returns the leaf value at the dotted path.
func (t *Tree) Get(path string) (string, bool) {
	n := t.root

	for _, seg := range strings.Split(path, ".") {
		if n.leaf {
			return "", false
		}

		child, ok := n.children[seg]
		if !ok {
			return "", false
		}

		n = child
	}

	if !n.leaf {
		return "", false
	}

	return n.value, true
}

// Set stores value at the dotted path, creating intermediate branches as
// needed. Overwriting the value of an existing leaf is fine; turning a leaf
// into a branch or a branch into a leaf is not, since either direction would
// silently drop entries already in the catalog. Those calls fail with
// ErrPathConflict and leave the tree unchanged.
func (t *Tree) Set(path, value string) error {
	segs := strings.Split(path, ".")
	n := t.root

	for i, seg := range segs[:len(segs)-1] {
		child, ok := n.children[seg]
		if ok && child.leaf {
			return fmt.Errorf("%w: %s is already a value at %s",
				ErrPathConflict, path, strings.Join(segs[:i+1], "."))
		}

		if !ok {
			child = newBranch()
			n.children[seg] = child
			n.order = append(n.order, seg)
		}

		n = child
	}

	last := segs[len(segs)-1]

	if child, ok := n.children[last]; ok {
		if !child.leaf {
			return fmt.Errorf("%w: %s is already a nested section", ErrPathConflict, path)
		}

		child.value = value

		return nil
	}

	n.order = append(n.order, last)
	n.children[last] = &node{value: value, leaf: true}

	return nil
}

// Walk visits every leaf depth-first in document order.
func (t *Tree) Walk(fn func(path string, value string)) {
	t.root.walk(nil, fn)
}

func (n *node) walk(prefix []string, fn func(path, value string)) {
	for _, seg := range n.order {
		child := n.children[seg]
		path := append(prefix, seg)

		if child.leaf {
			fn(strings.Join(path, "."), child.value)
		} else {
			child.walk(path, fn)
		}
	}
}

// Leaves returns the number of leaves in the catalog.
func (t *Tree) Leaves() int {
	count := 0
	t.Walk(func(string, string) { count++ })

	return count
}

// Pairs returns every (path, value) pair in document order. Mostly useful for
// comparing trees in tests.
func (t *Tree) Pairs() [][2]string {
	var out [][2]string

	t.Walk(func(path, value string) {
		out = append(out, [2]string{path, value})
	})

	return out
}

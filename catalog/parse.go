// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"bytes"
	"fmt"

	"github.com/tidwall/gjson"
)

// ParseAnnotated parses an annotated catalog document into a Tree. Comments
// are stripped first; the remainder must be a JSON object whose leaves are all
// strings. Key order in the document is preserved in the tree.
//
// An empty (or comment-only) document parses to an empty tree, which is what
// a language gets on its very first sync.
func ParseAnnotated(data []byte) (*Tree, error) {
	stripped := StripComments(data)
	if len(bytes.TrimSpace(stripped)) == 0 {
		return NewTree(), nil
	}

	return ParseRuntime(stripped)
}

// ParseRuntime parses a plain JSON catalog (a runtime artifact, or a stripped
// annotated document) into a Tree.
func ParseRuntime(data []byte) (*Tree, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("catalog is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("catalog root is %s, want an object", root.Type)
	}

	t := NewTree()
	if err := fill(t, "", root); err != nil {
		return nil, err
	}

	return t, nil
}

// fill copies obj into t under prefix. gjson's ForEach iterates members in
// document order, which is what keeps tree order equal to document order.
func fill(t *Tree, prefix string, obj gjson.Result) error {
	var err error

	obj.ForEach(func(key, value gjson.Result) bool {
		path := key.String()
		if prefix != "" {
			path = prefix + "." + path
		}

		switch {
		case value.IsObject():
			err = fill(t, path, value)
		case value.Type == gjson.String:
			// Only fails when a literal dot inside a key makes two
			// document entries collide on the same dotted path.
			err = t.Set(path, value.String())
		case value.IsArray():
			err = fmt.Errorf("value at %q is an array, want a string or an object", path)
		default:
			err = fmt.Errorf("value at %q is %s, want a string or an object", path, value.Type)
		}

		return err == nil
	})

	return err
}

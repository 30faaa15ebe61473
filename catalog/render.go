// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import (
	"encoding/json"
	"regexp"
	"sort"
	"strings"
)

// valueVar matches a {{name}} interpolation placeholder embedded in a
// translated value.
var valueVar = regexp.MustCompile(`\{\{\s*([A-Za-z_$][A-Za-z0-9_$]*)\s*\}\}`)

// RenderOptions carries the annotation inputs for Render.
type RenderOptions struct {
	// Reference is the reference-language catalog used for the "what should
	// this say" comments. May be nil.
	Reference *Tree

	// ReferenceLang labels the reference comments, e.g. "en".
	ReferenceLang string

	// Vars maps dotted paths to the variable names observed at call sites.
	Vars map[string][]string
}

// Render serializes a catalog into an annotated document.
//
// Leaves are emitted depth-first in tree order. A leaf is preceded by a
// reference comment when the reference catalog holds a different,
// non-placeholder value at the same path, and followed by a trailing comment
// listing its variables (call-site usage unioned with placeholders embedded in
// the value itself) when there are any.
//
// The annotations round-trip to nothing: stripping them yields exactly the
// JSON that [ParseRuntime] turns back into an equal tree.
func Render(t *Tree, opts RenderOptions) []byte {
	var b strings.Builder

	b.WriteString("{\n")
	renderBranch(&b, t.root, nil, 1, opts)
	b.WriteString("}\n")

	return []byte(b.String())
}

func renderBranch(b *strings.Builder, n *node, prefix []string, depth int, opts RenderOptions) {
	indent := strings.Repeat("  ", depth)

	for i, seg := range n.order {
		child := n.children[seg]
		path := append(prefix, seg)
		last := i == len(n.order)-1

		if !child.leaf {
			b.WriteString(indent)
			b.WriteString(quote(seg))
			b.WriteString(": {\n")
			renderBranch(b, child, path, depth+1, opts)
			b.WriteString(indent)
			b.WriteString("}")

			if !last {
				b.WriteString(",")
			}

			b.WriteString("\n")

			continue
		}

		dotted := strings.Join(path, ".")

		if ref := referenceValue(dotted, child.value, opts); ref != "" {
			b.WriteString(indent)
			b.WriteString("// ")
			b.WriteString(opts.ReferenceLang)
			b.WriteString(": ")
			b.WriteString(sanitizeComment(ref))
			b.WriteString("\n")
		}

		b.WriteString(indent)
		b.WriteString(quote(seg))
		b.WriteString(": ")
		b.WriteString(quote(child.value))

		if !last {
			b.WriteString(",")
		}

		if vars := leafVars(dotted, child.value, opts); len(vars) > 0 {
			b.WriteString(" // vars: ")
			b.WriteString(strings.Join(vars, ", "))
		}

		b.WriteString("\n")
	}
}

// referenceValue returns the reference-language value to annotate a leaf with,
// or "" when the annotation would not be informative: no reference value,
// a value identical to the target's, or a reference that is itself still a
// placeholder.
func referenceValue(path, value string, opts RenderOptions) string {
	if opts.Reference == nil {
		return ""
	}

	ref, ok := opts.Reference.Get(path)
	if !ok || ref == value || IsPlaceholder(ref, path) {
		return ""
	}

	return ref
}

// leafVars unions call-site variables with names parsed out of {{...}}
// placeholders embedded in the value, sorted for stable output.
func leafVars(path, value string, opts RenderOptions) []string {
	seen := make(map[string]struct{})

	for _, v := range opts.Vars[path] {
		seen[v] = struct{}{}
	}

	for _, m := range valueVar.FindAllStringSubmatch(value, -1) {
		seen[m[1]] = struct{}{}
	}

	if len(seen) == 0 {
		return nil
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}

	sort.Strings(out)

	return out
}

// sanitizeComment keeps a reference value on one comment line.
func sanitizeComment(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}

// quote renders s as a JSON string literal.
func quote(s string) string {
	// Strings never fail to marshal.
	out, _ := json.Marshal(s)

	return string(out)
}

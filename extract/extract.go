// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package extract scans UI source for translation-call sites and builds the
global key catalog fed to the catalog synchronizer.

Extraction is deliberately textual. Two patterns are applied to each file: a
bare call t('some.key') and a call with an inline options object
t('some.key', { count: n }). For the latter, identifiers followed by a colon
inside the captured object text are recorded as variable names. This is a
heuristic, not a parser: variables hidden inside nested braces, computed keys,
and identifier-shaped text inside string values are beyond it. In practice the
call sites are simple enough that this has not mattered.
*/
package extract

import (
	"io"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the logger used by package extract.
var Logger zerolog.Logger = log.With().Str("sys", "extract").Logger()

var (
	// bareCall matches t('some.key') with no further arguments.
	bareCall = regexp.MustCompile(`\bt\(\s*['"]([^'"]+)['"]\s*\)`)

	// optsCall matches t('some.key', { ... }) and captures the object text up
	// to the first closing brace.
	optsCall = regexp.MustCompile(`\bt\(\s*['"]([^'"]+)['"]\s*,\s*\{([^}]*)`)

	// optVar matches an identifier: occurrence inside a captured options
	// object.
	optVar = regexp.MustCompile(`([A-Za-z_$][A-Za-z0-9_$]*)\s*:`)

	// keyShape is a dotted key: word segments with at least one separator.
	keyShape = regexp.MustCompile(`^\w+(\.\w+)+$`)
)

// KeyCatalog maps discovered dotted keys to the union of variable names
// observed at their call sites, in first-seen order.
type KeyCatalog struct {
	order []string
	vars  map[string]map[string]struct{}
}

// NewKeyCatalog returns an empty key catalog.
func NewKeyCatalog() *KeyCatalog {
	return &KeyCatalog{vars: make(map[string]map[string]struct{})}
}

// Add records one key usage with the given variable names.
func (c *KeyCatalog) Add(key string, vars ...string) {
	if _, ok := c.vars[key]; !ok {
		c.order = append(c.order, key)
		c.vars[key] = make(map[string]struct{})
	}

	for _, v := range vars {
		c.vars[key][v] = struct{}{}
	}
}

// Keys returns the discovered keys in first-seen order.
func (c *KeyCatalog) Keys() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)

	return out
}

// Len returns the number of distinct keys.
func (c *KeyCatalog) Len() int {
	return len(c.order)
}

// VarsByKey returns the key → variable names mapping in the shape the
// renderer consumes. Names are sorted per key.
func (c *KeyCatalog) VarsByKey() map[string][]string {
	out := make(map[string][]string, len(c.vars))

	for key, set := range c.vars {
		if len(set) == 0 {
			continue
		}

		names := make([]string, 0, len(set))
		for v := range set {
			names = append(names, v)
		}

		// Render sorts again after unioning with value-embedded variables;
		// sorting here just keeps the map deterministic on its own.
		sort.Strings(names)

		out[key] = names
	}

	return out
}

// Scan runs extraction over the corpus and merges the findings into c.
// A file that cannot be read is logged and skipped; the rest of the corpus is
// still scanned.
func (c *KeyCatalog) Scan(corpus Corpus, label string) error {
	files, err := corpus.Files()
	if err != nil {
		return err
	}

	for _, name := range files {
		data, err := readFile(corpus, name)
		if err != nil {
			Logger.Warn().
				Err(err).
				Str("file", path.Join(label, name)).
				Msg("Skipping unreadable source file")

			continue
		}

		c.scanText(string(data))
	}

	return nil
}

func readFile(corpus Corpus, name string) ([]byte, error) {
	f, err := corpus.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}

// scanText applies both call patterns to one file's contents.
func (c *KeyCatalog) scanText(text string) {
	for _, m := range bareCall.FindAllStringSubmatch(text, -1) {
		if ValidKey(m[1]) {
			c.Add(m[1])
		}
	}

	for _, m := range optsCall.FindAllStringSubmatch(text, -1) {
		if !ValidKey(m[1]) {
			continue
		}

		var vars []string
		for _, vm := range optVar.FindAllStringSubmatch(m[2], -1) {
			vars = append(vars, vm[1])
		}

		c.Add(m[1], vars...)
	}
}

// ValidKey reports whether s is usable as a catalog key: dotted word segments,
// at least two of them, and not something that merely looks like a path or a
// URL passed to an unrelated t().
func ValidKey(s string) bool {
	if len(s) < 2 || strings.HasPrefix(s, "/") {
		return false
	}

	if strings.Contains(s, "://") {
		return false
	}

	return keyShape.MatchString(s)
}

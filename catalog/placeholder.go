// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

import "regexp"

// placeholderPrefix matches the bracketed language tag that opens a
// placeholder value in a non-reference language, e.g. "[cs] " or "[pt-BR] ".
var placeholderPrefix = regexp.MustCompile(`^\[[A-Za-z0-9_-]{2,8}\] `)

// Placeholder synthesizes the untranslated marker value for key in lang.
// The reference language uses the bare key itself; every other language gets
// the key prefixed with its bracketed tag so translators (and the stats tool)
// can spot it at a glance.
func Placeholder(lang, reference, key string) string {
	if lang == reference {
		return key
	}

	return "[" + lang + "] " + key
}

// IsPlaceholder reports whether value at the dotted path looks like a
// synthesized placeholder rather than real content. Detection is purely
// value-shape-based; no metadata is kept alongside the catalog.
func IsPlaceholder(value, path string) bool {
	return value == path || placeholderPrefix.MatchString(value)
}

// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

package catalog

// SyncResult counts what one merge pass did to a language catalog.
type SyncResult struct {
	Preserved int
	Inserted  int

	// Conflicts lists keys skipped because they collide with the shape of
	// the existing catalog: the key resolves to a nested section, or an
	// ancestor of it is already a value. Such keys are left out rather than
	// allowed to destroy the entries they collide with.
	Conflicts []string
}

// Sync merges the extracted keys into the target catalog for lang.
//
// For every key, an existing non-empty value is kept as is; a missing or empty
// leaf gets a fresh placeholder. Keys absent from the extraction are never
// visited, so hand-edited entries whose source references have disappeared
// survive untouched. A key whose shape collides with the catalog (both a key
// and a descendant of it were extracted, say) is skipped and reported in
// Conflicts instead of overwriting what is there.
//
// The keys slice must be in corpus scan order; new leaves are inserted in that
// order, after any siblings the catalog already held.
func Sync(target *Tree, keys []string, lang, reference string) SyncResult {
	var res SyncResult

	for _, key := range keys {
		if value, ok := target.Get(key); ok && value != "" {
			res.Preserved++

			continue
		}

		if err := target.Set(key, Placeholder(lang, reference, key)); err != nil {
			res.Conflicts = append(res.Conflicts, key)

			continue
		}

		res.Inserted++
	}

	return res
}

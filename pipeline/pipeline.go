// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package pipeline wires the extract-and-sync pass together: scan the corpus,
merge the discovered keys into every language catalog, and write the updated
annotated documents back through the store.
*/
package pipeline

import (
	"errors"
	"io/fs"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pavelpernicka/scoutcomp-sub001/catalog"
	"github.com/pavelpernicka/scoutcomp-sub001/extract"
	"github.com/pavelpernicka/scoutcomp-sub001/store"
)

// Logger is the logger used by package pipeline.
var Logger zerolog.Logger = log.With().Str("sys", "sync").Logger()

// Options selects the languages to synchronize.
type Options struct {
	Languages []string

	// Reference is the reference language; it is synced first so its merged
	// values can annotate the other languages' documents.
	Reference string
}

// Sync merges keys into every configured language catalog and persists the
// re-rendered annotated documents. Write failures are logged and the
// remaining languages still get synced; the last such failure is returned so
// callers can decide whether to fail the run.
func Sync(st *store.Store, keys *extract.KeyCatalog, opts Options) error {
	vars := keys.VarsByKey()
	keyList := keys.Keys()

	// Reference language first; its merged tree feeds the annotations of
	// every other language.
	refTree := syncOne(st, keyList, opts.Reference, opts, nil, vars)

	var lastErr error

	if refTree == nil {
		lastErr = errors.New("failed to persist catalog for " + opts.Reference)
	}

	for _, lang := range opts.Languages {
		if lang == opts.Reference {
			continue
		}

		if tree := syncOne(st, keyList, lang, opts, refTree, vars); tree == nil {
			lastErr = errors.New("failed to persist catalog for " + lang)
		}
	}

	return lastErr
}

// syncOne loads, merges, renders and writes one language. It returns the
// merged tree, or nil when the document could not be written.
func syncOne(
	st *store.Store,
	keys []string,
	lang string,
	opts Options,
	refTree *catalog.Tree,
	vars map[string][]string,
) *catalog.Tree {
	tree := load(st, lang)

	res := catalog.Sync(tree, keys, lang, opts.Reference)

	for _, key := range res.Conflicts {
		Logger.Warn().
			Str("lang", lang).
			Str("key", key).
			Msg("Skipping key that conflicts with the catalog shape")
	}

	doc := catalog.Render(tree, catalog.RenderOptions{
		Reference:     refTree,
		ReferenceLang: opts.Reference,
		Vars:          vars,
	})

	if err := st.WriteAnnotated(lang, doc); err != nil {
		Logger.Error().
			Err(err).
			Str("lang", lang).
			Msg("Failed to write annotated document")

		return nil
	}

	Logger.Info().
		Str("lang", lang).
		Int("preserved", res.Preserved).
		Int("inserted", res.Inserted).
		Msg("Synchronized language catalog")

	return tree
}

// load reads lang's current catalog. A missing document is a first run and
// yields an empty tree. A document that no longer parses also yields an empty
// tree so the run can proceed, but that path discards existing translations
// on the next write, so it is logged as loudly as we can short of failing.
func load(st *store.Store, lang string) *catalog.Tree {
	data, err := st.ReadAnnotated(lang)
	if errors.Is(err, fs.ErrNotExist) {
		Logger.Info().
			Str("lang", lang).
			Msg("No existing catalog, starting fresh")

		return catalog.NewTree()
	}

	if err != nil {
		Logger.Error().
			Err(err).
			Str("lang", lang).
			Msg("Failed to read existing catalog, treating as empty")

		return catalog.NewTree()
	}

	tree, err := catalog.ParseAnnotated(data)
	if err != nil {
		Logger.Error().
			Err(err).
			Str("lang", lang).
			Str("file", st.AnnotatedPath(lang)).
			Msg("MALFORMED CATALOG: existing translations will be replaced by placeholders on this run")

		return catalog.NewTree()
	}

	return tree
}

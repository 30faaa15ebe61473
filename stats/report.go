// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package stats computes and prints the translation completeness report from the
runtime catalog artifacts.
*/
package stats

import (
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/pavelpernicka/scoutcomp-sub001/catalog"
	"github.com/pavelpernicka/scoutcomp-sub001/store"
)

// pendingLimit caps how many pending keys are listed before summarising.
const pendingLimit = 20

// Logger is the logger used by package stats.
var Logger zerolog.Logger = log.With().Str("sys", "stats").Logger()

// LanguageStats holds the per-language completeness numbers.
type LanguageStats struct {
	Lang       string
	Total      int
	Translated int
	Percent    float64
	Pending    []string
}

// Report is the completeness report across all languages with a runtime
// artifact.
type Report struct {
	// Languages is sorted by descending completeness.
	Languages []LanguageStats

	// Denominator is the leaf count of the first language in directory
	// order. When catalogs have diverged in key count the percentages are
	// only approximate; this mirrors long-standing behavior and is kept
	// deliberately.
	Denominator int
}

// Collect loads every runtime artifact and computes the report. A language
// whose artifact cannot be read or parsed is skipped; only a missing or
// unreadable output directory is fatal.
func Collect(st *store.Store) (*Report, error) {
	langs, err := st.ArtifactLanguages()
	if err != nil {
		return nil, err
	}

	rep := &Report{}
	haveDenominator := false

	for _, lang := range langs {
		data, err := st.ReadArtifact(lang)
		if err != nil {
			Logger.Warn().
				Err(err).
				Str("lang", lang).
				Msg("Skipping unreadable runtime catalog")

			continue
		}

		if !gjson.ValidBytes(data) {
			Logger.Warn().
				Str("lang", lang).
				Msg("Skipping invalid runtime catalog")

			continue
		}

		ls := count(lang, data)
		if !haveDenominator {
			// The first counted language claims the role even when its
			// catalog is empty; a zero-leaf catalog must not pass it on.
			rep.Denominator = ls.Total
			haveDenominator = true
		}

		if rep.Denominator > 0 {
			ls.Percent = float64(ls.Translated) / float64(rep.Denominator) * 100
		}

		rep.Languages = append(rep.Languages, ls)
	}

	// Descending completeness; stable so directory order breaks ties.
	sort.SliceStable(rep.Languages, func(i, j int) bool {
		return rep.Languages[i].Percent > rep.Languages[j].Percent
	})

	return rep, nil
}

// count walks one runtime catalog, counting leaves and collecting the dotted
// paths still holding placeholders.
func count(lang string, data []byte) LanguageStats {
	ls := LanguageStats{Lang: lang}

	var walk func(prefix string, obj gjson.Result)

	walk = func(prefix string, obj gjson.Result) {
		obj.ForEach(func(key, value gjson.Result) bool {
			path := key.String()
			if prefix != "" {
				path = prefix + "." + path
			}

			if value.IsObject() {
				walk(path, value)

				return true
			}

			ls.Total++

			if catalog.IsPlaceholder(value.String(), path) {
				ls.Pending = append(ls.Pending, path)
			} else {
				ls.Translated++
			}

			return true
		})
	}

	walk("", gjson.ParseBytes(data))

	return ls
}

// leastComplete returns the stats entry whose pending list the report prints:
// the lowest percentage, first in directory order among ties. Returns nil
// when every language is fully translated.
func (r *Report) leastComplete() *LanguageStats {
	var worst *LanguageStats

	for i := range r.Languages {
		ls := &r.Languages[i]
		if ls.Percent >= 100 {
			continue
		}

		if worst == nil || ls.Percent < worst.Percent {
			worst = ls
		}
	}

	return worst
}

// Write prints the report. Languages come out ranked by completeness with
// their English display names; the least complete language also gets its
// pending keys, capped at pendingLimit with a "+N more" summary.
func (r *Report) Write(w io.Writer) {
	fmt.Fprintf(w, "Translation completeness (%d keys):\n", r.Denominator)

	for _, ls := range r.Languages {
		fmt.Fprintf(w, "  %-8s %5.1f%%  (%d/%d)  %s\n",
			ls.Lang, ls.Percent, ls.Translated, r.Denominator, displayName(ls.Lang))
	}

	worst := r.leastComplete()
	if worst == nil {
		return
	}

	fmt.Fprintf(w, "\nPending in %s:\n", worst.Lang)

	pending := worst.Pending
	extra := 0

	if len(pending) > pendingLimit {
		extra = len(pending) - pendingLimit
		pending = pending[:pendingLimit]
	}

	for _, key := range pending {
		fmt.Fprintf(w, "  %s\n", key)
	}

	if extra > 0 {
		fmt.Fprintf(w, "  +%d more\n", extra)
	}
}

// displayName resolves a language code to its English name, falling back to
// the code itself.
func displayName(code string) string {
	t, err := language.Parse(code)
	if err != nil {
		return code
	}

	return display.English.Tags().Name(t)
}

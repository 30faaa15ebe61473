// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

package i18n

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"

	"github.com/pavelpernicka/scoutcomp-sub001/catalog"
	"github.com/pavelpernicka/scoutcomp-sub001/store"
)

// Logger is the logger used by package i18n.
var Logger zerolog.Logger = log.With().Str("sys", "i18n").Logger()

// varPattern matches a {{name}} placeholder in a catalog value.
var varPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_$][A-Za-z0-9_$]*)\s*\}\}`)

// Vars carries named interpolation parameters for one lookup.
type Vars map[string]any

// Translator resolves dotted keys against the loaded runtime catalogs. It is
// an explicit service object: construct it with [New] and pass it to whatever
// needs translations, rather than reaching for package state. All methods are
// safe for concurrent use once constructed; the catalogs are read-only.
type Translator struct {
	defaultLang string
	catalogs    map[string]map[string]string
}

// New loads every runtime catalog the store holds and returns a ready
// Translator. Languages whose artifact cannot be read or parsed are skipped
// with a warning; New fails only when no catalog loads at all or ctx is
// cancelled mid-load.
func New(ctx context.Context, st *store.Store, defaultLang string) (*Translator, error) {
	langs, err := st.ArtifactLanguages()
	if err != nil {
		return nil, err
	}

	t := &Translator{
		defaultLang: defaultLang,
		catalogs:    make(map[string]map[string]string),
	}

	for _, lang := range langs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := st.ReadArtifact(lang)
		if err != nil {
			Logger.Warn().Err(err).Str("lang", lang).Msg("Skipping unreadable catalog")

			continue
		}

		flat, err := flatten(data)
		if err != nil {
			Logger.Warn().Err(err).Str("lang", lang).Msg("Skipping invalid catalog")

			continue
		}

		t.catalogs[lang] = flat

		Logger.Info().
			Str("lang", lang).
			Int("keys", len(flat)).
			Msg("Loaded runtime catalog")
	}

	if len(t.catalogs) == 0 {
		return nil, fmt.Errorf("no runtime catalogs could be loaded")
	}

	return t, nil
}

// Languages returns the loaded language codes, sorted.
func (t *Translator) Languages() []string {
	out := make([]string, 0, len(t.catalogs))
	for lang := range t.catalogs {
		out = append(out, lang)
	}

	sort.Strings(out)

	return out
}

// Tr resolves key in lang and interpolates vars. See the package comment for
// the fallback chain; Tr never fails, it degrades to the bracket-wrapped key.
func (t *Translator) Tr(lang, key string, vars Vars) string {
	if value, ok := t.lookup(lang, key); ok {
		return interpolate(value, vars)
	}

	if lang != t.defaultLang {
		if value, ok := t.lookup(t.defaultLang, key); ok {
			return interpolate(value, vars)
		}
	}

	return "[" + key + "]"
}

// lookup finds a real translation: placeholders left by the synchronizer
// count as missing so the fallback chain can do better than echoing them.
func (t *Translator) lookup(lang, key string) (string, bool) {
	value, ok := t.catalogs[lang][key]
	if !ok || catalog.IsPlaceholder(value, key) {
		return "", false
	}

	return value, true
}

// interpolate substitutes {{name}} placeholders from vars, leaving unmatched
// placeholders in place.
func interpolate(s string, vars Vars) string {
	if len(vars) == 0 {
		return s
	}

	return varPattern.ReplaceAllStringFunc(s, func(m string) string {
		name := varPattern.FindStringSubmatch(m)[1]

		v, ok := vars[name]
		if !ok {
			return m
		}

		return fmt.Sprint(v)
	})
}

// flatten walks a runtime catalog into a dotted-key map.
func flatten(data []byte) (map[string]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("catalog is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("catalog root is not an object")
	}

	flat := make(map[string]string)

	var walk func(prefix string, obj gjson.Result)

	walk = func(prefix string, obj gjson.Result) {
		obj.ForEach(func(key, value gjson.Result) bool {
			path := key.String()
			if prefix != "" {
				path = prefix + "." + path
			}

			if value.IsObject() {
				walk(path, value)
			} else {
				flat[path] = value.String()
			}

			return true
		})
	}

	walk("", root)

	return flat, nil
}

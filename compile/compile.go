// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package compile is the build step: it turns annotated catalog documents into
validated runtime artifacts. Each language is compiled independently; one
malformed document never blocks the others.
*/
package compile

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/pretty"

	"github.com/pavelpernicka/scoutcomp-sub001/catalog"
	"github.com/pavelpernicka/scoutcomp-sub001/store"
)

// Logger is the logger used by package compile.
var Logger zerolog.Logger = log.With().Str("sys", "compile").Logger()

// Result summarises one build pass.
type Result struct {
	Built  int
	Failed int
}

// Build compiles one annotated document into runtime-artifact bytes:
// annotations are stripped, the remainder is validated as a string-leaf JSON
// tree, and the output is formatted deterministically. Key order in the
// document is preserved, so an unchanged document always compiles to
// byte-identical output.
func Build(annotated []byte) ([]byte, error) {
	stripped := catalog.StripComments(annotated)

	if _, err := catalog.ParseRuntime(stripped); err != nil {
		return nil, err
	}

	return pretty.Pretty(stripped), nil
}

// Run compiles every language with an annotated document. Validation and
// write failures are logged per language and counted; Run itself fails only
// when the catalog directory cannot be listed.
func Run(st *store.Store) (Result, error) {
	langs, err := st.Languages()
	if err != nil {
		return Result{}, err
	}

	var res Result

	for _, lang := range langs {
		if err := runOne(st, lang); err != nil {
			Logger.Error().
				Err(err).
				Str("lang", lang).
				Msg("Skipping language artifact")

			res.Failed++

			continue
		}

		res.Built++
	}

	Logger.Info().
		Int("built", res.Built).
		Int("failed", res.Failed).
		Msg("Compiled runtime catalogs")

	return res, nil
}

func runOne(st *store.Store, lang string) error {
	annotated, err := st.ReadAnnotated(lang)
	if err != nil {
		return fmt.Errorf("failed to read annotated document: %w", err)
	}

	artifact, err := Build(annotated)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return st.WriteArtifact(lang, artifact)
}

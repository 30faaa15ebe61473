// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package i18n is the runtime side of the catalog pipeline: it loads the
compiled runtime catalogs and resolves dotted keys to translated strings.

# Quick start

Build a [Translator] from the store, then look keys up per language:

	tr, err := i18n.New(ctx, st, "cs")
	if err != nil { ... }

	tr.Tr("cs", "rules.title", nil)
	tr.Tr("en", "dashboard.greeting", i18n.Vars{"name": user.Name})

# Lookup chain

A key is resolved in the requested language first. A missing key, or one
still holding a sync placeholder, falls back to the default language; if that
fails too, the bracket-wrapped key "[rules.title]" is returned so the gap is
visible in the UI instead of blank text.

# Formatting

Values may contain {{name}} placeholders, substituted from the supplied Vars.
Placeholders without a matching variable are left in the text rather than
erroring; translation lookups never fail at the call site.
*/
package i18n

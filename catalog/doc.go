// Copyright 2025, Pavel Pernička and the ScoutComp contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package catalog implements the per-language translation catalog: an
insertion-ordered tree of string values keyed by dotted paths, the annotated
(commented JSON) document format it is stored in, and the additive merge that
keeps it in sync with the keys referenced by the UI source.

# Document format

A catalog is stored as JSON with helper comments:

	{
	  "rules": {
	    // en: Rules
	    "title": "Pravidla",
	    "greeting": "Ahoj, {{name}}!" // vars: name
	  }
	}

Comments are metadata for translators only. Stripping them yields the runtime
catalog consumed by the UI; see [StripComments] and [Render].

# Placeholders

Untranslated leaves hold a synthesized placeholder that is recognisable from
the value alone: the bare dotted key for the reference language, or the key
prefixed with a bracketed language tag ("[cs] rules.title") for any other
language. See [Placeholder] and [IsPlaceholder].

# Merge semantics

[Sync] is additive only. Existing non-empty values are never overwritten and
keys that have disappeared from the source are never pruned; pruning is a
deliberate non-feature so that translations survive refactors that temporarily
drop a reference.
*/
package catalog

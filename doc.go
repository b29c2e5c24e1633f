/*
Package uroman provides universal romanization of Unicode text.

Description

Romanization maps text in an arbitrary writing system onto a
Latin-alphabet approximation, suitable for search indexing, name
matching and other NLP pipelines that want a single script to work
with. Romanization is inherently lossy: it is neither reversible nor
a linguistically perfect transliteration, and this package does not
try to be either. What it does try to be is predictable, data-driven
and fast.

The central data structure is a lattice: a directed acyclic graph over
the code-point positions 0…N of a single line of input. Edges of the
lattice span slices of the input and carry candidate romanizations
together with a score. A static rule table contributes most edges;
script-specific augmenters (Hangul syllable decomposition, Indic
schwa handling, Han→pinyin readings, numeral composition, Braille
cells) contribute edges that a static table cannot express. A final
left-to-right sweep selects the highest-scoring path from 0 to N, and
the concatenation of its edge texts is the canonical romanization.

Base package uroman provides the lattice, the edge type, the scoring
tie-break policy and the Augmenter interface. The driver sits in
sub-package romanize and owns the tables; sub-packages hangul, indic,
kana, han, numeral and braille implement the script-specific passes.
Clients normally only interact with package romanize:

	rz, err := romanize.New()
	if err != nil { … }
	fmt.Println(rz.RomanizeString("こんにちは、世界！", "jpn"))
	// konnichiha, shijie!

Every position of the lattice is guaranteed at least one outgoing
edge, thus a path from 0 to N always exists and romanization of
well-formed input cannot fail. Augmenters only ever add edges; an
edge is "removed" solely by being outscored during path selection.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package uroman

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to uroman.core .
func tracer() tracing.Trace {
	return tracing.Select("uroman.core")
}

// An Augmenter adds edges to a lattice which the static rule table
// cannot express, e.g. algorithmic Hangul decomposition or numeral
// composition. Augmenters run in a fixed order after the rule-table
// matcher. They must only add edges, never remove any, and they must
// be idempotent: running an augmenter twice on the same lattice yields
// the same edge set (the lattice de-duplicates edges by
// (start, end, text, type)).
type Augmenter interface {
	Name() string         // diagnostic name of the pass
	Augment(lat *Lattice) // add edges to lat
}

// Scores of competing lattice edges are compared during best-path
// selection. The identity fallback ranks below every rule-produced
// edge by at least FallbackMargin, so that any applicable rule wins
// over a raw pass-through.
const (
	FallbackScore  = -1.0 // score of identity fallback edges
	FallbackMargin = 1.0  // distance of fallback below plain rules
)

/*
Package han supplies pinyin readings for CJK Unified Ideographs.

Content

The embedded Chinese→pinyin table covers frequent characters and
words; its entries already reach the lattice through the rule-table
matcher (default reading plus alternative-only readings per
character). This augmenter closes the coverage gap: for ideographs
the embedded table does not know, it consults a pinyin dictionary
library and adds a default reading edge, so that arbitrary Chinese
text never degrades to raw pass-through.

Tone policy follows the language hint: a Mandarin hint retains the
tone-marked form, any other (or no) hint yields the bare syllable.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package han

import (
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/uroman"
	"github.com/npillmayer/uroman/rules"
)

// tracer traces to uroman.script .
func tracer() tracing.Trace {
	return tracing.Select("uroman.script")
}

// Dictionary fallback readings score below the embedded table's
// default readings (0.2 nudge there) but above the identity fallback.
const fallbackReadingScore = 0.1

// Augmenter adds dictionary-backed pinyin edges for ideographs that
// the embedded rule table does not cover. It implements the
// uroman.Augmenter interface.
type Augmenter struct {
	rules *rules.Table
	plain gopinyin.Args
	toned gopinyin.Args
}

// New creates a Han augmenter over the shared rule table.
func New(tb *rules.Table) *Augmenter {
	plain := gopinyin.NewArgs()
	plain.Style = gopinyin.Normal
	toned := gopinyin.NewArgs()
	toned.Style = gopinyin.Tone
	return &Augmenter{rules: tb, plain: plain, toned: toned}
}

// Name is part of interface uroman.Augmenter.
func (a *Augmenter) Name() string { return "han" }

// Augment is part of interface uroman.Augmenter.
func (a *Augmenter) Augment(lat *uroman.Lattice) {
	mandarin := rules.Mandarin(lat.Hint())
	for i, r := range lat.Input() {
		if !unicode.Is(unicode.Han, r) {
			continue
		}
		if len(a.rules.RulesFor(string(r))) > 0 {
			continue // embedded table wins
		}
		args := a.plain
		if mandarin {
			args = a.toned
		}
		readings := gopinyin.SinglePinyin(r, args)
		if len(readings) == 0 {
			tracer().Debugf("han: no dictionary reading for %#U", r)
			continue
		}
		lat.AddEdge(uroman.Edge{
			Start: i,
			End:   i + 1,
			Txt:   readings[0],
			Type:  uroman.TypePinyin,
			Score: fallbackReadingScore,
		})
		for _, alt := range readings[1:] {
			lat.AddEdge(uroman.Edge{
				Start:   i,
				End:     i + 1,
				Txt:     alt,
				Type:    uroman.TypePinyinAlt,
				Score:   fallbackReadingScore,
				AltOnly: true,
			})
		}
	}
}

/*
Package hangul decomposes precomposed Hangul syllable blocks into
their jamo and romanizes them.

Content

Hangul syllables (U+AC00–U+D7A3) are arranged algorithmically: a
syllable's code point encodes an (initial, medial, final) jamo triple.
The augmenter decomposes each syllable arithmetically and assembles
the romanization from three jamo tables, following the Revised
Romanization of Korean. One composite edge per syllable is added to
the lattice, spanning a single code point.

Romanizations are cached per syllable: text in a given language tends
to reuse a small set of syllables, and the cache is shared across
lines.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package hangul

import (
	"sync"

	"github.com/npillmayer/uroman"
)

// Syllable block arithmetic, see The Unicode Standard ch. 3.12.
const (
	blockFirst = 0xAC00
	blockLast  = 0xD7A3
	medialN    = 21
	finalN     = 28
)

var leads = []string{
	"g", "kk", "n", "d", "tt", "r", "m", "b", "pp",
	"s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h",
}

var medials = []string{
	"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
	"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu",
	"eu", "ui", "i",
}

var finals = []string{
	"", "g", "kk", "gs", "n", "nj", "nh", "d", "l", "lg",
	"lm", "lb", "ls", "lt", "lp", "lh", "m", "b", "bs",
	"s", "ss", "ng", "j", "ch", "k", "t", "p", "h",
}

// Score of a syllable edge: well above the identity fallback, below
// any explicit multi-character table rule covering the same span.
const syllableScore = 0.5

// Augmenter adds one romanization edge per Hangul syllable block.
// It implements the uroman.Augmenter interface.
type Augmenter struct {
	mu    sync.Mutex
	cache map[rune]string
}

// New creates a Hangul augmenter. The augmenter is stateless apart
// from its romanization cache and may be shared by concurrent calls.
func New() *Augmenter {
	return &Augmenter{cache: make(map[rune]string)}
}

// Name is part of interface uroman.Augmenter.
func (a *Augmenter) Name() string { return "hangul" }

// Augment adds a composite edge for every Hangul syllable of the
// line. Part of interface uroman.Augmenter.
func (a *Augmenter) Augment(lat *uroman.Lattice) {
	for i, r := range lat.Input() {
		rom, ok := a.Romanize(r)
		if !ok {
			continue
		}
		lat.AddEdge(uroman.Edge{
			Start: i,
			End:   i + 1,
			Txt:   rom,
			Type:  uroman.TypeHangul,
			Score: syllableScore,
		})
	}
}

// Romanize decomposes a single Hangul syllable block into its jamo
// triple and returns the assembled romanization. ok is false for code
// points outside the syllable block.
func (a *Augmenter) Romanize(r rune) (string, bool) {
	if r < blockFirst || r > blockLast {
		return "", false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if rom, hit := a.cache[r]; hit {
		return rom, true
	}
	code := r - blockFirst
	lead := code / (finalN * medialN)
	medial := (code / finalN) % medialN
	final := code % finalN
	rom := leads[lead] + medials[medial] + finals[final]
	a.cache[r] = rom
	return rom, true
}

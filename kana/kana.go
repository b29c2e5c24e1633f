/*
Package kana handles the Japanese long-vowel mark.

The katakana-hiragana prolonged sound mark ー (U+30FC) lengthens the
vowel of the preceding kana: ユーロ romanizes as "yuuro". The mark has
no romanization of its own, so the static table cannot express it;
this augmenter inspects the edges arriving at the mark's position and
adds a one-code-point edge repeating their final vowel.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package kana

import (
	"github.com/npillmayer/uroman"
)

const prolongedSoundMark = 'ー'

// Score of a long-vowel edge: above the identity fallback (which
// would pass the mark through untranslated).
const markScore = 0.5

// Augmenter doubles the preceding vowel under the prolonged sound
// mark. It implements the uroman.Augmenter interface and must run
// after the rule-table matcher, since it reads the incoming kana
// edges.
type Augmenter struct{}

// New creates a kana augmenter.
func New() *Augmenter { return &Augmenter{} }

// Name is part of interface uroman.Augmenter.
func (a *Augmenter) Name() string { return "kana" }

// Augment is part of interface uroman.Augmenter.
func (a *Augmenter) Augment(lat *uroman.Lattice) {
	for i, r := range lat.Input() {
		if r != prolongedSoundMark {
			continue
		}
		if v, ok := precedingVowel(lat, i); ok {
			lat.AddEdge(uroman.Edge{
				Start: i,
				End:   i + 1,
				Txt:   v,
				Type:  uroman.TypeKana,
				Score: markScore,
			})
		}
	}
}

// precedingVowel finds the final vowel of the best-scoring non-
// fallback edge ending at position i.
func precedingVowel(lat *uroman.Lattice, i int) (string, bool) {
	var best *uroman.Edge
	for _, e := range lat.EdgesEndingAt(i) {
		if e.Type == uroman.TypeFallback || e.AltOnly || e.Txt == "" {
			continue
		}
		if best == nil || e.Score > best.Score {
			best = e
		}
	}
	if best == nil {
		return "", false
	}
	last := best.Txt[len(best.Txt)-1]
	switch last {
	case 'a', 'e', 'i', 'o', 'u':
		return string(last), true
	}
	return "", false
}

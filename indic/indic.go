/*
Package indic adds cluster-aware edges for abugida scripts.

Content

In Devanagari and its sister scripts, a bare consonant letter carries
an implicit vowel (the schwa, romanized "a" by the rule table: क →
"ka"). Two signs modify it: a dependent vowel sign replaces the
implicit vowel (कि → "ki"), and the virama suppresses it entirely,
joining the consonant to the next one in a cluster (स्ते → "ste").
A static rule table cannot express this per-consonant arithmetic, so
this augmenter derives the vowel-less base from the table's own
romanization (by stripping the script's default vowel) and adds edges
spanning consonant+sign pairs.

A further heuristic handles the terminal schwa: a consonant at the
end of a word drops its implicit vowel (राम → "raam", not "raama"),
while a schwa between two consonants inside a word is kept for
syllabification. The word-final edge outranks the table's "Ca" edge;
everything else is left to path selection.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package indic

import (
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/uroman"
	"github.com/npillmayer/uroman/internal/ucd"
	"github.com/npillmayer/uroman/rules"
)

// tracer traces to uroman.script .
func tracer() tracing.Trace {
	return tracing.Select("uroman.script")
}

// Edge scores. Pair edges span two code points and must outrank the
// two competing single-rune rule edges; the terminal-schwa edge spans
// one code point and must outrank the table's "Ca" rule.
const (
	pairScore     = 1.5
	terminalScore = 0.75
)

// Augmenter adds schwa/virama edges for abugida scripts. It
// implements the uroman.Augmenter interface.
type Augmenter struct {
	ucd   *ucd.Table
	rules *rules.Table
}

// New creates an Indic augmenter over the shared descriptor and rule
// tables.
func New(u *ucd.Table, tb *rules.Table) *Augmenter {
	return &Augmenter{ucd: u, rules: tb}
}

// Name is part of interface uroman.Augmenter.
func (a *Augmenter) Name() string { return "indic" }

// Augment is part of interface uroman.Augmenter.
func (a *Augmenter) Augment(lat *uroman.Lattice) {
	input := lat.Input()
	for i, r := range input {
		base, ok := a.consonantBase(r)
		if !ok {
			continue
		}
		if i+1 < len(input) {
			next := input[i+1]
			switch {
			case a.ucd.IsVirama(next):
				// cluster-initial consonant: schwa suppressed
				lat.AddEdge(uroman.Edge{
					Start: i, End: i + 2, Txt: base,
					Type: uroman.TypeIndic, Score: pairScore,
				})
				continue
			case a.ucd.IsVowelSign(next):
				// dependent vowel replaces the implicit one
				if v, ok := a.signRomanization(next); ok {
					lat.AddEdge(uroman.Edge{
						Start: i, End: i + 2, Txt: base + v,
						Type: uroman.TypeIndic, Score: pairScore,
					})
				}
				continue
			}
		}
		if a.wordFinal(input, i) {
			lat.AddEdge(uroman.Edge{
				Start: i, End: i + 1, Txt: base,
				Type: uroman.TypeIndic, Score: terminalScore,
			})
		}
	}
}

// consonantBase returns the vowel-less romanization of an abugida
// consonant letter, derived by stripping the script's default vowel
// from the rule table's romanization. ok is false for anything that
// is not a consonant letter of an abugida script.
func (a *Augmenter) consonantBase(r rune) (string, bool) {
	if !unicode.IsLetter(r) {
		return "", false
	}
	script := a.ucd.Script(r)
	vowel := a.ucd.DefaultVowel(script)
	if vowel == "" {
		return "", false
	}
	rom, ok := a.tableRomanization(r)
	if !ok || !strings.HasSuffix(rom, vowel) || rom == vowel {
		return "", false
	}
	base := strings.TrimSuffix(rom, vowel)
	// independent vowel letters (अ → "a", आ → "aa") are not consonants;
	// their romanization is vowels throughout and must not be clipped
	if !strings.ContainsAny(base, "bcdfghjklmnpqrstvwxyz") {
		return "", false
	}
	return base, true
}

// signRomanization returns the rule-table romanization of a dependent
// vowel sign.
func (a *Augmenter) signRomanization(r rune) (string, bool) {
	return a.tableRomanization(r)
}

func (a *Augmenter) tableRomanization(r rune) (string, bool) {
	rs := a.rules.RulesFor(string(r))
	for _, rule := range rs {
		if len(rule.Lcodes) > 0 || rule.AltOnly || rule.Left != nil || rule.Right != nil {
			continue
		}
		return rule.T, true
	}
	if len(rs) > 0 {
		return rs[0].T, true
	}
	tracer().Debugf("indic: no table romanization for %#U", r)
	return "", false
}

// wordFinal reports whether position i ends a word: the following
// code point is missing, not a letter, or belongs to another script.
func (a *Augmenter) wordFinal(input []rune, i int) bool {
	if i+1 >= len(input) {
		return true
	}
	next := input[i+1]
	if !unicode.IsLetter(next) {
		return true
	}
	return a.ucd.Script(next) != a.ucd.Script(input[i])
}

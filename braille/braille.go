/*
Package braille romanizes Braille patterns (U+2800–U+28FF).

Content

Grade-1 (uncontracted) Braille maps one cell per letter. Two prefix
cells modulate the reading: the capital sign ⠠ upper-cases the
following letter, and the number sign ⠼ switches the cells a–j to the
digits 1…0 until a cell outside that range ends the run. The blank
cell ⠀ is a space.

The augmenter adds one edge per letter cell, one two-cell edge per
capitalized letter, and one edge spanning each complete number run.
Cells without a grade-1 reading are left to the identity fallback.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package braille

import (
	"strings"

	"github.com/npillmayer/uroman"
	"github.com/npillmayer/uroman/rules"
)

const (
	blankCell   = '⠀'
	capitalSign = '⠠'
	numberSign  = '⠼'
)

// cellScore ranks Braille readings above the identity fallback.
const cellScore = 0.5

var letters = map[rune]string{
	'⠁': "a", '⠃': "b", '⠉': "c", '⠙': "d", '⠑': "e",
	'⠋': "f", '⠛': "g", '⠓': "h", '⠊': "i", '⠚': "j",
	'⠅': "k", '⠇': "l", '⠍': "m", '⠝': "n", '⠕': "o",
	'⠏': "p", '⠟': "q", '⠗': "r", '⠎': "s", '⠞': "t",
	'⠥': "u", '⠧': "v", '⠺': "w", '⠭': "x", '⠽': "y", '⠵': "z",
	'⠂': ",", '⠲': ".", '⠖': "!", '⠦': "?", '⠤': "-",
}

// digits maps the cells a–j to 1…0 inside a number run.
var digits = map[rune]string{
	'⠁': "1", '⠃': "2", '⠉': "3", '⠙': "4", '⠑': "5",
	'⠋': "6", '⠛': "7", '⠓': "8", '⠊': "9", '⠚': "0",
}

// Augmenter romanizes Braille cells. It implements the
// uroman.Augmenter interface.
type Augmenter struct{}

// New creates a Braille augmenter.
func New() *Augmenter { return &Augmenter{} }

// Name is part of interface uroman.Augmenter.
func (a *Augmenter) Name() string { return "braille" }

// Augment is part of interface uroman.Augmenter.
func (a *Augmenter) Augment(lat *uroman.Lattice) {
	input := lat.Input()
	for i := 0; i < len(input); i++ {
		r := input[i]
		if r < 0x2800 || r > 0x28FF {
			continue
		}
		switch r {
		case blankCell:
			lat.AddEdge(uroman.Edge{
				Start: i, End: i + 1, Txt: " ",
				Type: uroman.TypeBraille, Score: cellScore,
			})
		case capitalSign:
			if i+1 < len(input) {
				if letter, ok := letters[input[i+1]]; ok {
					lat.AddEdge(uroman.Edge{
						Start: i, End: i + 2, Txt: strings.ToUpper(letter),
						Type:  uroman.TypeBraille,
						Score: rules.LengthBonus + cellScore,
					})
				}
			}
		case numberSign:
			if end, txt := numberRun(input, i); end > i+1 {
				lat.AddEdge(uroman.Edge{
					Start: i, End: end, Txt: txt,
					Type:  uroman.TypeBraille,
					Score: rules.LengthBonus*float64(end-i-1) + cellScore,
				})
			}
		default:
			if letter, ok := letters[r]; ok {
				lat.AddEdge(uroman.Edge{
					Start: i, End: i + 1, Txt: letter,
					Type: uroman.TypeBraille, Score: cellScore,
				})
			}
		}
	}
}

// numberRun collects the digit cells following a number sign at
// position i. It returns the end position and the rendered digits.
func numberRun(input []rune, i int) (int, string) {
	var sb strings.Builder
	j := i + 1
	for j < len(input) {
		d, ok := digits[input[j]]
		if !ok {
			break
		}
		sb.WriteString(d)
		j++
	}
	return j, sb.String()
}

package rules

import (
	"strings"
	"unicode"

	"github.com/npillmayer/uroman"
)

// Populate adds one edge for every (position, rule) pair where the
// rule's source pattern matches the lattice input and all contextual
// and language conditions hold, plus an identity fallback edge for
// every position. Populate never fails: code points not covered by
// any rule keep at least their fallback edge, which guarantees a path
// from 0 to N.
func (tb *Table) Populate(lat *uroman.Lattice) {
	input := lat.Input()
	hint := lat.Hint()
	n := len(input)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.Reset()
		for j := i; j < n; j++ {
			sb.WriteRune(input[j])
			prefix := sb.String()
			if !tb.prefixes.HasKeysWithPrefix(prefix) {
				break
			}
			for _, r := range tb.rules[prefix] {
				tb.tryRule(lat, r, i, j+1, input, hint)
			}
		}
		lat.AddEdge(tb.fallbackEdge(input, i))
	}
}

// tryRule verifies the conditions of rule r matching input[i:j] and
// adds the resulting edge.
func (tb *Table) tryRule(lat *uroman.Lattice, r *Rule, i, j int, input []rune, hint string) {
	langMatched := false
	if len(r.Lcodes) > 0 {
		switch {
		case hint != "" && contains(r.Lcodes, hint):
			langMatched = true
		case hint == "" && r.Default:
			// language-restricted default rule fires hintless
		default:
			return
		}
	}
	if !tb.contextHolds(r.Left, input, i, true) {
		return
	}
	if !tb.contextHolds(r.Right, input, j, false) {
		return
	}
	txt := r.T
	if r.TToned != "" && Mandarin(hint) {
		txt = r.TToned
	}
	score := RuleBase + LengthBonus*float64(r.Len()-1) + r.Score
	if langMatched {
		score += LangBonus
	}
	lat.AddEdge(uroman.Edge{
		Start:   i,
		End:     j,
		Txt:     txt,
		Type:    r.Type,
		Score:   score,
		AltOnly: r.AltOnly,
	})
}

// contextHolds verifies a context restriction at boundary position
// pos. For left contexts the neighborhood is input[..pos], for right
// contexts input[pos..].
func (tb *Table) contextHolds(ctx *Context, input []rune, pos int, left bool) bool {
	if ctx == nil {
		return true
	}
	if ctx.Class != "" {
		var neighbor rune
		var outside bool
		if left {
			outside = pos == 0
			if !outside {
				neighbor = input[pos-1]
			}
		} else {
			outside = pos >= len(input)
			if !outside {
				neighbor = input[pos]
			}
		}
		switch ctx.Class {
		case "wb":
			return outside || !unicode.IsLetter(neighbor)
		case "vowel":
			return !outside && isVowelLetter(neighbor)
		case "consonant":
			return !outside && unicode.IsLetter(neighbor) && !isVowelLetter(neighbor)
		case "digit":
			return !outside && unicode.IsDigit(neighbor)
		}
		return false
	}
	// literal context
	k := len(ctx.Lit)
	if left {
		if pos < k {
			return false
		}
		for x := 0; x < k; x++ {
			if input[pos-k+x] != ctx.Lit[x] {
				return false
			}
		}
		return true
	}
	if pos+k > len(input) {
		return false
	}
	for x := 0; x < k; x++ {
		if input[pos+x] != ctx.Lit[x] {
			return false
		}
	}
	return true
}

func isVowelLetter(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'а', 'е', 'ё', 'и', 'о', 'у', 'ы', 'э', 'ю', 'я',
		'α', 'ε', 'η', 'ι', 'ο', 'υ', 'ω':
		return true
	}
	return false
}

func contains(set []string, s string) bool {
	for _, x := range set {
		if x == s {
			return true
		}
	}
	return false
}

// fallbackEdge builds the identity edge for position i: plain ASCII
// passes through, ignorables and combining marks vanish, letters with
// a derivable Latin base are diacritic-stripped, anything else passes
// through unchanged (symbols, unromanizable letters).
func (tb *Table) fallbackEdge(input []rune, i int) uroman.Edge {
	r := input[i]
	var txt string
	switch {
	case r < 0x80:
		txt = string(r)
	case tb.ucd.IsIgnorable(r):
		txt = ""
	case unicode.Is(unicode.Mn, r):
		txt = ""
	default:
		if unicode.IsLetter(r) {
			if base, ok := tb.ucd.StripDiacritics(r); ok {
				txt = base
				break
			}
		}
		txt = string(r)
	}
	return uroman.Edge{
		Start: i,
		End:   i + 1,
		Txt:   txt,
		Type:  uroman.TypeFallback,
		Score: uroman.FallbackScore,
	}
}

/*
Package numeral composes runs of numeric code points into value edges.

Content

Numbers appear in many shapes across scripts: positional digit runs
(१२३, ٤٥٦, ๑๒๓), additive systems (Roman numeral letters), the mixed
digit-and-magnitude phrases of Chinese (二千五百 = 2500, with the
large powers 万, 億, 兆, 京 multiplying whole sections), vulgar
fraction characters (½) and the 分之 fraction construction (三分之二 =
2/3, 百分之五十 = 50%).

The augmenter detects maximal runs of numeric code points, evaluates
them with 64-bit integer arithmetic (magnitudes up to 10¹⁶ compose
exactly), and adds one edge spanning each run. Composition is
try-and-discard: a candidate that does not evaluate — a fraction
connector without a right operand, say — is simply not committed, and
the affected code points keep their per-character romanizations. The
pass never fails a line.

Numeric properties of non-positional characters come from an embedded
JSONL file; positional digits need no data since general-category-Nd
code points encode their value in their block arithmetic.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package numeral

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/uroman"
	"github.com/npillmayer/uroman/internal/ucd"
	"github.com/npillmayer/uroman/rules"
)

// tracer traces to uroman.script .
func tracer() tracing.Trace {
	return tracing.Select("uroman.script")
}

//go:embed numprops.jsonl
var numpropsBlob string

// Composite numeric edges carry a bonus on top of the span-length
// bonus so that they outrank the per-character reading chain.
const (
	numberBonus   = 0.5
	fractionBonus = 1.0
)

// props holds the numeric properties of one non-positional character.
type props struct {
	Txt        string `json:"txt"`
	Value      int64  `json:"value"`
	Base       int64  `json:"base"`
	LargePower bool   `json:"is-large-power"`
	Fraction   string `json:"fraction"`
	Type       string `json:"type"`
	Script     string `json:"script"`

	fracNum, fracDen int64
}

// Augmenter composes numeric runs. It implements the uroman.Augmenter
// interface.
type Augmenter struct {
	ucd   *ucd.Table
	rules *rules.Table
	props map[rune]*props
}

// New parses the embedded numeric properties and returns the
// augmenter. Errors in the embedded file are fatal at construction.
func New(u *ucd.Table, tb *rules.Table) (*Augmenter, error) {
	a := &Augmenter{ucd: u, rules: tb, props: make(map[rune]*props)}
	lineno := 0
	for _, line := range strings.Split(numpropsBlob, "\n") {
		lineno++
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p := &props{}
		if err := json.Unmarshal([]byte(line), p); err != nil {
			return nil, fmt.Errorf("numprops line %d: %w", lineno, err)
		}
		if p.Txt == "" {
			return nil, fmt.Errorf("numprops line %d: missing txt", lineno)
		}
		if p.Fraction != "" {
			num, den, found := strings.Cut(p.Fraction, "/")
			if !found {
				return nil, fmt.Errorf("numprops line %d: malformed fraction %q", lineno, p.Fraction)
			}
			var err error
			if p.fracNum, err = strconv.ParseInt(num, 10, 64); err != nil {
				return nil, fmt.Errorf("numprops line %d: malformed fraction %q", lineno, p.Fraction)
			}
			if p.fracDen, err = strconv.ParseInt(den, 10, 64); err != nil || p.fracDen == 0 {
				return nil, fmt.Errorf("numprops line %d: malformed fraction %q", lineno, p.Fraction)
			}
		}
		a.props[[]rune(p.Txt)[0]] = p
	}
	tracer().Infof("numeral: loaded %d numeric property entries", len(a.props))
	return a, nil
}

// Name is part of interface uroman.Augmenter.
func (a *Augmenter) Name() string { return "numeral" }

// A numRun is a maximal run of numeric code points plus its evaluated
// value. Runs are candidates; whether a run is committed as an edge
// is decided separately, and fraction composition consumes runs that
// would not be committed on their own (a lone 百 romanizes as "bai",
// but serves as the denominator 100 of 百分之五十).
type numRun struct {
	start, end int
	value      int64
	digitsOnly bool // pure positional digit run, render per digit
	roman      bool
	singleBase bool // single magnitude character, e.g. a lone 百
}

// Augment is part of interface uroman.Augmenter.
func (a *Augmenter) Augment(lat *uroman.Lattice) {
	runs := a.collectRuns(lat.Input())
	consumed := a.composeFractions(lat, runs)
	for _, r := range runs {
		if consumed[r.start] {
			continue
		}
		if r.singleBase {
			continue // a lone magnitude word reads better as its word
		}
		a.commitRun(lat, r)
	}
	a.composeVulgarFractions(lat, runs)
}

// collectRuns finds the maximal numeric runs of the line and
// evaluates each. Failed evaluations (overflow) yield no run for
// that stretch; composition is try-and-discard.
func (a *Augmenter) collectRuns(input []rune) []*numRun {
	var runs []*numRun
	i := 0
	for i < len(input) {
		if !a.isNumeric(input[i]) {
			i++
			continue
		}
		j := i
		for j < len(input) && a.isNumeric(input[j]) {
			j++
		}
		if r, ok := a.evaluate(input, i, j); ok {
			runs = append(runs, r)
		}
		i = j
	}
	return runs
}

// isNumeric reports whether a code point participates in numeric run
// composition: a positional digit or a character with value/base
// properties. Fraction characters compose separately.
func (a *Augmenter) isNumeric(r rune) bool {
	if _, ok := a.ucd.Digit(r); ok {
		return true
	}
	p, ok := a.props[r]
	return ok && p.Fraction == ""
}

// evaluate computes the value of input[i:j]. Positional digits extend
// the current group left-to-right; a magnitude base closes the group
// (五百 → 500); a large power multiplies everything accumulated since
// the last larger power (二千五百万 → 25 000 000).
func (a *Augmenter) evaluate(input []rune, i, j int) (*numRun, bool) {
	r := &numRun{start: i, end: j, digitsOnly: true}
	var grand, section, cur int64
	nbase := 0
	hasDigit := false
	for k := i; k < j; k++ {
		c := input[k]
		if d, ok := a.ucd.Digit(c); ok {
			if cur > (1<<62)/10 {
				return nil, false // overflow, discard candidate
			}
			cur = cur*10 + int64(d)
			hasDigit = true
			continue
		}
		p := a.props[c]
		if p.Type == "roman" {
			r.roman = true
			r.digitsOnly = false
			grand += p.Value
			continue
		}
		r.digitsOnly = false
		switch {
		case p.LargePower:
			nbase++
			// value accumulated under smaller large powers (一万亿)
			low := grand % p.Base
			grand -= low
			amount := low + section + cur
			if amount == 0 {
				amount = 1
			}
			if amount > (1<<62)/p.Base {
				return nil, false
			}
			grand += amount * p.Base
			section, cur = 0, 0
		case p.Base > 0:
			nbase++
			amount := cur
			if amount == 0 {
				amount = 1
			}
			section += amount * p.Base
			cur = 0
		default:
			// plain digit word (三)
			cur = cur*10 + p.Value
		}
	}
	r.value = grand + section + cur
	if r.roman && (nbase > 0 || hasDigit) {
		return nil, false // mixed Roman/positional runs do not compose
	}
	r.singleBase = j-i == 1 && nbase == 1
	return r, true
}

// commitRun adds the numeric edge for a run. Pure digit runs render
// digit by digit, which preserves leading zeros; everything else
// renders its evaluated value.
func (a *Augmenter) commitRun(lat *uroman.Lattice, r *numRun) {
	var txt string
	if r.digitsOnly {
		var sb strings.Builder
		for _, c := range lat.Input()[r.start:r.end] {
			d, _ := a.ucd.Digit(c)
			sb.WriteByte(byte('0' + d))
		}
		txt = sb.String()
	} else {
		txt = strconv.FormatInt(r.value, 10)
	}
	lat.AddEdge(uroman.Edge{
		Start: r.start,
		End:   r.end,
		Txt:   txt,
		Type:  uroman.TypeNumber,
		Score: rules.LengthBonus*float64(r.end-r.start-1) + numberBonus,
		Orig:  string(lat.Input()[r.start:r.end]),
	})
}

// composeFractions detects <denominator> <connector> <numerator>
// constructions (百分之五十 = 50%) and commits one edge per complete
// construction. Incomplete constructions — the numerator missing or
// not numeric — are abandoned without a trace, and the line falls
// back to per-character romanization. The returned set holds the
// start positions of runs consumed by a committed fraction.
func (a *Augmenter) composeFractions(lat *uroman.Lattice, runs []*numRun) map[int]bool {
	consumed := make(map[int]bool)
	input := lat.Input()
	byEnd := make(map[int]*numRun, len(runs))
	byStart := make(map[int]*numRun, len(runs))
	for _, r := range runs {
		byEnd[r.end] = r
		byStart[r.start] = r
	}
	for pos := 0; pos < len(input); pos++ {
		connector, clen := a.connectorAt(input, pos)
		if clen == 0 {
			continue
		}
		left, okL := byEnd[pos]
		right, okR := byStart[pos+clen]
		if !okL || !okR {
			tracer().Debugf("numeral: abandoning incomplete fraction at %d (%s)", pos, connector)
			continue
		}
		if left.value == 0 {
			continue // zero denominator never composes
		}
		var txt string
		if left.value == 100 {
			txt = fmt.Sprintf("%d%%", right.value)
		} else {
			txt = fmt.Sprintf("%d/%d", right.value, left.value)
		}
		lat.AddEdge(uroman.Edge{
			Start: left.start,
			End:   right.end,
			Txt:   txt,
			Type:  uroman.TypeFraction,
			Score: rules.LengthBonus*float64(right.end-left.start-1) + fractionBonus,
			Orig:  string(input[left.start:right.end]),
		})
		consumed[left.start] = true
		consumed[right.start] = true
	}
	return consumed
}

// connectorAt matches a fraction connector at input[pos:] and returns
// it with its rune length.
func (a *Augmenter) connectorAt(input []rune, pos int) (string, int) {
	// connectors are short (分之); try lengths 1…3
	for l := 3; l >= 1; l-- {
		if pos+l > len(input) {
			continue
		}
		s := string(input[pos : pos+l])
		if a.rules.IsFractionConnector(s) {
			return s, l
		}
	}
	return "", 0
}

// composeVulgarFractions adds edges for precomposed fraction
// characters (½ → "1/2"), merging an immediately preceding integer
// run (2½ → "2 1/2").
func (a *Augmenter) composeVulgarFractions(lat *uroman.Lattice, runs []*numRun) {
	input := lat.Input()
	byEnd := make(map[int]*numRun, len(runs))
	for _, r := range runs {
		byEnd[r.end] = r
	}
	for i, c := range input {
		p, ok := a.props[c]
		if !ok || p.Fraction == "" {
			continue
		}
		frac := fmt.Sprintf("%d/%d", p.fracNum, p.fracDen)
		lat.AddEdge(uroman.Edge{
			Start: i,
			End:   i + 1,
			Txt:   frac,
			Type:  uroman.TypeFraction,
			Score: numberBonus,
			Orig:  string(c),
		})
		if left, ok := byEnd[i]; ok && !left.singleBase {
			lat.AddEdge(uroman.Edge{
				Start: left.start,
				End:   i + 1,
				Txt:   fmt.Sprintf("%d %s", left.value, frac),
				Type:  uroman.TypeFraction,
				Score: rules.LengthBonus*float64(i+1-left.start-1) + fractionBonus,
				Orig:  string(input[left.start : i+1]),
			})
		}
	}
}

/*
Package rules holds the static romanization rule table and the matcher
that projects it onto a lattice.

The table is parsed from embedded data files at construction time: the
manual romanization table (one ::slot-delimited rule per line) and the
Chinese→pinyin table. A handful of rules (Thai cancellation sequences)
are generated programmatically during load, the way the original
uroman data pipeline does. Errors in the embedded files are fatal at
construction; afterwards the table is frozen and safe for any number
of concurrent readers.

Rule lookup is prefix-driven: every rule source string is registered
in a trie, and the matcher extends a candidate match at position i
only while the trie still knows keys with the current prefix. Within
equal spans, rules compete by score; longer matches outrank shorter
ones via a per-code-point length bonus.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rules

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/uroman"
	"github.com/npillmayer/uroman/internal/ucd"
)

// tracer traces to uroman.rules .
func tracer() tracing.Trace {
	return tracing.Select("uroman.rules")
}

//go:embed data/romanization.txt
var romBlob string

//go:embed data/pinyin.txt
var pinyinBlob string

// Scoring policy of the matcher. Longer matches are preferred via a
// bonus per additional code point of the source pattern; rules matched
// by language hint outrank language-agnostic ones; explicit per-rule
// scores add on top. The identity fallback sits at
// uroman.FallbackScore, below every rule.
const (
	LengthBonus = 1.0 // per source code point beyond the first
	LangBonus   = 0.5 // rule restricted to the active language hint
	RuleBase    = 0.0 // base score of an unconditional single-rune rule
)

// A Context restricts a rule to a left or right neighborhood. Either
// Lit is a literal code-point sequence, or Class names a character
// class: "vowel", "consonant", "digit" or "wb" (word boundary).
type Context struct {
	Lit   []rune
	Class string
}

// A Rule maps a source code-point sequence to one candidate
// romanization. Rules are immutable after load.
type Rule struct {
	S       string   // source pattern, non-empty
	T       string   // target romanization, possibly empty
	TToned  string   // tone-marked target (pinyin), "" if none
	Score   float64  // explicit score on top of the matcher policy
	Lcodes  []string // normalized language restriction set, nil = any
	Default bool     // fires without hint despite Lcodes
	Left    *Context // left-context restriction, nil = none
	Right   *Context // right-context restriction, nil = none
	AltOnly bool     // alternative-only: never on the best path
	Type    string   // edge type tag
	Prov    string   // provenance: "man", "pinyin", "auto"
	srunes  []rune
}

// Len returns the source pattern length in code points.
func (r *Rule) Len() int { return len(r.srunes) }

// Table is the frozen rule table plus its prefix index.
type Table struct {
	ucd        *ucd.Table
	prefixes   *trie.Trie
	rules      map[string][]*Rule
	connectors map[string]bool // fraction connectors, e.g. 分之
	nrules     int
}

// Load parses the embedded rule files and returns the frozen table.
func Load(u *ucd.Table) (*Table, error) {
	tb := &Table{
		ucd:        u,
		prefixes:   trie.New(),
		rules:      make(map[string][]*Rule),
		connectors: make(map[string]bool),
	}
	if err := tb.loadRomFile(romBlob, "man"); err != nil {
		return nil, err
	}
	if err := tb.loadPinyinFile(pinyinBlob); err != nil {
		return nil, err
	}
	tb.addThaiCancellation()
	tracer().Infof("rules: loaded %d rules for %d source patterns", tb.nrules, len(tb.rules))
	return tb, nil
}

// RulesFor returns the rules whose source pattern is exactly s.
func (tb *Table) RulesFor(s string) []*Rule { return tb.rules[s] }

// IsFractionConnector reports whether s is a fraction connector such
// as 分之 (the numeral augmenter composes across it).
func (tb *Table) IsFractionConnector(s string) bool { return tb.connectors[s] }

// NumRules returns the total number of loaded rules.
func (tb *Table) NumRules() int { return tb.nrules }

// add appends a rule to its bucket. Buckets preserve file listing
// order, and the lattice keeps the first of two identical edges, so
// listing order is the natural last tie-break.
func (tb *Table) add(r *Rule) {
	r.srunes = []rune(r.S)
	tb.nrules++
	tb.rules[r.S] = append(tb.rules[r.S], r)
	tb.prefixes.Add(r.S, nil)
}

// loadRomFile parses the manual romanization table. One rule per
// line; blank lines and #-comments are skipped; structural errors are
// fatal.
func (tb *Table) loadRomFile(blob, prov string) error {
	lineno := 0
	for _, line := range strings.Split(blob, "\n") {
		lineno++
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r, err := parseRuleLine(line, prov)
		if err != nil {
			return fmt.Errorf("rule file line %d: %w", lineno, err)
		}
		if _, ok := ucd.SlotValue(line, "fraction-connector"); ok {
			tb.connectors[r.S] = true
		}
		tb.add(r)
	}
	return nil
}

func parseRuleLine(line, prov string) (*Rule, error) {
	s, ok := ucd.SlotValue(line, "s")
	if !ok || s == "" {
		return nil, fmt.Errorf("missing ::s slot in %q", line)
	}
	t, ok := ucd.SlotValue(line, "t")
	if !ok {
		return nil, fmt.Errorf("missing ::t slot in %q", line)
	}
	r := &Rule{S: s, T: Dequote(t), Type: uroman.TypeRule, Prov: prov}
	if v, ok := ucd.SlotValue(line, "type"); ok && v != "" {
		r.Type = v
	}
	if v, ok := ucd.SlotValue(line, "score"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("malformed ::score %q", v)
		}
		r.Score = f
	}
	if v, ok := ucd.SlotValue(line, "lcode"); ok {
		for _, code := range strings.Split(v, ",") {
			n := NormLang(strings.TrimSpace(code))
			if n == "" {
				return nil, fmt.Errorf("malformed ::lcode %q", v)
			}
			r.Lcodes = append(r.Lcodes, n)
		}
	}
	if _, ok := ucd.SlotValue(line, "default"); ok {
		r.Default = true
	}
	if _, ok := ucd.SlotValue(line, "alt-only"); ok {
		r.AltOnly = true
	}
	var err error
	if v, ok := ucd.SlotValue(line, "left"); ok {
		if r.Left, err = parseContext(v); err != nil {
			return nil, err
		}
	}
	if v, ok := ucd.SlotValue(line, "right"); ok {
		if r.Right, err = parseContext(v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func parseContext(v string) (*Context, error) {
	if strings.HasPrefix(v, ":") && strings.HasSuffix(v, ":") && len(v) > 2 {
		class := v[1 : len(v)-1]
		switch class {
		case "vowel", "consonant", "digit", "wb":
			return &Context{Class: class}, nil
		}
		return nil, fmt.Errorf("unknown context class %q", v)
	}
	if v == "" {
		return nil, fmt.Errorf("empty context pattern")
	}
	return &Context{Lit: []rune(v)}, nil
}

// loadPinyinFile parses the Chinese→pinyin table. Lines hold a Han
// source (single character or word) followed by whitespace-separated
// tone-marked readings; the first reading is the default, any further
// ones become alternative-only rules. De-accented forms are derived
// by NFD-decomposing and dropping combining marks (ü → u).
func (tb *Table) loadPinyinFile(blob string) error {
	lineno := 0
	for _, line := range strings.Split(blob, "\n") {
		lineno++
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return fmt.Errorf("pinyin file line %d: want source and reading, have %q", lineno, line)
		}
		src := fields[0]
		for i, toned := range fields[1:] {
			r := &Rule{
				S:      src,
				T:      DeAccentPinyin(toned),
				TToned: toned,
				Prov:   "pinyin",
				Type:   uroman.TypePinyin,
			}
			if i > 0 {
				r.AltOnly = true
				r.Type = uroman.TypePinyinAlt
			} else if len([]rune(src)) == 1 {
				// default reading of a single ideograph gets a nudge
				// over competing single-rune rules
				r.Score = 0.2
			}
			tb.add(r)
		}
	}
	return nil
}

// DeAccentPinyin strips tone marks from a pinyin syllable:
// shì → shi, lǜ → lu.
func DeAccentPinyin(s string) string {
	var sb strings.Builder
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if r == 'ü' {
			r = 'u'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// addThaiCancellation generates empty-target rules for Thai sequences
// ending in THANTHAKHAT (U+0E4C), which marks the preceding letter
// (or letter plus vowel modifier) as silent.
func (tb *Table) addThaiCancellation() {
	const thanthakhat = '์'
	for cp := rune(0x0E01); cp < thanthakhat; cp++ {
		s := string([]rune{cp, thanthakhat})
		if len(tb.rules[s]) == 0 {
			tb.add(&Rule{S: s, T: "", Prov: "auto", Type: uroman.TypeRule})
		}
	}
	var modifiers []rune
	modifiers = append(modifiers, 'ั', '็')
	for cp := rune(0x0E33); cp <= 0x0E3A; cp++ {
		modifiers = append(modifiers, cp)
	}
	for c := rune(0x0E01); c < 0x0E2F; c++ {
		for _, v := range modifiers {
			s := string([]rune{c, v, thanthakhat})
			if len(tb.rules[s]) == 0 {
				tb.add(&Rule{S: s, T: "", Prov: "auto", Type: uroman.TypeRule})
			}
		}
	}
}

// Dequote removes matching double quotes around a target value, which
// the data files use to protect leading or trailing spaces
// (::t ", "). A lone quote stays as it is.
func Dequote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// NormLang canonicalizes a language hint to its base form: "jpn" and
// "ja" both normalize to "ja". Unknown or empty hints normalize to ""
// and are treated as absent, never as an error.
func NormLang(code string) string {
	if code == "" {
		return ""
	}
	base, err := language.ParseBase(code)
	if err != nil {
		return ""
	}
	return base.String()
}

// Mandarin reports whether a normalized hint selects Mandarin Chinese
// (tone marks are then retained in pinyin output).
func Mandarin(hint string) bool {
	return hint == "zh" || hint == "cmn"
}

/*
Package ucd provides the per-code-point descriptor table of the
romanizer: script membership, general category, decimal digit values,
canonical decomposition and the name-derived (base, modifiers) pair
used for diacritic stripping.

Script and category lookups are backed by the range tables of the
standard library's unicode package; script metadata which the standard
library does not carry (abugida default vowels, virama and vowel-sign
ranges, the set of silently ignorable code points) is parsed from an
embedded properties file at construction time. Errors in the embedded
file are fatal at construction; after construction the table is frozen
and safe for concurrent readers.
*/
package ucd

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer traces to uroman.core .
func tracer() tracing.Trace {
	return tracing.Select("uroman.core")
}

//go:embed props.txt
var propsBlob string

// runeRange is a closed interval of code points.
type runeRange struct {
	lo, hi rune
}

func (rr runeRange) contains(r rune) bool { return r >= rr.lo && r <= rr.hi }

// scriptMeta holds the per-script properties from the embedded blob.
type scriptMeta struct {
	name         string
	ranges       []runeRange
	defaultVowel string      // abugida inherent vowel, "" for alphabets
	vowelSigns   []runeRange // dependent vowel signs
	viramas      []runeRange // vowel-suppression signs
}

// Table is the frozen descriptor table. Zero value is not usable;
// construct with Load.
type Table struct {
	scripts   []scriptMeta
	byName    map[string]*scriptMeta
	ignorable []runeRange
}

// Load parses the embedded properties blob and returns the descriptor
// table. Load fails only on structural corruption of the blob.
func Load() (*Table, error) {
	t := &Table{byName: make(map[string]*scriptMeta)}
	lineno := 0
	for _, line := range strings.Split(propsBlob, "\n") {
		lineno++
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if v, ok := SlotValue(line, "ignorable"); ok {
			ranges, err := parseRanges(v)
			if err != nil {
				return nil, fmt.Errorf("ucd props line %d: %w", lineno, err)
			}
			t.ignorable = append(t.ignorable, ranges...)
			continue
		}
		name, ok := SlotValue(line, "script-name")
		if !ok {
			return nil, fmt.Errorf("ucd props line %d: no ::script-name or ::ignorable slot", lineno)
		}
		meta := scriptMeta{name: name}
		if v, ok := SlotValue(line, "range"); ok {
			ranges, err := parseRanges(v)
			if err != nil {
				return nil, fmt.Errorf("ucd props line %d: %w", lineno, err)
			}
			meta.ranges = ranges
		}
		if v, ok := SlotValue(line, "abugida-default-vowel"); ok {
			meta.defaultVowel = v
		}
		if v, ok := SlotValue(line, "vowel-signs"); ok {
			ranges, err := parseRanges(v)
			if err != nil {
				return nil, fmt.Errorf("ucd props line %d: %w", lineno, err)
			}
			meta.vowelSigns = ranges
		}
		if v, ok := SlotValue(line, "virama"); ok {
			ranges, err := parseRanges(v)
			if err != nil {
				return nil, fmt.Errorf("ucd props line %d: %w", lineno, err)
			}
			meta.viramas = ranges
		}
		t.scripts = append(t.scripts, meta)
	}
	for i := range t.scripts {
		t.byName[strings.ToLower(t.scripts[i].name)] = &t.scripts[i]
	}
	tracer().Infof("ucd: loaded %d script descriptors", len(t.scripts))
	return t, nil
}

// SlotValue extracts the value of a ::slot from a double-colon
// delimited line, e.g. SlotValue("::s か ::t ka", "t") = ("ka", true).
// The value reaches up to the next "::" or end of line and is
// whitespace-trimmed. A slot present without a value yields ("", true).
func SlotValue(line, slot string) (string, bool) {
	needle := "::" + slot
	idx := 0
	for {
		j := strings.Index(line[idx:], needle)
		if j < 0 {
			return "", false
		}
		pos := idx + j + len(needle)
		// the slot name must end here, not be a prefix of a longer one
		if pos < len(line) && line[pos] != ' ' && line[pos] != '\t' {
			idx = pos
			continue
		}
		rest := line[pos:]
		if k := strings.Index(rest, "::"); k >= 0 {
			rest = rest[:k]
		}
		return strings.TrimSpace(rest), true
	}
}

// parseRanges parses "0900-097F;0A01;0B3E-0B4C" into rune ranges.
func parseRanges(s string) ([]runeRange, error) {
	var ranges []runeRange
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, found := strings.Cut(part, "-")
		l, err := strconv.ParseUint(lo, 16, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed code point %q", lo)
		}
		h := l
		if found {
			h, err = strconv.ParseUint(hi, 16, 32)
			if err != nil || h < l {
				return nil, fmt.Errorf("malformed range %q", part)
			}
		}
		ranges = append(ranges, runeRange{lo: rune(l), hi: rune(h)})
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("empty range list %q", s)
	}
	return ranges, nil
}

// --- Lookups ----------------------------------------------------------

// Script returns the script name of a code point, e.g. "Devanagari",
// "Han", "Hangul", "Latin". Scripts from the embedded blob take
// precedence; otherwise the standard library's script tables decide.
// The empty string means unassigned/unknown.
func (t *Table) Script(r rune) string {
	for i := range t.scripts {
		for _, rr := range t.scripts[i].ranges {
			if rr.contains(r) {
				return t.scripts[i].name
			}
		}
	}
	for name, table := range unicode.Scripts {
		if unicode.Is(table, r) {
			return name
		}
	}
	return ""
}

// Category returns the two-letter Unicode general category of a code
// point ("Lu", "Nd", "Po", …), or "" if unassigned.
func (t *Table) Category(r rune) string {
	for name, table := range unicode.Categories {
		if len(name) != 2 || name == "LC" {
			continue // skip the category groupings
		}
		if unicode.Is(table, r) {
			return name
		}
	}
	return ""
}

// IsLetter, IsMark, IsNumber are category conveniences.
func (t *Table) IsLetter(r rune) bool { return unicode.IsLetter(r) }
func (t *Table) IsMark(r rune) bool   { return unicode.IsMark(r) }
func (t *Table) IsNumber(r rune) bool { return unicode.IsNumber(r) }

// Digit returns the decimal digit value of a code point of general
// category Nd. All Nd code points sit in contiguous 0…9 runs, some of
// them adjacent (mathematical digits), so the value is the distance to
// the start of the contiguous Nd stretch, modulo 10.
func (t *Table) Digit(r rune) (int, bool) {
	if !unicode.Is(unicode.Nd, r) {
		return 0, false
	}
	v := 0
	for k := rune(1); unicode.Is(unicode.Nd, r-k); k++ {
		v++
	}
	return v % 10, true
}

// Decompose returns the canonical (NFD) decomposition of a code point,
// or nil if the code point decomposes to itself.
func (t *Table) Decompose(r rune) []rune {
	d := []rune(norm.NFD.String(string(r)))
	if len(d) == 1 && d[0] == r {
		return nil
	}
	return d
}

// IsIgnorable reports whether a code point is silently dropped during
// romanization (zero-width and directional marks, variation selectors,
// BOM; the full set is declared in the embedded blob) or is a format
// control character.
func (t *Table) IsIgnorable(r rune) bool {
	for _, rr := range t.ignorable {
		if rr.contains(r) {
			return true
		}
	}
	return unicode.Is(unicode.Cf, r)
}

// IsVowelSign reports whether a code point is a dependent vowel sign
// of an abugida script.
func (t *Table) IsVowelSign(r rune) bool {
	for i := range t.scripts {
		for _, rr := range t.scripts[i].vowelSigns {
			if rr.contains(r) {
				return true
			}
		}
	}
	return false
}

// IsVirama reports whether a code point is a vowel-suppression sign.
func (t *Table) IsVirama(r rune) bool {
	for i := range t.scripts {
		for _, rr := range t.scripts[i].viramas {
			if rr.contains(r) {
				return true
			}
		}
	}
	return false
}

// DefaultVowel returns the inherent vowel of an abugida script, or ""
// for scripts that spell all vowels explicitly.
func (t *Table) DefaultVowel(script string) string {
	if meta, ok := t.byName[strings.ToLower(script)]; ok {
		return meta.defaultVowel
	}
	return ""
}

// IsAbugida reports whether the script of r carries an inherent vowel.
func (t *Table) IsAbugida(r rune) bool {
	return t.DefaultVowel(t.Script(r)) != ""
}

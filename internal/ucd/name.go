package ucd

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// Unicode character names encode diacritics as modifier phrases, e.g.
//
//	LATIN SMALL LETTER A WITH DIAERESIS          → base "a", mods [diaeresis]
//	LATIN SMALL LETTER O WITH STROKE AND ACUTE   → base "o", mods [stroke, acute]
//
// BaseAndModifiers splits a letter's name on the standard modifier
// words and returns the lower-cased base together with the ordered
// modifier tags. ok is false when no base can be derived (the code
// point is not a letter, or its name has no LETTER/SYLLABLE element
// and it does not decompose).
func (t *Table) BaseAndModifiers(r rune) (base string, modifiers []string, ok bool) {
	if !unicode.IsLetter(r) {
		return "", nil, false
	}
	name := runenames.Name(r)
	for _, marker := range []string{" LETTER ", " SYLLABLE ", " VOWEL SIGN "} {
		modifiers = nil
		if i := strings.Index(name, marker); i >= 0 {
			rest := name[i+len(marker):]
			basePart, modPart, _ := strings.Cut(rest, " WITH ")
			base = strings.ToLower(strings.TrimSpace(basePart))
			// base tokens like "A", "AE", "SCHWA"; multi-word leftovers
			// ("SIGN TA" and the like) keep only their last word
			if j := strings.LastIndexByte(base, ' '); j >= 0 {
				base = base[j+1:]
			}
			if strings.Contains(name, " CAPITAL ") {
				base = strings.ToUpper(base[:1]) + base[1:]
			}
			for _, m := range strings.Split(modPart, " AND ") {
				m = strings.ToLower(strings.TrimSpace(m))
				if m != "" {
					modifiers = append(modifiers, strings.ReplaceAll(m, " ", "-"))
				}
			}
			if isRomanBase(base) {
				return base, modifiers, true
			}
		}
	}
	// fall back to canonical decomposition: base is the first starter
	if d := t.Decompose(r); len(d) > 0 && d[0] != r {
		if d[0] < 0x80 && unicode.IsLetter(d[0]) {
			for _, m := range d[1:] {
				modifiers = append(modifiers, strings.ToLower(runenames.Name(m)))
			}
			return string(d[0]), modifiers, true
		}
		if b, mods, ok := t.BaseAndModifiers(d[0]); ok {
			return b, append(mods, modifiers...), true
		}
	}
	return "", nil, false
}

// StripDiacritics returns the bare base of a letter, with every
// modifier removed: 'ä' → "a", 'é' → "e", 'ø' → "o". ok is false when
// the letter has no derivable Latin base.
func (t *Table) StripDiacritics(r rune) (string, bool) {
	base, _, ok := t.BaseAndModifiers(r)
	if !ok {
		return "", false
	}
	return base, true
}

// isRomanBase reports whether a derived base consists of ASCII letters
// only, one to three of them. Longer name-derived tokens of non-Latin
// letters ("ALEF") are rejected; short ones ("KA") are accepted as
// they are.
func isRomanBase(s string) bool {
	if s == "" || len(s) > 3 {
		return false
	}
	for _, c := range s {
		if c > unicode.MaxASCII || !unicode.IsLetter(c) {
			return false
		}
	}
	return true
}

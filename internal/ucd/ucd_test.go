package ucd

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLoadProps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	tab, err := Load()
	if err != nil {
		t.Fatalf("loading embedded props: %v", err)
	}
	if len(tab.scripts) == 0 {
		t.Fatal("no script descriptors loaded")
	}
}

func TestSlotValue(t *testing.T) {
	cases := []struct {
		line, slot, want string
		ok               bool
	}{
		{"::s か ::t ka", "t", "ka", true},
		{"::s か ::t ka", "s", "か", true},
		{"::s1 of course ::s2 ::cost 0.3", "cost", "0.3", true},
		{"::s1 of course ::s2 ::cost 0.3", "s2", "", true},
		{"::s か ::t ka", "x", "", false},
	}
	for _, c := range cases {
		got, ok := SlotValue(c.line, c.slot)
		if got != c.want || ok != c.ok {
			t.Errorf("SlotValue(%q, %q) = (%q, %v), want (%q, %v)",
				c.line, c.slot, got, ok, c.want, c.ok)
		}
	}
}

func TestScriptLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	tab, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		r    rune
		want string
	}{
		{'क', "Devanagari"},
		{'a', "Latin"},
		{'世', "Han"},
		{'안', "Hangul"},
		{'ᚺ', "Runic"},
		{'ก', "Thai"},
	}
	for _, c := range cases {
		if got := tab.Script(c.r); got != c.want {
			t.Errorf("Script(%#U) = %q, want %q", c.r, got, c.want)
		}
	}
}

func TestAbugidaMetadata(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	tab, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !tab.IsVirama('्') {
		t.Error("Devanagari virama not recognized")
	}
	if !tab.IsVowelSign('ि') {
		t.Error("Devanagari vowel sign I not recognized")
	}
	if tab.IsVowelSign('क') {
		t.Error("consonant KA misclassified as vowel sign")
	}
	if v := tab.DefaultVowel("Devanagari"); v != "a" {
		t.Errorf("DefaultVowel(Devanagari) = %q, want \"a\"", v)
	}
	if v := tab.DefaultVowel("Latin"); v != "" {
		t.Errorf("DefaultVowel(Latin) = %q, want \"\"", v)
	}
}

func TestDigitValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	tab, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		r    rune
		want int
	}{
		{'0', 0}, {'7', 7},
		{'١', 1},      // Arabic-Indic
		{'३', 3},      // Devanagari
		{'๕', 5},      // Thai
		{'０', 0},     // fullwidth
	}
	for _, c := range cases {
		got, ok := tab.Digit(c.r)
		if !ok || got != c.want {
			t.Errorf("Digit(%#U) = (%d, %v), want (%d, true)", c.r, got, ok, c.want)
		}
	}
	if _, ok := tab.Digit('x'); ok {
		t.Error("Digit('x') should not be a digit")
	}
}

func TestBaseAndModifiers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	tab, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		r    rune
		base string
	}{
		{'ä', "a"},
		{'é', "e"},
		{'ø', "o"},
		{'ñ', "n"},
		{'Å', "A"},
		{'ç', "c"},
	}
	for _, c := range cases {
		base, _, ok := tab.BaseAndModifiers(c.r)
		if !ok || base != c.base {
			t.Errorf("BaseAndModifiers(%#U) = (%q, ok=%v), want base %q", c.r, base, ok, c.base)
		}
	}
	if _, _, ok := tab.BaseAndModifiers('!'); ok {
		t.Error("punctuation should not yield a base letter")
	}
}

func TestIgnorable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	tab, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range []rune{'​', '‎', '\ufeff', '️'} {
		if !tab.IsIgnorable(r) {
			t.Errorf("%#U should be ignorable", r)
		}
	}
	if tab.IsIgnorable('a') {
		t.Error("'a' must not be ignorable")
	}
}

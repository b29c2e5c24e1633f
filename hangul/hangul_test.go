package hangul

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/uroman"
)

func TestSyllableDecomposition(t *testing.T) {
	a := New()
	cases := []struct {
		r    rune
		want string
	}{
		{'안', "an"},
		{'녕', "nyeong"},
		{'하', "ha"},
		{'세', "se"},
		{'요', "yo"},
		{'김', "gim"},
		{'한', "han"},
		{'글', "geul"},
	}
	for _, c := range cases {
		got, ok := a.Romanize(c.r)
		if !ok || got != c.want {
			t.Errorf("Romanize(%#U) = (%q, %v), want %q", c.r, got, ok, c.want)
		}
	}
	if _, ok := a.Romanize('a'); ok {
		t.Error("'a' must not romanize as Hangul")
	}
	if _, ok := a.Romanize('ᄀ'); ok {
		t.Error("bare jamo lies outside the syllable block")
	}
}

func TestAugmentAddsSyllableEdges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	a := New()
	lat := uroman.NewLattice([]rune("안녕"), "")
	defer uroman.ReleaseLattice(lat)
	// identity fallbacks so that a path exists
	for i := range lat.Input() {
		lat.AddEdge(uroman.Edge{Start: i, End: i + 1, Txt: "?", Type: uroman.TypeFallback,
			Score: uroman.FallbackScore})
	}
	a.Augment(lat)
	if got := uroman.Text(lat.BestPath()); got != "annyeong" {
		t.Errorf("안녕 = %q, want \"annyeong\"", got)
	}
	// idempotence: a second run adds nothing new
	before := len(lat.AllEdges())
	a.Augment(lat)
	if after := len(lat.AllEdges()); after != before {
		t.Errorf("second Augment changed edge count: %d → %d", before, after)
	}
}

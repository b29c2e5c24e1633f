package braille

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/uroman"
)

func romanize(t *testing.T, input string) string {
	t.Helper()
	lat := uroman.NewLattice([]rune(input), "")
	defer uroman.ReleaseLattice(lat)
	for i, r := range lat.Input() {
		lat.AddEdge(uroman.Edge{Start: i, End: i + 1, Txt: string(r),
			Type: uroman.TypeFallback, Score: uroman.FallbackScore})
	}
	New().Augment(lat)
	return uroman.Text(lat.BestPath())
}

func TestLetterCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	if got := romanize(t, "⠓⠑⠇⠇⠕"); got != "hello" {
		t.Errorf("⠓⠑⠇⠇⠕ = %q, want \"hello\"", got)
	}
	if got := romanize(t, "⠓⠑⠇⠇⠕⠀⠺⠕⠗⠇⠙"); got != "hello world" {
		t.Errorf("two words = %q, want \"hello world\"", got)
	}
}

func TestCapitalSign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	if got := romanize(t, "⠠⠓⠑⠇⠇⠕"); got != "Hello" {
		t.Errorf("capitalized = %q, want \"Hello\"", got)
	}
}

func TestNumberSign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	if got := romanize(t, "⠼⠁⠃⠉"); got != "123" {
		t.Errorf("number run = %q, want \"123\"", got)
	}
	if got := romanize(t, "⠼⠁⠚"); got != "10" {
		t.Errorf("number run = %q, want \"10\"", got)
	}
}

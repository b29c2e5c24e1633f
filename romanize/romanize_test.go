package romanize

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/uroman"
)

var (
	rzOnce sync.Once
	rz     *Romanizer
	rzErr  error
)

// the romanizer is expensive to construct; share one across tests
func romanizer(t *testing.T) *Romanizer {
	t.Helper()
	rzOnce.Do(func() {
		rz, rzErr = New()
	})
	if rzErr != nil {
		t.Fatalf("constructing romanizer: %v", rzErr)
	}
	return rz
}

func ExampleRomanizer_RomanizeString() {
	rz, err := New()
	if err != nil {
		panic(err)
	}
	fmt.Println(rz.RomanizeString("ᚺᚨᛚᛚᛟ ᚹᛟᚱᛚᛞ", ""))
	// Output: hallo world
}

func TestEndToEndScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	rz := romanizer(t)
	cases := []struct {
		line, lcode, want string
	}{
		{"こんにちは、世界！", "jpn", "konnichiha, shijie!"},
		{"ᚺᚨᛚᛚᛟ ᚹᛟᚱᛚᛞ", "", "hallo world"},
		{"✨ユーロマン✨", "jpn", "✨yuuroman✨"},
		{"百分之多少", "", "baifenzhiduoshao"},
		{"二千五百", "zho", "2500"},
		{"café", "", "cafe"},
		{"안녕하세요", "kor", "annyeonghaseyo"},
		{"नमस्ते", "hin", "namaste"},
		{"Привет", "rus", "Privet"},
		{"⠓⠑⠇⠇⠕", "", "hello"},
		{"mixed ASCII stays", "", "mixed ASCII stays"},
	}
	for _, c := range cases {
		if got := rz.RomanizeString(c.line, c.lcode); got != c.want {
			t.Errorf("RomanizeString(%q, %q) = %q, want %q", c.line, c.lcode, got, c.want)
		}
	}
}

func TestEmptyAndIgnorableInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	rz := romanizer(t)
	res := rz.Romanize("", "", Edges)
	if res.Str != "" || len(res.Edges) != 0 {
		t.Errorf("empty input: got %q with %d edges", res.Str, len(res.Edges))
	}
	// zero-width space, RTL mark, BOM
	if got := rz.RomanizeString("​‏\ufeff", ""); got != "" {
		t.Errorf("ignorable-only input = %q, want \"\"", got)
	}
}

func TestBestPathCoversAllPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	rz := romanizer(t)
	for _, line := range []string{"こんにちは、世界！", "नमस्ते दुनिया", "abc ✨ χ", "٤٥٦"} {
		res := rz.Romanize(line, "", Edges)
		n := len([]rune(line))
		pos := 0
		for _, e := range res.Edges {
			if e.Start != pos {
				t.Fatalf("%q: edge chain broken at %d (edge starts at %d)", line, pos, e.Start)
			}
			pos = e.End
		}
		if pos != n {
			t.Errorf("%q: path covers 0…%d, want 0…%d", line, pos, n)
		}
		// the string form is the concatenation of the path edges
		if concat := uroman.Text(res.Edges); concat != res.Str {
			t.Errorf("%q: edge concatenation %q != string form %q", line, concat, res.Str)
		}
	}
}

func TestStability(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	rz := romanizer(t)
	line := "二千五百 ✨ नमस्ते"
	first := rz.RomanizeString(line, "zho")
	for i := 0; i < 10; i++ {
		if got := rz.RomanizeString(line, "zho"); got != first {
			t.Fatalf("call %d: %q != %q", i, got, first)
		}
	}
}

func TestConcurrentCallers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	rz := romanizer(t)
	lines := []string{"こんにちは", "안녕하세요", "नमस्ते", "Привет", "二千五百"}
	want := make([]string, len(lines))
	for i, l := range lines {
		want[i] = rz.RomanizeString(l, "")
	}
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, l := range lines {
				if got := rz.RomanizeString(l, ""); got != want[i] {
					t.Errorf("concurrent result %q != %q", got, want[i])
				}
			}
		}()
	}
	wg.Wait()
}

func TestAugmenterIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	rz := romanizer(t)
	lat := uroman.NewLattice([]rune("二千五百 ユーロ 안녕"), "")
	defer uroman.ReleaseLattice(lat)
	rz.rules.Populate(lat)
	for _, a := range rz.augs {
		a.Augment(lat)
	}
	edges1 := lat.AllEdges()
	// run the whole pipeline a second time on the uncleared lattice
	rz.rules.Populate(lat)
	for _, a := range rz.augs {
		a.Augment(lat)
	}
	edges2 := lat.AllEdges()
	if len(edges1) != len(edges2) {
		t.Fatalf("second pass changed edge count: %d → %d", len(edges1), len(edges2))
	}
	for i := range edges1 {
		if edges1[i] != edges2[i] {
			t.Errorf("edge %d differs after second pass: %v vs %v", i, edges1[i], edges2[i])
		}
	}
}

func TestLanguageHintMonotonicity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	rz := romanizer(t)
	// for labeled examples, the correct hint never lowers the path score
	cases := []struct {
		line, lcode string
	}{
		{"привіт", "ukr"},
		{"こんにちは", "jpn"},
		{"中国", "zho"},
	}
	for _, c := range cases {
		without := pathScore(rz, c.line, "")
		with := pathScore(rz, c.line, c.lcode)
		if with < without {
			t.Errorf("%q: hinted score %f < unhinted %f", c.line, with, without)
		}
	}
}

func pathScore(rz *Romanizer, line, lcode string) float64 {
	res := rz.Romanize(line, lcode, Edges)
	total := 0.0
	for _, e := range res.Edges {
		total += e.Score
	}
	return total
}

func TestAlternativesShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	rz := romanizer(t)
	res := rz.Romanize("行", "", Alts)
	if res.Str != "xing" {
		t.Fatalf("canonical string = %q, want \"xing\"", res.Str)
	}
	foundAlt := false
	for _, e := range res.Edges {
		if e.Type == uroman.TypeAlt && e.Txt == "hang" {
			foundAlt = true
		}
	}
	if !foundAlt {
		t.Error("alternative reading \"hang\" not reported")
	}
}

func TestLatticeShapeContainsFallbacks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	rz := romanizer(t)
	res := rz.Romanize("か", "", Lattice)
	types := map[string]bool{}
	for _, e := range res.Edges {
		types[e.Type] = true
	}
	if !types[uroman.TypeRule] || !types[uroman.TypeFallback] {
		t.Errorf("lattice shape misses rule or fallback edges: %v", types)
	}
}

func TestInvalidUTF8Replaced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	rz := romanizer(t)
	got := rz.RomanizeString("ab\xffcd", "")
	if !strings.Contains(got, "ab") || !strings.Contains(got, "cd") {
		t.Errorf("invalid byte corrupted surroundings: %q", got)
	}
	if strings.Contains(got, "\xff") {
		t.Errorf("raw invalid byte leaked into output: %q", got)
	}
}

func TestRomanizeFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	rz := romanizer(t)
	in := strings.NewReader("ᚺᚨᛚᛚᛟ ᚹᛟᚱᛚᛞ\n::lcode ukr говорити\nabc\n")
	var out bytes.Buffer
	err := rz.RomanizeFile(in, &out, FileOptions{})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 output lines, have %d: %q", len(lines), out.String())
	}
	if lines[0] != "hallo world" {
		t.Errorf("line 1 = %q", lines[0])
	}
	if lines[1] != "::lcode ukr hovoryty" {
		t.Errorf("line 2 = %q", lines[1])
	}
	if lines[2] != "abc" {
		t.Errorf("line 3 = %q", lines[2])
	}
}

func TestRomanizeFileMaxLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	rz := romanizer(t)
	in := strings.NewReader("a\nb\nc\nd\n")
	var out bytes.Buffer
	if err := rz.RomanizeFile(in, &out, FileOptions{MaxLines: 2}); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(out.String(), "\n"); got != 2 {
		t.Errorf("want 2 lines, have %d", got)
	}
}

func TestRomanizeFileEdgesShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uroman.core")
	defer teardown()
	rz := romanizer(t)
	in := strings.NewReader("か\n")
	var out bytes.Buffer
	if err := rz.RomanizeFile(in, &out, FileOptions{Shape: Edges}); err != nil {
		t.Fatal(err)
	}
	line := strings.TrimSpace(out.String())
	if !strings.HasPrefix(line, "[") || !strings.Contains(line, `"txt":"ka"`) {
		t.Errorf("edge serialization unexpected: %q", line)
	}
}

package romanize

import (
	"unicode"

	"github.com/npillmayer/uroman"
	"github.com/npillmayer/uroman/internal/ucd"
)

// stripScore ranks stripped-base and ignorable edges above the
// identity fallback but below any table rule.
const stripScore = -0.5

// stripPass is the punctuation/diacritic augmenter: letters carrying
// diacritics which no rule covers get an edge with the bare base
// (name-derived, falling back to canonical decomposition), and
// ignorable code points get an empty edge. The pass runs last; it
// only looks at positions the rule table left uncovered.
type stripPass struct {
	ucd *ucd.Table
}

func newStripPass(u *ucd.Table) *stripPass {
	return &stripPass{ucd: u}
}

// Name is part of interface uroman.Augmenter.
func (sp *stripPass) Name() string { return "strip" }

// Augment is part of interface uroman.Augmenter.
func (sp *stripPass) Augment(lat *uroman.Lattice) {
	for i, r := range lat.Input() {
		if lat.HasRuleEdgeAt(i) {
			continue
		}
		var txt string
		switch {
		case sp.ucd.IsIgnorable(r) || unicode.Is(unicode.Mn, r):
			txt = ""
		case r >= 0x80 && unicode.IsLetter(r):
			base, ok := sp.ucd.StripDiacritics(r)
			if !ok {
				continue
			}
			txt = base
		default:
			continue
		}
		lat.AddEdge(uroman.Edge{
			Start: i,
			End:   i + 1,
			Txt:   txt,
			Type:  uroman.TypeStrip,
			Score: stripScore,
		})
	}
}

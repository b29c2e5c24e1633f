package uroman

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// A Lattice is a DAG over the code-point positions 0…N of one line of
// input. It is created per line, populated by the matcher and the
// augmenter passes, and released after the line's result has been
// materialized. A lattice is owned by a single goroutine for the
// duration of one romanization call; it requires no locking.
type Lattice struct {
	input []rune
	hint  string // normalized language hint, "" if none
	// outgoing edges indexed by start position; out[i] holds all edges
	// starting at i. in[j] holds all edges ending at j.
	out  [][]*Edge
	in   [][]*Edge
	seen map[edgeKey]bool
}

// Init prepares a lattice for a line of input. The hint must already
// be normalized by the caller (an unknown or absent hint is "").
// Init may be called on a zero lattice or to recycle one.
func (lat *Lattice) Init(input []rune, hint string) {
	lat.input = input
	lat.hint = hint
	n := len(input)
	if cap(lat.out) >= n+1 {
		lat.out = lat.out[:n+1]
		lat.in = lat.in[:n+1]
		for i := range lat.out {
			lat.out[i] = lat.out[i][:0]
			lat.in[i] = lat.in[i][:0]
		}
	} else {
		lat.out = make([][]*Edge, n+1)
		lat.in = make([][]*Edge, n+1)
	}
	if lat.seen == nil {
		lat.seen = make(map[edgeKey]bool)
	} else {
		for k := range lat.seen {
			delete(lat.seen, k)
		}
	}
}

// Input returns the code points of the line this lattice covers.
func (lat *Lattice) Input() []rune { return lat.input }

// Hint returns the normalized language hint of this line, or "".
func (lat *Lattice) Hint() string { return lat.hint }

// Len returns N, the number of code points of the input line.
func (lat *Lattice) Len() int { return len(lat.input) }

// AddEdge inserts an edge into the lattice. Edges are de-duplicated by
// (start, end, text, type); re-adding an existing edge is a no-op and
// returns false. Edges with invalid endpoints are rejected.
func (lat *Lattice) AddEdge(e Edge) bool {
	if e.Start < 0 || e.End > lat.Len() || e.Start >= e.End {
		tracer().Errorf("lattice: rejecting edge with invalid span %v", e)
		return false
	}
	k := e.key()
	if lat.seen[k] {
		return false
	}
	lat.seen[k] = true
	edge := new(Edge)
	*edge = e
	lat.out[e.Start] = append(lat.out[e.Start], edge)
	lat.in[e.End] = append(lat.in[e.End], edge)
	return true
}

// EdgesFrom returns all edges starting at position i.
func (lat *Lattice) EdgesFrom(i int) []*Edge {
	if i < 0 || i >= len(lat.out) {
		return nil
	}
	return lat.out[i]
}

// EdgesEndingAt returns all edges ending at position j.
func (lat *Lattice) EdgesEndingAt(j int) []*Edge {
	if j < 0 || j >= len(lat.in) {
		return nil
	}
	return lat.in[j]
}

// HasRuleEdgeAt reports whether any non-fallback edge starts at i.
// Augmenters use this to restrict themselves to positions the rule
// table left uncovered.
func (lat *Lattice) HasRuleEdgeAt(i int) bool {
	for _, e := range lat.EdgesFrom(i) {
		if e.Type != TypeFallback {
			return true
		}
	}
	return false
}

// --- Best-path selection ----------------------------------------------

// pathState is the DP cell for one lattice vertex during the
// left-to-right sweep.
type pathState struct {
	score     float64
	nedges    int
	txt       string // concatenated romanization up to this vertex
	sumStarts int    // sum of edge start positions along the path
	back      *Edge  // edge by which this vertex was reached
	reached   bool
}

// better reports whether candidate (s) beats incumbent (o), using the
// documented tie-break order: higher score, then fewer edges, then
// lexicographically smaller concatenated text, then lower sum of edge
// start positions.
func (s pathState) better(o pathState) bool {
	if !o.reached {
		return true
	}
	if s.score != o.score {
		return s.score > o.score
	}
	if s.nedges != o.nedges {
		return s.nedges < o.nedges
	}
	if s.txt != o.txt {
		return s.txt < o.txt
	}
	return s.sumStarts < o.sumStarts
}

// BestPath returns the edges of the highest-scoring path from 0 to N.
// Since edges only ever point forward, the lattice is already in
// topological order by position and a single left-to-right sweep
// suffices. Edges flagged AltOnly are ignored. For an empty input the
// path is empty. BestPath is deterministic for a fixed edge set.
func (lat *Lattice) BestPath() []Edge {
	n := lat.Len()
	if n == 0 {
		return []Edge{}
	}
	states := make([]pathState, n+1)
	states[0].reached = true
	for i := 0; i < n; i++ {
		if !states[i].reached {
			// cannot happen as long as the matcher guarantees fallback
			// edges, but do not propagate the gap
			tracer().Errorf("lattice: position %d unreachable", i)
			continue
		}
		for _, e := range lat.out[i] {
			if e.AltOnly {
				continue
			}
			cand := pathState{
				score:     states[i].score + e.Score,
				nedges:    states[i].nedges + 1,
				txt:       states[i].txt + e.Txt,
				sumStarts: states[i].sumStarts + e.Start,
				back:      e,
				reached:   true,
			}
			if cand.better(states[e.End]) {
				states[e.End] = cand
			}
		}
	}
	if !states[n].reached {
		tracer().Errorf("lattice: no path from 0 to %d", n)
		return []Edge{}
	}
	// walk back pointers
	var rev []Edge
	for j := n; j > 0; {
		e := states[j].back
		rev = append(rev, *e)
		j = e.Start
	}
	path := make([]Edge, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		path = append(path, rev[i])
	}
	return path
}

// Text returns the concatenated romanization of a path.
func Text(path []Edge) string {
	var sb strings.Builder
	for _, e := range path {
		sb.WriteString(e.Txt)
	}
	return sb.String()
}

// --- Reporting --------------------------------------------------------

// compareEdges orders reported edges by (start, end, descending score)
// with text and type as final arbiters to make the order total.
func compareEdges(a, b interface{}) int {
	ea, eb := a.(*Edge), b.(*Edge)
	switch {
	case ea.Start != eb.Start:
		return ea.Start - eb.Start
	case ea.End != eb.End:
		return ea.End - eb.End
	case ea.Score != eb.Score:
		if ea.Score > eb.Score {
			return -1
		}
		return 1
	case ea.Txt != eb.Txt:
		return strings.Compare(ea.Txt, eb.Txt)
	default:
		return strings.Compare(ea.Type, eb.Type)
	}
}

// AllEdges returns every edge of the lattice, ordered by
// (start, end, descending score). The returned slice is a copy.
func (lat *Lattice) AllEdges() []Edge {
	set := treeset.NewWith(compareEdges)
	for i := range lat.out {
		for _, e := range lat.out[i] {
			set.Add(e)
		}
	}
	all := make([]Edge, 0, set.Size())
	for _, v := range set.Values() {
		all = append(all, *(v.(*Edge)))
	}
	return all
}

// Alternatives reports, for each edge of path, the competing edges
// sharing the same endpoints whose score is within margin of the path
// edge; alt-only edges between the same endpoints are reported
// whatever their score. The result interleaves each path edge with its alternatives,
// the latter re-tagged with type "alt". The canonical best path is
// not altered by this.
func (lat *Lattice) Alternatives(path []Edge, margin float64) []Edge {
	var result []Edge
	for _, pe := range path {
		result = append(result, pe)
		set := treeset.NewWith(compareEdges)
		for _, e := range lat.in[pe.End] {
			if e.Start != pe.Start {
				continue
			}
			if e.Txt == pe.Txt && e.Type == pe.Type {
				continue
			}
			if e.Score >= pe.Score-margin || e.AltOnly {
				set.Add(e)
			}
		}
		for _, v := range set.Values() {
			alt := *(v.(*Edge))
			alt.Type = TypeAlt
			result = append(result, alt)
		}
	}
	if result == nil {
		result = []Edge{}
	}
	return result
}

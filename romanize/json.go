package romanize

import (
	"encoding/json"

	"github.com/samber/lo"

	"github.com/npillmayer/uroman"
)

// edgeRecord is the wire form of a reported lattice edge.
type edgeRecord struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Txt   string  `json:"txt"`
	Type  string  `json:"type"`
	Score float64 `json:"score"`
}

// MarshalEdges serializes reported edges as a JSON array. When a
// language hint was active for the line, a zero-length meta edge of
// type "lcode: xx" leads the array, so that consumers of concatenated
// output can recover the hint per line.
func MarshalEdges(edges []uroman.Edge, lcode string) ([]byte, error) {
	records := lo.Map(edges, func(e uroman.Edge, _ int) edgeRecord {
		return edgeRecord{Start: e.Start, End: e.End, Txt: e.Txt, Type: e.Type, Score: e.Score}
	})
	if lcode != "" {
		meta := edgeRecord{Type: "lcode: " + lcode}
		records = append([]edgeRecord{meta}, records...)
	}
	return json.Marshal(records)
}

package display

import (
	"encoding/json"

	"github.com/dl/acmatch"
)

// jsonLocation is the JSON Lines serialization of a single match.
// Adapted from internal/output/json.go's jsonMatch/jsonPos.
type jsonLocation struct {
	ID    int `json:"id"`
	Start int `json:"start"`
	End   int `json:"end"`
}

// FormatJSON renders locs as newline-delimited JSON objects, one
// segment per line so Writer.Write can hand them to writev as separate
// iovecs instead of requiring them pre-joined into one buffer.
func FormatJSON(locs []acmatch.Location) [][]byte {
	segs := make([][]byte, 0, len(locs))
	for _, l := range locs {
		jl := jsonLocation{ID: l.Match.ID, Start: l.Beginning(), End: l.End}
		data, err := json.Marshal(jl)
		if err != nil {
			continue
		}
		segs = append(segs, append(data, '\n'))
	}
	return segs
}

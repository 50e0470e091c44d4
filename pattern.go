package acmatch

// Pattern is a caller-supplied search term: an opaque id and the bytes
// to search for. Value must be non-empty. Distinct patterns may carry
// identical Values; the one declared earliest wins ties at search time.
type Pattern struct {
	ID    int
	Value []byte
}

// Match is the compile-time-known identity of a pattern that terminated
// a walk through the automaton: its id and the byte length of the
// pattern that matched.
type Match struct {
	ID  int
	Len int
}

// Location is a single match found in a specific text: a Match plus the
// exclusive end offset at which it was found.
type Location struct {
	Match Match
	End   int
}

// Beginning returns the inclusive start offset of the match.
func (l Location) Beginning() int {
	return l.End - l.Match.Len
}

// Algorithm selects the matching strategy used by New. It is a closed
// enum today so that a future variant (standard leftmost-first,
// overlapping matches) can be added without changing the Automaton
// method set.
type Algorithm int

const (
	// AhoCorasickLeftmost is the only algorithm currently implemented:
	// an Aho-Corasick automaton with leftmost-longest match selection.
	AhoCorasickLeftmost Algorithm = iota
)

func (a Algorithm) String() string {
	switch a {
	case AhoCorasickLeftmost:
		return "ahocorasick_leftmost"
	default:
		return "unknown"
	}
}

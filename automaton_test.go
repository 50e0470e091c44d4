package acmatch

import (
	"reflect"
	"testing"
)

func mustNew(t *testing.T, patterns []Pattern) *Automaton {
	t.Helper()
	a, err := New(Config{Algorithm: AhoCorasickLeftmost, Patterns: patterns})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a
}

func pat(id int, s string) Pattern {
	return Pattern{ID: id, Value: []byte(s)}
}

func locEnds(locs []Location) []int {
	ends := make([]int, len(locs))
	for i, l := range locs {
		ends[i] = l.End
	}
	return ends
}

func TestAll_MultiplePatternsMixedLengths(t *testing.T) {
	a := mustNew(t, []Pattern{pat(0, "bc"), pat(1, "ghi"), pat(2, "o p"), pat(3, "qr")})
	text := []byte("abc def ghi jkl mno pqr abc")

	got := a.All(text, 0)
	wantEnds := []int{3, 11, 21, 23, 27}
	wantIDs := []int{0, 1, 2, 3, 0}

	if len(got) != len(wantEnds) {
		t.Fatalf("got %d locations, want %d: %+v", len(got), len(wantEnds), got)
	}
	for i, l := range got {
		if l.End != wantEnds[i] || l.Match.ID != wantIDs[i] {
			t.Errorf("loc[%d] = {id=%d end=%d}, want {id=%d end=%d}", i, l.Match.ID, l.End, wantIDs[i], wantEnds[i])
		}
	}
}

func TestAll_RepeatedSinglePattern(t *testing.T) {
	a := mustNew(t, []Pattern{pat(0, "a")})
	got := a.All([]byte("aa"), 0)
	want := []int{1, 2}
	if !reflect.DeepEqual(locEnds(got), want) {
		t.Errorf("ends = %v, want %v", locEnds(got), want)
	}
}

func TestAll_NonOverlappingLeftmost(t *testing.T) {
	a := mustNew(t, []Pattern{pat(0, "qwerty"), pat(1, "werty"), pat(2, "erty")})
	got := a.All([]byte("qwerty"), 0)
	if len(got) != 1 {
		t.Fatalf("got %d matches, want 1: %+v", len(got), got)
	}
	if got[0].Match.ID != 0 || got[0].End != 6 {
		t.Errorf("got %+v, want {id=0 end=6}", got[0])
	}
}

func TestAll_TiebreakByInsertionOrder(t *testing.T) {
	a := mustNew(t, []Pattern{pat(0, "ab"), pat(1, "ab")})
	got := a.All([]byte("abcd"), 0)
	if len(got) != 1 || got[0].Match.ID != 0 || got[0].End != 2 {
		t.Fatalf("got %+v, want single {id=0 end=2}", got)
	}
}

func TestAll_LongestAtShiftedPosition(t *testing.T) {
	a := mustNew(t, []Pattern{pat(0, "abcd"), pat(1, "bce"), pat(2, "b")})
	got := a.All([]byte("abce"), 0)
	if len(got) != 1 || got[0].Match.ID != 1 || got[0].End != 4 {
		t.Fatalf("got %+v, want single {id=1 end=4}", got)
	}
}

func TestAll_PicksLongestOverlappingPrefixes(t *testing.T) {
	a := mustNew(t, []Pattern{pat(0, "a"), pat(1, "abcdef"), pat(2, "abc"), pat(3, "abcdefg")})
	got := a.All([]byte("abcdefghz"), 0)
	if len(got) != 1 || got[0].Match.ID != 3 || got[0].End != 7 {
		t.Fatalf("got %+v, want single {id=3 end=7}", got)
	}
}

func TestStarts(t *testing.T) {
	a := mustNew(t, []Pattern{pat(0, "ab"), pat(1, "abcd")})
	text := []byte("zabcd")

	if _, ok := a.Starts(text, 0); ok {
		t.Errorf("Starts(text, 0) = ok, want none")
	}
	m, ok := a.Starts(text, 1)
	if !ok {
		t.Fatalf("Starts(text, 1) = none, want Some")
	}
	if m.ID != 1 || m.Len != 4 {
		t.Errorf("Starts(text, 1) = %+v, want {id=1 len=4}", m)
	}
}

func TestStarts_IdempotentWithNext(t *testing.T) {
	a := mustNew(t, []Pattern{pat(0, "bc"), pat(1, "ghi")})
	text := []byte("abc def ghi")

	for at := 0; at <= len(text); at++ {
		loc, nextOK := a.Next(text, at)
		m, startsOK := a.Starts(text, at)
		if nextOK && loc.Beginning() == at {
			if !startsOK || m != loc.Match {
				t.Errorf("at=%d: Next found match beginning here but Starts disagreed: next=%+v starts=(%v,%v)", at, loc, m, startsOK)
			}
		} else if startsOK {
			t.Errorf("at=%d: Starts found a match but Next(at).Beginning() != at", at)
		}
	}
}

func TestAll_EmptyText(t *testing.T) {
	a := mustNew(t, []Pattern{pat(0, "a")})
	if got := a.All([]byte(""), 0); len(got) != 0 {
		t.Errorf("got %+v, want empty", got)
	}
}

func TestAll_AtEqualsTextLen(t *testing.T) {
	a := mustNew(t, []Pattern{pat(0, "a")})
	text := []byte("aaa")
	if got := a.All(text, len(text)); len(got) != 0 {
		t.Errorf("got %+v, want empty", got)
	}
	if _, ok := a.Next(text, len(text)); ok {
		t.Errorf("Next(text, len(text)) = ok, want none")
	}
}

func TestNew_RejectsEmptyPattern(t *testing.T) {
	_, err := New(Config{Algorithm: AhoCorasickLeftmost, Patterns: []Pattern{{ID: 0, Value: nil}}})
	if err == nil {
		t.Fatal("New() = nil error, want ErrEmptyPattern")
	}
}

func TestNew_RejectsUnsupportedAlgorithm(t *testing.T) {
	_, err := New(Config{Algorithm: Algorithm(99), Patterns: []Pattern{pat(0, "a")}})
	if err == nil {
		t.Fatal("New() = nil error, want ErrUnsupportedAlgorithm")
	}
}

// Invariant: every returned Location's slice of text equals the
// declared pattern value for its match id.
func TestInvariant_LocationMatchesText(t *testing.T) {
	patterns := []Pattern{pat(0, "bc"), pat(1, "ghi"), pat(2, "o p"), pat(3, "qr")}
	a := mustNew(t, patterns)
	text := []byte("abc def ghi jkl mno pqr abc")

	byID := map[int][]byte{}
	for _, p := range patterns {
		byID[p.ID] = p.Value
	}

	for _, l := range a.All(text, 0) {
		b := l.Beginning()
		if b < 0 || l.End > len(text) || b >= l.End {
			t.Fatalf("location out of range: %+v", l)
		}
		got := text[b:l.End]
		want := byID[l.Match.ID]
		if string(got) != string(want) {
			t.Errorf("location %+v covers %q, want %q", l, got, want)
		}
		if l.Match.Len != l.End-b {
			t.Errorf("location %+v: Len %d != End-Beginning %d", l, l.Match.Len, l.End-b)
		}
	}
}

// Invariant: All's results never overlap.
func TestInvariant_NonOverlapping(t *testing.T) {
	a := mustNew(t, []Pattern{pat(0, "he"), pat(1, "she"), pat(2, "his"), pat(3, "hers")})
	locs := a.All([]byte("ahishers"), 0)
	for i := 1; i < len(locs); i++ {
		if locs[i-1].End > locs[i].Beginning() {
			t.Errorf("locations overlap: %+v then %+v", locs[i-1], locs[i])
		}
	}
}

func TestClose(t *testing.T) {
	a := mustNew(t, []Pattern{pat(0, "a")})
	a.Close()
	if a.NumNodes() != 0 {
		t.Errorf("NumNodes() after Close = %d, want 0", a.NumNodes())
	}
}

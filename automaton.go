package acmatch

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Config configures New. Algorithm must be AhoCorasickLeftmost — the
// field exists so a future variant can be added without an API break.
// Logger, if set, receives Debug-level construction traces; it is never
// consulted on the find hot path.
type Config struct {
	Algorithm Algorithm
	Patterns  []Pattern
	Logger    *log.Logger
}

// Automaton is a compiled, immutable Aho-Corasick automaton. It is safe
// for concurrent use by multiple goroutines once New returns; no query
// method mutates shared state (Close does, see its doc).
type Automaton struct {
	id     uuid.UUID
	nodes  []node
	logger *log.Logger
}

// New compiles patterns into an automaton per cfg.Algorithm.
func New(cfg Config) (*Automaton, error) {
	if cfg.Algorithm != AhoCorasickLeftmost {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedAlgorithm, cfg.Algorithm)
	}

	nodes, err := train(cfg.Patterns, cfg.Logger)
	if err != nil {
		return nil, err
	}

	a := &Automaton{
		id:     uuid.New(),
		nodes:  nodes,
		logger: cfg.Logger,
	}
	if a.logger != nil {
		a.logger.Debug("automaton ready", "id", a.id, "patterns", len(cfg.Patterns), "nodes", len(nodes))
	}
	return a, nil
}

// ID returns an identifier unique to this automaton instance, useful
// for correlating log lines across a process with several automatons.
func (a *Automaton) ID() uuid.UUID {
	return a.id
}

// NumNodes returns the number of states in the compiled automaton.
func (a *Automaton) NumNodes() int {
	return len(a.nodes)
}

// Close drops the automaton's internal node storage. The automaton must
// not be used after Close; Close itself is not safe to race with
// concurrent readers.
func (a *Automaton) Close() {
	a.nodes = nil
}

// follow walks fail links from cur until a non-FAIL transition on b is
// found. START and DEAD are byte-complete by construction, so this
// always terminates without ever landing on FAIL.
func (a *Automaton) follow(cur int32, b byte) int32 {
	return followFrom(a.nodes, cur, b)
}

// followFrom walks fail links starting at cur, over an explicit node
// slice, until a non-FAIL transition on b is found. Shared by
// Automaton.follow (search time) and train (Phase 5, where a node's
// failure transition for a byte is defined the same way: "where would
// this state go on b"). Safe because every fail chain bottoms out at
// START or DEAD, both byte-complete.
func followFrom(nodes []node, cur int32, b byte) int32 {
	for {
		nxt := nodes[cur].next(b)
		if nxt != idFail {
			return nxt
		}
		cur = nodes[cur].fail
	}
}

// find returns the leftmost-longest match beginning at or after at.
func (a *Automaton) find(text []byte, at int) (Location, bool) {
	cur := idStart
	var last Location
	haveLast := false

	for i := at; i < len(text); {
		cur = a.follow(cur, text[i])
		i++

		if cur == idDead {
			if !haveLast {
				panic("acmatch: DEAD reached before any match was recorded")
			}
			return last, true
		}

		if len(a.nodes[cur].matches) > 0 {
			last = Location{Match: a.nodes[cur].matches[0], End: i}
			haveLast = true
		}
	}

	return last, haveLast
}

// Next returns the leftmost-longest match in text at or after byte
// offset at, or false if none exists.
func (a *Automaton) Next(text []byte, at int) (Location, bool) {
	return a.find(text, at)
}

// All returns every non-overlapping leftmost-longest match in text at
// or after at, in left-to-right order.
func (a *Automaton) All(text []byte, at int) []Location {
	var out []Location
	pos := at
	for pos < len(text) {
		loc, ok := a.find(text, pos)
		if !ok {
			break
		}
		out = append(out, loc)

		next := loc.End
		if next < pos+1 {
			next = pos + 1
		}
		pos = next
	}
	return out
}

// Starts reports whether some pattern begins exactly at offset at, and
// if so, which one.
func (a *Automaton) Starts(text []byte, at int) (Match, bool) {
	loc, ok := a.Next(text, at)
	if !ok || loc.Beginning() != at {
		return Match{}, false
	}
	return loc.Match, true
}

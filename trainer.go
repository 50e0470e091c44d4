package acmatch

import "github.com/charmbracelet/log"

// queueItem is a BFS work item: a node id together with the pending
// longest-match depth carried down the path that reached it, if any.
// pendingDepth is the trie depth at which that longest pending match
// began; hasPending distinguishes "no match seen yet" from "match began
// at depth 0".
type queueItem struct {
	id           int32
	pendingDepth int32
	hasPending   bool
}

// train builds the node array for an Aho-Corasick automaton with
// leftmost-longest conditioning from an ordered pattern list. logger may
// be nil.
func train(patterns []Pattern, logger *log.Logger) ([]node, error) {
	nodes := make([]node, 0, estimateNodeCount(patterns))

	newNode := func(depth int32, fail int32) int32 {
		id := int32(len(nodes))
		nodes = append(nodes, node{depth: depth, fail: fail})
		return id
	}

	// Phase 1 — base states, in order FAIL, DEAD, START.
	newNode(0, idStart) // FAIL: unused placeholder, never entered.
	newNode(0, idStart) // DEAD: absorbing sink.
	newNode(0, idStart) // START: initial state.

	// Phase 2 — trie construction, patterns in declaration order.
	for _, p := range patterns {
		if len(p.Value) == 0 {
			return nil, ErrEmptyPattern
		}
		cur := idStart
		for i, b := range p.Value {
			nxt := nodes[cur].next(b)
			if nxt == idFail {
				nxt = newNode(int32(i+1), idStart)
				nodes[cur].setNext(b, nxt)
			}
			cur = nxt
		}
		nodes[cur].matches = append(nodes[cur].matches, Match{ID: p.ID, Len: len(p.Value)})
	}

	if logger != nil {
		logger.Debug("trie built", "patterns", len(patterns), "nodes", len(nodes))
	}

	// Record which START transitions are genuine trie edges before
	// Phase 3 fills the rest with self-loops; Phase 5 seeding must skip
	// the self-loops.
	var startHasEdge [256]bool
	for b := 0; b < 256; b++ {
		startHasEdge[b] = nodes[idStart].transition[b] != idFail
	}

	// Phase 3 — Start absorbs unmatched prefix bytes.
	for b := 0; b < 256; b++ {
		if nodes[idStart].transition[b] == idFail {
			nodes[idStart].transition[b] = idStart
		}
	}

	// Phase 4 — Dead absorbs every byte.
	for b := 0; b < 256; b++ {
		nodes[idDead].transition[b] = idDead
	}

	// Phase 5 — BFS failure links with leftmost-longest conditioning.
	var queue []queueItem
	for b := 0; b < 256; b++ {
		if !startHasEdge[b] {
			continue
		}
		c := nodes[idStart].transition[b]

		var item queueItem
		item.id = c
		if len(nodes[idStart].matches) > 0 {
			// Defensive: vacuous for non-empty patterns, but START
			// itself bearing a match would mean every position is a
			// pending zero-length match.
			item.hasPending = true
			item.pendingDepth = 0
		} else if l, ok := nodes[c].longestMatchLen(); ok {
			item.hasPending = true
			item.pendingDepth = nodes[c].depth - int32(l) + 1
		}

		if len(nodes[c].matches) > 0 {
			// A top-level single-byte pattern already fired; commit to
			// it instead of continuing to scan from this state.
			nodes[c].fail = idDead
		}

		queue = append(queue, item)
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		enqueuedAny := false
		for b := 0; b < 256; b++ {
			c := nodes[p.id].next(byte(b))
			if c == idFail {
				continue
			}
			enqueuedAny = true

			var succ queueItem
			succ.id = c
			if p.hasPending {
				succ.hasPending = true
				succ.pendingDepth = p.pendingDepth
			} else if l, ok := nodes[c].longestMatchLen(); ok {
				succ.hasPending = true
				succ.pendingDepth = nodes[c].depth - int32(l) + 1
			}

			// P.fail may itself be a sparse non-reserved node (e.g. a
			// shorter shared suffix), so finding where it would go on b
			// requires the same fail-chase follow() uses at search time,
			// not a single table lookup — P.fail's own fail is already
			// resolved, since BFS visits nodes in non-decreasing depth
			// order and P.fail has strictly smaller depth than P.
			f := followFrom(nodes, nodes[p.id].fail, byte(b))

			if succ.hasPending {
				extent := nodes[c].depth - succ.pendingDepth + 1
				if extent > nodes[f].depth {
					// Rerouting to F would let a longer overlapping
					// match prolong the scan past one already pending;
					// commit to the pending match instead.
					nodes[c].fail = idDead
				} else {
					nodes[c].fail = f
					nodes[c].matches = append(nodes[c].matches, nodes[f].matches...)
				}
			} else {
				nodes[c].fail = f
				nodes[c].matches = append(nodes[c].matches, nodes[f].matches...)
			}

			queue = append(queue, succ)
		}

		if len(nodes[p.id].matches) > 0 && !enqueuedAny {
			// Leaf match state: nothing follows it, so don't re-enter
			// the automaton after reporting the match.
			nodes[p.id].fail = idDead
		}
	}

	// Phase 6 — defensive Start->Dead clamp for empty-pattern support;
	// unreachable while New rejects empty patterns.
	if len(nodes[idStart].matches) > 0 {
		for b := 0; b < 256; b++ {
			if nodes[idStart].transition[b] == idStart {
				nodes[idStart].transition[b] = idDead
			}
		}
	}

	if logger != nil {
		logger.Debug("failure links resolved", "nodes", len(nodes))
	}

	return nodes, nil
}

// estimateNodeCount bounds the node count by the sum of pattern lengths
// plus the three reserved states, avoiding growth reallocation in the
// common case.
func estimateNodeCount(patterns []Pattern) int {
	n := 3
	for _, p := range patterns {
		n += len(p.Value)
	}
	return n
}

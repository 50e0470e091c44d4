// Package acmatch implements leftmost-longest multi-pattern substring
// search over a fixed, construction-time pattern set using an
// Aho-Corasick automaton.
//
// Build an automaton once with New, then query it as many times as you
// like with Next, All, and Starts. An *Automaton is immutable after
// construction and safe to share across goroutines; ScanAll fans a
// batch of independent texts out across a worker pool for exactly that
// reason.
//
// Matching is byte-exact: no Unicode normalization, no case folding, no
// overlapping matches. Among patterns that could begin at the earliest
// position in a search, the longest wins; ties go to whichever pattern
// was declared first.
package acmatch

package acmatch

import "errors"

// ErrEmptyPattern is returned by New when a Pattern's Value is empty.
// Zero-length patterns are not given semantics by the search contract,
// so construction rejects them rather than guessing.
var ErrEmptyPattern = errors.New("acmatch: pattern value must not be empty")

// ErrUnsupportedAlgorithm is returned by New when Config.Algorithm names
// a value other than AhoCorasickLeftmost.
var ErrUnsupportedAlgorithm = errors.New("acmatch: unsupported algorithm")

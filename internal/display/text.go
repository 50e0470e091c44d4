package display

import (
	"fmt"

	"github.com/dl/acmatch"
)

// FormatText renders text with every location highlighted, Match ids
// annotated after each hit, as the ordered sequence of segments a
// writer should emit — plain run, highlighted run, id annotation,
// repeating — rather than one pre-joined buffer. Adapted from
// internal/output/text.go's highlightMatches, generalized from
// line-local positions to whole-text offsets and from a single
// concatenated []byte to the segment list Writer.Write consumes
// directly as iovecs.
func FormatText(text []byte, locs []acmatch.Location, styles Styles, useColor bool) [][]byte {
	var segs [][]byte
	prev := 0
	for _, l := range locs {
		start, end := l.Beginning(), l.End
		if start > len(text) {
			break
		}
		if end > len(text) {
			end = len(text)
		}
		if start > prev {
			segs = append(segs, text[prev:start])
		}
		if useColor {
			segs = append(segs, []byte(styles.Match.Render(string(text[start:end]))))
		} else {
			segs = append(segs, text[start:end])
		}
		segs = append(segs, []byte(fmt.Sprintf("[id=%d]", l.Match.ID)))
		prev = end
	}
	if prev < len(text) {
		segs = append(segs, text[prev:])
	}
	segs = append(segs, []byte("\n"))
	return segs
}

package display

import (
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes a formatted result to stdout in one writev call.
// FormatText and FormatJSON hand it the highlighted-text segments (or
// one JSON line per match) as separate byte slices instead of a single
// pre-joined buffer, so this is genuine scatter-gather output rather
// than a single-iovec wrapper around write(2). Grounded in
// internal/output/writer.go's Writer, minus OrderedWriter's
// out-of-order reassembly: the demo only ever emits one result per
// invocation, so there is nothing to reorder.
type Writer struct {
	fd int
}

// NewWriter creates a Writer that writes to stdout.
func NewWriter() *Writer {
	return &Writer{fd: int(os.Stdout.Fd())}
}

// Write emits segs to stdout as a single scatter-gather writev,
// retrying and re-slicing the remaining iovecs on a short write.
func (w *Writer) Write(segs [][]byte) error {
	segs = trimEmpty(segs)
	for len(segs) > 0 {
		n, err := unix.Writev(w.fd, segs)
		if err != nil {
			return err
		}
		segs = advance(segs, n)
	}
	return nil
}

// trimEmpty drops leading zero-length segments; writev treats them as
// no-op iovecs but there's no reason to hand them to the syscall.
func trimEmpty(segs [][]byte) [][]byte {
	for len(segs) > 0 && len(segs[0]) == 0 {
		segs = segs[1:]
	}
	return segs
}

// advance drops the first n bytes written across segs, which may span
// a prefix of whole segments plus a partial one.
func advance(segs [][]byte, n int) [][]byte {
	for n > 0 && len(segs) > 0 {
		if n < len(segs[0]) {
			segs[0] = segs[0][n:]
			return segs
		}
		n -= len(segs[0])
		segs = segs[1:]
	}
	return segs
}

package window

import (
	"errors"
	"fmt"
	"os"

	"seqwin/internal/mmapio"
	"seqwin/internal/seqindex"
)

// Rest as a size reads to the end of the record.
const Rest int64 = -1

// ErrOutOfBounds reports a window whose start is not inside the record.
var ErrOutOfBounds = errors.New("window start out of bounds")

func isTerminator(b byte) bool { return b == '\n' || b == '\r' }

// Read returns up to size sequence bytes of rec starting at the raw offset
// start from rec.Offset, with '\n' and '\r' removed. The count is capped at
// rec.Length-start; a negative size means Rest. Every mapping is released
// before Read returns.
func Read(f *os.File, rec seqindex.Record, start, size int64) ([]byte, error) {
	if err := mmapio.CheckPlatform(); err != nil {
		return nil, err
	}
	if start < 0 || start >= rec.Length {
		return nil, fmt.Errorf("%w: start %d, record %q has length %d", ErrOutOfBounds, start, rec.Header, rec.Length)
	}
	want := rec.Length - start
	if size >= 0 && size < want {
		want = size
	}
	if want == 0 {
		return []byte{}, nil
	}

	fileSize, err := mmapio.Size(f)
	if err != nil {
		return nil, err
	}
	pos := rec.Offset + start
	aligned, adj := mmapio.Align(pos, mmapio.Granularity())

	// The first mapping covers want raw bytes. Each terminator inside it
	// displaces one sequence byte, so the span is widened by the shortfall
	// until it holds want sequence bytes.
	span := want
	for {
		if pos+span > fileSize {
			// Mapped pages past EOF fault on access; a stale index fails here.
			return nil, fmt.Errorf("read %s: window [%d,+%d) runs past end of file (%d bytes)", f.Name(), pos, span, fileSize)
		}
		out, short, err := copyRegion(f, aligned, adj, span, want)
		if err != nil || short == 0 {
			return out, err
		}
		span += short
	}
}

// copyRegion maps [aligned, aligned+adj+span) and copies the first want
// non-terminator bytes after adj. If fewer are present it copies nothing and
// reports how many are missing.
func copyRegion(f *os.File, aligned, adj, span, want int64) (out []byte, short int64, err error) {
	r, err := mmapio.Map(f, aligned, adj+span)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if uerr := r.Unmap(); uerr != nil && err == nil {
			out, short, err = nil, 0, fmt.Errorf("munmap %s: %w", f.Name(), uerr)
		}
	}()

	data := r.Bytes()[adj:]
	var terms int64
	for _, b := range data {
		if isTerminator(b) {
			terms++
		}
	}
	if have := int64(len(data)) - terms; have < want {
		return nil, want - have, nil
	}
	out = make([]byte, 0, want)
	for _, b := range data {
		if int64(len(out)) == want {
			break
		}
		if !isTerminator(b) {
			out = append(out, b)
		}
	}
	return out, 0, nil
}

// ReadFile opens path, reads one window and closes the file.
func ReadFile(path string, rec seqindex.Record, start, size int64) ([]byte, error) {
	if err := mmapio.CheckPlatform(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, rec, start, size)
}

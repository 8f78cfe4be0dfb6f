// Package seqindex holds the record model shared by the scanner and the window
// reader, and its JSON persistence.
package seqindex

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedIndex reports a persisted index that could not be decoded.
	ErrMalformedIndex = errors.New("malformed index")
	// ErrRecordOutOfRange reports a record position outside the index.
	ErrRecordOutOfRange = errors.New("record position out of range")
)

// Record locates one FASTA entry inside its source file.
type Record struct {
	// Header is the full header line including '>' and excluding the line
	// terminator. It never aliases mapped file memory.
	Header string
	// Offset is the absolute file offset of the first payload byte, just past
	// the header line's newline.
	Offset int64
	// Length counts payload bytes, line terminators excluded.
	Length int64
}

// Index lists records in file order. Callers address records by position.
type Index []Record

// At returns the record at position i.
func (idx Index) At(i int) (Record, error) {
	if i < 0 || i >= len(idx) {
		if len(idx) == 0 {
			return Record{}, fmt.Errorf("%w: %d (index is empty)", ErrRecordOutOfRange, i)
		}
		return Record{}, fmt.Errorf("%w: %d not in [0, %d]", ErrRecordOutOfRange, i, len(idx)-1)
	}
	return idx[i], nil
}

// TotalLength sums the logical length of every record.
func (idx Index) TotalLength() int64 {
	var n int64
	for _, r := range idx {
		n += r.Length
	}
	return n
}

// Package verify checks a persisted index against its FASTA file with a
// sequential read that shares no code with the memory-mapped scanner.
//
// The scanner starts a record at every '>' byte; this parser only at a '>'
// that begins a line. A '>' in the middle of a line therefore shows up as a
// mismatch even against a freshly built index.
package verify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"seqwin/internal/fasta"
	"seqwin/internal/seqindex"
)

// ErrMismatch is returned by File when the index does not describe the file.
var ErrMismatch = errors.New("index does not match file")

// Mismatch is one disagreement between the index and the file.
type Mismatch struct {
	Position int
	Field    string // header | start_offset | logical_length | count
	Index    string
	File     string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("record %d: %s: index %s, file %s", m.Position, m.Field, m.Index, m.File)
}

// Report summarizes a check.
type Report struct {
	Records    int // records found in the file
	Mismatches []Mismatch
}

// OK reports whether the index matched.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }

// Check streams r and compares every record with idx.
func Check(ctx context.Context, r io.Reader, idx seqindex.Index) (Report, error) {
	var rep Report
	err := fasta.Stream(ctx, r, func(e fasta.Entry) error {
		pos := rep.Records
		rep.Records++
		if pos >= len(idx) {
			return nil
		}
		want := idx[pos]
		if want.Header != e.Header {
			rep.Mismatches = append(rep.Mismatches, Mismatch{pos, "header", want.Header, e.Header})
		}
		if want.Offset != e.Offset {
			rep.Mismatches = append(rep.Mismatches, Mismatch{pos, "start_offset", fmt.Sprint(want.Offset), fmt.Sprint(e.Offset)})
		}
		if want.Length != e.Length {
			rep.Mismatches = append(rep.Mismatches, Mismatch{pos, "logical_length", fmt.Sprint(want.Length), fmt.Sprint(e.Length)})
		}
		return nil
	})
	if err != nil {
		return Report{}, err
	}
	if rep.Records != len(idx) {
		rep.Mismatches = append(rep.Mismatches, Mismatch{min(rep.Records, len(idx)), "count", fmt.Sprint(len(idx)), fmt.Sprint(rep.Records)})
	}
	return rep, nil
}

// File checks the FASTA at path. A readable file that disagrees with idx
// yields the report and ErrMismatch.
func File(ctx context.Context, path string, idx seqindex.Index) (Report, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer fh.Close()
	rep, err := Check(ctx, fh, idx)
	if err != nil {
		return Report{}, fmt.Errorf("%s: %w", path, err)
	}
	if !rep.OK() {
		return rep, fmt.Errorf("%s: %w (%d difference(s))", path, ErrMismatch, len(rep.Mismatches))
	}
	return rep, nil
}

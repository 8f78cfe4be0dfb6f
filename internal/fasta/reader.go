// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
)

// Entry describes one record found by a sequential read. Offset and Length
// use the same conventions as seqindex.Record.
type Entry struct {
	Header string
	Offset int64
	Length int64
}

// Stream reads FASTA from r line by line and calls emit once per record, in
// file order. Lines of any length are handled; memory use is bounded by the
// reader buffer. Cancellation via ctx is checked between lines.
func Stream(ctx context.Context, r io.Reader, emit func(Entry) error) error {
	br := bufio.NewReaderSize(r, 64<<10)

	var (
		cur    Entry
		open   bool
		off    int64 // absolute offset of the next unread byte
		header []byte
	)
	flush := func() error {
		if !open {
			return nil
		}
		open = false
		return emit(cur)
	}

	atLineStart := true
	inHeader := false
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		frag, err := br.ReadSlice('\n')
		if len(frag) > 0 {
			off += int64(len(frag))
			complete := frag[len(frag)-1] == '\n'
			switch {
			case atLineStart && frag[0] == '>':
				if ferr := flush(); ferr != nil {
					return ferr
				}
				inHeader = true
				header = append(header[:0], frag...)
			case inHeader:
				header = append(header, frag...)
			case open:
				cur.Length += int64(len(frag) - bytes.Count(frag, []byte("\n")) - bytes.Count(frag, []byte("\r")))
			}
			if inHeader && (complete || err == io.EOF) {
				line := bytes.TrimSuffix(bytes.TrimSuffix(header, []byte("\n")), []byte("\r"))
				cur = Entry{Header: string(line), Offset: off}
				open = true
				inHeader = false
			}
			atLineStart = complete
		}
		if err == nil || errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err == io.EOF {
			break
		}
		return fmt.Errorf("fasta read: %w", err)
	}
	return flush()
}

// Collect streams r and returns every entry.
func Collect(ctx context.Context, r io.Reader) ([]Entry, error) {
	var out []Entry
	err := Stream(ctx, r, func(e Entry) error {
		out = append(out, e)
		return nil
	})
	return out, err
}

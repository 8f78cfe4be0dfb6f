package seqindex

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"seqwin/internal/jsonutil"
	"seqwin/pkg/api"
)

// ToAPI converts records to the stable wire schema.
func ToAPI(idx Index) []api.RecordV1 {
	out := make([]api.RecordV1, 0, len(idx))
	for _, r := range idx {
		out = append(out, api.RecordV1{
			Header:        r.Header,
			StartOffset:   uint64(r.Offset),
			LogicalLength: uint64(r.Length),
		})
	}
	return out
}

func fromAPI(v api.RecordV1) (Record, error) {
	if v.StartOffset > math.MaxInt64 || v.LogicalLength > math.MaxInt64-v.StartOffset {
		return Record{}, fmt.Errorf("record %q: offset %d + length %d overflows", v.Header, v.StartOffset, v.LogicalLength)
	}
	return Record{Header: v.Header, Offset: int64(v.StartOffset), Length: int64(v.LogicalLength)}, nil
}

// Save writes idx to w as an indented JSON array.
func Save(w io.Writer, idx Index) error {
	return jsonutil.EncodePretty(w, ToAPI(idx))
}

// SaveFile writes idx to path, replacing any existing file.
func SaveFile(path string, idx Index) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(fh, 64<<10)
	if err := Save(bw, idx); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write index %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		_ = fh.Close()
		return fmt.Errorf("write index %s: %w", path, err)
	}
	return fh.Close()
}

// Load decodes a persisted index. Entries are decoded one at a time so large
// indexes are not buffered twice. Any failure yields ErrMalformedIndex and no
// records.
func Load(r io.Reader) (Index, error) {
	dec := json.NewDecoder(bufio.NewReaderSize(r, 64<<10))

	tok, err := dec.Token()
	if err != nil {
		return nil, malformed(err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, malformed(fmt.Errorf("expected a JSON array, got %v", tok))
	}
	idx := Index{}
	for dec.More() {
		var v api.RecordV1
		if err := dec.Decode(&v); err != nil {
			return nil, malformed(fmt.Errorf("record %d: %w", len(idx), err))
		}
		rec, err := fromAPI(v)
		if err != nil {
			return nil, malformed(err)
		}
		idx = append(idx, rec)
	}
	if _, err := dec.Token(); err != nil {
		return nil, malformed(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, malformed(errors.New("trailing data after index array"))
	}
	return idx, nil
}

// LoadFile opens and decodes the index at path. Open failures are returned as
// I/O errors, not ErrMalformedIndex.
func LoadFile(path string) (Index, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	idx, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return idx, nil
}

func malformed(err error) error {
	return fmt.Errorf("%w: %v", ErrMalformedIndex, err)
}

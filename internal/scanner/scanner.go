// Package scanner builds a seqindex.Index by walking a FASTA file in
// memory-mapped chunks.
//
// Only one chunk is mapped at a time, so peak memory is bounded by the chunk
// size rather than the file size. Chunks start at a granularity-aligned
// offset; the logical cursor is tracked separately so no byte is scanned
// twice. A header line that runs past the end of a chunk is never split: the
// chunk is abandoned and the next mapping starts at the header's marker.
package scanner

import (
	"bytes"
	"fmt"
	"os"

	"seqwin/internal/mmapio"
	"seqwin/internal/seqindex"
)

// DefaultChunkSize is the amount of new data mapped per chunk.
const DefaultChunkSize int64 = 1 << 20

const marker = '>'

// Options tunes a scan. The zero value is ready to use.
type Options struct {
	// ChunkSize is the number of unscanned bytes mapped per step
	// (<= 0 → DefaultChunkSize).
	ChunkSize int64
	// Progress, if set, is called after every chunk with the logical cursor
	// and the file size.
	Progress func(scanned, total int64)
}

// state is threaded through the chunk loop. A record stays open until the
// next marker or the end of the file closes it.
type state struct {
	open   bool
	start  int64  // payload offset of the open record
	terms  int64  // terminator bytes seen in the open record so far
	header string // header of the open record, copied out of the mapping
	recs   seqindex.Index
}

func (s *state) closeAt(end int64) {
	if !s.open {
		return
	}
	s.recs = append(s.recs, seqindex.Record{
		Header: s.header,
		Offset: s.start,
		Length: end - s.start - s.terms,
	})
	s.open = false
}

func isTerminator(b byte) bool { return b == '\n' || b == '\r' }

// Scan indexes every record of f in file order. f is only read.
func Scan(f *os.File, opts Options) (seqindex.Index, error) {
	if err := mmapio.CheckPlatform(); err != nil {
		return nil, err
	}
	size, err := mmapio.Size(f)
	if err != nil {
		return nil, err
	}
	chunk := opts.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	gran := mmapio.Granularity()

	s := &state{recs: seqindex.Index{}}
	var pos, grow int64
	for pos < size {
		aligned, adj := mmapio.Align(pos, gran)
		n := min(chunk+grow+adj, size-aligned)
		next, err := s.scanChunk(f, aligned, adj, n, size)
		if err != nil {
			return nil, err
		}
		if next == pos {
			// The header at pos is longer than the window; widen until it fits.
			grow += chunk
			continue
		}
		grow = 0
		pos = next
		if opts.Progress != nil {
			opts.Progress(pos, size)
		}
	}
	s.closeAt(size)
	return s.recs, nil
}

// ScanFile opens path and scans it.
func ScanFile(path string, opts Options) (seqindex.Index, error) {
	if err := mmapio.CheckPlatform(); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Scan(f, opts)
}

// scanChunk maps n bytes at aligned and scans them from adj. It returns the
// absolute offset the next chunk starts at: the end of this region, or the
// marker of a header line whose newline lies beyond it.
func (s *state) scanChunk(f *os.File, aligned, adj, n, size int64) (next int64, err error) {
	r, err := mmapio.Map(f, aligned, n)
	if err != nil {
		return 0, err
	}
	defer func() {
		if uerr := r.Unmap(); uerr != nil && err == nil {
			err = fmt.Errorf("munmap %s: %w", f.Name(), uerr)
		}
	}()

	data := r.Bytes()
	atEOF := r.End() == size
	for i := int(adj); i < len(data); i++ {
		b := data[i]
		if isTerminator(b) {
			if s.open {
				s.terms++
			}
			continue
		}
		if b != marker {
			continue
		}
		at := aligned + int64(i)
		nl := bytes.IndexByte(data[i:], '\n')
		if nl < 0 && !atEOF {
			return at, nil
		}
		s.closeAt(at)

		line := data[i:]
		if nl >= 0 {
			line = data[i : i+nl]
		}
		s.header = string(bytes.TrimSuffix(line, []byte{'\r'}))
		s.open = true
		s.terms = 0
		if nl < 0 {
			// Header is the last line and has no terminator: empty payload.
			s.start = size
			return size, nil
		}
		s.start = at + int64(nl) + 1
		i += nl
	}
	return r.End(), nil
}

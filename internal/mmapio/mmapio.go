// Package mmapio maps read-only, granularity-aligned regions of a file.
//
// Mapping APIs only accept offsets that are a multiple of the host's mapping
// granularity (the page size on unix, the allocation granularity on windows).
// Callers that care about an arbitrary offset map from Align(pos) and skip the
// adjustment bytes at the front of the region.
package mmapio

import (
	"errors"
	"fmt"
	"os"
	"runtime"
)

// ErrUnsupportedPlatform is returned by every mapping call on hosts without a
// memory-mapping facility.
var ErrUnsupportedPlatform = errors.New("memory-mapped files are not supported on " + runtime.GOOS + "/" + runtime.GOARCH)

// CheckPlatform fails with ErrUnsupportedPlatform when Map cannot work here.
// Callers run it before touching any file.
func CheckPlatform() error {
	if !Supported() {
		return ErrUnsupportedPlatform
	}
	return nil
}

// Align returns the largest multiple of gran not above pos and the distance
// from it to pos.
func Align(pos, gran int64) (aligned, adj int64) {
	aligned = pos / gran * gran
	return aligned, pos - aligned
}

// Size returns the current size of f in bytes.
func Size(f *os.File) (int64, error) {
	fi, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", f.Name(), err)
	}
	return fi.Size(), nil
}

// Region is a read-only view of [Offset, Offset+Len()) of a file. The bytes
// are only valid until Unmap.
type Region struct {
	Offset int64
	data   []byte
	unmap  func() error
}

// Bytes returns the mapped bytes. The slice must not be retained past Unmap.
func (r *Region) Bytes() []byte { return r.data }

// Len is the mapped length.
func (r *Region) Len() int { return len(r.data) }

// End is the absolute file offset just past the region.
func (r *Region) End() int64 { return r.Offset + int64(len(r.data)) }

// Unmap releases the mapping. Calling it more than once is a no-op.
func (r *Region) Unmap() error {
	if r == nil || r.unmap == nil {
		return nil
	}
	fn := r.unmap
	r.unmap = nil
	r.data = nil
	return fn()
}

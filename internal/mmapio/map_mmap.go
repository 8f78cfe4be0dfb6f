//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows

package mmapio

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/edsrzf/mmap-go"
)

// Supported reports whether this build can map files.
func Supported() bool { return true }

// Granularity is the alignment required of mapping offsets.
func Granularity() int64 {
	if runtime.GOOS == "windows" {
		return 64 << 10
	}
	return int64(os.Getpagesize())
}

// Map maps length bytes of f starting at offset, read-only. offset must be a
// multiple of Granularity. A zero length yields an empty region without a
// system call.
func Map(f *os.File, offset, length int64) (*Region, error) {
	if offset < 0 || length < 0 {
		return nil, fmt.Errorf("mmap %s: negative region [%d,+%d)", f.Name(), offset, length)
	}
	if offset%Granularity() != 0 {
		return nil, fmt.Errorf("mmap %s: offset %d is not a multiple of %d", f.Name(), offset, Granularity())
	}
	if length == 0 {
		return &Region{Offset: offset}, nil
	}
	if length > math.MaxInt {
		return nil, fmt.Errorf("mmap %s: region of %d bytes exceeds address space", f.Name(), length)
	}
	m, err := mmap.MapRegion(f, int(length), mmap.RDONLY, 0, offset)
	if err != nil {
		return nil, fmt.Errorf("mmap %s [%d,+%d): %w", f.Name(), offset, length, err)
	}
	return &Region{Offset: offset, data: m, unmap: m.Unmap}, nil
}

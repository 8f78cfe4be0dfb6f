//go:build !(darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || windows)

package mmapio

import "os"

func Supported() bool { return false }

func Granularity() int64 { return int64(os.Getpagesize()) }

func Map(f *os.File, offset, length int64) (*Region, error) {
	return nil, ErrUnsupportedPlatform
}

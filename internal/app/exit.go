// internal/app/exit.go
package app

import (
	"context"
	"errors"

	"seqwin/internal/mmapio"
	"seqwin/internal/seqindex"
	"seqwin/internal/verify"
	"seqwin/internal/window"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitUsage       = 2
	ExitIO          = 3
	ExitBadIndex    = 4
	ExitNoRecord    = 5
	ExitOutOfBounds = 6
	ExitUnsupported = 7
	ExitMismatch    = 8
	ExitInterrupted = 130
)

// ExitCode maps an error returned by a command to its exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, mmapio.ErrUnsupportedPlatform):
		return ExitUnsupported
	case errors.Is(err, seqindex.ErrMalformedIndex):
		return ExitBadIndex
	case errors.Is(err, seqindex.ErrRecordOutOfRange):
		return ExitNoRecord
	case errors.Is(err, window.ErrOutOfBounds):
		return ExitOutOfBounds
	case errors.Is(err, verify.ErrMismatch):
		return ExitMismatch
	default:
		return ExitIO
	}
}

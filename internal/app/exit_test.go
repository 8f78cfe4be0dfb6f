package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"seqwin/internal/mmapio"
	"seqwin/internal/seqindex"
	"seqwin/internal/verify"
	"seqwin/internal/window"
)

func TestExitCode(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("ctx: %w", err) }
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{wrap(context.Canceled), ExitInterrupted},
		{wrap(mmapio.ErrUnsupportedPlatform), ExitUnsupported},
		{wrap(seqindex.ErrMalformedIndex), ExitBadIndex},
		{wrap(seqindex.ErrRecordOutOfRange), ExitNoRecord},
		{wrap(window.ErrOutOfBounds), ExitOutOfBounds},
		{wrap(verify.ErrMismatch), ExitMismatch},
		{wrap(os.ErrNotExist), ExitIO},
		{errors.New("other"), ExitIO},
	}
	for _, c := range cases {
		if got := ExitCode(c.err); got != c.want {
			t.Fatalf("ExitCode(%v) = %d, want %d", c.err, got, c.want)
		}
	}
}

func TestExitCodes_Stable(t *testing.T) {
	if ExitUsage != 2 || ExitIO != 3 || ExitBadIndex != 4 || ExitNoRecord != 5 ||
		ExitOutOfBounds != 6 || ExitUnsupported != 7 || ExitMismatch != 8 || ExitInterrupted != 130 {
		t.Fatalf("exit code constants changed")
	}
}

package window

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	expmmap "golang.org/x/exp/mmap"

	"seqwin/internal/mmapio"
	"seqwin/internal/scanner"
	"seqwin/internal/seqindex"
)

func skipWithoutMmap(t *testing.T) {
	t.Helper()
	if !mmapio.Supported() {
		t.Skip("no mmap on this platform")
	}
}

func writeFasta(t *testing.T, data string) (string, *os.File) {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "in.fa")
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := os.Open(fn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return fn, f
}

func stripped(b []byte) []byte {
	return bytes.ReplaceAll(bytes.ReplaceAll(b, []byte("\n"), nil), []byte("\r"), nil)
}

func TestReadConcreteScenario(t *testing.T) {
	skipWithoutMmap(t)
	_, f := writeFasta(t, ">seq1\nACGT\nACGT\n>seq2\nTTTT\n")
	idx, err := scanner.Scan(f, scanner.Options{})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	got, err := Read(f, idx[0], 0, 8)
	if err != nil || string(got) != "ACGTACGT" {
		t.Fatalf("record 0: %q, %v", got, err)
	}
	got, err = Read(f, idx[1], 0, 4)
	if err != nil || string(got) != "TTTT" {
		t.Fatalf("record 1: %q, %v", got, err)
	}
}

func TestReadWholeRecordMatchesPayload(t *testing.T) {
	skipWithoutMmap(t)
	data := ">a\nACGTA\nCG\r\nTT\n>b\nGGGGGGGG\nCC\n"
	_, f := writeFasta(t, data)
	idx, err := scanner.Scan(f, scanner.Options{ChunkSize: 4})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	for i, rec := range idx {
		got, err := Read(f, rec, 0, rec.Length)
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		if int64(len(got)) != rec.Length || bytes.ContainsAny(got, "\r\n") {
			t.Fatalf("record %d: %q", i, got)
		}
		end := len(data)
		if i+1 < len(idx) {
			end = strings.Index(data[rec.Offset:], ">") + int(rec.Offset)
		}
		if want := stripped([]byte(data[rec.Offset:end])); !bytes.Equal(got, want) {
			t.Fatalf("record %d: got %q want %q", i, got, want)
		}
	}
}

func TestReadBounds(t *testing.T) {
	skipWithoutMmap(t)
	_, f := writeFasta(t, ">a\nACGTACGT\n")
	rec := seqindex.Record{Header: ">a", Offset: 3, Length: 8}

	for _, start := range []int64{8, 9, -1} {
		if _, err := Read(f, rec, start, 1); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("start=%d: want ErrOutOfBounds, got %v", start, err)
		}
	}

	got, err := Read(f, rec, 5, 100)
	if err != nil || string(got) != "CGT" {
		t.Fatalf("capped read: %q, %v", got, err)
	}
	got, err = Read(f, rec, 2, Rest)
	if err != nil || string(got) != "GTACGT" {
		t.Fatalf("rest read: %q, %v", got, err)
	}
	got, err = Read(f, rec, 2, 0)
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("zero size: %q, %v", got, err)
	}
}

func TestStartIsRawOffset(t *testing.T) {
	skipWithoutMmap(t)
	// Payload "AC\nGT\n" has logical length 4. Raw start 3 is the 'G' (the
	// newline is skipped), not the fourth base, and the cap of 4-3 leaves one
	// byte.
	_, f := writeFasta(t, ">a\nAC\nGT\n")
	rec := seqindex.Record{Header: ">a", Offset: 3, Length: 4}
	got, err := Read(f, rec, 3, Rest)
	if err != nil || string(got) != "G" {
		t.Fatalf("got %q, %v", got, err)
	}
}

func TestReadStaleIndexFails(t *testing.T) {
	skipWithoutMmap(t)
	_, f := writeFasta(t, ">a\nAC\n")
	rec := seqindex.Record{Header: ">a", Offset: 3, Length: 4000}
	_, err := Read(f, rec, 0, Rest)
	if err == nil || errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("want past-EOF I/O error, got %v", err)
	}
}

func TestReadFileMissing(t *testing.T) {
	skipWithoutMmap(t)
	_, err := ReadFile(filepath.Join(t.TempDir(), "none.fa"), seqindex.Record{Length: 1}, 0, 1)
	if !os.IsNotExist(err) {
		t.Fatalf("want not-exist, got %v", err)
	}
}

// TestReadMatchesWholeFileOracle compares random windows with the same bytes
// read through a whole-file mapping.
func TestReadMatchesWholeFileOracle(t *testing.T) {
	skipWithoutMmap(t)
	g := int(mmapio.Granularity())
	var b strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&b, ">r%d\n", r)
		n := g + 1000*r + 7
		for i := 0; i < n; i++ {
			b.WriteByte("ACGT"[(i*r+i/3)%4])
			if (i+1)%70 == 0 {
				b.WriteByte('\n')
			}
		}
		b.WriteByte('\n')
	}
	fn, f := writeFasta(t, b.String())
	idx, err := scanner.Scan(f, scanner.Options{ChunkSize: 999})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	oracle, err := expmmap.Open(fn)
	if err != nil {
		t.Fatalf("oracle: %v", err)
	}
	defer oracle.Close()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 300; i++ {
		rec := idx[rng.Intn(len(idx))]
		start := rng.Int63n(rec.Length)
		size := rng.Int63n(3*int64(g)) - 5
		want := rec.Length - start
		if size >= 0 && size < want {
			want = size
		}
		pos := rec.Offset + start
		raw := make([]byte, min(2*want+100, int64(oracle.Len())-pos))
		if _, err := oracle.ReadAt(raw, pos); err != nil {
			t.Fatalf("oracle read: %v", err)
		}
		got, err := Read(f, rec, start, size)
		if err != nil {
			t.Fatalf("Read(%s, %d, %d): %v", rec.Header, start, size, err)
		}
		if !bytes.Equal(got, stripped(raw)[:want]) {
			t.Fatalf("Read(%s, %d, %d) differs from oracle", rec.Header, start, size)
		}
	}
}

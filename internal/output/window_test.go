// internal/output/window_test.go
package output

import (
	"bytes"
	"testing"

	"seqwin/internal/seqindex"
)

var win = Window{
	Position: 1,
	Record:   seqindex.Record{Header: ">seq2 desc", Offset: 22, Length: 10},
	Start:    2,
	Seq:      []byte("ACGTACG"),
}

func TestWriteRawIsExact(t *testing.T) {
	var b bytes.Buffer
	if err := WriteRaw(&b, win); err != nil {
		t.Fatalf("raw: %v", err)
	}
	if b.String() != "ACGTACG" {
		t.Fatalf("raw output decorated: %q", b.String())
	}
}

func TestWriteText(t *testing.T) {
	var b bytes.Buffer
	if err := WriteText(&b, win); err != nil {
		t.Fatalf("text: %v", err)
	}
	if b.String() != "ACGTACG\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestWriteFASTAWraps(t *testing.T) {
	w := win
	w.Wrap = 3
	var b bytes.Buffer
	if err := WriteFASTA(&b, w); err != nil {
		t.Fatalf("fasta: %v", err)
	}
	const want = ">seq2 desc:2-9\nACG\nTAC\nG\n"
	if b.String() != want {
		t.Fatalf("got %q want %q", b.String(), want)
	}
}

func TestWriteFASTAUnwrapped(t *testing.T) {
	var b bytes.Buffer
	if err := WriteFASTA(&b, win); err != nil {
		t.Fatalf("fasta: %v", err)
	}
	if b.String() != ">seq2 desc:2-9\nACGTACG\n" {
		t.Fatalf("got %q", b.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var b bytes.Buffer
	if err := WriteJSON(&b, win); err != nil {
		t.Fatalf("json: %v", err)
	}
	const want = `{"record":1,"header":">seq2 desc","start":2,"length":7,"seq":"ACGTACG"}` + "\n"
	if b.String() != want {
		t.Fatalf("got %s", b.String())
	}
}

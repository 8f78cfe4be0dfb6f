// internal/output/window.go
package output

import (
	"fmt"
	"io"

	"seqwin/internal/jsonutil"
	"seqwin/pkg/api"
)

// WriteRaw writes exactly the window bytes.
func WriteRaw(w io.Writer, win Window) error {
	_, err := w.Write(win.Seq)
	return err
}

// WriteText writes the window bytes followed by a newline.
func WriteText(w io.Writer, win Window) error {
	if _, err := w.Write(win.Seq); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// WriteFASTA writes the window as a FASTA record named after the source
// header and the raw window coordinates.
func WriteFASTA(w io.Writer, win Window) error {
	if _, err := fmt.Fprintf(w, "%s:%d-%d\n", win.Record.Header, win.Start, win.Start+int64(len(win.Seq))); err != nil {
		return err
	}
	seq := win.Seq
	width := win.Wrap
	if width <= 0 {
		width = len(seq)
	}
	for len(seq) > 0 {
		n := min(width, len(seq))
		if _, err := w.Write(seq[:n]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		seq = seq[n:]
	}
	return nil
}

// ToAPIWindow converts a window to the stable wire schema.
func ToAPIWindow(win Window) api.WindowV1 {
	return api.WindowV1{
		Record: win.Position,
		Header: win.Record.Header,
		Start:  win.Start,
		Length: len(win.Seq),
		Seq:    string(win.Seq),
	}
}

// WriteJSON writes the window as one JSON line.
func WriteJSON(w io.Writer, win Window) error {
	return jsonutil.EncodeLine(w, ToAPIWindow(win))
}

// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"seqwin/internal/output"
	"seqwin/internal/seqindex"
)

// Writer registries (format → handler). Registered in init() below.
var (
	WindowWriters = map[string]func(io.Writer, output.Window) error{}
	ListWriters   = map[string]func(io.Writer, seqindex.Index, bool) error{}
)

// Register helpers (idempotent last-wins)
func RegisterWindow(format string, fn func(io.Writer, output.Window) error) {
	WindowWriters[format] = fn
}
func RegisterList(format string, fn func(io.Writer, seqindex.Index, bool) error) {
	ListWriters[format] = fn
}

func init() {
	RegisterWindow(output.FormatRaw, output.WriteRaw)
	RegisterWindow(output.FormatText, output.WriteText)
	RegisterWindow(output.FormatFASTA, output.WriteFASTA)
	RegisterWindow(output.FormatJSON, output.WriteJSON)

	RegisterList(output.FormatText, output.WriteListText)
	RegisterList(output.FormatJSON, func(w io.Writer, idx seqindex.Index, _ bool) error {
		return output.WriteListJSON(w, idx)
	})
	RegisterList(output.FormatJSONL, func(w io.Writer, idx seqindex.Index, _ bool) error {
		return output.WriteListJSONL(w, idx, IsBrokenPipe)
	})
}

// WriteWindow dispatches one window to the writer registered for format.
func WriteWindow(format string, w io.Writer, win output.Window) error {
	fn, ok := WindowWriters[format]
	if !ok {
		return fmt.Errorf("unknown window format %q (have %s)", format, strings.Join(WindowFormats(), ", "))
	}
	return fn(w, win)
}

// WriteList dispatches an index listing to the writer registered for format.
func WriteList(format string, w io.Writer, idx seqindex.Index, header bool) error {
	fn, ok := ListWriters[format]
	if !ok {
		return fmt.Errorf("unknown list format %q (have %s)", format, strings.Join(ListFormats(), ", "))
	}
	return fn(w, idx, header)
}

// WindowFormats lists registered window formats, sorted.
func WindowFormats() []string { return keys(WindowWriters) }

// ListFormats lists registered list formats, sorted.
func ListFormats() []string { return keys(ListWriters) }

func keys[F any](m map[string]F) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

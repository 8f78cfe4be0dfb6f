// internal/jsonutil/json.go
package jsonutil

import (
	"encoding/json"
	"io"
)

// HTML escaping is off in both encoders so FASTA headers (">chr1 <ref>")
// are written as-is.

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EncodeLine writes v as a single compact JSON line.
func EncodeLine(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

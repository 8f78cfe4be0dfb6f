// internal/output/list.go
package output

import (
	"fmt"
	"io"

	"seqwin/internal/jsonlutil"
	"seqwin/internal/jsonutil"
	"seqwin/internal/seqindex"
	"seqwin/pkg/api"
)

// WriteListText prints one tab-separated row per record.
func WriteListText(w io.Writer, idx seqindex.Index, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for i, r := range idx {
		if _, err := fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", i, r.Header, r.Offset, r.Length); err != nil {
			return err
		}
	}
	return nil
}

// WriteListJSON prints the records with their positions as a JSON array.
func WriteListJSON(w io.Writer, idx seqindex.Index) error {
	rows := make([]api.ListEntryV1, 0, len(idx))
	for i, r := range seqindex.ToAPI(idx) {
		rows = append(rows, api.ListEntryV1{Position: i, RecordV1: r})
	}
	return jsonutil.EncodePretty(w, rows)
}

// WriteListJSONL streams one JSON object per record. isBroken, if set,
// recognizes closed-pipe errors that should end the listing quietly.
func WriteListJSONL(w io.Writer, idx seqindex.Index, isBroken func(error) bool) error {
	type row struct {
		pos int
		rec seqindex.Record
	}
	in, done := jsonlutil.Start(w, 0, func(r row) api.ListEntryV1 {
		return api.ListEntryV1{Position: r.pos, RecordV1: api.RecordV1{
			Header:        r.rec.Header,
			StartOffset:   uint64(r.rec.Offset),
			LogicalLength: uint64(r.rec.Length),
		}}
	}, isBroken)
	for i, r := range idx {
		in <- row{pos: i, rec: r}
	}
	close(in)
	return <-done
}

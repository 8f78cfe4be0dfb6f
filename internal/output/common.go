package output

import "seqwin/internal/seqindex"

// Output formats.
const (
	FormatRaw   = "raw"
	FormatText  = "text"
	FormatFASTA = "fasta"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the header row of `list --output text`.
const TSVHeader = "position\theader\tstart_offset\tlogical_length"

// Window is one fetched window together with where it came from.
type Window struct {
	Position int
	Record   seqindex.Record
	Start    int64
	Seq      []byte
	Wrap     int // FASTA line width; 0 = one line
}

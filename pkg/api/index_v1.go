// pkg/api/index_v1.go
package api

// RecordV1 is the stable JSON schema for one persisted index entry.
// Keep fields, names, order and types stable; readers ignore unknown fields.
type RecordV1 struct {
	Header        string `json:"header"`         // includes the leading '>'
	StartOffset   uint64 `json:"start_offset"`   // first payload byte
	LogicalLength uint64 `json:"logical_length"` // payload bytes without line terminators
}

// WindowV1 is the JSON form of one fetched window (read --output json).
type WindowV1 struct {
	Record int    `json:"record"`
	Header string `json:"header"`
	Start  int64  `json:"start"`
	Length int    `json:"length"`
	Seq    string `json:"seq"`
}

// ListEntryV1 is one row of `seqwin list --output json`.
type ListEntryV1 struct {
	Position int `json:"position"`
	RecordV1
}

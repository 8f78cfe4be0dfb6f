// Package window fetches a sub-range of one record's payload with line
// terminators removed, mapping only the aligned region that covers it.
//
// Offsets: start is measured in raw file bytes from the record's payload
// offset, while the bounds check and the size cap use the record's logical
// (terminator-free) length. When terminators precede start inside the record,
// start skips fewer sequence characters than its value suggests, so a caller
// that advances start by the length of each returned window re-reads a few
// characters per wrapped line. Existing index consumers depend on this
// contract, so it is kept as is.
package window

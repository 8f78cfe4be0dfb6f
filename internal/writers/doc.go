// Package writers turns windows and indexes into serialized outputs.
//
// Design:
//   • Writers own all presentation dispatch (raw/text/FASTA/JSON).
//   • scanner and window stay domain-only; app stays orchestration-only.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers

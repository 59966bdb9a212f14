// Package fasta reads FASTA-formatted sequence records.
//
// Parsing is deliberately small and conservative: a line starting with
// '>' opens a record and names it, subsequent non-empty lines concatenate
// into the record's sequence, and surrounding whitespace is stripped.
// Anything stricter (alphabet checks, duplicate-name policy) belongs to
// the caller.
//
// ⚙️ Usage:
//
//	records, err := fasta.ReadFile("query.fa")
//	if err != nil { ... }
//	first := records[0] // Record{Name, Seq}
package fasta

// Package scoring defines the substitution model and gap-penalty policies
// used by local sequence alignment.
//
// 🚀 What lives here?
//
//	A Model pairs a symbol×symbol substitution table with a GapPolicy.
//	Both are immutable once constructed and safe for concurrent reads,
//	so a single Model can back many alignment runs.
//
// ✨ Key features:
//   - arbitrary substitution tables (BLOSUM/PAM-shaped files via ParseTable)
//   - quick uniform match/mismatch schemes via Uniform
//   - pluggable gap penalties: LinearGap (cost × length) or
//     ConstantGap (flat cost per gap event, any length)
//   - fail-fast lookups: scoring an unmodeled symbol pair returns
//     ErrUnknownSymbol instead of guessing
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/swalign/scoring"
//
//	// +3 match / -3 mismatch over the DNA alphabet, -2 per gap column
//	model := scoring.Uniform(3, -3, "ACGT", scoring.LinearGap(2))
//
//	// or load a substitution file
//	table, err := scoring.ParseTableFile("BLOSUM62.txt")
//	model, err = scoring.New(table, scoring.ConstantGap(8))
//
// See align for the matrix construction and traceback that consume a Model.
package scoring

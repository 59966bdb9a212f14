// Package align types: sequences, traceback modes and tuning options.
package align

import "fmt"

// GapChar is the rune written into an aligned string where the other
// sequence contributes a symbol and this one does not.
const GapChar = '-'

// Sequence is a named, immutable run of symbols. Construct with
// NewSequence; the zero value is not valid input for Build.
type Sequence struct {
	// Name identifies the sequence in finished alignments (a FASTA
	// header, an accession, anything the caller likes).
	Name string
	// Seq holds the symbols. Symbols are single bytes; every byte pair
	// occurring across the two aligned sequences must be present in the
	// scoring model.
	Seq string
}

// NewSequence returns a Sequence after validating that seq is non-empty.
func NewSequence(name, seq string) (Sequence, error) {
	if len(seq) == 0 {
		return Sequence{}, fmt.Errorf("align.NewSequence: %q: %w", name, ErrEmptySequence)
	}

	return Sequence{Name: name, Seq: seq}, nil
}

// Len returns the number of symbols in the sequence.
func (s Sequence) Len() int { return len(s.Seq) }

// Mode selects how many optimal alignments Traceback reports.
//
//   - ModeAll — every cell attaining the maximal score starts a
//     traceback, and every co-optimal move at each cell is followed, so
//     the result holds every distinct optimal alignment.
//
//   - ModeOne — only the first maximal cell (row-major) starts a
//     traceback and only the first recorded move is followed at each
//     step, yielding exactly one optimal alignment.
type Mode int

const (
	// ModeAll enumerates every co-optimal alignment.
	ModeAll Mode = iota

	// ModeOne reports a single optimal alignment, deterministically.
	ModeOne
)

// Coord addresses a matrix cell. I is the row (query-side index),
// J the column (subject-side index).
type Coord struct {
	I, J int
}

// Options configures Traceback.
//
// Fields:
//   - Mode    — ModeAll or ModeOne (see Mode).
//   - Workers — when > 1 and several cells attain the maximum, starting
//     cells are explored concurrently by up to Workers goroutines. Each
//     branch owns its own buffers, and per-start results are stitched
//     back in row-major order, so output is identical to a sequential
//     run. Values ≤ 1 mean sequential exploration.
type Options struct {
	Mode    Mode
	Workers int
}

// DefaultOptions returns the canonical configuration: enumerate all
// co-optimal alignments, sequentially.
func DefaultOptions() Options {
	return Options{Mode: ModeAll, Workers: 1}
}

// moveKind enumerates the trace-matrix move variants.
type moveKind uint8

const (
	// moveStart marks a local-alignment origin (cell score zero).
	moveStart moveKind = iota
	// moveDiag consumes one symbol from each sequence (match or mismatch).
	moveDiag
	// moveUp consumes length query symbols against a gap in the subject.
	moveUp
	// moveLeft consumes length subject symbols against a gap in the query.
	moveLeft
)

// move is one tagged traceback step stored in a trace-matrix cell. A cell
// holds several moves when candidates tie for the maximal score; that tie
// set is exactly what makes multiple optimal alignments possible.
type move struct {
	kind   moveKind
	length int
}

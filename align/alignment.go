package align

import (
	"fmt"
	"strings"
)

// DefaultTextWidth is the column width Text uses when given a
// non-positive width.
const DefaultTextWidth = 60

// Alignment is one finished optimal local alignment. All coordinates are
// 1-based and inclusive, referring to positions in the original
// (ungapped) sequences. The value is immutable once returned.
type Alignment struct {
	// QueryName and SubjectName carry the input sequence names through.
	QueryName   string
	SubjectName string

	// Query and Subject are the aligned strings, equal in length, with
	// GapChar where one sequence skips the other. Midline marks each
	// column: the symbol on a match, '+' on a positive-scoring
	// substitution, space on gaps and non-positive substitutions.
	Query   string
	Subject string
	Midline string

	// QueryStart/QueryEnd and SubjectStart/SubjectEnd delimit the aligned
	// substrings within the original sequences.
	QueryStart   int
	QueryEnd     int
	SubjectStart int
	SubjectEnd   int

	// Score is the alignment's score, the maximal value of the score
	// matrix the alignment was traced from.
	Score int
}

// assemble finalizes a branch that reached an origin cell: the reversed
// buffers are flipped, the branch's cell gives the start coordinates and
// the traceback's origin cell gives the end coordinates and score.
func (m *Matrices) assemble(br branch, origin Coord) Alignment {
	return Alignment{
		QueryName:    m.query.Name,
		SubjectName:  m.subject.Name,
		Query:        string(reversed(br.q)),
		Subject:      string(reversed(br.s)),
		Midline:      string(reversed(br.g)),
		QueryStart:   br.i + 1,
		QueryEnd:     origin.I,
		SubjectStart: br.j + 1,
		SubjectEnd:   origin.J,
		Score:        m.h[origin.I][origin.J],
	}
}

// reversed returns a flipped copy of b.
func reversed(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}

	return out
}

// String summarizes the alignment on one line.
func (al Alignment) String() string {
	return fmt.Sprintf("%s:%d-%d %s:%d-%d score=%d",
		al.QueryName, al.QueryStart, al.QueryEnd,
		al.SubjectName, al.SubjectStart, al.SubjectEnd, al.Score)
}

// Text renders the alignment as BLAST-style blocks of at most width
// columns (DefaultTextWidth when width ≤ 0): a query row, the midline,
// and a subject row, each flanked by 1-based coordinates that skip gap
// characters.
//
//	Query:   2 GTTGAC 7
//	           GTT AC
//	Sbjct:   2 GTT-AC 6
func (al Alignment) Text(width int) string {
	if width <= 0 {
		width = DefaultTextWidth
	}

	// The midline aligns under the sequence columns: "Query:" plus a
	// 4-wide coordinate plus one space.
	gutter := strings.Repeat(" ", len("Query:")+5)

	var b strings.Builder
	qpos, spos := al.QueryStart, al.SubjectStart
	for k := 0; k < len(al.Query); k += width {
		end := min(k+width, len(al.Query))
		qChunk := al.Query[k:end]
		sChunk := al.Subject[k:end]
		gChunk := al.Midline[k:end]

		qGaps := strings.Count(qChunk, string(GapChar))
		sGaps := strings.Count(sChunk, string(GapChar))
		qLineEnd := min(al.QueryEnd, qpos+width-1-qGaps)
		sLineEnd := min(al.SubjectEnd, spos+width-1-sGaps)

		fmt.Fprintf(&b, "Query:%4d %s %d\n", qpos, qChunk, qLineEnd)
		fmt.Fprintf(&b, "%s%s\n", gutter, gChunk)
		fmt.Fprintf(&b, "Sbjct:%4d %s %d\n\n", spos, sChunk, sLineEnd)

		qpos += width - qGaps
		spos += width - sGaps
	}

	return b.String()
}

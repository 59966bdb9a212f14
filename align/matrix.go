package align

import (
	"fmt"

	"github.com/katalvlaran/swalign/scoring"
)

// Matrices holds the score matrix H and the trace matrix T produced by
// Build, together with the inputs they were built from. Both matrices are
// (len(query)+1)×(len(subject)+1); row and column zero form the implicit
// empty-prefix boundary (score 0, origin tag). A Matrices value is
// read-only after Build and safe to share across traceback branches.
type Matrices struct {
	query   Sequence
	subject Sequence
	model   *scoring.Model

	h [][]int    // score matrix, every cell ≥ 0
	t [][][]move // trace matrix, per-cell co-optimal move sets

	max    int     // global maximum of h
	maxima []Coord // cells attaining max, row-major; empty when max == 0
}

// Rows returns len(query)+1, the number of matrix rows.
func (m *Matrices) Rows() int { return len(m.h) }

// Cols returns len(subject)+1, the number of matrix columns.
func (m *Matrices) Cols() int { return len(m.h[0]) }

// Score returns the score-matrix value at (i, j).
func (m *Matrices) Score(i, j int) int { return m.h[i][j] }

// MaxScore returns the global maximum of the score matrix, which is the
// optimal local-alignment score.
func (m *Matrices) MaxScore() int { return m.max }

// Maxima returns a copy of the cells attaining the maximal score, in
// row-major order. The slice is empty when no pair scores above zero.
func (m *Matrices) Maxima() []Coord {
	out := make([]Coord, len(m.maxima))
	copy(out, m.maxima)

	return out
}

// Build fills the score and trace matrices for a local alignment of query
// against subject under the given model.
//
// For each interior cell the candidates are the diagonal continuation,
// the best gap ending here in either direction, and zero. Every candidate
// equal to the cell's maximum is tagged in the trace matrix; a zero cell
// is tagged as an origin only, since zero terminates a local alignment
// regardless of how it was reached. With a linear gap policy the best gap
// is always the one-step extension, so the fill runs in O(N·M); a
// length-independent policy scans all candidate gap lengths. When several
// gap lengths tie, the longest is recorded, matching the single
// (score, length) pair a gap tag carries.
//
// Errors: ErrEmptySequence, ErrNilModel, and scoring.ErrUnknownSymbol
// when a symbol pair is absent from the model.
func Build(query, subject Sequence, model *scoring.Model) (*Matrices, error) {
	n, m := query.Len(), subject.Len()
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("align.Build: %w", ErrEmptySequence)
	}
	if model == nil {
		return nil, fmt.Errorf("align.Build: %w", ErrNilModel)
	}

	h := make([][]int, n+1)
	t := make([][][]move, n+1)
	for i := range h {
		h[i] = make([]int, m+1)
		t[i] = make([][]move, m+1)
	}
	// Boundary rows: score zero, origin tag.
	for j := 0; j <= m; j++ {
		t[0][j] = []move{{kind: moveStart}}
	}
	for i := 1; i <= n; i++ {
		t[i][0] = []move{{kind: moveStart}}
	}

	gap := model.Gap()
	linear := gap.Mode() == scoring.GapLinear
	stepPenalty := gap.Penalty(1)

	res := &Matrices{query: query, subject: subject, model: model, h: h, t: t}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			sub, err := model.Score(query.Seq[i-1], subject.Seq[j-1])
			if err != nil {
				return nil, fmt.Errorf("align.Build: cell (%d,%d): %w", i, j, err)
			}
			diag := h[i-1][j-1] + sub

			// Best gap ending here that consumes query symbols (up) and
			// subject symbols (left). Scanning from the longest candidate
			// with a strict comparison keeps the longest gap on ties.
			up, upLen := 0, 0
			left, leftLen := 0, 0
			if linear {
				up, upLen = h[i-1][j]+stepPenalty, 1
				left, leftLen = h[i][j-1]+stepPenalty, 1
			} else {
				for k := i; k >= 1; k-- {
					if v := h[i-k][j] + gap.Penalty(k); v > up {
						up, upLen = v, k
					}
				}
				for k := j; k >= 1; k-- {
					if v := h[i][j-k] + gap.Penalty(k); v > left {
						left, leftLen = v, k
					}
				}
			}

			best := 0
			if diag > best {
				best = diag
			}
			if up > best {
				best = up
			}
			if left > best {
				best = left
			}
			h[i][j] = best

			if best == 0 {
				// Zero resets the local alignment: origin tag only, even
				// when another candidate also reached zero.
				t[i][j] = []move{{kind: moveStart}}
				continue
			}
			tags := make([]move, 0, 3)
			if diag == best {
				tags = append(tags, move{kind: moveDiag, length: 1})
			}
			if up == best && upLen > 0 {
				tags = append(tags, move{kind: moveUp, length: upLen})
			}
			if left == best && leftLen > 0 {
				tags = append(tags, move{kind: moveLeft, length: leftLen})
			}
			t[i][j] = tags

			if best > res.max {
				res.max = best
				res.maxima = append(res.maxima[:0], Coord{I: i, J: j})
			} else if best == res.max {
				res.maxima = append(res.maxima, Coord{I: i, J: j})
			}
		}
	}

	return res, nil
}

// MaxScore computes only the optimal local-alignment score, without a
// trace matrix, keeping two rolling rows instead of the full matrix.
// Use it when the alignments themselves are not needed.
//
// A linear gap policy uses the one-step recurrence directly. A constant
// (per-event) policy replaces the gap-length scan with running row and
// column maxima, so both policies run in O(N·M) time and O(M) memory.
func MaxScore(query, subject Sequence, model *scoring.Model) (int, error) {
	n, m := query.Len(), subject.Len()
	if n == 0 || m == 0 {
		return 0, fmt.Errorf("align.MaxScore: %w", ErrEmptySequence)
	}
	if model == nil {
		return 0, fmt.Errorf("align.MaxScore: %w", ErrNilModel)
	}

	gap := model.Gap()
	linear := gap.Mode() == scoring.GapLinear
	stepPenalty := gap.Penalty(1)

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	// colBest[j] tracks the best score seen in column j on earlier rows;
	// only the constant policy needs it.
	var colBest []int
	if !linear {
		colBest = make([]int, m+1)
	}

	maxScore := 0
	for i := 1; i <= n; i++ {
		curr[0] = 0
		rowBest := 0 // best score on the current row left of j
		for j := 1; j <= m; j++ {
			sub, err := model.Score(query.Seq[i-1], subject.Seq[j-1])
			if err != nil {
				return 0, fmt.Errorf("align.MaxScore: cell (%d,%d): %w", i, j, err)
			}
			diag := prev[j-1] + sub

			var up, left int
			if linear {
				up = prev[j] + stepPenalty
				left = curr[j-1] + stepPenalty
			} else {
				up = colBest[j] + stepPenalty
				left = rowBest + stepPenalty
			}

			best := 0
			if diag > best {
				best = diag
			}
			if up > best {
				best = up
			}
			if left > best {
				best = left
			}
			curr[j] = best
			if best > maxScore {
				maxScore = best
			}
			if !linear && best > rowBest {
				rowBest = best
			}
		}
		if !linear {
			for j := 1; j <= m; j++ {
				if curr[j] > colBest[j] {
					colBest[j] = curr[j]
				}
			}
		}
		prev, curr = curr, prev
	}

	return maxScore, nil
}

package align

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/swalign/scoring"
)

// branch is one in-progress alignment during traceback. The aligned
// strings accumulate in reverse (the walk runs backward from a maximal
// cell toward an origin) and are flipped once the branch finalizes.
// Branching always copies the parent's buffers: sibling branches never
// share mutable state.
type branch struct {
	q, s, g []byte // query, subject and midline bytes, reversed
	i, j    int    // current matrix cell
}

// Traceback enumerates optimal alignments from the matrices produced by
// Build. ModeAll walks every maximal cell and follows every co-optimal
// move, yielding all distinct optimal alignments; ModeOne follows the
// first move from the first maximal cell only. Results come in discovery
// order — row-major over starting cells, depth-first over branches — and
// are stable across runs. A nil opts means DefaultOptions.
//
// When no cell scores above zero there is no local alignment and the
// result is empty in either mode.
//
// With Options.Workers > 1, starting cells are explored concurrently;
// output order is unchanged because per-start results are concatenated
// in row-major order.
//
// Fails with ErrInvalidTrace if a branch reaches a cell with no recorded
// moves, which would mean the trace matrix is malformed; no partial
// results are returned in that case.
func Traceback(m *Matrices, opts *Options) ([]Alignment, error) {
	if m == nil {
		return nil, fmt.Errorf("align.Traceback: nil matrices: %w", ErrInvalidTrace)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	starts := m.maxima
	if len(starts) == 0 {
		// Maximal score is zero: no symbol pair scores positively.
		return nil, nil
	}
	if o.Mode == ModeOne {
		starts = starts[:1]
	}

	if o.Workers > 1 && len(starts) > 1 {
		return m.tracebackParallel(starts, o)
	}

	var out []Alignment
	for _, origin := range starts {
		found, err := m.walk(origin, o.Mode)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}

	return out, nil
}

// tracebackParallel explores starting cells concurrently, at most
// o.Workers at a time. Each start writes into its own slot, and slots are
// flattened in row-major order afterwards, so the result matches the
// sequential walk exactly.
func (m *Matrices) tracebackParallel(starts []Coord, o Options) ([]Alignment, error) {
	results := make([][]Alignment, len(starts))
	var g errgroup.Group
	g.SetLimit(o.Workers)
	for idx, origin := range starts {
		idx, origin := idx, origin
		g.Go(func() error {
			found, err := m.walk(origin, o.Mode)
			if err != nil {
				return err
			}
			results[idx] = found

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Alignment
	for _, r := range results {
		out = append(out, r...)
	}

	return out, nil
}

// walk runs a depth-first exploration from one maximal cell. Moves at a
// cell are expanded in recorded order (diagonal, then gaps), so pushing
// them onto the stack in reverse keeps discovery order deterministic.
func (m *Matrices) walk(origin Coord, mode Mode) ([]Alignment, error) {
	stack := []branch{{i: origin.I, j: origin.J}}

	var out []Alignment
	for len(stack) > 0 {
		br := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		tags := m.t[br.i][br.j]
		if len(tags) == 0 {
			return nil, fmt.Errorf("align.Traceback: cell (%d,%d) has no moves: %w", br.i, br.j, ErrInvalidTrace)
		}
		if hasStart(tags) {
			// An origin terminates the branch unconditionally; co-occurring
			// moves are not explored past a local-alignment boundary.
			out = append(out, m.assemble(br, origin))
			continue
		}
		if mode == ModeOne {
			tags = tags[:1]
		}
		for k := len(tags) - 1; k >= 0; k-- {
			next, err := m.apply(br, tags[k])
			if err != nil {
				return nil, err
			}
			stack = append(stack, next)
		}
	}

	return out, nil
}

// apply derives a child branch from parent by one traceback move. The
// parent's buffers are copied first; the move's symbols are appended in
// reverse walk order and the indices step toward the origin.
func (m *Matrices) apply(parent branch, mv move) (branch, error) {
	child := branch{
		q: append([]byte(nil), parent.q...),
		s: append([]byte(nil), parent.s...),
		g: append([]byte(nil), parent.g...),
		i: parent.i,
		j: parent.j,
	}

	switch mv.kind {
	case moveDiag:
		if child.i < 1 || child.j < 1 {
			return branch{}, fmt.Errorf("align.Traceback: diagonal move at (%d,%d): %w", child.i, child.j, ErrInvalidTrace)
		}
		qa := m.query.Seq[child.i-1]
		sb := m.subject.Seq[child.j-1]
		glyph, err := m.midlineGlyph(qa, sb)
		if err != nil {
			return branch{}, err
		}
		child.q = append(child.q, qa)
		child.s = append(child.s, sb)
		child.g = append(child.g, glyph)
		child.i--
		child.j--
	case moveUp:
		if mv.length < 1 || child.i-mv.length < 0 {
			return branch{}, fmt.Errorf("align.Traceback: gap of %d rows at (%d,%d): %w", mv.length, child.i, child.j, ErrInvalidTrace)
		}
		for l := 0; l < mv.length; l++ {
			child.q = append(child.q, m.query.Seq[child.i-1-l])
			child.s = append(child.s, GapChar)
			child.g = append(child.g, ' ')
		}
		child.i -= mv.length
	case moveLeft:
		if mv.length < 1 || child.j-mv.length < 0 {
			return branch{}, fmt.Errorf("align.Traceback: gap of %d columns at (%d,%d): %w", mv.length, child.i, child.j, ErrInvalidTrace)
		}
		for l := 0; l < mv.length; l++ {
			child.q = append(child.q, GapChar)
			child.s = append(child.s, m.subject.Seq[child.j-1-l])
			child.g = append(child.g, ' ')
		}
		child.j -= mv.length
	default:
		return branch{}, fmt.Errorf("align.Traceback: unknown move at (%d,%d): %w", child.i, child.j, ErrInvalidTrace)
	}

	return child, nil
}

// midlineGlyph renders the midline marker for a diagonal move: the symbol
// itself on a match, '+' on a positive-scoring substitution, space
// otherwise. Symbol pairs were already validated during Build, so the
// lookup cannot fail on a well-formed Matrices.
func (m *Matrices) midlineGlyph(qa, sb byte) (byte, error) {
	if qa == sb {
		return qa, nil
	}
	sub, err := m.model.Score(qa, sb)
	if err != nil {
		return 0, fmt.Errorf("align.Traceback: %w", err)
	}
	if sub > 0 {
		return '+', nil
	}

	return ' ', nil
}

// hasStart reports whether a move set contains the origin tag.
func hasStart(tags []move) bool {
	for _, mv := range tags {
		if mv.kind == moveStart {
			return true
		}
	}

	return false
}

// Align is the one-shot convenience: Build then Traceback. A nil opts
// means DefaultOptions.
func Align(query, subject Sequence, model *scoring.Model, opts *Options) ([]Alignment, error) {
	m, err := Build(query, subject, model)
	if err != nil {
		return nil, err
	}

	return Traceback(m, opts)
}

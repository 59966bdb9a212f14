package align_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/swalign/align"
	"github.com/katalvlaran/swalign/scoring"
)

// TestTraceback_ParallelMatchesSequential verifies that concurrent
// exploration of the starting cells leaves no goroutines behind and
// produces exactly the sequential result, in the same order.
func TestTraceback_ParallelMatchesSequential(t *testing.T) {
	defer goleak.VerifyNone(t)

	model := scoring.Uniform(2, -2, "ACGT", scoring.LinearGap(1))
	q := mustSeq(t, "q", "CAGC")
	s := mustSeq(t, "s", "CATC")

	m, err := align.Build(q, s, model)
	require.NoError(t, err)

	sequential, err := align.Traceback(m, nil)
	require.NoError(t, err)
	require.Len(t, sequential, 4)

	opts := align.DefaultOptions()
	opts.Workers = 4
	parallel, err := align.Traceback(m, &opts)
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel, "parallel traceback must preserve discovery order")
}

// TestTraceback_ParallelManyStarts stresses the worker pool with a
// repetitive input whose motif recurs, so many cells tie for the maximum.
func TestTraceback_ParallelManyStarts(t *testing.T) {
	defer goleak.VerifyNone(t)

	q := mustSeq(t, "q", strings.Repeat("ACGT", 8))
	s := mustSeq(t, "s", "ACGT")
	model := scoring.Uniform(3, -3, "ACGT", scoring.LinearGap(2))

	m, err := align.Build(q, s, model)
	require.NoError(t, err)
	require.Len(t, m.Maxima(), 8, "the motif recurs once per repeat")

	sequential, err := align.Traceback(m, nil)
	require.NoError(t, err)
	require.Len(t, sequential, 8)

	opts := align.DefaultOptions()
	opts.Workers = 8
	parallel, err := align.Traceback(m, &opts)
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

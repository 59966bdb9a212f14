package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swalign/scoring"
)

// TestGapPolicy_Linear verifies length-proportional penalties and sign
// normalization.
func TestGapPolicy_Linear(t *testing.T) {
	p := scoring.LinearGap(2)
	assert.Equal(t, scoring.GapLinear, p.Mode())
	assert.Equal(t, -2, p.Penalty(1))
	assert.Equal(t, -6, p.Penalty(3))
	assert.Equal(t, 0, p.Penalty(0), "non-positive lengths cost nothing")

	neg := scoring.LinearGap(-2)
	assert.Equal(t, -2, neg.Penalty(1), "cost sign must be normalized")
}

// TestGapPolicy_Constant verifies the flat per-event penalty.
func TestGapPolicy_Constant(t *testing.T) {
	p := scoring.ConstantGap(8)
	assert.Equal(t, scoring.GapConstant, p.Mode())
	assert.Equal(t, -8, p.Penalty(1))
	assert.Equal(t, -8, p.Penalty(100), "length must not change a constant penalty")
	assert.Equal(t, 0, p.Penalty(0))
}

// TestUniform checks the match/mismatch scheme and the unknown-symbol path.
func TestUniform(t *testing.T) {
	m := scoring.Uniform(3, -3, "ACGT", scoring.LinearGap(2))

	got, err := m.Score('A', 'A')
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	got, err = m.Score('A', 'C')
	require.NoError(t, err)
	assert.Equal(t, -3, got)

	_, err = m.Score('A', 'X')
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)
	_, err = m.Score('X', 'A')
	assert.ErrorIs(t, err, scoring.ErrUnknownSymbol)
}

// TestNew_CopiesTable verifies the table is deep-copied: mutating the
// argument afterwards must not change the Model.
func TestNew_CopiesTable(t *testing.T) {
	table := map[byte]map[byte]int{
		'A': {'A': 1, 'B': -1},
		'B': {'A': -1, 'B': 1},
	}
	m, err := scoring.New(table, scoring.LinearGap(1))
	require.NoError(t, err)

	table['A']['A'] = 99
	got, err := m.Score('A', 'A')
	require.NoError(t, err)
	assert.Equal(t, 1, got, "Model must own its table")
}

// TestNew_EmptyTable verifies the fail-fast on an empty table.
func TestNew_EmptyTable(t *testing.T) {
	_, err := scoring.New(nil, scoring.LinearGap(1))
	assert.ErrorIs(t, err, scoring.ErrEmptyTable)
}

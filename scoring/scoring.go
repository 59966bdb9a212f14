package scoring

import "fmt"

// Model pairs a symbol×symbol substitution table with a gap-penalty policy.
// A Model is immutable after construction and safe for concurrent use.
type Model struct {
	table map[byte]map[byte]int
	gap   GapPolicy
}

// New builds a Model from a substitution table and a gap policy. The table
// is deep-copied, so later mutation of the argument does not leak into the
// Model. Returns ErrEmptyTable when the table has no entries.
func New(table map[byte]map[byte]int, gap GapPolicy) (*Model, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("scoring.New: %w", ErrEmptyTable)
	}
	copied := make(map[byte]map[byte]int, len(table))
	for a, row := range table {
		inner := make(map[byte]int, len(row))
		for b, v := range row {
			inner[b] = v
		}
		copied[a] = inner
	}

	return &Model{table: copied, gap: gap}, nil
}

// Uniform builds a Model scoring match for identical symbols and mismatch
// for differing ones, over every symbol in alphabet. Duplicate symbols in
// alphabet are harmless.
func Uniform(match, mismatch int, alphabet string, gap GapPolicy) *Model {
	table := make(map[byte]map[byte]int, len(alphabet))
	for i := 0; i < len(alphabet); i++ {
		a := alphabet[i]
		if _, ok := table[a]; ok {
			continue
		}
		row := make(map[byte]int, len(alphabet))
		for j := 0; j < len(alphabet); j++ {
			b := alphabet[j]
			if a == b {
				row[b] = match
			} else {
				row[b] = mismatch
			}
		}
		table[a] = row
	}

	return &Model{table: table, gap: gap}
}

// Score returns the substitution score for aligning symbol a against
// symbol b. Fails with ErrUnknownSymbol when either symbol is absent from
// the table; an unmodeled symbol means the input was not validated.
func (m *Model) Score(a, b byte) (int, error) {
	row, ok := m.table[a]
	if !ok {
		return 0, fmt.Errorf("scoring.Score: symbol %q: %w", a, ErrUnknownSymbol)
	}
	v, ok := row[b]
	if !ok {
		return 0, fmt.Errorf("scoring.Score: symbol %q: %w", b, ErrUnknownSymbol)
	}

	return v, nil
}

// Gap returns the Model's gap-penalty policy.
func (m *Model) Gap() GapPolicy { return m.gap }

// Penalty is shorthand for m.Gap().Penalty(length).
func (m *Model) Penalty(length int) int { return m.gap.Penalty(length) }

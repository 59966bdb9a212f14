package scoring

// GapMode selects how a gap's penalty scales with its length.
//
//   - GapLinear   — every gap column costs the same amount, so a gap of
//     length k is penalized k times. This is the classic per-column model
//     and lets the alignment matrix be filled in O(N·M).
//
//   - GapConstant — a gap costs a flat amount per gap event regardless of
//     its length. Long gaps become cheap, and the matrix fill must scan
//     candidate gap lengths, costing an extra O(max(N,M)) factor.
type GapMode int

const (
	// GapLinear mode: penalty(k) = k × cost. One-step recurrence applies.
	GapLinear GapMode = iota

	// GapConstant mode: penalty(k) = cost for any k ≥ 1.
	GapConstant
)

// GapPolicy is an immutable gap-penalty strategy. Construct with LinearGap
// or ConstantGap; the zero value is a free linear gap (cost 0).
type GapPolicy struct {
	mode GapMode
	cost int
}

// LinearGap returns a policy charging cost per gap column. The sign of cost
// is ignored; penalties are always non-positive.
func LinearGap(cost int) GapPolicy {
	return GapPolicy{mode: GapLinear, cost: absInt(cost)}
}

// ConstantGap returns a policy charging cost once per gap event,
// independent of the gap's length.
func ConstantGap(cost int) GapPolicy {
	return GapPolicy{mode: GapConstant, cost: absInt(cost)}
}

// Mode reports which scaling model the policy uses.
func (p GapPolicy) Mode() GapMode { return p.mode }

// Penalty returns the (non-positive) penalty for a gap of the given length.
// Lengths below one cost nothing.
func (p GapPolicy) Penalty(length int) int {
	if length < 1 {
		return 0
	}
	if p.mode == GapConstant {
		return -p.cost
	}

	return -p.cost * length
}

// absInt returns the absolute value of an int.
func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

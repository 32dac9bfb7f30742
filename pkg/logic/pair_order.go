package logic

// ComparePairs implements the total order `≤` of spec.md §4.7.4: fewer
// subsets wins outright; with equal subset counts, the first differing
// index i is decided by the larger |Rᵢ|, then (if tied) the larger |Dᵢ|.
// Returns a negative number if a < b, zero if equal under this order, and
// positive if a > b.
func ComparePairs(a, b *TolerancePair) int {
	if len(a.Subsets) != len(b.Subsets) {
		return len(a.Subsets) - len(b.Subsets)
	}
	for i := range a.Subsets {
		if d := len(b.Subsets[i].RIdx) - len(a.Subsets[i].RIdx); d != 0 {
			return d
		}
		if d := len(b.Subsets[i].DIdx) - len(a.Subsets[i].DIdx); d != 0 {
			return d
		}
	}
	return 0
}

// comparePartialWorse reports whether a partially-built pair (its closed
// subsets only — the trailing subset is ignored, per spec.md §4.7.4's
// compareToPartial) can already be shown strictly worse than best under
// ComparePairs, regardless of how the remaining items are placed. It is
// used only to prune search branches (spec.md §4.7.3), never to accept a
// result, so it only needs to be sound (never prune a branch that could
// still tie or beat best), not complete.
func comparePartialWorse(closed []Subset, best *TolerancePair) bool {
	if best == nil {
		return false
	}
	n := len(closed)
	// The final pair will have strictly more subsets than are closed so
	// far (the trailing subset, at minimum, becomes one more) — so if we
	// already have at least as many closed subsets as best has in total,
	// the final count can only exceed best's, which is strictly worse.
	if n >= len(best.Subsets) {
		return true
	}
	// With fewer than len(best)-1 closed subsets, the final pair can still
	// end up with fewer subsets than best, which beats it outright.
	if n+1 < len(best.Subsets) {
		return false
	}
	for i := 0; i < n; i++ {
		if len(closed[i].RIdx) != len(best.Subsets[i].RIdx) {
			return len(closed[i].RIdx) < len(best.Subsets[i].RIdx)
		}
		if len(closed[i].DIdx) != len(best.Subsets[i].DIdx) {
			return len(closed[i].DIdx) < len(best.Subsets[i].DIdx)
		}
	}
	return false
}

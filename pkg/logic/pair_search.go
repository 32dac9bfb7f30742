package logic

import "context"

// Strategy selects a tolerance-pair search algorithm (spec.md §4.7).
type Strategy int

const (
	// Brute enumerates every ordered partition of conditionals and
	// constants by digit enumeration (spec.md §4.7.1).
	Brute Strategy = iota
	// SearchAll is the backtracking search, returning every valid pair
	// (spec.md §4.7.2).
	SearchAll
	// SearchMin is the backtracking search restricted to the `≤`-minimal
	// valid pairs (spec.md §4.7.3).
	SearchMin
)

// ProgressFunc is invoked periodically during a search with a progress
// estimate in [0,1]; returning false requests cooperative cancellation
// (spec.md §5). May be nil.
type ProgressFunc func(progress float64) bool

// FoundPair is one entry of a SearchResult: a valid tolerance pair, its
// C6 witnesses, and the ranking function C8 builds from it.
type FoundPair struct {
	Pair      *TolerancePair
	Witnesses []Witness
	Ranking   *Ranking
}

// SearchResult is the sorted list of tolerance pairs a search found, in
// the order of spec.md §4.7.4 (ComparePairs).
type SearchResult struct {
	Pairs []FoundPair
}

// SearchTolerancePairs runs the requested strategy over kb/ws, reporting
// progress through progress (which may be nil) and honoring ctx
// cancellation. It never returns an error for "no valid pair" — that is
// the ordinary empty-result case (spec.md §7 InconsistentKB); it returns
// a *CancelledError if ctx is cancelled or progress returns false.
func SearchTolerancePairs(ctx context.Context, kb *KnowledgeBase, ws *WorldSet, strategy Strategy, progress ProgressFunc) (*SearchResult, error) {
	switch strategy {
	case Brute:
		return bruteForceSearch(ctx, kb, ws, progress)
	case SearchAll:
		return backtrackSearch(ctx, kb, ws, progress, false)
	case SearchMin:
		return backtrackSearch(ctx, kb, ws, progress, true)
	default:
		invariantf("SearchTolerancePairs: unrecognized strategy %d", strategy)
		return nil, nil
	}
}

func finalizePair(kb *KnowledgeBase, ws *WorldSet, pair *TolerancePair) (FoundPair, bool) {
	valid, witnesses := Validate(pair, kb, ws)
	if !valid {
		return FoundPair{}, false
	}
	ranking, ok := BuildRanking(kb, ws, pair)
	if !ok {
		return FoundPair{}, false
	}
	return FoundPair{Pair: pair, Witnesses: witnesses, Ranking: ranking}, true
}

func sortResult(pairs []FoundPair) {
	// Insertion sort by ComparePairs; result lists are small.
	for i := 1; i < len(pairs); i++ {
		j := i
		for j > 0 && ComparePairs(pairs[j-1].Pair, pairs[j].Pair) > 0 {
			pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
			j--
		}
	}
}

func checkCancelled(ctx context.Context, progress ProgressFunc, p float64) error {
	select {
	case <-ctx.Done():
		return &CancelledError{}
	default:
	}
	if progress != nil && !progress(p) {
		return &CancelledError{}
	}
	return nil
}

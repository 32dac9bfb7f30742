package logic

import "context"

// bruteForceSearch enumerates every ordered partition of the conditionals
// (and, unless kb is propositional, of the domain) into k non-empty
// blocks for k = 1..kMax, by treating the assignment as an n-digit base-k
// number (digit j assigns item j to block digit-value), discarding any
// assignment that leaves a block empty. Every surviving candidate is
// tested via Validate; valid ones are kept (spec.md §4.7.1).
func bruteForceSearch(ctx context.Context, kb *KnowledgeBase, ws *WorldSet, progress ProgressFunc) (*SearchResult, error) {
	n := len(kb.Conditionals)
	if n == 0 {
		return &SearchResult{}, nil
	}
	propositional := kb.Propositional()
	d := len(kb.Domain)

	kMax := n
	if !propositional && d < kMax {
		kMax = d
	}

	// Precompute every k's candidate digit-strings up front so the total
	// candidate count is known before the first checkCancelled call —
	// the progress fraction (spec.md §5: "a progress value in [0,1]")
	// needs the grand total across every k, not just the current one.
	type kCandidates struct {
		rDigitsList [][]int
		dDigitsList [][]int
	}
	byK := make([]kCandidates, 0, kMax)
	total := 0
	for k := 1; k <= kMax; k++ {
		var rDigitsList [][]int
		enumerateSurjections(n, k, func(digits []int) {
			rDigitsList = append(rDigitsList, append([]int(nil), digits...))
		})

		var dDigitsList [][]int
		if propositional {
			dDigitsList = [][]int{nil}
		} else {
			enumerateSurjections(d, k, func(digits []int) {
				dDigitsList = append(dDigitsList, append([]int(nil), digits...))
			})
		}

		byK = append(byK, kCandidates{rDigitsList: rDigitsList, dDigitsList: dDigitsList})
		total += len(rDigitsList) * len(dDigitsList)
	}

	var found []FoundPair
	tested := 0

	for k := 1; k <= kMax; k++ {
		cand := byK[k-1]
		for _, rDigits := range cand.rDigitsList {
			for _, dDigits := range cand.dDigitsList {
				pair := buildPairFromDigits(k, rDigits, dDigits)
				if fp, ok := finalizePair(kb, ws, pair); ok {
					found = append(found, fp)
				}
				tested++
				if err := checkCancelled(ctx, progress, float64(tested)/float64(total)); err != nil {
					return nil, err
				}
			}
		}
	}

	sortResult(found)
	return &SearchResult{Pairs: found}, nil
}

// enumerateSurjections calls yield once per base-k digit string of length
// n that uses every digit 0..k-1 at least once.
func enumerateSurjections(n, k int, yield func(digits []int)) {
	if n == 0 {
		return
	}
	digits := make([]int, n)
	total := 1
	for i := 0; i < n; i++ {
		total *= k
	}
	for code := 0; code < total; code++ {
		c := code
		seen := uint64(0)
		for i := 0; i < n; i++ {
			digits[i] = c % k
			seen |= 1 << uint(digits[i])
			c /= k
		}
		if seen == (uint64(1)<<uint(k))-1 {
			yield(digits)
		}
	}
}

func buildPairFromDigits(k int, rDigits, dDigits []int) *TolerancePair {
	subsets := make([]Subset, k)
	for cidx, block := range rDigits {
		subsets[block].RIdx = append(subsets[block].RIdx, cidx)
	}
	for didx, block := range dDigits {
		subsets[block].DIdx = append(subsets[block].DIdx, didx)
	}
	return &TolerancePair{Subsets: subsets}
}

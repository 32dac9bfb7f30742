package logic

// BuildRanking constructs the System-Z ranking function for kb from a
// tolerance pair (spec.md §4.8). If pair is not actually a tolerance pair
// (Validate fails), the returned Ranking has every world at rank 0 (the
// "remains all-zero" contract of spec.md §4.8/§7) and ok is false; callers
// that require a ranking should treat ok==false as InconsistentKBError.
func BuildRanking(kb *KnowledgeBase, ws *WorldSet, pair *TolerancePair) (ranking *Ranking, ok bool) {
	ranks := make([]int, len(ws.Worlds))
	valid, _ := Validate(pair, kb, ws)
	if !valid {
		return &Ranking{WS: ws, KB: kb, Ranks: ranks}, false
	}

	m := len(pair.Subsets) - 1
	facts := kb.FactsConjunction()
	base := m + 2

	finiteMin := Infinity
	for wi, w := range ws.Worlds {
		if !Satisfies(w, facts, ws) {
			ranks[wi] = Infinity
			continue
		}
		rank := 0
		power := 1
		for i := 0; i <= m; i++ {
			rank += lambda(i, w, pair, kb, ws) * power
			power *= base
		}
		ranks[wi] = rank
		if rank < finiteMin {
			finiteMin = rank
		}
	}

	if finiteMin < Infinity && finiteMin > 0 {
		for wi := range ranks {
			if ranks[wi] != Infinity {
				ranks[wi] -= finiteMin
			}
		}
	}

	return &Ranking{WS: ws, KB: kb, Ranks: ranks}, true
}

// lambda computes λ(i, w): the largest subset index j such that some
// conditional c ∈ Rⱼ, grounded by some a ∈ Dᵢ (or the dummy constant),
// falsifies in w; scanning j from m down to 0 and returning j+1 on the
// first hit, or 0 if nothing falsifies. The scan must stop at the first
// (i.e. largest) hit — this is a maximum, not a sum (spec.md §9).
func lambda(i int, w World, pair *TolerancePair, kb *KnowledgeBase, ws *WorldSet) int {
	di := domainFor(pair, i, kb)
	m := len(pair.Subsets) - 1
	for j := m; j >= 0; j-- {
		for _, cidx := range pair.Subsets[j].RIdx {
			c := kb.Conditionals[cidx]
			for _, a := range di {
				if Satisfies(w, Falsification(GroundConditional(c, a)), ws) {
					return j + 1
				}
			}
		}
	}
	return 0
}

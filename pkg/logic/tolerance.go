package logic

// Subset is one tuple (Rᵢ, Dᵢ) of a TolerancePair: conditional indices
// into KnowledgeBase.Conditionals, and constant indices into the domain
// list in effect (kb.Domain, or the single dummy slot in the propositional
// edge case — see domainFor).
type Subset struct {
	RIdx []int
	DIdx []int
}

// TolerancePair is an ordered sequence of m+1 Subsets. Outside of an
// in-progress search branch, every Subset is non-empty in R (and in D,
// unless the KB is propositional) and the Subsets partition the
// conditionals and the domain exactly (spec.md §3).
type TolerancePair struct {
	Subsets []Subset
}

// Witness records, for one conditional of one subset, the constant and
// world that satisfy the tolerance condition of spec.md §4.6.
type Witness struct {
	SubsetIndex    int
	ConditionalIdx int
	Constant       Constant
	WorldIdx       int
}

// domainFor returns the constants of Dᵢ, or the single dummy constant for
// every i when kb is propositional (spec.md §3 TolerancePair invariant).
func domainFor(pair *TolerancePair, i int, kb *KnowledgeBase) []Constant {
	if kb.Propositional() {
		return []Constant{dummyConstant}
	}
	idx := pair.Subsets[i].DIdx
	d := make([]Constant, len(idx))
	for k, j := range idx {
		d[k] = kb.Domain[j]
	}
	return d
}

// Validate decides whether pair is a tolerance pair (spec.md §4.6): for
// every i and every conditional c ∈ Rᵢ, some world satisfying all facts
// and some constant a ∈ Dᵢ (or the dummy constant) verifies
// ground(c, a), and for no j ≥ i, no c' ∈ Rⱼ, no a' ∈ Dᵢ (note: Dᵢ, not
// Dⱼ — the asymmetry of spec.md §9 reproduced verbatim) does that same
// world falsify ground(c', a').
//
// On success, it also returns one witness (subset, conditional, witnessing
// constant, witnessing world) per conditional.
func Validate(pair *TolerancePair, kb *KnowledgeBase, ws *WorldSet) (bool, []Witness) {
	return validateFrom(pair, kb, ws, 0)
}

// ValidateTrailing runs the same compatibility test restricted to the
// pair's last subset, used as the cheap incremental prune of spec.md
// §4.7.2 while a partial pair is still being extended. Conditionals not
// yet placed anywhere do not participate, matching the "κ₀: every world
// has rank 0" reading — verifies/falsifies there reduce to plain
// satisfaction of the verification/falsification formula, which is all
// this (and Validate) ever compute; no actual ranking function is
// involved in the tolerance condition itself.
func ValidateTrailing(pair *TolerancePair, kb *KnowledgeBase, ws *WorldSet) bool {
	if len(pair.Subsets) == 0 {
		return true
	}
	last := len(pair.Subsets) - 1
	ok, _ := validateFrom(pair, kb, ws, last)
	return ok
}

func validateFrom(pair *TolerancePair, kb *KnowledgeBase, ws *WorldSet, startAt int) (bool, []Witness) {
	m := len(pair.Subsets) - 1
	factWorlds := ws.FactWorlds(kb)
	var witnesses []Witness

	for i := startAt; i <= m; i++ {
		di := domainFor(pair, i, kb)

		canFalsify := make(map[int]bool, len(factWorlds))
		for _, wi := range factWorlds {
			w := ws.Worlds[wi]
			found := false
			for j := i; j <= m && !found; j++ {
				for _, cidx := range pair.Subsets[j].RIdx {
					cprime := kb.Conditionals[cidx]
					for _, a := range di {
						if Satisfies(w, Falsification(GroundConditional(cprime, a)), ws) {
							found = true
							break
						}
					}
					if found {
						break
					}
				}
			}
			canFalsify[wi] = found
		}

		for _, cidx := range pair.Subsets[i].RIdx {
			c := kb.Conditionals[cidx]
			found := false
			for _, a := range di {
				vf := Verification(GroundConditional(c, a))
				for _, wi := range factWorlds {
					if canFalsify[wi] {
						continue
					}
					if Satisfies(ws.Worlds[wi], vf, ws) {
						witnesses = append(witnesses, Witness{SubsetIndex: i, ConditionalIdx: cidx, Constant: a, WorldIdx: wi})
						found = true
						break
					}
				}
				if found {
					break
				}
			}
			if !found {
				return false, nil
			}
		}
	}
	return true, witnesses
}

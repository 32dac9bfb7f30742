package logic

import (
	"fmt"
	"math"

	"systemz/internal/explain"
)

// Infinity is the sentinel maximum rank, representing impossibility
// (spec.md §3 RankingFunction invariant: "∞ is represented by a sentinel
// maximum integer"). It is chosen well below math.MaxInt so that a single
// subtraction (κ(A∧B) − κ(A), rank.go RankConditional) never overflows.
const Infinity = math.MaxInt32 / 2

// Ranking maps every world of a WorldSet to a rank in ℕ ∪ {∞}. Ranks is
// aligned index-for-index with WS.Worlds: Ranks[i] is the rank of
// WS.Worlds[i]. The domain of this mapping is therefore always exactly
// the world set (spec.md §3 invariant).
type Ranking struct {
	WS    *WorldSet
	KB    *KnowledgeBase
	Ranks []int
}

// RankWorld returns κ(w) for the world at index i.
func (r *Ranking) RankWorld(i int) int { return r.Ranks[i] }

// RankFormula computes κ(F): for a ground formula, the minimum rank among
// satisfying worlds (∞ if none); for an open formula, the minimum over all
// groundings by the domain (spec.md §4.5).
func (r *Ranking) RankFormula(f *Formula, col *explain.Collector) int {
	col.Enter("rank-formula", f.String())
	defer col.Leave()

	if v, ok := FreeVariable(f); ok {
		best := Infinity
		for _, c := range r.WS.Domain {
			rv := r.RankFormula(groundVar(f, v, c), col)
			if rv < best {
				best = rv
			}
		}
		col.Leaf("open-formula-min-over-domain", fmt.Sprintf("min = %s", rankString(best)))
		return best
	}

	best := Infinity
	for i, w := range r.WS.Worlds {
		if r.Ranks[i] >= best {
			continue
		}
		if Satisfies(w, f, r.WS) {
			best = r.Ranks[i]
		}
	}
	col.Leaf("ground-formula-min-over-satisfying-worlds", fmt.Sprintf("min = %s", rankString(best)))
	return best
}

// RankConditional computes κ(B|A): for a ground conditional, ∞ if
// κ(A∧B)=∞, else κ(A∧B) − κ(A); for an open conditional, the minimum over
// every grounding by the domain (spec.md §4.5).
func (r *Ranking) RankConditional(c Conditional, col *explain.Collector) int {
	col.Enter("rank-conditional", c.String())
	defer col.Leave()

	if c.IsGround() {
		ab := r.RankFormula(Verification(c), col)
		if ab == Infinity {
			col.Leaf("ground-conditional-vacuous", "κ(A∧B)=∞")
			return Infinity
		}
		a := r.RankFormula(c.Ante, col)
		rv := ab - a
		col.Leaf("ground-conditional-difference", fmt.Sprintf("κ(A∧B)-κ(A) = %d-%d = %d", ab, a, rv))
		return rv
	}

	v, _ := c.FreeVariable()
	best := Infinity
	for _, cst := range r.WS.Domain {
		g := Conditional{Ante: groundVar(c.Ante, v, cst), Cons: groundVar(c.Cons, v, cst)}
		rv := r.RankConditional(g, col)
		if rv < best {
			best = rv
		}
	}
	col.Leaf("open-conditional-min-over-domain", fmt.Sprintf("min = %s", rankString(best)))
	return best
}

// AcceptsFormula decides κ ⊨ F: every rank-0 world satisfies F.
func (r *Ranking) AcceptsFormula(f *Formula, col *explain.Collector) bool {
	col.Enter("accepts-formula", f.String())
	defer col.Leave()
	for i, w := range r.WS.Worlds {
		if r.Ranks[i] == 0 && !Satisfies(w, f, r.WS) {
			col.Leaf("rejected", fmt.Sprintf("rank-0 world %d falsifies F", i))
			return false
		}
	}
	col.Leaf("accepted", "every rank-0 world satisfies F")
	return true
}

// AcceptsGroundConditional decides acceptance of a ground conditional:
// κ(A∧B) < κ(A∧¬B).
func (r *Ranking) AcceptsGroundConditional(c Conditional, col *explain.Collector) bool {
	col.Enter("accepts-ground-conditional", c.String())
	defer col.Leave()
	ab := r.RankFormula(Verification(c), col)
	af := r.RankFormula(Falsification(c), col)
	accepted := ab < af
	col.Leaf("compare", fmt.Sprintf("κ(A∧B)=%s, κ(A∧¬B)=%s, accepted=%v", rankString(ab), rankString(af), accepted))
	return accepted
}

// AcceptsKB decides whether every world falsifying a fact has rank ∞, and
// every conditional is accepted (spec.md §4.5 KB acceptance).
func (r *Ranking) AcceptsKB(col *explain.Collector) bool {
	col.Enter("accepts-kb", "")
	defer col.Leave()
	facts := r.KB.FactsConjunction()
	for i, w := range r.WS.Worlds {
		if !Satisfies(w, facts, r.WS) && r.Ranks[i] != Infinity {
			col.Leaf("rejected", fmt.Sprintf("world %d falsifies facts but has finite rank %d", i, r.Ranks[i]))
			return false
		}
	}
	for _, c := range r.KB.Conditionals {
		if !r.AcceptsConditional(c, col) {
			col.Leaf("rejected", "conditional "+c.String()+" not accepted")
			return false
		}
	}
	col.Leaf("accepted", "all facts rank-∞-or-satisfied, all conditionals accepted")
	return true
}

func rankString(k int) string {
	if k >= Infinity {
		return "inf"
	}
	return fmt.Sprintf("%d", k)
}

package logic

import (
	"fmt"

	"systemz/internal/explain"
)

// WeakRepresentatives returns WRep(c): constants a such that grounding c
// by a realizes the open rank κ_open(A∧B), and the grounded conditional is
// itself accepted (spec.md §4.5.1).
func (r *Ranking) WeakRepresentatives(c Conditional, col *explain.Collector) []Constant {
	col.Enter("weak-representatives", c.String())
	defer col.Leave()

	abOpen := r.RankFormula(Verification(c), col)
	var out []Constant
	for _, a := range r.WS.Domain {
		g := GroundConditional(c, a)
		gv := r.RankFormula(Verification(g), col)
		if gv == abOpen && r.AcceptsGroundConditional(g, col) {
			out = append(out, a)
		}
	}
	col.Leaf("result", fmt.Sprintf("%d weak representative(s)", len(out)))
	return out
}

// Representatives returns Rep(c): WRep(c) if it has at most one element,
// else the subset of WRep(c) whose grounded falsification rank is minimal
// (spec.md §4.5.1).
func (r *Ranking) Representatives(c Conditional, col *explain.Collector) []Constant {
	col.Enter("representatives", c.String())
	defer col.Leave()

	wrep := r.WeakRepresentatives(c, col)
	if len(wrep) <= 1 {
		return wrep
	}

	type scored struct {
		c Constant
		f int
	}
	scores := make([]scored, len(wrep))
	best := Infinity
	for i, a := range wrep {
		g := GroundConditional(c, a)
		fv := r.RankFormula(Falsification(g), col)
		scores[i] = scored{c: a, f: fv}
		if fv < best {
			best = fv
		}
	}
	var out []Constant
	for _, s := range scores {
		if s.f == best {
			out = append(out, s.c)
		}
	}
	col.Leaf("result", fmt.Sprintf("%d representative(s) at minimal falsification rank %s", len(out), rankString(best)))
	return out
}

// AcceptsConditional decides acceptance of a (possibly open) conditional,
// dispatching to the ground rule or the first-order rule of spec.md §4.5
// (Acc-1/Acc-2).
func (r *Ranking) AcceptsConditional(c Conditional, col *explain.Collector) bool {
	if c.IsGround() {
		return r.AcceptsGroundConditional(c, col)
	}

	col.Enter("accepts-open-conditional", c.String())
	defer col.Leave()

	repC := r.Representatives(c, col)
	if len(repC) == 0 {
		col.Leaf("rejected", "Rep(c) is empty")
		return false
	}

	negC := c.Negated()
	repNeg := r.Representatives(negC, col)

	abOpen := r.RankFormula(Verification(c), col)
	afOpen := r.RankFormula(Falsification(c), col)

	if abOpen < afOpen {
		col.Leaf("accepted-acc1", fmt.Sprintf("κ_open(A∧B)=%d < κ_open(A∧¬B)=%d", abOpen, afOpen))
		return true
	}
	if abOpen != afOpen {
		col.Leaf("rejected", "neither Acc-1 nor Acc-2 applies: open ranks disagree the wrong way")
		return false
	}

	for _, c1 := range repC {
		for _, c2 := range repNeg {
			lhs := r.RankFormula(Verification(GroundConditional(negC, c1)), col)
			rhs := r.RankFormula(Verification(GroundConditional(c, c2)), col)
			if !(lhs < rhs) {
				col.Leaf("rejected-acc2", fmt.Sprintf("c1=%s c2=%s: κ(ground(c̄,c1))=%d not < κ(ground(c,c2))=%d", c1, c2, lhs, rhs))
				return false
			}
		}
	}
	col.Leaf("accepted-acc2", "open ranks tied, every representative pair satisfies the Acc-2 inequality")
	return true
}

package logic

import "sort"

// KnowledgeBase is an unordered set of defeasible conditionals plus an
// unordered set of closed facts, over a finite domain of constants.
type KnowledgeBase struct {
	Conditionals []Conditional
	Facts        []*Formula
	Domain       []Constant
}

// NewKB validates and builds a KnowledgeBase: every fact must be closed
// (no free variable), per spec.md §3/§6.
func NewKB(conditionals []Conditional, facts []*Formula, domain []Constant) (*KnowledgeBase, error) {
	for i, f := range facts {
		if !IsGround(f) {
			return nil, NewInputError("fact #%d is not closed: %s", i, f.String())
		}
	}
	dom := append([]Constant(nil), domain...)
	sort.Slice(dom, func(i, j int) bool { return dom[i].Name < dom[j].Name })
	return &KnowledgeBase{
		Conditionals: append([]Conditional(nil), conditionals...),
		Facts:        append([]*Formula(nil), facts...),
		Domain:       dom,
	}, nil
}

// Propositional reports the edge case of spec.md §4.7.1/§4.6: an empty
// domain, where only nullary predicates can appear.
func (kb *KnowledgeBase) Propositional() bool { return len(kb.Domain) == 0 }

// EffectiveDomain returns kb.Domain, or the single internal dummy constant
// when the KB is propositional (spec.md §3 TolerancePair invariant).
func (kb *KnowledgeBase) EffectiveDomain() []Constant {
	if kb.Propositional() {
		return []Constant{dummyConstant}
	}
	return kb.Domain
}

// FactsConjunction returns the conjunction of every fact (⊤ if there are
// none), used as the single "w satisfies all facts" test throughout C6/C8.
func (kb *KnowledgeBase) FactsConjunction() *Formula {
	if len(kb.Facts) == 0 {
		return Tautology()
	}
	return And(kb.Facts...)
}

package logic

// Ground substitutes constant c for f's free variable and returns a new
// formula. If f is already ground, f itself is returned unchanged (no
// allocation). Quantifier-bound occurrences of a variable with the same
// name as f's free variable are left untouched (shadowing).
func Ground(f *Formula, c Constant) *Formula {
	v, ok := FreeVariable(f)
	if !ok {
		return f
	}
	return groundVar(f, v, c)
}

func groundVar(f *Formula, v Variable, c Constant) *Formula {
	switch f.kind {
	case KAtom, KLiteral:
		return Lit(f.atom.ground(v, c), f.negated)
	case KElementaryConjunction:
		lits := make([]Literal, len(f.lits))
		for i, l := range f.lits {
			lits[i] = l.ground(v, c)
		}
		return ElemConj(lits...)
	case KNegation:
		return Not(groundVar(f.sub, v, c))
	case KConjunction:
		subs := make([]*Formula, len(f.subs))
		for i, s := range f.subs {
			subs[i] = groundVar(s, v, c)
		}
		return And(subs...)
	case KDisjunction:
		subs := make([]*Formula, len(f.subs))
		for i, s := range f.subs {
			subs[i] = groundVar(s, v, c)
		}
		return Or(subs...)
	case KImplication:
		return Implies(groundVar(f.ante, v, c), groundVar(f.cons, v, c))
	case KTautology:
		return Tautology()
	case KContradiction:
		return Contradiction()
	case KExists:
		if f.qvar.Name == v.Name {
			return Exists(f.qvar, f.sub) // v is shadowed here; nothing to ground
		}
		return Exists(f.qvar, groundVar(f.sub, v, c))
	case KForall:
		if f.qvar.Name == v.Name {
			return Forall(f.qvar, f.sub)
		}
		return Forall(f.qvar, groundVar(f.sub, v, c))
	default:
		invariantf("groundVar: unrecognized formula kind %d", f.kind)
		return nil
	}
}

// GroundAll returns one grounding of f per constant in domain.
func GroundAll(f *Formula, domain []Constant) []*Formula {
	out := make([]*Formula, len(domain))
	for i, c := range domain {
		out[i] = Ground(f, c)
	}
	return out
}

// GroundConditional grounds a conditional's antecedent and consequent
// jointly with the same substitution.
func GroundConditional(c Conditional, a Constant) Conditional {
	return Conditional{Ante: Ground(c.Ante, a), Cons: Ground(c.Cons, a)}
}

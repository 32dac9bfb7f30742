package logic

// Satisfies decides w ⊨ f by structural recursion (spec.md §4.4). f must
// be ground except possibly for variables bound by its own ∀/∃ nodes —
// evaluating a genuinely open formula's truth in isolation is undefined;
// callers needing the rank of an open formula go through RankFormula
// (rank.go), which grounds over the domain before ever calling Satisfies.
func Satisfies(w World, f *Formula, ws *WorldSet) bool {
	switch f.kind {
	case KAtom:
		return satisfiesAtom(w, f.atom, ws)
	case KLiteral:
		return !satisfiesAtom(w, f.atom, ws)
	case KElementaryConjunction:
		for _, l := range f.lits {
			ok := satisfiesAtom(w, l.Atom, ws)
			if l.Negated {
				ok = !ok
			}
			if !ok {
				return false
			}
		}
		return true
	case KNegation:
		return !Satisfies(w, f.sub, ws)
	case KConjunction:
		for _, s := range f.subs {
			if !Satisfies(w, s, ws) {
				return false
			}
		}
		return true
	case KDisjunction:
		for _, s := range f.subs {
			if Satisfies(w, s, ws) {
				return true
			}
		}
		return false
	case KImplication:
		return !Satisfies(w, f.ante, ws) || Satisfies(w, f.cons, ws)
	case KTautology:
		return true
	case KContradiction:
		return false
	case KExists:
		for _, c := range ws.Domain {
			if Satisfies(w, groundVar(f.sub, f.qvar, c), ws) {
				return true
			}
		}
		return false
	case KForall:
		for _, c := range ws.Domain {
			if !Satisfies(w, groundVar(f.sub, f.qvar, c), ws) {
				return false
			}
		}
		return true
	default:
		invariantf("Satisfies: unrecognized formula kind %d", f.kind)
		return false
	}
}

func satisfiesAtom(w World, a RelationalAtom, ws *WorldSet) bool {
	if !a.IsGround() {
		invariantf("Satisfies: encountered non-ground atom %s outside a quantifier", a.Key())
	}
	i := ws.IndexOf(a)
	if i < 0 {
		invariantf("Satisfies: atom %s is not an interpretable of this world set", a.Key())
	}
	return w.Get(i)
}

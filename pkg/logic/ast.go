package logic

import (
	"sort"
	"strings"
)

// RelationalAtom is a predicate applied to an argument list whose length
// equals the predicate's arity. A ground atom contains no variable term.
type RelationalAtom struct {
	Pred Predicate
	Args []Term
}

// NewAtom constructs an atom, validating the argument count against the
// predicate's arity.
func NewAtom(p Predicate, args ...Term) (RelationalAtom, error) {
	if len(args) != p.Arity {
		return RelationalAtom{}, NewInputError("predicate %s expects %d argument(s), got %d", p.Name, p.Arity, len(args))
	}
	cp := make([]Term, len(args))
	copy(cp, args)
	return RelationalAtom{Pred: p, Args: cp}, nil
}

// IsGround reports whether the atom contains no variable argument.
func (a RelationalAtom) IsGround() bool {
	for _, t := range a.Args {
		if t.IsVar() {
			return false
		}
	}
	return true
}

// FreeVariable returns the atom's free variable and true, if it has one.
func (a RelationalAtom) FreeVariable() (Variable, bool) {
	for _, t := range a.Args {
		if t.IsVar() {
			return t.AsVariable(), true
		}
	}
	return Variable{}, false
}

// ground substitutes c for the atom's free variable, if any.
func (a RelationalAtom) ground(v Variable, c Constant) RelationalAtom {
	args := make([]Term, len(a.Args))
	for i, t := range a.Args {
		if t.IsVar() && t.Name() == v.Name {
			args[i] = TermConst(c)
		} else {
			args[i] = t
		}
	}
	return RelationalAtom{Pred: a.Pred, Args: args}
}

// Key is the canonical structural key used for equality, hashing, and map
// keys throughout this package.
func (a RelationalAtom) Key() string {
	var b strings.Builder
	b.WriteString(a.Pred.Name)
	b.WriteByte('(')
	for i, t := range a.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		if t.IsVar() {
			b.WriteByte('?')
		}
		b.WriteString(t.Name())
	}
	b.WriteByte(')')
	return b.String()
}

func (a RelationalAtom) String() string { return a.Key() }

// Literal is an atom or its negation.
type Literal struct {
	Atom    RelationalAtom
	Negated bool
}

func (l Literal) Key() string {
	if l.Negated {
		return "!" + l.Atom.Key()
	}
	return l.Atom.Key()
}

func (l Literal) String() string { return l.Key() }

func (l Literal) ground(v Variable, c Constant) Literal {
	return Literal{Atom: l.Atom.ground(v, c), Negated: l.Negated}
}

// Kind tags the variant of a Formula.
type Kind int

const (
	KAtom Kind = iota
	KLiteral
	KElementaryConjunction
	KNegation
	KConjunction
	KDisjunction
	KImplication
	KTautology
	KContradiction
	KExists
	KForall
)

// Formula is the sum type over the grammar of spec.md §3: Atom, Literal,
// ElementaryConjunction, Negation, Conjunction, Disjunction, Implication,
// Tautology, Contradiction, ExistentialQuantification, and
// UniversalQuantification. Formulas hold no state of their own; equality
// and hashing are structural, via Key().
//
// Constructors always allocate fresh backing slices for Lits/Subs — never
// alias an existing ElementaryConjunction's literal list or an existing
// Conjunction/Disjunction's sub-formula list. Verification and
// falsification formulas (rank.go) depend on this: they build A∧B and
// A∧¬B out of an existing antecedent A, and must not retroactively mutate
// it if a caller later extends A in place.
type Formula struct {
	kind Kind

	atom    RelationalAtom // KAtom, KLiteral
	negated bool           // KLiteral

	lits []Literal // KElementaryConjunction (owned copy)

	sub  *Formula   // KNegation, KExists, KForall
	subs []*Formula // KConjunction, KDisjunction (owned copy)

	ante *Formula // KImplication
	cons *Formula // KImplication

	qvar Variable // KExists, KForall
}

// Kind exposes the formula's tag for callers that need to switch on shape
// (e.g. explanation-tree rule naming).
func (f *Formula) Kind() Kind { return f.kind }

// Atom builds an unnegated atomic formula.
func Atom(a RelationalAtom) *Formula { return &Formula{kind: KAtom, atom: a} }

// Lit builds a (possibly negated) literal formula. An unnegated literal
// collapses to the Atom variant, keeping Atom/Literal disjoint.
func Lit(a RelationalAtom, negated bool) *Formula {
	if !negated {
		return Atom(a)
	}
	return &Formula{kind: KLiteral, atom: a, negated: true}
}

// ElemConj builds an elementary conjunction (a flat list of literals, all
// of which must be satisfied).
func ElemConj(lits ...Literal) *Formula {
	cp := make([]Literal, len(lits))
	copy(cp, lits)
	return &Formula{kind: KElementaryConjunction, lits: cp}
}

// Not builds the negation of f. Negating a bare atom or literal collapses
// to the dual literal; negating anything else wraps it in a Negation node.
func Not(f *Formula) *Formula {
	switch f.kind {
	case KAtom:
		return Lit(f.atom, true)
	case KLiteral:
		return Lit(f.atom, false)
	case KTautology:
		return Contradiction()
	case KContradiction:
		return Tautology()
	default:
		return &Formula{kind: KNegation, sub: f.Clone()}
	}
}

// And builds the (n-ary) conjunction of fs, copying the slice so later
// mutation of the caller's slice cannot alias this formula's children.
func And(fs ...*Formula) *Formula {
	cp := make([]*Formula, len(fs))
	for i, s := range fs {
		cp[i] = s.Clone()
	}
	return &Formula{kind: KConjunction, subs: cp}
}

// Or builds the (n-ary) disjunction of fs.
func Or(fs ...*Formula) *Formula {
	cp := make([]*Formula, len(fs))
	for i, s := range fs {
		cp[i] = s.Clone()
	}
	return &Formula{kind: KDisjunction, subs: cp}
}

// Implies builds the implication ante -> cons.
func Implies(ante, cons *Formula) *Formula {
	return &Formula{kind: KImplication, ante: ante.Clone(), cons: cons.Clone()}
}

// Tautology builds the always-true formula ⊤.
func Tautology() *Formula { return &Formula{kind: KTautology} }

// Contradiction builds the always-false formula ⊥.
func Contradiction() *Formula { return &Formula{kind: KContradiction} }

// Exists builds ∃v. F.
func Exists(v Variable, f *Formula) *Formula {
	return &Formula{kind: KExists, qvar: v, sub: f.Clone()}
}

// Forall builds ∀v. F.
func Forall(v Variable, f *Formula) *Formula {
	return &Formula{kind: KForall, qvar: v, sub: f.Clone()}
}

// Clone returns a deep copy of f. Every constructor above calls Clone on
// its inputs, so aliasing across formulas built from a shared sub-formula
// is never possible (spec.md §9).
func (f *Formula) Clone() *Formula {
	if f == nil {
		return nil
	}
	cp := &Formula{kind: f.kind, atom: f.atom, negated: f.negated, qvar: f.qvar}
	if f.lits != nil {
		cp.lits = append([]Literal(nil), f.lits...)
	}
	cp.sub = f.sub.Clone()
	if f.subs != nil {
		cp.subs = make([]*Formula, len(f.subs))
		for i, s := range f.subs {
			cp.subs[i] = s.Clone()
		}
	}
	cp.ante = f.ante.Clone()
	cp.cons = f.cons.Clone()
	return cp
}

// Atoms returns every RelationalAtom appearing anywhere in f, deduplicated
// by Key(), in first-seen order.
func Atoms(f *Formula) []RelationalAtom {
	seen := map[string]bool{}
	var out []RelationalAtom
	var visit func(*Formula)
	add := func(a RelationalAtom) {
		k := a.Key()
		if !seen[k] {
			seen[k] = true
			out = append(out, a)
		}
	}
	visit = func(f *Formula) {
		switch f.kind {
		case KAtom, KLiteral:
			add(f.atom)
		case KElementaryConjunction:
			for _, l := range f.lits {
				add(l.Atom)
			}
		case KNegation, KExists, KForall:
			visit(f.sub)
		case KConjunction, KDisjunction:
			for _, s := range f.subs {
				visit(s)
			}
		case KImplication:
			visit(f.ante)
			visit(f.cons)
		case KTautology, KContradiction:
		default:
			invariantf("Atoms: unrecognized formula kind %d", f.kind)
		}
	}
	visit(f)
	return out
}

// Variables returns the set of free variable names appearing in f: those
// not bound by an enclosing quantifier over the same name.
func Variables(f *Formula) map[string]bool {
	out := map[string]bool{}
	var visit func(f *Formula, bound map[string]bool)
	visit = func(f *Formula, bound map[string]bool) {
		switch f.kind {
		case KAtom, KLiteral:
			if v, ok := f.atom.FreeVariable(); ok && !bound[v.Name] {
				out[v.Name] = true
			}
		case KElementaryConjunction:
			for _, l := range f.lits {
				if v, ok := l.Atom.FreeVariable(); ok && !bound[v.Name] {
					out[v.Name] = true
				}
			}
		case KNegation:
			visit(f.sub, bound)
		case KExists, KForall:
			inner := make(map[string]bool, len(bound)+1)
			for k := range bound {
				inner[k] = true
			}
			inner[f.qvar.Name] = true
			visit(f.sub, inner)
		case KConjunction, KDisjunction:
			for _, s := range f.subs {
				visit(s, bound)
			}
		case KImplication:
			visit(f.ante, bound)
			visit(f.cons, bound)
		case KTautology, KContradiction:
		default:
			invariantf("Variables: unrecognized formula kind %d", f.kind)
		}
	}
	visit(f, map[string]bool{})
	return out
}

// FreeVariable returns the formula's single free variable, if it has
// exactly one, per this package's single-free-variable restriction.
func FreeVariable(f *Formula) (Variable, bool) {
	vs := Variables(f)
	if len(vs) == 0 {
		return Variable{}, false
	}
	names := make([]string, 0, len(vs))
	for n := range vs {
		names = append(names, n)
	}
	sort.Strings(names)
	return Variable{Name: names[0]}, true
}

// IsGround reports whether f has no free variable.
func IsGround(f *Formula) bool {
	_, ok := FreeVariable(f)
	return !ok
}

// Key is the canonical structural key for f, used for equality, hashing,
// and map keys.
func (f *Formula) Key() string {
	switch f.kind {
	case KAtom, KLiteral:
		return Literal{Atom: f.atom, Negated: f.negated}.Key()
	case KElementaryConjunction:
		keys := make([]string, len(f.lits))
		for i, l := range f.lits {
			keys[i] = l.Key()
		}
		sort.Strings(keys)
		return "conj{" + strings.Join(keys, ",") + "}"
	case KNegation:
		return "!(" + f.sub.Key() + ")"
	case KConjunction:
		keys := make([]string, len(f.subs))
		for i, s := range f.subs {
			keys[i] = s.Key()
		}
		return "and(" + strings.Join(keys, ",") + ")"
	case KDisjunction:
		keys := make([]string, len(f.subs))
		for i, s := range f.subs {
			keys[i] = s.Key()
		}
		return "or(" + strings.Join(keys, ",") + ")"
	case KImplication:
		return "imp(" + f.ante.Key() + "->" + f.cons.Key() + ")"
	case KTautology:
		return "T"
	case KContradiction:
		return "F"
	case KExists:
		return "exists(" + f.qvar.Name + "," + f.sub.Key() + ")"
	case KForall:
		return "forall(" + f.qvar.Name + "," + f.sub.Key() + ")"
	default:
		invariantf("Key: unrecognized formula kind %d", f.kind)
		return ""
	}
}

// Equal reports structural equality via Key().
func (f *Formula) Equal(other *Formula) bool { return f.Key() == other.Key() }

func (f *Formula) String() string {
	switch f.kind {
	case KAtom, KLiteral:
		return Literal{Atom: f.atom, Negated: f.negated}.String()
	case KElementaryConjunction:
		parts := make([]string, len(f.lits))
		for i, l := range f.lits {
			parts[i] = l.String()
		}
		return strings.Join(parts, " ∧ ")
	case KNegation:
		return "¬(" + f.sub.String() + ")"
	case KConjunction:
		parts := make([]string, len(f.subs))
		for i, s := range f.subs {
			parts[i] = s.String()
		}
		return "(" + strings.Join(parts, " ∧ ") + ")"
	case KDisjunction:
		parts := make([]string, len(f.subs))
		for i, s := range f.subs {
			parts[i] = s.String()
		}
		return "(" + strings.Join(parts, " ∨ ") + ")"
	case KImplication:
		return "(" + f.ante.String() + " → " + f.cons.String() + ")"
	case KTautology:
		return "⊤"
	case KContradiction:
		return "⊥"
	case KExists:
		return "∃" + f.qvar.Name + ". " + f.sub.String()
	case KForall:
		return "∀" + f.qvar.Name + ". " + f.sub.String()
	default:
		return "?"
	}
}

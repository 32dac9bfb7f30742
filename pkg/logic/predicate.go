package logic

import "fmt"

// Predicate is a named relation of arity 0 (propositional) or 1 (monadic).
// Multi-arity predicates are outside this package's scope.
type Predicate struct {
	Name  string
	Arity int
}

// NewPredicate validates and constructs a Predicate. Arity must be 0 or 1.
func NewPredicate(name string, arity int) (Predicate, error) {
	if arity != 0 && arity != 1 {
		return Predicate{}, &InputError{Message: fmt.Sprintf("predicate %q: arity %d unsupported, only 0 and 1 are", name, arity)}
	}
	return Predicate{Name: name, Arity: arity}, nil
}

func (p Predicate) String() string { return p.Name }

// Constant names an individual of the single shared sort.
type Constant struct {
	Name string
}

func (c Constant) String() string { return c.Name }

// dummyConstant stands in for the domain in the propositional edge case
// (empty domain, only nullary predicates). It is used only when the domain
// is empty, so it never stands beside a user constant.
var dummyConstant = Constant{Name: "_"}

// Variable is the single free variable a conditional or formula may carry.
type Variable struct {
	Name string
}

func (v Variable) String() string { return v.Name }

// Term is either a Constant or the free Variable of a formula.
type Term struct {
	isVar bool
	name  string
}

// TermConst builds a constant term.
func TermConst(c Constant) Term { return Term{isVar: false, name: c.Name} }

// TermVar builds a variable term.
func TermVar(v Variable) Term { return Term{isVar: true, name: v.Name} }

// IsVar reports whether the term is the free variable.
func (t Term) IsVar() bool { return t.isVar }

// Name returns the term's underlying name, whether constant or variable.
func (t Term) Name() string { return t.name }

// AsConstant returns the term as a Constant; only meaningful when !IsVar().
func (t Term) AsConstant() Constant { return Constant{Name: t.name} }

// AsVariable returns the term as a Variable; only meaningful when IsVar().
func (t Term) AsVariable() Variable { return Variable{Name: t.name} }

func (t Term) String() string { return t.name }

// Equal reports structural equality: same kind (constant vs variable) and
// the same underlying name. Satisfies go-cmp's Equal-method convention so
// Term's unexported fields never need a cmp.Comparer at call sites.
func (t Term) Equal(other Term) bool {
	return t.isVar == other.isVar && t.name == other.name
}

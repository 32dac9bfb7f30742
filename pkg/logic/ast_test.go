package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func birdPred() Predicate {
	p, _ := NewPredicate("Bird", 1)
	return p
}

func flyPred() Predicate {
	p, _ := NewPredicate("Fly", 1)
	return p
}

func TestFormulaConstructors(t *testing.T) {
	x := Variable{Name: "X"}
	tw := Constant{Name: "tweety"}
	bird, _ := NewAtom(birdPred(), TermVar(x))
	fly, _ := NewAtom(flyPred(), TermVar(x))

	t.Run("And clones its operands so later mutation cannot alias", func(t *testing.T) {
		a := Atom(bird)
		b := Atom(fly)
		conj := And(a, b)
		a.negated = true // mutate the original after construction
		if conj.subs[0].negated {
			t.Error("And must defensively clone its arguments")
		}
	})

	t.Run("Or clones its operands", func(t *testing.T) {
		a := Atom(bird)
		b := Atom(fly)
		disj := Or(a, b)
		a.negated = true
		if disj.subs[0].negated {
			t.Error("Or must defensively clone its arguments")
		}
	})

	t.Run("Not collapses double literal negation", func(t *testing.T) {
		lit := Lit(bird, false)
		n := Not(lit)
		if n.kind != KLiteral || !n.negated {
			t.Errorf("Not(atom) should yield a negated literal, got kind=%v negated=%v", n.kind, n.negated)
		}
		if Not(n).kind != KAtom {
			t.Error("Not(Not(atom)) should collapse back to a plain atom")
		}
	})

	t.Run("Not of tautology/contradiction flips", func(t *testing.T) {
		if Not(Tautology()).kind != KContradiction {
			t.Error("Not(top) should be bottom")
		}
		if Not(Contradiction()).kind != KTautology {
			t.Error("Not(bottom) should be top")
		}
	})

	t.Run("Key is structural and stable under reconstruction", func(t *testing.T) {
		f1 := And(Atom(bird), Not(Atom(fly)))
		f2 := And(Atom(bird), Not(Atom(fly)))
		if f1.Key() != f2.Key() {
			t.Error("structurally identical formulas must have equal keys")
		}
		f3 := Or(Atom(bird), Not(Atom(fly)))
		if f1.Key() == f3.Key() {
			t.Error("structurally different formulas must have different keys")
		}
	})

	t.Run("FreeVariable reports the conditional's shared variable", func(t *testing.T) {
		f := Implies(Atom(bird), Atom(fly))
		v, ok := FreeVariable(f)
		if !ok || v.Name != "X" {
			t.Errorf("expected free variable X, got %v ok=%v", v, ok)
		}
	})

	t.Run("ground quantifier respects shadowing", func(t *testing.T) {
		inner := Atom(bird)
		qf := Forall(x, inner)
		g := groundVar(qf, x, tw)
		if g.Key() != qf.Key() {
			t.Error("grounding a variable shadowed by its own quantifier must leave the formula unchanged")
		}
	})

	t.Run("Atoms dedups by key in first-seen order", func(t *testing.T) {
		f := And(Atom(bird), Or(Atom(fly), Atom(bird)))
		atoms := Atoms(f)
		if len(atoms) != 2 {
			t.Fatalf("expected 2 distinct atoms, got %d: %v", len(atoms), atoms)
		}
		if atoms[0].Pred.Name != "Bird" || atoms[1].Pred.Name != "Fly" {
			t.Errorf("expected [Bird, Fly] in first-seen order, got %v", atoms)
		}
	})
}

func TestClone(t *testing.T) {
	f := And(Atom(birdPredAtom()), Not(Atom(flyPredAtom())))
	c := f.Clone()
	if c.Key() != f.Key() {
		t.Error("Clone must preserve structural identity")
	}
	c.subs[0].negated = true
	if f.subs[0].negated {
		t.Error("Clone must be a deep copy, not aliasing the original's children")
	}
}

func TestNewAtomCopiesArgsNotAliasingCaller(t *testing.T) {
	args := []Term{TermConst(Constant{Name: "tweety"})}
	a, err := NewAtom(birdPred(), args...)
	if err != nil {
		t.Fatalf("NewAtom: %v", err)
	}
	args[0] = TermVar(Variable{Name: "X"})

	want, _ := NewAtom(birdPred(), TermConst(Constant{Name: "tweety"}))
	if diff := cmp.Diff(want, a); diff != "" {
		t.Errorf("NewAtom aliased the caller's slice; atom changed after caller mutation (-want +got):\n%s", diff)
	}
}

func birdPredAtom() RelationalAtom {
	a, _ := NewAtom(birdPred(), TermConst(Constant{Name: "tweety"}))
	return a
}

func flyPredAtom() RelationalAtom {
	a, _ := NewAtom(flyPred(), TermConst(Constant{Name: "tweety"}))
	return a
}

package logic

import "testing"

func TestGroundSubstitutesFreeVariable(t *testing.T) {
	x := Variable{Name: "X"}
	tweety := Constant{Name: "tweety"}
	bird := mustPred(t, "Bird", 1)
	birdX, _ := NewAtom(bird, TermVar(x))

	g := Ground(Atom(birdX), tweety)
	want, _ := NewAtom(bird, TermConst(tweety))
	if g.Key() != Atom(want).Key() {
		t.Errorf("Ground(Bird(X), tweety) = %s, want %s", g.Key(), Atom(want).Key())
	}
}

func TestGroundIsNoOpOnAlreadyGroundFormula(t *testing.T) {
	bird := mustPred(t, "Bird", 1)
	birdTweety, _ := NewAtom(bird, TermConst(Constant{Name: "tweety"}))
	f := Atom(birdTweety)
	g := Ground(f, Constant{Name: "robin"})
	if g != f {
		t.Error("Ground on an already-ground formula should return the same pointer, not reallocate")
	}
}

func TestGroundRecursesThroughConnectives(t *testing.T) {
	x := Variable{Name: "X"}
	bird := mustPred(t, "Bird", 1)
	fly := mustPred(t, "Fly", 1)
	birdX, _ := NewAtom(bird, TermVar(x))
	flyX, _ := NewAtom(fly, TermVar(x))
	tweety := Constant{Name: "tweety"}

	f := Implies(Atom(birdX), Not(Atom(flyX)))
	g := Ground(f, tweety)
	if !IsGround(g) {
		t.Fatal("grounding should eliminate the sole free variable")
	}

	birdTweety, _ := NewAtom(bird, TermConst(tweety))
	flyTweety, _ := NewAtom(fly, TermConst(tweety))
	want := Implies(Atom(birdTweety), Not(Atom(flyTweety)))
	if g.Key() != want.Key() {
		t.Errorf("Ground(Bird(X) -> ¬Fly(X), tweety) = %s, want %s", g.Key(), want.Key())
	}
}

func TestGroundRespectsQuantifierShadowing(t *testing.T) {
	x := Variable{Name: "X"}
	bird := mustPred(t, "Bird", 1)
	birdX, _ := NewAtom(bird, TermVar(x))
	tweety := Constant{Name: "tweety"}

	// X is bound by its own ∀ here, so grounding the outer (nonexistent)
	// free variable X must leave this sub-formula untouched.
	f := Forall(x, Atom(birdX))
	g := groundVar(f, x, tweety)
	if g.Key() != f.Key() {
		t.Error("grounding a variable shadowed by its own quantifier must be a no-op")
	}
}

func TestGroundConditionalGroundsBothSides(t *testing.T) {
	x := Variable{Name: "X"}
	bird := mustPred(t, "Bird", 1)
	fly := mustPred(t, "Fly", 1)
	birdX, _ := NewAtom(bird, TermVar(x))
	flyX, _ := NewAtom(fly, TermVar(x))
	c, err := NewConditional(Atom(birdX), Atom(flyX))
	if err != nil {
		t.Fatalf("NewConditional: %v", err)
	}
	tweety := Constant{Name: "tweety"}

	g := GroundConditional(c, tweety)
	if !g.IsGround() {
		t.Fatal("GroundConditional should produce a fully ground conditional")
	}
	if !c.Ante.Clone().Equal(c.Ante) {
		t.Fatal("sanity check on Equal/Clone failed")
	}
}

func TestGroundAllOneGroundingPerDomainConstant(t *testing.T) {
	x := Variable{Name: "X"}
	bird := mustPred(t, "Bird", 1)
	birdX, _ := NewAtom(bird, TermVar(x))
	domain := []Constant{{Name: "tweety"}, {Name: "robin"}}

	gs := GroundAll(Atom(birdX), domain)
	if len(gs) != 2 {
		t.Fatalf("expected 2 groundings, got %d", len(gs))
	}
	for i, c := range domain {
		want, _ := NewAtom(bird, TermConst(c))
		if gs[i].Key() != Atom(want).Key() {
			t.Errorf("grounding %d = %s, want %s", i, gs[i].Key(), Atom(want).Key())
		}
	}
}

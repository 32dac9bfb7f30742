package logic

import "testing"

func TestSatisfiesPropositionalConnectives(t *testing.T) {
	p := mustPred(t, "P", 0)
	q := mustPred(t, "Q", 0)
	pAtom, _ := NewAtom(p)
	qAtom, _ := NewAtom(q)

	c, err := NewConditional(Atom(pAtom), Atom(qAtom))
	if err != nil {
		t.Fatalf("NewConditional: %v", err)
	}
	kb2, err := NewKB([]Conditional{c}, nil, nil)
	if err != nil {
		t.Fatalf("NewKB: %v", err)
	}
	ws, err := BuildWorlds(kb2, 0)
	if err != nil {
		t.Fatalf("BuildWorlds: %v", err)
	}

	pi := ws.IndexOf(pAtom)
	qi := ws.IndexOf(qAtom)
	var pTrueQFalse, pFalseQTrue World
	for _, w := range ws.Worlds {
		if w.Get(pi) && !w.Get(qi) {
			pTrueQFalse = w
		}
		if !w.Get(pi) && w.Get(qi) {
			pFalseQTrue = w
		}
	}

	if !Satisfies(pTrueQFalse, Atom(pAtom), ws) {
		t.Error("world with P true should satisfy P")
	}
	if Satisfies(pTrueQFalse, Atom(qAtom), ws) {
		t.Error("world with Q false should not satisfy Q")
	}
	if Satisfies(pTrueQFalse, And(Atom(pAtom), Atom(qAtom)), ws) {
		t.Error("P ∧ Q should fail when Q is false")
	}
	if !Satisfies(pTrueQFalse, Or(Atom(pAtom), Atom(qAtom)), ws) {
		t.Error("P ∨ Q should hold when P is true")
	}
	if !Satisfies(pFalseQTrue, Not(Atom(pAtom)), ws) {
		t.Error("¬P should hold when P is false")
	}
	if Satisfies(pTrueQFalse, Implies(Atom(pAtom), Atom(qAtom)), ws) {
		t.Error("P -> Q should fail when P true, Q false")
	}
	if !Satisfies(pFalseQTrue, Implies(Atom(pAtom), Atom(qAtom)), ws) {
		t.Error("P -> Q should hold vacuously when P is false")
	}
	if !Satisfies(pTrueQFalse, Tautology(), ws) {
		t.Error("⊤ should be satisfied by every world")
	}
	if Satisfies(pTrueQFalse, Contradiction(), ws) {
		t.Error("⊥ should be satisfied by no world")
	}
}

func TestSatisfiesQuantifiers(t *testing.T) {
	x := Variable{Name: "X"}
	bird := mustPred(t, "Bird", 1)
	birdX, _ := NewAtom(bird, TermVar(x))
	tweety, robin := Constant{Name: "tweety"}, Constant{Name: "robin"}

	facts := []*Formula{Atom(mustAtom(t, bird, tweety)), Atom(mustAtom(t, bird, robin))}
	kb, err := NewKB(nil, facts, []Constant{tweety, robin})
	if err != nil {
		t.Fatalf("NewKB: %v", err)
	}
	ws, err := BuildWorlds(kb, 0)
	if err != nil {
		t.Fatalf("BuildWorlds: %v", err)
	}

	forallBird := Forall(x, Atom(birdX))
	existsBird := Exists(x, Atom(birdX))

	var allTrue World
	for _, w := range ws.Worlds {
		if Satisfies(w, forallBird, ws) {
			allTrue = w
		}
	}
	if !Satisfies(allTrue, existsBird, ws) {
		t.Error("∀X Bird(X) being true should imply ∃X Bird(X)")
	}

	idxTweety := ws.IndexOf(mustAtom(t, bird, tweety))
	for _, w := range ws.Worlds {
		if w.Get(idxTweety) && !Satisfies(w, existsBird, ws) {
			t.Error("a world where Bird(tweety) holds must satisfy ∃X Bird(X)")
		}
	}
}

func mustAtom(t *testing.T, p Predicate, args ...Constant) RelationalAtom {
	t.Helper()
	terms := make([]Term, len(args))
	for i, c := range args {
		terms[i] = TermConst(c)
	}
	a, err := NewAtom(p, terms...)
	if err != nil {
		t.Fatalf("NewAtom: %v", err)
	}
	return a
}

func TestSatisfiesPanicsOnNonGroundAtom(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Satisfies should panic when asked to evaluate a non-ground atom directly")
		}
	}()
	x := Variable{Name: "X"}
	bird := mustPred(t, "Bird", 1)
	birdX, _ := NewAtom(bird, TermVar(x))
	kb, _ := NewKB(nil, nil, []Constant{{Name: "tweety"}})
	ws, _ := BuildWorlds(kb, 0)
	Satisfies(ws.Worlds[0], Atom(birdX), ws)
}

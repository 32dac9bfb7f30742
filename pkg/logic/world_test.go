package logic

import "testing"

func rainWetKB(t *testing.T) *KnowledgeBase {
	t.Helper()
	x := Variable{Name: "X"}
	rain, _ := NewPredicate("Rain", 1)
	wet, _ := NewPredicate("Wet", 1)
	rainX, _ := NewAtom(rain, TermVar(x))
	wetX, _ := NewAtom(wet, TermVar(x))
	c, err := NewConditional(Atom(rainX), Atom(wetX))
	if err != nil {
		t.Fatalf("NewConditional: %v", err)
	}
	kb, err := NewKB([]Conditional{c}, nil, []Constant{{Name: "here"}, {Name: "there"}})
	if err != nil {
		t.Fatalf("NewKB: %v", err)
	}
	return kb
}

func TestBuildWorldsCanonicalOrder(t *testing.T) {
	kb := rainWetKB(t)
	ws, err := BuildWorlds(kb, 0)
	if err != nil {
		t.Fatalf("BuildWorlds: %v", err)
	}
	n := len(ws.Interpretables)
	if n != 4 {
		t.Fatalf("expected 4 interpretable atoms (Rain/Wet x here/there), got %d", n)
	}
	if len(ws.Worlds) != 1<<uint(n) {
		t.Fatalf("expected %d worlds, got %d", 1<<uint(n), len(ws.Worlds))
	}

	// World 0 is all-false; the last world is all-true, per the
	// iterative-doubling order where atom 0 is most significant.
	for i := 0; i < n; i++ {
		if ws.Worlds[0].Get(i) {
			t.Errorf("world 0 should be all-false, atom %d was true", i)
		}
		if !ws.Worlds[len(ws.Worlds)-1].Get(i) {
			t.Errorf("last world should be all-true, atom %d was false", i)
		}
	}
	// World 1 (binary ...0001) has only the last (least-significant) atom set.
	for i := 0; i < n-1; i++ {
		if ws.Worlds[1].Get(i) {
			t.Errorf("world 1 should only set the last interpretable, atom %d was true", i)
		}
	}
	if !ws.Worlds[1].Get(n - 1) {
		t.Error("world 1 should set the last (least-significant) interpretable")
	}
}

func TestBuildWorldsIndexOf(t *testing.T) {
	kb := rainWetKB(t)
	ws, err := BuildWorlds(kb, 0)
	if err != nil {
		t.Fatalf("BuildWorlds: %v", err)
	}
	for i, a := range ws.Interpretables {
		if got := ws.IndexOf(a); got != i {
			t.Errorf("IndexOf(%v) = %d, want %d", a, got, i)
		}
	}
	unknown, _ := NewAtom(mustPred(t, "Unknown", 0))
	if ws.IndexOf(unknown) != -1 {
		t.Error("IndexOf should return -1 for an atom never seen in the KB")
	}
}

func mustPred(t *testing.T, name string, arity int) Predicate {
	t.Helper()
	p, err := NewPredicate(name, arity)
	if err != nil {
		t.Fatalf("NewPredicate(%s,%d): %v", name, arity, err)
	}
	return p
}

func TestBuildWorldsCapacityError(t *testing.T) {
	kb := rainWetKB(t)
	_, err := BuildWorlds(kb, 2) // KB has 4 interpretables, limit is 2
	if err == nil {
		t.Fatal("expected a CapacityError when interpretable count exceeds the limit")
	}
	var capErr *CapacityError
	if !asCapacityError(err, &capErr) {
		t.Fatalf("expected a *CapacityError, got %T: %v", err, err)
	}
	if capErr.Interpretables != 4 || capErr.Limit != 2 {
		t.Errorf("unexpected CapacityError fields: %+v", capErr)
	}
}

func asCapacityError(err error, target **CapacityError) bool {
	if ce, ok := err.(*CapacityError); ok {
		*target = ce
		return true
	}
	return false
}

func TestBuildWorldsZeroLimitDisablesCheck(t *testing.T) {
	kb := rainWetKB(t)
	if _, err := BuildWorlds(kb, 0); err != nil {
		t.Fatalf("a zero limit must disable the capacity check, got: %v", err)
	}
	if _, err := BuildWorlds(kb, -1); err != nil {
		t.Fatalf("a negative limit must disable the capacity check, got: %v", err)
	}
}

func TestFactWorldsMemoizedAndFiltered(t *testing.T) {
	kb := rainWetKB(t)
	here := Constant{Name: "here"}
	rain, _ := NewPredicate("Rain", 1)
	rainHere, _ := NewAtom(rain, TermConst(here))
	kbWithFact, err := NewKB(kb.Conditionals, []*Formula{Atom(rainHere)}, kb.Domain)
	if err != nil {
		t.Fatalf("NewKB: %v", err)
	}
	ws, err := BuildWorlds(kbWithFact, 0)
	if err != nil {
		t.Fatalf("BuildWorlds: %v", err)
	}

	first := ws.FactWorlds(kbWithFact)
	if len(first) == 0 {
		t.Fatal("expected at least one world satisfying Rain(here)")
	}
	idx := ws.IndexOf(rainHere)
	for _, wi := range first {
		if !ws.Worlds[wi].Get(idx) {
			t.Errorf("world %d in FactWorlds does not satisfy Rain(here)", wi)
		}
	}

	second := ws.FactWorlds(kbWithFact)
	if len(first) != len(second) {
		t.Error("FactWorlds should be memoized and return the identical result on a second call")
	}
}

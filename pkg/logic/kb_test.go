package logic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewKBRejectsOpenFact(t *testing.T) {
	x := Variable{Name: "X"}
	bird := mustPred(t, "Bird", 1)
	birdX, _ := NewAtom(bird, TermVar(x))
	_, err := NewKB(nil, []*Formula{Atom(birdX)}, []Constant{{Name: "tweety"}})
	if err == nil {
		t.Fatal("expected an error for a fact with a free variable")
	}
	if _, ok := err.(*InputError); !ok {
		t.Errorf("expected *InputError, got %T", err)
	}
}

func TestNewKBSortsDomain(t *testing.T) {
	kb, err := NewKB(nil, nil, []Constant{{Name: "zeta"}, {Name: "alpha"}, {Name: "mu"}})
	if err != nil {
		t.Fatalf("NewKB: %v", err)
	}
	want := []Constant{{Name: "alpha"}, {Name: "mu"}, {Name: "zeta"}}
	if diff := cmp.Diff(want, kb.Domain); diff != "" {
		t.Errorf("NewKB did not sort Domain (-want +got):\n%s", diff)
	}
}

func TestPropositionalAndEffectiveDomain(t *testing.T) {
	prop, err := NewKB(nil, nil, nil)
	if err != nil {
		t.Fatalf("NewKB: %v", err)
	}
	if !prop.Propositional() {
		t.Error("a KB with no domain should be propositional")
	}
	if got := prop.EffectiveDomain(); len(got) != 1 || got[0] != dummyConstant {
		t.Errorf("EffectiveDomain of a propositional KB should be [dummyConstant], got %v", got)
	}

	fo, err := NewKB(nil, nil, []Constant{{Name: "tweety"}})
	if err != nil {
		t.Fatalf("NewKB: %v", err)
	}
	if fo.Propositional() {
		t.Error("a KB with a nonempty domain is not propositional")
	}
	if got := fo.EffectiveDomain(); len(got) != 1 || got[0].Name != "tweety" {
		t.Errorf("EffectiveDomain of a first-order KB should echo Domain, got %v", got)
	}
}

func TestFactsConjunction(t *testing.T) {
	empty, err := NewKB(nil, nil, nil)
	if err != nil {
		t.Fatalf("NewKB: %v", err)
	}
	if empty.FactsConjunction().Kind() != KTautology {
		t.Error("FactsConjunction with no facts should be ⊤")
	}

	p := mustPred(t, "P", 0)
	pAtom, _ := NewAtom(p)
	withFact, err := NewKB(nil, []*Formula{Atom(pAtom)}, nil)
	if err != nil {
		t.Fatalf("NewKB: %v", err)
	}
	if withFact.FactsConjunction().Kind() != KConjunction {
		t.Error("FactsConjunction with one fact should still be wrapped as a conjunction")
	}
}

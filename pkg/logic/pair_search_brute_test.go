package logic

import "testing"

func TestEnumerateSurjectionsOnlyYieldsSurjectiveAssignments(t *testing.T) {
	var all [][]int
	enumerateSurjections(3, 2, func(digits []int) {
		all = append(all, append([]int(nil), digits...))
	})
	for _, digits := range all {
		seen := map[int]bool{}
		for _, d := range digits {
			seen[d] = true
		}
		if len(seen) != 2 {
			t.Errorf("digit string %v does not use both blocks", digits)
		}
	}
	// 2^3 - 2 (the two constant assignments) = 6 surjections from a
	// 3-item set onto 2 blocks.
	if len(all) != 6 {
		t.Errorf("expected 6 surjections of 3 items onto 2 blocks, got %d", len(all))
	}
}

func TestEnumerateSurjectionsSingleBlockYieldsOneAssignment(t *testing.T) {
	var all [][]int
	enumerateSurjections(3, 1, func(digits []int) {
		all = append(all, append([]int(nil), digits...))
	})
	if len(all) != 1 {
		t.Fatalf("expected exactly 1 assignment onto a single block, got %d", len(all))
	}
	for _, d := range all[0] {
		if d != 0 {
			t.Errorf("the only block index is 0, got %d", d)
		}
	}
}

func TestEnumerateSurjectionsEmptyInputYieldsNothing(t *testing.T) {
	called := false
	enumerateSurjections(0, 2, func(digits []int) { called = true })
	if called {
		t.Error("enumerateSurjections over zero items should never yield")
	}
}

func TestBuildPairFromDigitsGroupsByBlock(t *testing.T) {
	pair := buildPairFromDigits(2, []int{0, 1, 0}, []int{1, 0})
	if len(pair.Subsets) != 2 {
		t.Fatalf("expected 2 subsets, got %d", len(pair.Subsets))
	}
	if got := pair.Subsets[0].RIdx; len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("subset 0 RIdx = %v, want [0 2]", got)
	}
	if got := pair.Subsets[1].RIdx; len(got) != 1 || got[0] != 1 {
		t.Errorf("subset 1 RIdx = %v, want [1]", got)
	}
	if got := pair.Subsets[0].DIdx; len(got) != 1 || got[0] != 1 {
		t.Errorf("subset 0 DIdx = %v, want [1]", got)
	}
	if got := pair.Subsets[1].DIdx; len(got) != 1 || got[0] != 0 {
		t.Errorf("subset 1 DIdx = %v, want [0]", got)
	}
}

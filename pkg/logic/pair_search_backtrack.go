package logic

import (
	"context"
	"sort"
	"strconv"
	"strings"
)

// backtrackState is one node of the tree of spec.md §4.7.2: a list of
// already-closed subsets, the subset currently being extended (trailR/
// trailD), and the conditional/constant indices not yet placed anywhere.
type backtrackState struct {
	closed []Subset
	trailR []int
	trailD []int
	remR   []int
	remD   []int
}

func removeInt(xs []int, v int) []int {
	out := make([]int, 0, len(xs)-1)
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

func appendInt(xs []int, v int) []int {
	out := make([]int, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, v)
}

func canonicalSubsetKey(s Subset) string {
	r := append([]int(nil), s.RIdx...)
	d := append([]int(nil), s.DIdx...)
	sort.Ints(r)
	sort.Ints(d)
	var b strings.Builder
	for _, x := range r {
		b.WriteString(strconv.Itoa(x))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, x := range d {
		b.WriteString(strconv.Itoa(x))
		b.WriteByte(',')
	}
	return b.String()
}

func (s backtrackState) key() string {
	var b strings.Builder
	for _, sub := range s.closed {
		b.WriteString(canonicalSubsetKey(sub))
		b.WriteByte(';')
	}
	b.WriteString("trail:")
	b.WriteString(canonicalSubsetKey(Subset{RIdx: s.trailR, DIdx: s.trailD}))
	return b.String()
}

func (s backtrackState) previewPair() *TolerancePair {
	subsets := make([]Subset, len(s.closed)+1)
	copy(subsets, s.closed)
	subsets[len(s.closed)] = Subset{RIdx: s.trailR, DIdx: s.trailD}
	return &TolerancePair{Subsets: subsets}
}

// backtrackSearch implements spec.md §4.7.2 (minimalOnly=false, returning
// every valid pair) and §4.7.3 (minimalOnly=true, pruning and resetting to
// the ≤-minimal pairs only).
func backtrackSearch(ctx context.Context, kb *KnowledgeBase, ws *WorldSet, progress ProgressFunc, minimalOnly bool) (*SearchResult, error) {
	n := len(kb.Conditionals)
	propositional := kb.Propositional()
	d := len(kb.Domain)

	remR := make([]int, n)
	for i := range remR {
		remR[i] = i
	}
	var remD []int
	if !propositional {
		remD = make([]int, d)
		for i := range remD {
			remD[i] = i
		}
	}

	totalItems := n + len(remD)
	if totalItems == 0 {
		return &SearchResult{}, nil
	}

	visited := make(map[string]bool)
	var results []FoundPair
	var best *TolerancePair

	var recurse func(state backtrackState) error
	recurse = func(state backtrackState) error {
		placed := totalItems - len(state.remR) - len(state.remD)
		if err := checkCancelled(ctx, progress, float64(placed)/float64(totalItems)); err != nil {
			return err
		}

		key := state.key()
		if visited[key] {
			return nil
		}
		visited[key] = true

		if minimalOnly && comparePartialWorse(state.closed, best) {
			return nil
		}

		preview := state.previewPair()
		if !ValidateTrailing(preview, kb, ws) {
			return nil
		}

		if len(state.remR) == 0 && len(state.remD) == 0 {
			fp, ok := finalizePair(kb, ws, preview)
			if !ok {
				return nil
			}
			if minimalOnly {
				if best == nil || ComparePairs(fp.Pair, best) < 0 {
					best = fp.Pair
					results = []FoundPair{fp}
				} else if ComparePairs(fp.Pair, best) == 0 {
					results = append(results, fp)
				}
			} else {
				results = append(results, fp)
			}
			return nil
		}

		trailEmpty := len(state.trailR) == 0 && len(state.trailD) == 0
		if trailEmpty {
			if propositional {
				for _, r := range state.remR {
					child := backtrackState{
						closed: state.closed,
						trailR: []int{r}, trailD: nil,
						remR: removeInt(state.remR, r), remD: state.remD,
					}
					if err := recurse(child); err != nil {
						return err
					}
				}
			} else {
				for _, r := range state.remR {
					for _, dd := range state.remD {
						child := backtrackState{
							closed: state.closed,
							trailR: []int{r}, trailD: []int{dd},
							remR: removeInt(state.remR, r), remD: removeInt(state.remD, dd),
						}
						if err := recurse(child); err != nil {
							return err
						}
					}
				}
			}
			return nil
		}

		for _, r := range state.remR {
			child := backtrackState{
				closed: state.closed,
				trailR: appendInt(state.trailR, r), trailD: state.trailD,
				remR: removeInt(state.remR, r), remD: state.remD,
			}
			if err := recurse(child); err != nil {
				return err
			}
		}
		if !propositional {
			for _, dd := range state.remD {
				child := backtrackState{
					closed: state.closed,
					trailR: state.trailR, trailD: appendInt(state.trailD, dd),
					remR: state.remR, remD: removeInt(state.remD, dd),
				}
				if err := recurse(child); err != nil {
					return err
				}
			}
		}

		canClose := len(state.trailR) >= 1 && (propositional || len(state.trailD) >= 1)
		if canClose && (len(state.remR) > 0 || len(state.remD) > 0) {
			closed := make([]Subset, len(state.closed)+1)
			copy(closed, state.closed)
			closed[len(state.closed)] = Subset{RIdx: state.trailR, DIdx: state.trailD}
			child := backtrackState{
				closed: closed,
				trailR: nil, trailD: nil,
				remR: state.remR, remD: state.remD,
			}
			if err := recurse(child); err != nil {
				return err
			}
		}
		return nil
	}

	if err := recurse(backtrackState{remR: remR, remD: remD}); err != nil {
		if _, cancelled := err.(*CancelledError); cancelled {
			return nil, err
		}
		return nil, err
	}

	sortResult(results)
	return &SearchResult{Pairs: results}, nil
}

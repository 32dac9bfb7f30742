package logic

// World is a total, compact boolean assignment to the ordered sequence of
// ground interpretable atoms of a WorldSet. It is stored as a bitset
// indexed by interpretable position (spec.md §5: "the world array is
// O(2^n · n) bytes... store each world as a compact bitset").
type World struct {
	bits []uint64
	n    int
}

func newWorld(n int) World {
	return World{bits: make([]uint64, (n+63)/64), n: n}
}

// Get returns the truth value assigned to the interpretable at position i.
func (w World) Get(i int) bool {
	return (w.bits[i/64]>>uint(i%64))&1 == 1
}

func (w World) set(i int, v bool) {
	if v {
		w.bits[i/64] |= 1 << uint(i%64)
	}
}

// WorldSet is the canonical, shared enumeration of every possible world
// over a KB's ground interpretable atoms, plus the domain those atoms were
// grounded over.
type WorldSet struct {
	Interpretables []RelationalAtom
	index          map[string]int
	Worlds         []World
	Domain         []Constant

	factWorlds []int // indices of worlds satisfying kb.FactsConjunction(), memoized
}

// IndexOf returns the position of atom a among the interpretables, or -1.
func (ws *WorldSet) IndexOf(a RelationalAtom) int {
	i, ok := ws.index[a.Key()]
	if !ok {
		return -1
	}
	return i
}

// interpretables collects every ground atom reachable from kb's
// conditionals and facts, grounding any atom carrying a free variable over
// the domain, deduplicated and ordered by first appearance — so CSV/print
// output is stable (spec.md §3 PossibleWorld invariant).
func interpretables(kb *KnowledgeBase) []RelationalAtom {
	seen := map[string]bool{}
	var out []RelationalAtom
	add := func(a RelationalAtom) {
		k := a.Key()
		if !seen[k] {
			seen[k] = true
			out = append(out, a)
		}
	}
	collect := func(f *Formula) {
		for _, a := range Atoms(f) {
			if a.IsGround() {
				add(a)
				continue
			}
			v, _ := a.FreeVariable()
			for _, c := range kb.Domain {
				add(a.ground(v, c))
			}
		}
	}
	for _, c := range kb.Conditionals {
		collect(c.Ante)
		collect(c.Cons)
	}
	for _, f := range kb.Facts {
		collect(f)
	}
	return out
}

// BuildWorlds constructs the WorldSet for kb: the ordered interpretable
// atoms and the exhaustive 2^n enumeration of worlds over them. Returns a
// CapacityError without mutating any shared state if n exceeds limit
// (0 or negative disables the check).
func BuildWorlds(kb *KnowledgeBase, limit int) (*WorldSet, error) {
	interp := interpretables(kb)
	n := len(interp)
	if limit > 0 && n > limit {
		return nil, &CapacityError{Interpretables: n, Limit: limit}
	}
	ws := &WorldSet{
		Interpretables: interp,
		index:          make(map[string]int, n),
		Domain:         append([]Constant(nil), kb.Domain...),
	}
	for i, a := range interp {
		ws.index[a.Key()] = i
	}

	total := 1 << uint(n)
	ws.Worlds = make([]World, total)
	// Canonical order is the iterative-doubling order of spec.md §4.3:
	// atom 0 is the slowest-changing (most significant), atom n-1 the
	// fastest-changing (least significant) — i.e. world k's bit i is bit
	// (n-1-i) of the binary expansion of k.
	for k := 0; k < total; k++ {
		w := newWorld(n)
		for i := 0; i < n; i++ {
			if (k>>uint(n-1-i))&1 == 1 {
				w.set(i, true)
			}
		}
		ws.Worlds[k] = w
	}
	return ws, nil
}

// FactWorlds returns the indices (in canonical order) of the worlds in ws
// that satisfy kb's conjunction of facts. The result is memoized on ws.
func (ws *WorldSet) FactWorlds(kb *KnowledgeBase) []int {
	if ws.factWorlds != nil {
		return ws.factWorlds
	}
	fc := kb.FactsConjunction()
	var out []int
	for i, w := range ws.Worlds {
		if Satisfies(w, fc, ws) {
			out = append(out, i)
		}
	}
	ws.factWorlds = out
	return out
}

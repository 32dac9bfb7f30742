package logic

// Conditional is a defeasible rule "(Cons | Ante)": if Ante holds, then
// typically Cons. Ante and Cons share at most one free variable.
type Conditional struct {
	Ante *Formula
	Cons *Formula
}

// NewConditional validates the shared-free-variable restriction.
func NewConditional(ante, cons *Formula) (Conditional, error) {
	vs := map[string]bool{}
	for n := range Variables(ante) {
		vs[n] = true
	}
	for n := range Variables(cons) {
		vs[n] = true
	}
	if len(vs) > 1 {
		return Conditional{}, NewInputError("conditional has %d free variables, at most 1 is supported", len(vs))
	}
	return Conditional{Ante: ante, Cons: cons}, nil
}

// IsGround reports whether the conditional has no free variable.
func (c Conditional) IsGround() bool {
	return IsGround(c.Ante) && IsGround(c.Cons)
}

// FreeVariable returns the conditional's shared free variable, if any.
func (c Conditional) FreeVariable() (Variable, bool) {
	if v, ok := FreeVariable(c.Ante); ok {
		return v, true
	}
	return FreeVariable(c.Cons)
}

// Key is the canonical structural key for the conditional.
func (c Conditional) Key() string {
	return "(" + c.Cons.Key() + "|" + c.Ante.Key() + ")"
}

func (c Conditional) String() string {
	return "(" + c.Cons.String() + " | " + c.Ante.String() + ")"
}

// Negated returns the conditional (¬Cons | Ante), used as c̄ in §4.5.1.
func (c Conditional) Negated() Conditional {
	return Conditional{Ante: c.Ante.Clone(), Cons: Not(c.Cons)}
}

// Verification is the formula Ante ∧ Cons, freshly allocated so it never
// aliases c.Ante's storage.
func Verification(c Conditional) *Formula {
	return And(c.Ante, c.Cons)
}

// Falsification is the formula Ante ∧ ¬Cons, freshly allocated.
func Falsification(c Conditional) *Formula {
	return And(c.Ante, Not(c.Cons))
}

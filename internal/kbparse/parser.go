package kbparse

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"systemz/pkg/logic"
)

// parser is a recursive-descent parser over the KB text grammar of
// spec.md §6. It is restartable after an error: on a malformed top-level
// item or formula it records the error and resynchronizes at the next
// `)` or `}`, so a single ParseKB call reports every grammar violation
// in the input, not just the first (spec.md §7 InputError contract).
type parser struct {
	toks []token
	pos  int

	domainName string
	domain     []logic.Constant
	domainSet  map[string]logic.Constant
	preds      map[string]logic.Predicate

	errs *multierror.Error
}

// ParseKB parses the KB text format of spec.md §6 and returns the
// resulting knowledge base. On any grammar violation it returns a nil KB
// and a *logic.InputError wrapping every violation found; no partial KB
// is ever returned.
func ParseKB(src string) (*logic.KnowledgeBase, error) {
	p := &parser{
		toks:      newLexer(src).tokenize(),
		domainSet: map[string]logic.Constant{},
		preds:     map[string]logic.Predicate{},
	}

	var conditionals []logic.Conditional
	var facts []*logic.Formula

	for !p.atEOF() {
		switch {
		case p.matchKeyword("signature"), p.matchKeyword("conditionals"):
			// Section labels carry no grammar weight; skip.
		case p.peekIs(tokIdent, "D") && p.peekAheadIs(1, tokEquals):
			p.parseDomainDecl()
		case p.peekIs(tokIdent, "Conditionals") && p.peekAheadIs(1, tokLBrace):
			conditionals = append(conditionals, p.parseConditionalsBlock()...)
		case p.peekIs(tokIdent, "Facts") && p.peekAheadIs(1, tokLBrace):
			facts = append(facts, p.parseFactsBlock()...)
		case p.peek().kind == tokIdent:
			p.parsePredicateDecl()
		default:
			p.errorf("unexpected token %s", p.peek())
			p.advance()
		}
	}

	if p.errs.ErrorOrNil() != nil {
		return nil, logic.NewInputError("%s", p.errs.Error())
	}

	kb, err := logic.NewKB(conditionals, facts, p.domain)
	if err != nil {
		return nil, err
	}
	return kb, nil
}

func (p *parser) errorf(format string, args ...any) {
	p.errs = multierror.Append(p.errs, fmt.Errorf(format, args...))
}

func (p *parser) atEOF() bool {
	return p.peek().kind == tokEOF
}

func (p *parser) peek() token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

func (p *parser) peekAt(offset int) token {
	i := p.pos + offset
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[i]
}

func (p *parser) peekAheadIs(offset int, kind tokenKind) bool {
	return p.peekAt(offset).kind == kind
}

func (p *parser) peekIs(kind tokenKind, text string) bool {
	t := p.peek()
	return t.kind == kind && t.text == text
}

func (p *parser) matchKeyword(word string) bool {
	if p.peekIs(tokIdent, word) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) advance() token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind tokenKind, what string) (token, bool) {
	t := p.peek()
	if t.kind != kind {
		p.errorf("expected %s at %s, got %q", what, t, t.text)
		return t, false
	}
	return p.advance(), true
}

// resync skips tokens up to and including the next `)`, `}`, or EOF, so a
// malformed item does not desynchronize the rest of the parse.
func (p *parser) resync() {
	for {
		t := p.peek()
		if t.kind == tokEOF {
			return
		}
		p.advance()
		if t.kind == tokRParen || t.kind == tokRBrace {
			return
		}
	}
}

func (p *parser) parseDomainDecl() {
	p.advance() // "D"
	p.advance() // "="
	if _, ok := p.expect(tokLBrace, "'{'"); !ok {
		p.resync()
		return
	}
	if p.domainName != "" {
		p.errorf("multiple sorts are not supported (only %q is)", p.domainName)
	}
	p.domainName = "D"
	for !p.peekAheadIs(0, tokRBrace) && !p.atEOF() {
		name, ok := p.expect(tokIdent, "constant name")
		if !ok {
			break
		}
		c := logic.Constant{Name: name.text}
		p.domain = append(p.domain, c)
		p.domainSet[name.text] = c
		if p.peek().kind == tokComma {
			p.advance()
		}
	}
	p.expect(tokRBrace, "'}'")
}

func (p *parser) parsePredicateDecl() {
	name, _ := p.expect(tokIdent, "predicate name")
	arity := 0
	if p.peek().kind == tokLParen {
		p.advance()
		sort, ok := p.expect(tokIdent, "sort name")
		if ok && p.domainName != "" && sort.text != p.domainName {
			p.errorf("unknown sort %q (expected %q)", sort.text, p.domainName)
		}
		p.expect(tokRParen, "')'")
		arity = 1
	}
	pred, err := logic.NewPredicate(name.text, arity)
	if err != nil {
		p.errorf("%s", err)
		return
	}
	p.preds[name.text] = pred
}

func (p *parser) parseConditionalsBlock() []logic.Conditional {
	p.advance() // "Conditionals"
	p.advance() // "{"
	var out []logic.Conditional
	for !p.peekAheadIs(0, tokRBrace) && !p.atEOF() {
		if c, ok := p.parseConditional(); ok {
			out = append(out, c)
		} else {
			p.resync()
		}
	}
	p.expect(tokRBrace, "'}'")
	return out
}

func (p *parser) parseConditional() (logic.Conditional, bool) {
	if _, ok := p.expect(tokLParen, "'('"); !ok {
		return logic.Conditional{}, false
	}
	cons := p.parseFormula()
	if cons == nil {
		return logic.Conditional{}, false
	}
	if _, ok := p.expect(tokPipe, "'|'"); !ok {
		return logic.Conditional{}, false
	}
	ante := p.parseFormula()
	if ante == nil {
		return logic.Conditional{}, false
	}
	if _, ok := p.expect(tokRParen, "')'"); !ok {
		return logic.Conditional{}, false
	}
	c, err := logic.NewConditional(ante, cons)
	if err != nil {
		p.errorf("%s", err)
		return logic.Conditional{}, false
	}
	return c, true
}

func (p *parser) parseFactsBlock() []*logic.Formula {
	p.advance() // "Facts"
	p.advance() // "{"
	var out []*logic.Formula
	for !p.peekAheadIs(0, tokRBrace) && !p.atEOF() {
		if _, ok := p.expect(tokLParen, "'('"); !ok {
			p.resync()
			continue
		}
		f := p.parseFormula()
		if f == nil {
			p.resync()
			continue
		}
		if _, ok := p.expect(tokRParen, "')'"); !ok {
			p.resync()
			continue
		}
		if !logic.IsGround(f) {
			p.errorf("fact %s is not closed", f)
			continue
		}
		out = append(out, f)
	}
	p.expect(tokRBrace, "'}'")
	return out
}

// --- formula grammar: implication > disjunction > conjunction > negation
// > primary --- OR is spelled `∨` only; bare `|` is reserved for the
// conditional separator in `(Cons | Ante)` and is never part of this
// grammar. Implication (`→`/`->`) binds loosest and is right-associative,
// the usual convention, so `A → B → C` parses as `A → (B → C)`.

func (p *parser) parseFormula() *logic.Formula {
	return p.parseImplication()
}

func (p *parser) parseImplication() *logic.Formula {
	left := p.parseOr()
	if left == nil {
		return nil
	}
	if p.peek().kind != tokArrow {
		return left
	}
	p.advance()
	right := p.parseImplication()
	if right == nil {
		return nil
	}
	return logic.Implies(left, right)
}

func (p *parser) parseOr() *logic.Formula {
	left := p.parseAnd()
	if left == nil {
		return nil
	}
	fs := []*logic.Formula{left}
	for p.peek().kind == tokOr {
		p.advance()
		rhs := p.parseAnd()
		if rhs == nil {
			return nil
		}
		fs = append(fs, rhs)
	}
	if len(fs) == 1 {
		return fs[0]
	}
	return logic.Or(fs...)
}

func (p *parser) parseAnd() *logic.Formula {
	left := p.parseUnary()
	if left == nil {
		return nil
	}
	fs := []*logic.Formula{left}
	for p.peek().kind == tokAnd {
		p.advance()
		rhs := p.parseUnary()
		if rhs == nil {
			return nil
		}
		fs = append(fs, rhs)
	}
	if len(fs) == 1 {
		return fs[0]
	}
	return logic.And(fs...)
}

func (p *parser) parseUnary() *logic.Formula {
	if p.peek().kind == tokNot {
		p.advance()
		inner := p.parseUnary()
		if inner == nil {
			return nil
		}
		return logic.Not(inner)
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() *logic.Formula {
	switch p.peek().kind {
	case tokLParen:
		p.advance()
		f := p.parseFormula()
		if f == nil {
			return nil
		}
		if _, ok := p.expect(tokRParen, "')'"); !ok {
			return nil
		}
		return f
	case tokForall, tokExists:
		isForall := p.peek().kind == tokForall
		p.advance()
		v, ok := p.expect(tokIdent, "bound variable")
		if !ok {
			return nil
		}
		if _, ok := p.expect(tokColon, "':'"); !ok {
			return nil
		}
		body := p.parseFormula()
		if body == nil {
			return nil
		}
		variable := logic.Variable{Name: v.text}
		if isForall {
			return logic.Forall(variable, body)
		}
		return logic.Exists(variable, body)
	case tokIdent:
		return p.parseAtom()
	default:
		p.errorf("expected a formula at %s, got %q", p.peek(), p.peek().text)
		return nil
	}
}

func (p *parser) parseAtom() *logic.Formula {
	name, _ := p.expect(tokIdent, "predicate name")
	pred, known := p.preds[name.text]
	if !known {
		p.errorf("undeclared predicate %q", name.text)
	}
	var args []logic.Term
	if p.peek().kind == tokLParen {
		p.advance()
		arg, ok := p.expect(tokIdent, "term")
		if !ok {
			return nil
		}
		args = append(args, p.resolveTerm(arg.text))
		if _, ok := p.expect(tokRParen, "')'"); !ok {
			return nil
		}
	}
	if !known {
		return nil
	}
	if len(args) != pred.Arity {
		p.errorf("predicate %q expects %d argument(s), got %d", name.text, pred.Arity, len(args))
		return nil
	}
	atom, err := logic.NewAtom(pred, args...)
	if err != nil {
		p.errorf("%s", err)
		return nil
	}
	return logic.Atom(atom)
}

func (p *parser) resolveTerm(name string) logic.Term {
	if c, ok := p.domainSet[name]; ok {
		return logic.TermConst(c)
	}
	return logic.TermVar(logic.Variable{Name: name})
}

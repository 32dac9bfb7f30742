package kbparse

import "systemz/pkg/logic"

// Query is the parsed form of the query syntax of spec.md §6: either a
// bare formula, or a conditional (Cons | Ante).
type Query struct {
	Formula     *logic.Formula
	Conditional *logic.Conditional
}

// QueryParser parses single queries against an already-loaded KB's
// predicate and domain declarations, since a query may reference any
// predicate or constant the KB defines. preds/domain mirror what ParseKB
// built internally; NewQueryParser rebuilds them from a
// *logic.KnowledgeBase without re-parsing the KB text.
type QueryParser struct {
	domain []logic.Constant
	preds  map[string]logic.Predicate
}

// NewQueryParser builds a QueryParser from a KB's domain and the set of
// predicates it mentions (recovered from its conditionals and facts).
func NewQueryParser(kb *logic.KnowledgeBase) *QueryParser {
	preds := map[string]logic.Predicate{}
	record := func(f *logic.Formula) {
		for _, a := range logic.Atoms(f) {
			preds[a.Pred.Name] = a.Pred
		}
	}
	for _, c := range kb.Conditionals {
		record(c.Ante)
		record(c.Cons)
	}
	for _, f := range kb.Facts {
		record(f)
	}
	return &QueryParser{domain: kb.Domain, preds: preds}
}

// Parse parses one query string: a bare formula, or a parenthesized
// conditional `(Cons | Ante)`.
func (qp *QueryParser) Parse(src string) (Query, error) {
	p := &parser{
		toks:      newLexer(src).tokenize(),
		domainSet: map[string]logic.Constant{},
		preds:     qp.preds,
	}
	for _, c := range qp.domain {
		p.domainSet[c.Name] = c
	}
	p.domainName = "D"

	if looksLikeConditional(p) {
		cond, ok := p.parseConditional()
		if !ok || p.errs.ErrorOrNil() != nil {
			return Query{}, queryErr(p)
		}
		if !p.atEOF() {
			p.errorf("unexpected trailing input at %s", p.peek())
			return Query{}, queryErr(p)
		}
		return Query{Conditional: &cond}, nil
	}

	f := p.parseFormula()
	if f == nil || p.errs.ErrorOrNil() != nil {
		return Query{}, queryErr(p)
	}
	if !p.atEOF() {
		p.errorf("unexpected trailing input at %s", p.peek())
		return Query{}, queryErr(p)
	}
	return Query{Formula: f}, nil
}

func queryErr(p *parser) error {
	return logic.NewInputError("%s", p.errs.Error())
}

// looksLikeConditional scans for a top-level `|` between the opening and
// matching closing paren of the query, without consuming any tokens.
func looksLikeConditional(p *parser) bool {
	if p.peek().kind != tokLParen {
		return false
	}
	depth := 0
	for i := p.pos; i < len(p.toks); i++ {
		switch p.toks[i].kind {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
			if depth == 0 {
				return false
			}
		case tokPipe:
			if depth == 1 {
				return true
			}
		case tokEOF:
			return false
		}
	}
	return false
}

package parser

import (
	"PrologFront/internal/lexer"
)

// ClausesSection := 'clauses' { Clause } until 'goal'
func (p *Parser) parseClausesSection() {
	p.enter(Clauses)
	p.tree.Open(Clauses.Label(), "")
	defer p.tree.Close()

	p.consume(lexer.CLAUSES, "clauses")

	for !p.curTokenIs(lexer.GOAL) && !p.atEnd() {
		start := p.lexer.Position()
		p.parseClause()
		p.ensureProgress(start)
	}
}

// parseClause dispatches on the token after the head: '(' starts a fact with
// arguments, ':-' a rule, anything else a zero-argument fact.
func (p *Parser) parseClause() {
	if !p.curTokenIs(lexer.IDENT) {
		p.fail("expected clause head")
		return
	}

	head := p.curToken
	signature, declared := p.predicates.Lookup(head.Lexeme)
	if !declared {
		p.fail("undeclared predicate")
		return
	}
	p.nextToken()

	switch {
	case p.curTokenIs(lexer.LPAREN):
		p.tree.Open("Fact", "")
		defer p.tree.Close()
		p.tree.Leaf("Predicate ID", head.Lexeme)

		if p.parseValueList(signature) {
			p.consume(lexer.DOT, ".")
		}

	case p.curTokenIs(lexer.IMPLY):
		// rules are only accepted for predicates declared without parameters
		if len(signature) > 0 {
			p.fail("rule head has parameters")
			return
		}

		p.tree.Open("Rule", "")
		defer p.tree.Close()
		p.tree.Leaf("Predicate ID", head.Lexeme)

		p.parseBody()

	default:
		p.tree.Open("Fact", "")
		defer p.tree.Close()
		p.tree.Leaf("Predicate ID", head.Lexeme)

		p.consume(lexer.DOT, ".")
	}
}

// Body := ':-' Statement { (','|';') Statement } '.'
func (p *Parser) parseBody() {
	if !p.consume(lexer.IMPLY, ":-") {
		return
	}

	for {
		if !p.parseStatement() {
			return
		}

		if p.curTokenIs(lexer.AND) {
			p.consume(lexer.AND, ",")
			continue
		}
		if p.curTokenIs(lexer.OR) {
			p.consume(lexer.OR, ";")
			continue
		}
		break
	}

	p.consume(lexer.DOT, ".")
}

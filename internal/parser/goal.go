package parser

import (
	"PrologFront/internal/lexer"
)

// GoalSection := 'goal' identifier [ '(' ValueList ')' ] '.'
// The goal must be the last construct of the input.
func (p *Parser) parseGoalSection() {
	p.enter(Goal)
	p.tree.Open(Goal.Label(), "")
	defer p.tree.Close()

	if !p.consume(lexer.GOAL, "goal") {
		return
	}

	if !p.curTokenIs(lexer.IDENT) {
		p.fail("expected goal predicate")
		return
	}
	signature, declared := p.predicates.Lookup(p.curToken.Lexeme)
	if !declared {
		p.fail("undeclared predicate")
		return
	}
	p.consume(lexer.IDENT, "Predicate ID")

	if p.curTokenIs(lexer.LPAREN) {
		if !p.parseValueList(signature) {
			return
		}
	} else if len(signature) > 0 {
		p.fail("missing goal arguments")
		return
	}

	if !p.consume(lexer.DOT, ".") {
		return
	}

	if !p.atEnd() {
		p.fail("unexpected token after goal")
	}
}

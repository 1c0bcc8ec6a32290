package parser

import (
	"PrologFront/internal/lexer"
)

// PredicatesSection := 'predicates' { PredicateDecl } until 'clauses'
func (p *Parser) parsePredicatesSection() {
	p.enter(Predicates)
	p.tree.Open(Predicates.Label(), "")
	defer p.tree.Close()

	p.consume(lexer.PREDICATES, "predicates")

	for !p.curTokenIs(lexer.CLAUSES) && !p.atEnd() {
		start := p.lexer.Position()
		p.parsePredicateDeclaration()
		p.ensureProgress(start)
	}
}

// PredicateDecl := identifier [ '(' DataType {',' DataType} ')' ]
func (p *Parser) parsePredicateDeclaration() {
	if !p.curTokenIs(lexer.IDENT) {
		p.fail("expected predicate name")
		return
	}

	name := p.curToken.Lexeme
	p.tree.Open("Predicate Declaration", "")
	defer p.tree.Close()

	p.consume(lexer.IDENT, "Predicate ID")
	p.predicates.declare(name)

	if p.curTokenIs(lexer.LPAREN) {
		p.parseParameterList(name)
	}
}

func (p *Parser) parseParameterList(name string) {
	p.consume(lexer.LPAREN, "(")

	for {
		if !p.parseDataType(name) {
			return
		}
		if !p.curTokenIs(lexer.AND) {
			break
		}
		p.consume(lexer.AND, ",")
	}

	p.consume(lexer.RPAREN, ")")
}

func (p *Parser) parseDataType(name string) bool {
	if !p.curToken.Category.IsDataType() {
		p.fail("expected data type")
		return false
	}
	d, _ := DataTypeOf(p.curToken.Category)
	p.predicates.addParameter(name, d)
	p.consume(p.curToken.Category, "Data Type")
	return true
}

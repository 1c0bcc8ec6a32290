package parser

import (
	"fmt"

	"PrologFront/internal/lexer"
)

// parseStatement selects the statement kind from the lookahead category.
func (p *Parser) parseStatement() bool {
	switch p.curToken.Category {
	case lexer.WRITE:
		return p.parseWrite()
	case lexer.READLN:
		return p.parseRead(String)
	case lexer.READINT:
		return p.parseRead(Integer)
	case lexer.READCHAR:
		return p.parseRead(Char)
	case lexer.VARIABLE, lexer.INTEGER, lexer.REAL, lexer.CHAR, lexer.STRING:
		return p.parseExpression()
	case lexer.EOF, lexer.PREDICATES, lexer.CLAUSES, lexer.GOAL,
		lexer.INTEGER_TYPE, lexer.STRING_TYPE, lexer.CHAR_TYPE, lexer.SYMBOL_TYPE, lexer.REAL_TYPE,
		lexer.AND, lexer.OR, lexer.RELATIONAL_OP, lexer.ARITHMETIC_OP,
		lexer.DOT, lexer.LPAREN, lexer.RPAREN, lexer.IMPLY, lexer.IDENT, lexer.ERROR:
		// cannot start a statement
	}

	p.fail("expected statement")
	return false
}

// write '(' (string | Variable) {',' (string | Variable)} ')'
// Variables must be bound integers.
func (p *Parser) parseWrite() bool {
	p.tree.Open("write statement", "")
	defer p.tree.Close()

	p.consume(lexer.WRITE, "write")
	if !p.consume(lexer.LPAREN, "(") {
		return false
	}

	for {
		switch p.curToken.Category {
		case lexer.STRING:
			p.consume(lexer.STRING, "string")
		case lexer.VARIABLE:
			d, bound := p.variables.Lookup(p.curToken.Lexeme)
			if !bound {
				p.fail("unbound variable")
				return false
			}
			if d != Integer {
				p.fail(fmt.Sprintf("write of %s variable", d))
				return false
			}
			p.consume(lexer.VARIABLE, "Variable")
		default:
			p.fail("expected string or variable")
			return false
		}

		if !p.curTokenIs(lexer.AND) {
			break
		}
		p.consume(lexer.AND, ",")
	}

	return p.consume(lexer.RPAREN, ")")
}

// readln/readint/readchar '(' Variable ')' binds a fresh variable with the
// type the keyword reads.
func (p *Parser) parseRead(d DataType) bool {
	p.tree.Open("read statement", "")
	defer p.tree.Close()

	keyword := p.curToken.Category
	p.consume(keyword, keyword.String())
	if !p.consume(lexer.LPAREN, "(") {
		return false
	}

	if !p.curTokenIs(lexer.VARIABLE) {
		p.fail("expected variable")
		return false
	}
	if _, bound := p.variables.Lookup(p.curToken.Lexeme); bound {
		p.fail("variable already bound")
		return false
	}
	p.variables.bind(p.curToken.Lexeme, d)
	p.consume(lexer.VARIABLE, "Variable")

	return p.consume(lexer.RPAREN, ")")
}

// parseExpression scans operands and operators left to right. One relational
// operator or '=' moves the statement from pending to assigned; after that
// only arithmetic operators may follow. Every operand must have the same
// type, and variables must already be bound.
func (p *Parser) parseExpression() bool {
	p.tree.Open("Statement", "")
	defer p.tree.Close()

	var types []DataType
	assigned := false

scan:
	for {
		d, ok := p.parseOperand()
		if !ok {
			return false
		}
		types = append(types, d)

		op := p.curToken
		switch {
		case op.Category == lexer.RELATIONAL_OP || op.Lexeme == "=":
			if assigned {
				p.fail("second comparison or assignment")
				return false
			}
			assigned = true
			p.consume(op.Category, op.Lexeme)
		case op.Category == lexer.ARITHMETIC_OP:
			p.consume(lexer.ARITHMETIC_OP, op.Lexeme)
		case op.Category == lexer.AND || op.Category == lexer.OR || op.Category == lexer.DOT:
			if !assigned {
				p.fail("missing comparison or assignment")
				return false
			}
			break scan
		default:
			p.fail("expected operator")
			return false
		}
	}

	for _, d := range types[1:] {
		if d != types[0] {
			p.fail(fmt.Sprintf("mixed operand types %s and %s", types[0], d))
			return false
		}
	}

	return true
}

func (p *Parser) parseOperand() (DataType, bool) {
	tok := p.curToken

	switch {
	case tok.Category == lexer.VARIABLE:
		d, bound := p.variables.Lookup(tok.Lexeme)
		if !bound {
			p.fail("unbound variable")
			return 0, false
		}
		p.consume(lexer.VARIABLE, "Variable")
		return d, true
	case tok.Category.IsLiteral():
		d, _ := ValueTypeOf(tok.Category)
		p.consume(tok.Category, tok.Category.String())
		return d, true
	}

	p.fail("expected operand")
	return 0, false
}

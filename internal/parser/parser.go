package parser

import (
	"fmt"

	"PrologFront/internal/lexer"
	"PrologFront/internal/tree"
)

// Parse runs the three sections in order and returns the parse tree with
// every recovered error. It never fails; an empty Diagnostics means the
// input was accepted. Calling Parse again returns the same result.
func (p *Parser) Parse() (*tree.Node, Diagnostics) {
	if p.root != nil {
		return p.root, p.diagnostics
	}

	p.parsePredicatesSection()
	p.parseClausesSection()
	p.parseGoalSection()

	p.root = p.tree.Build()
	p.logger.Debug("parse finished: %d predicate(s), %d variable(s), %d diagnostic(s)",
		len(p.predicates), len(p.variables), len(p.diagnostics))

	return p.root, p.diagnostics
}

// Predicates returns a copy of the declared predicate signatures.
func (p *Parser) Predicates() PredicateTable {
	return p.predicates.clone()
}

// Variables returns a copy of the bound variable types.
func (p *Parser) Variables() VariableTable {
	return p.variables.clone()
}

func (p *Parser) Diagnostics() Diagnostics {
	return p.diagnostics
}

func (p *Parser) nextToken() {
	p.curToken = p.lexer.NextToken()
}

func (p *Parser) curTokenIs(c lexer.Category) bool {
	return p.curToken.Category == c
}

func (p *Parser) atEnd() bool {
	return p.curTokenIs(lexer.EOF)
}

// enter switches to section s. Sections never go backwards.
func (p *Parser) enter(s Section) {
	if s < p.section {
		panic(fmt.Sprintf("parser: cannot move from %s back to %s", p.section, s))
	}
	p.section = s
	p.logger.Debug("entering %s section at line %d", s, p.curToken.Line)
}

// consume records the lookahead as a leaf labeled label (no leaf when label
// is empty) and advances if it has category c. Otherwise it reports an error
// and resynchronizes.
func (p *Parser) consume(c lexer.Category, label string) bool {
	if p.curTokenIs(c) {
		if label != "" {
			p.tree.Leaf(label, p.curToken.Lexeme)
		}
		p.nextToken()
		return true
	}

	p.fail("expected " + c.String())
	return false
}

// fail records a diagnostic at the lookahead, marks the tree, and discards
// tokens according to the current section's recovery policy.
func (p *Parser) fail(reason string) {
	d := newDiagnostic(p.curToken, p.section, reason)
	p.diagnostics = append(p.diagnostics, d)
	p.tree.Leaf(tree.ErrorLabel, p.curToken.Lexeme)
	p.logger.Debug("%s", d.Verbose())

	p.synchronize()
}

func (p *Parser) synchronize() {
	for !p.atEnd() && !p.section.Syncs(p.curToken.Category) {
		p.nextToken()
	}
	if p.curTokenIs(lexer.DOT) {
		p.nextToken()
	}
}

// ensureProgress skips one token when a loop iteration that started at
// position start consumed nothing.
func (p *Parser) ensureProgress(start int) {
	if p.lexer.Position() == start && !p.atEnd() {
		p.nextToken()
	}
}

// parseValueList parses '(' Value {',' Value} ')' and checks the value types
// against signature. Leaves go into the current scope.
func (p *Parser) parseValueList(signature Signature) bool {
	if !p.consume(lexer.LPAREN, "(") {
		return false
	}

	var types Signature
	for {
		d, ok := p.parseValue()
		if !ok {
			return false
		}
		types = append(types, d)

		if !p.curTokenIs(lexer.AND) {
			break
		}
		p.consume(lexer.AND, ",")
	}

	if !types.Equal(signature) {
		p.fail(fmt.Sprintf("arguments %s do not match signature %s", types, signature))
		return false
	}

	return p.consume(lexer.RPAREN, ")")
}

func (p *Parser) parseValue() (DataType, bool) {
	d, ok := ValueTypeOf(p.curToken.Category)
	if !ok {
		p.fail("expected value")
		return 0, false
	}
	p.consume(p.curToken.Category, "Value")
	return d, true
}

package parser

import (
	"PrologFront/internal/lexer"
	"PrologFront/internal/logger"
	"PrologFront/internal/tree"
)

func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{
		lexer:      l,
		section:    Predicates,
		predicates: PredicateTable{},
		variables:  VariableTable{},
		tree:       tree.NewBuilder(),
		logger:     logger.Get("parser"),
	}
	p.nextToken()
	return p
}

package parser

import (
	"PrologFront/internal/lexer"
	"PrologFront/internal/logger"
	"PrologFront/internal/tree"
)

// Parser owns all state of one parse: lookahead, section, both symbol
// tables, diagnostics and the tree under construction.
type Parser struct {
	lexer       *lexer.Lexer
	curToken    lexer.Token
	section     Section
	predicates  PredicateTable
	variables   VariableTable
	diagnostics Diagnostics
	tree        *tree.Builder
	root        *tree.Node
	logger      *logger.Logger
}

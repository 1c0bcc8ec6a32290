package frontend

import (
	"fmt"
	"os"
	"time"

	"PrologFront/internal/lexer"
	"PrologFront/internal/logger"
	"PrologFront/internal/parser"
	"PrologFront/internal/tree"

	"github.com/google/uuid"
)

// Result bundles the three artifacts of one analysis together with the
// symbol tables the parser built.
type Result struct {
	ID          string                `json:"id" yaml:"id"`
	Name        string                `json:"name" yaml:"name"`
	Tokens      []lexer.Token         `json:"tokens" yaml:"tokens"`
	Tree        *tree.Node            `json:"tree" yaml:"tree"`
	Diagnostics parser.Diagnostics    `json:"diagnostics" yaml:"diagnostics"`
	Predicates  parser.PredicateTable `json:"predicates" yaml:"predicates"`
	Variables   parser.VariableTable  `json:"variables" yaml:"variables"`
	Duration    time.Duration         `json:"duration" yaml:"duration"`
}

// OK reports whether the program was accepted without diagnostics.
func (r *Result) OK() bool {
	return r.Diagnostics.Empty()
}

// Analyze tokenizes source for display and, independently, parses it with a
// fresh lexer. Each call owns all of its state.
func Analyze(name, source string) *Result {
	log := logger.Get("frontend")
	start := time.Now()

	result := &Result{
		ID:     uuid.NewString(),
		Name:   name,
		Tokens: lexer.Tokenize(source),
	}

	p := parser.NewParser(lexer.NewLexer(source))
	result.Tree, result.Diagnostics = p.Parse()
	result.Predicates = p.Predicates()
	result.Variables = p.Variables()
	result.Duration = time.Since(start)

	if result.Diagnostics == nil {
		result.Diagnostics = parser.Diagnostics{}
	}

	log.Info("analysis %s of %s: %d token(s), %d diagnostic(s) in %s",
		result.ID, name, len(result.Tokens), len(result.Diagnostics), result.Duration)

	return result
}

// AnalyzeFile reads path and analyzes its contents.
func AnalyzeFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}
	return Analyze(path, string(data)), nil
}

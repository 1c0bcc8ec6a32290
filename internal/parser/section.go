package parser

import (
	"fmt"

	"PrologFront/internal/lexer"
)

// Section is the phase of the program being parsed. Phases only move
// forward: Predicates, then Clauses, then Goal.
type Section int

const (
	Predicates Section = iota
	Clauses
	Goal
)

func (s Section) String() string {
	switch s {
	case Predicates:
		return "predicates"
	case Clauses:
		return "clauses"
	case Goal:
		return "goal"
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

func (s Section) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Section) UnmarshalText(text []byte) error {
	for _, candidate := range []Section{Predicates, Clauses, Goal} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown section %q", text)
}

// Label is the parse tree label of the section node.
func (s Section) Label() string {
	switch s {
	case Predicates:
		return "Predicates"
	case Clauses:
		return "Clauses"
	case Goal:
		return "Goal"
	}
	return s.String()
}

// Syncs reports whether panic-mode recovery in section s stops at a token of
// category c. The goal section never resynchronizes.
func (s Section) Syncs(c lexer.Category) bool {
	switch s {
	case Predicates:
		return c == lexer.IDENT || c == lexer.CLAUSES
	case Clauses:
		return c == lexer.DOT || c == lexer.GOAL
	case Goal:
		return false
	}
	return false
}

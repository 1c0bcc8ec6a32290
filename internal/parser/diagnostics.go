package parser

import (
	"fmt"

	"PrologFront/internal/lexer"
)

// Diagnostic records one recovered error. Message is the user-facing line;
// Reason names the failed check.
type Diagnostic struct {
	Message string      `json:"message" yaml:"message"`
	Token   lexer.Token `json:"token" yaml:"token"`
	Section Section     `json:"section" yaml:"section"`
	Reason  string      `json:"reason" yaml:"reason"`
}

func newDiagnostic(tok lexer.Token, section Section, reason string) Diagnostic {
	return Diagnostic{
		Message: fmt.Sprintf("Error at token: `%s` of type `%s`", tok.Lexeme, tok.Category),
		Token:   tok,
		Section: section,
		Reason:  reason,
	}
}

func (d Diagnostic) String() string {
	return d.Message
}

// Verbose adds the failed check and source line to the message.
func (d Diagnostic) Verbose() string {
	return fmt.Sprintf("line %d: %s (%s, in %s section)", d.Token.Line, d.Message, d.Reason, d.Section)
}

type Diagnostics []Diagnostic

func (ds Diagnostics) Empty() bool {
	return len(ds) == 0
}

func (ds Diagnostics) Strings() []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.String()
	}
	return out
}

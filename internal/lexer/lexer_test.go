package lexer

import (
	"strings"
	"testing"
	"unicode"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "Predicate declaration",
			input: "predicates\n  foo(integer, string)",
			expected: []Token{
				{Lexeme: "predicates", Category: PREDICATES, Line: 1},
				{Lexeme: "foo", Category: IDENT, Line: 2},
				{Lexeme: "(", Category: LPAREN, Line: 2},
				{Lexeme: "integer", Category: INTEGER_TYPE, Line: 2},
				{Lexeme: ",", Category: AND, Line: 2},
				{Lexeme: "string", Category: STRING_TYPE, Line: 2},
				{Lexeme: ")", Category: RPAREN, Line: 2},
			},
		},
		{
			name:  "Fact with literals",
			input: `foo(3, "x y", 'c', 2.5).`,
			expected: []Token{
				{Lexeme: "foo", Category: IDENT, Line: 1},
				{Lexeme: "(", Category: LPAREN, Line: 1},
				{Lexeme: "3", Category: INTEGER, Line: 1},
				{Lexeme: ",", Category: AND, Line: 1},
				{Lexeme: `"x y"`, Category: STRING, Line: 1},
				{Lexeme: ",", Category: AND, Line: 1},
				{Lexeme: "'c'", Category: CHAR, Line: 1},
				{Lexeme: ",", Category: AND, Line: 1},
				{Lexeme: "2.5", Category: REAL, Line: 1},
				{Lexeme: ")", Category: RPAREN, Line: 1},
				{Lexeme: ".", Category: DOT, Line: 1},
			},
		},
		{
			name:  "Rule with statements",
			input: "bar :- readint(X), X + 1 >= 10; write(X).",
			expected: []Token{
				{Lexeme: "bar", Category: IDENT, Line: 1},
				{Lexeme: ":-", Category: IMPLY, Line: 1},
				{Lexeme: "readint", Category: READINT, Line: 1},
				{Lexeme: "(", Category: LPAREN, Line: 1},
				{Lexeme: "X", Category: VARIABLE, Line: 1},
				{Lexeme: ")", Category: RPAREN, Line: 1},
				{Lexeme: ",", Category: AND, Line: 1},
				{Lexeme: "X", Category: VARIABLE, Line: 1},
				{Lexeme: "+", Category: ARITHMETIC_OP, Line: 1},
				{Lexeme: "1", Category: INTEGER, Line: 1},
				{Lexeme: ">=", Category: RELATIONAL_OP, Line: 1},
				{Lexeme: "10", Category: INTEGER, Line: 1},
				{Lexeme: ";", Category: OR, Line: 1},
				{Lexeme: "write", Category: WRITE, Line: 1},
				{Lexeme: "(", Category: LPAREN, Line: 1},
				{Lexeme: "X", Category: VARIABLE, Line: 1},
				{Lexeme: ")", Category: RPAREN, Line: 1},
				{Lexeme: ".", Category: DOT, Line: 1},
			},
		},
		{
			name:  "Two character operators",
			input: "A <> B <= C",
			expected: []Token{
				{Lexeme: "A", Category: VARIABLE, Line: 1},
				{Lexeme: "<>", Category: RELATIONAL_OP, Line: 1},
				{Lexeme: "B", Category: VARIABLE, Line: 1},
				{Lexeme: "<=", Category: RELATIONAL_OP, Line: 1},
				{Lexeme: "C", Category: VARIABLE, Line: 1},
			},
		},
		{
			name:  "Underscore variable and empty char",
			input: "_Tmp = ''",
			expected: []Token{
				{Lexeme: "_Tmp", Category: VARIABLE, Line: 1},
				{Lexeme: "=", Category: RELATIONAL_OP, Line: 1},
				{Lexeme: "''", Category: CHAR, Line: 1},
			},
		},
		{
			name:  "Escaped quote in string",
			input: `write("say \"hi\"")`,
			expected: []Token{
				{Lexeme: "write", Category: WRITE, Line: 1},
				{Lexeme: "(", Category: LPAREN, Line: 1},
				{Lexeme: `"say \"hi\""`, Category: STRING, Line: 1},
				{Lexeme: ")", Category: RPAREN, Line: 1},
			},
		},
		{
			name:  "Unrecognized lexemes",
			input: "9abc @ {",
			expected: []Token{
				{Lexeme: "9abc", Category: ERROR, Line: 1},
				{Lexeme: "@", Category: ERROR, Line: 1},
				{Lexeme: "{", Category: ERROR, Line: 1},
			},
		},
		{
			name:  "Block comment keeps line numbers",
			input: "predicates /* a\nmulti line\ncomment */ foo\nclauses",
			expected: []Token{
				{Lexeme: "predicates", Category: PREDICATES, Line: 1},
				{Lexeme: "foo", Category: IDENT, Line: 3},
				{Lexeme: "clauses", Category: CLAUSES, Line: 4},
			},
		},
		{
			name:  "Line comments",
			input: "goal // the goal\nfoo. // done",
			expected: []Token{
				{Lexeme: "goal", Category: GOAL, Line: 1},
				{Lexeme: "foo", Category: IDENT, Line: 2},
				{Lexeme: ".", Category: DOT, Line: 2},
			},
		},
		{
			name:  "Unterminated block comment drops lines",
			input: "foo.\nbar /* never closed\nbaz.\nqux.",
			expected: []Token{
				{Lexeme: "foo", Category: IDENT, Line: 1},
				{Lexeme: ".", Category: DOT, Line: 1},
			},
		},
		{
			name:     "Whitespace only",
			input:    " \t\r\n\n  ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)

			if len(tokens) != len(tt.expected) {
				t.Fatalf("Expected %d tokens, got %d: %v", len(tt.expected), len(tokens), tokens)
			}

			for i, exp := range tt.expected {
				if tokens[i] != exp {
					t.Errorf("Token %d: expected %+v, got %+v", i, exp, tokens[i])
				}
			}
		})
	}
}

func TestTokenize_ReconstructsInput(t *testing.T) {
	inputs := []string{
		"predicates foo(integer) clauses foo(1). goal foo(1).",
		`bar :- write("a b", X) ; Y <> 3.0 , 'z' # $ % ^ & ! ~`,
		"12abc34 __ x_y Z9 [ ] { } :- <= >= <>",
	}

	strip := func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
	}

	for _, input := range inputs {
		var sb strings.Builder
		for _, tok := range Tokenize(input) {
			sb.WriteString(tok.Lexeme)
		}
		if strip(sb.String()) != strip(input) {
			t.Errorf("Lexemes do not reconstruct input\n input: %q\n   got: %q", input, sb.String())
		}
	}
}

func TestLexer_Cursor(t *testing.T) {
	l := NewLexer("goal foo.")

	first := l.NextToken()
	if first.Category != GOAL {
		t.Fatalf("Expected GOAL, got %v", first)
	}
	if l.Position() != 1 {
		t.Errorf("Expected position 1, got %d", l.Position())
	}

	l.NextToken()
	l.NextToken()
	for i := 0; i < 3; i++ {
		if tok := l.NextToken(); tok.Category != EOF {
			t.Errorf("Expected EOF past the end, got %v", tok)
		}
	}

	l.Seek(1)
	if tok := l.NextToken(); tok.Lexeme != "foo" {
		t.Errorf("Expected foo after Seek(1), got %v", tok)
	}

	l.Seek(-5)
	if tok := l.NextToken(); tok.Category != GOAL {
		t.Errorf("Expected Seek to clamp at 0, got %v", tok)
	}
}

func TestCategory_TextRoundTrip(t *testing.T) {
	for _, c := range Categories() {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", int(c), err)
		}
		var back Category
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s): %v", text, err)
		}
		if back != c {
			t.Errorf("Expected %v, got %v", c, back)
		}
	}

	if _, err := ParseCategory("nonsense"); err == nil {
		t.Error("Expected error for unknown category name")
	}
}

func TestCategory_Kinds(t *testing.T) {
	dataTypes := map[Category]bool{INTEGER_TYPE: true, STRING_TYPE: true, CHAR_TYPE: true, SYMBOL_TYPE: true, REAL_TYPE: true}
	literals := map[Category]bool{INTEGER: true, STRING: true, CHAR: true, REAL: true}

	for _, c := range append(Categories(), EOF) {
		if got := c.IsDataType(); got != dataTypes[c] {
			t.Errorf("%s.IsDataType() = %v, want %v", c, got, dataTypes[c])
		}
		if got := c.IsLiteral(); got != literals[c] {
			t.Errorf("%s.IsLiteral() = %v, want %v", c, got, literals[c])
		}
	}
}

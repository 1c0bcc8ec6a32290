package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"PrologFront/internal/frontend"
	"PrologFront/internal/lexer"

	"gopkg.in/yaml.v3"
)

const program = `predicates
  foo(integer)
clauses
  foo(1).
goal
  foo(2).`

func TestFormatTokens(t *testing.T) {
	out := FormatTokens(lexer.Tokenize("goal foo."))

	want := "" +
		"+---+--------+------------+------+\n" +
		"| # | Lexeme | Category   | Line |\n" +
		"+---+--------+------------+------+\n" +
		"| 1 | goal   | goal       | 1    |\n" +
		"| 2 | foo    | identifier | 1    |\n" +
		"| 3 | .      | dot        | 1    |\n" +
		"+---+--------+------------+------+\n" +
		"3 token(s)\n"

	if out != want {
		t.Errorf("Unexpected token table:\n%s\nwant:\n%s", out, want)
	}

	if FormatTokens(nil) != "No tokens\n" {
		t.Error("Expected placeholder for empty token list")
	}
}

func TestFormatTable_NonASCII(t *testing.T) {
	out := formatTable([]string{"Lexeme", "Category"}, [][]string{{"éééééééé", "error"}, {"ab", "identifier"}})

	want := "" +
		"+----------+------------+\n" +
		"| Lexeme   | Category   |\n" +
		"+----------+------------+\n" +
		"| éééééééé | error      |\n" +
		"| ab       | identifier |\n" +
		"+----------+------------+\n"

	if out != want {
		t.Errorf("Unexpected table:\n%s\nwant:\n%s", out, want)
	}
}

func TestGroupByCategory(t *testing.T) {
	groups := GroupByCategory(lexer.Tokenize(program))

	tests := []struct {
		category lexer.Category
		lexemes  []string
	}{
		{lexer.PREDICATES, []string{"predicates"}},
		{lexer.CLAUSES, []string{"clauses"}},
		{lexer.GOAL, []string{"goal"}},
		{lexer.INTEGER_TYPE, []string{"integer"}},
		{lexer.INTEGER, []string{"1", "2"}},
		{lexer.DOT, []string{"."}},
		{lexer.LPAREN, []string{"("}},
		{lexer.RPAREN, []string{")"}},
		{lexer.IDENT, []string{"foo"}},
	}

	if len(groups) != len(tests) {
		t.Fatalf("Expected %d groups, got %d: %+v", len(tests), len(groups), groups)
	}
	for i, tt := range tests {
		g := groups[i]
		if g.Category != tt.category {
			t.Errorf("group %d: expected category %s, got %s", i, tt.category, g.Category)
			continue
		}
		if strings.Join(g.Lexemes, " ") != strings.Join(tt.lexemes, " ") {
			t.Errorf("group %s: expected lexemes %v, got %v", tt.category, tt.lexemes, g.Lexemes)
		}
	}
}

func TestFormatTokenGroups(t *testing.T) {
	out := FormatTokenGroups(GroupByCategory(lexer.Tokenize("foo(1, 22, 1).")))

	want := "" +
		"+---------+-----+-----+--------------+---------------+------------+\n" +
		"| integer | and | dot | open_bracket | close_bracket | identifier |\n" +
		"+---------+-----+-----+--------------+---------------+------------+\n" +
		"| 1       | ,   | .   | (            | )             | foo        |\n" +
		"| 22      |     |     |              |               |            |\n" +
		"+---------+-----+-----+--------------+---------------+------------+\n"

	if out != want {
		t.Errorf("Unexpected group table:\n%s\nwant:\n%s", out, want)
	}
}

func TestFormatDiagnostics(t *testing.T) {
	result := frontend.Analyze("test", program+"\nfoo(3).")

	plain := FormatDiagnostics(result.Diagnostics, false)
	if plain != "Error at token: `foo` of type `identifier`\n" {
		t.Errorf("Unexpected plain diagnostics: %q", plain)
	}

	verbose := FormatDiagnostics(result.Diagnostics, true)
	for _, part := range []string{"line 7", "unexpected token after goal", "goal section"} {
		if !strings.Contains(verbose, part) {
			t.Errorf("Expected %q in verbose diagnostics %q", part, verbose)
		}
	}

	if FormatDiagnostics(nil, true) != "No errors\n" {
		t.Error("Expected placeholder for no diagnostics")
	}
}

func TestFormatSymbols(t *testing.T) {
	result := frontend.Analyze("test", `predicates
  p(symbol, real)
  q
clauses
  q :- readint(N), N > 0.
goal
  q.`)

	out := FormatSymbols(result.Predicates, result.Variables)
	for _, row := range []string{
		"| p         | (symbol, real) |",
		"| q         | ()             |",
		"| N        | integer |",
	} {
		if !strings.Contains(out, row) {
			t.Errorf("Expected row %q in:\n%s", row, out)
		}
	}
}

func TestEncode(t *testing.T) {
	result := frontend.Analyze("test", program)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, result, FormatJSON); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		var decoded struct {
			ID          string `json:"id"`
			Tokens      []lexer.Token
			Predicates  map[string][]string
			Diagnostics []struct {
				Message string `json:"message"`
			}
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("Output is not valid JSON: %v", err)
		}
		if decoded.ID != result.ID {
			t.Errorf("Expected id %s, got %s", result.ID, decoded.ID)
		}
		if len(decoded.Tokens) != len(result.Tokens) || decoded.Tokens[0].Category != lexer.PREDICATES {
			t.Errorf("Tokens did not survive encoding: %+v", decoded.Tokens)
		}
		if got := decoded.Predicates["foo"]; len(got) != 1 || got[0] != "integer" {
			t.Errorf("Expected foo(integer), got %v", got)
		}
		if len(decoded.Diagnostics) != 0 {
			t.Errorf("Expected no diagnostics, got %v", decoded.Diagnostics)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, result, FormatYAML); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		var decoded map[string]any
		if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("Output is not valid YAML: %v", err)
		}
		if decoded["name"] != "test" {
			t.Errorf("Expected name test, got %v", decoded["name"])
		}
		if !strings.Contains(buf.String(), "category: data_type_integer") {
			t.Errorf("Expected categories encoded by name:\n%s", buf.String())
		}
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := Encode(&buf, result, FormatText); err != nil {
			t.Fatalf("Encode failed: %v", err)
		}
		if !strings.HasPrefix(buf.String(), "Program\n  Predicates\n") {
			t.Errorf("Expected indented tree first, got:\n%s", buf.String())
		}
		if !strings.HasSuffix(buf.String(), "No errors\n") {
			t.Errorf("Expected diagnostics last, got:\n%s", buf.String())
		}
	})

	if err := Encode(&bytes.Buffer{}, result, Format("xml")); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "JSON", "yaml"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseFormat("toml"); err == nil {
		t.Error("Expected error for toml")
	}
}

package report

import (
	"fmt"
	"strconv"
	"strings"

	"PrologFront/internal/lexer"
	"PrologFront/internal/parser"
)

// Group holds the distinct lexemes of one category in first-seen order.
type Group struct {
	Category lexer.Category `json:"category" yaml:"category"`
	Lexemes  []string       `json:"lexemes" yaml:"lexemes"`
}

// FormatTokens renders one table row per token.
func FormatTokens(tokens []lexer.Token) string {
	if len(tokens) == 0 {
		return "No tokens\n"
	}

	rows := make([][]string, len(tokens))
	for i, tok := range tokens {
		rows[i] = []string{strconv.Itoa(i + 1), tok.Lexeme, tok.Category.String(), strconv.Itoa(tok.Line)}
	}

	var sb strings.Builder
	sb.WriteString(formatTable([]string{"#", "Lexeme", "Category", "Line"}, rows))
	fmt.Fprintf(&sb, "%d token(s)\n", len(tokens))
	return sb.String()
}

// GroupByCategory collects distinct lexemes per category. Groups follow the
// category declaration order and only categories that occur are returned.
func GroupByCategory(tokens []lexer.Token) []Group {
	byCategory := make(map[lexer.Category]*Group)
	seen := make(map[lexer.Category]map[string]bool)

	for _, tok := range tokens {
		g, ok := byCategory[tok.Category]
		if !ok {
			g = &Group{Category: tok.Category}
			byCategory[tok.Category] = g
			seen[tok.Category] = make(map[string]bool)
		}
		if seen[tok.Category][tok.Lexeme] {
			continue
		}
		seen[tok.Category][tok.Lexeme] = true
		g.Lexemes = append(g.Lexemes, tok.Lexeme)
	}

	groups := make([]Group, 0, len(byCategory))
	for _, c := range lexer.Categories() {
		if g, ok := byCategory[c]; ok {
			groups = append(groups, *g)
		}
	}
	return groups
}

// FormatTokenGroups lays the groups out side by side, one column per
// category.
func FormatTokenGroups(groups []Group) string {
	if len(groups) == 0 {
		return "No tokens\n"
	}

	headers := make([]string, len(groups))
	height := 0
	for i, g := range groups {
		headers[i] = g.Category.String()
		height = max(height, len(g.Lexemes))
	}

	rows := make([][]string, height)
	for r := range rows {
		rows[r] = make([]string, len(groups))
		for i, g := range groups {
			if r < len(g.Lexemes) {
				rows[r][i] = g.Lexemes[r]
			}
		}
	}

	return formatTable(headers, rows)
}

// FormatDiagnostics lists diagnostics one per line. Verbose output adds the
// line, reason and section.
func FormatDiagnostics(ds parser.Diagnostics, verbose bool) string {
	if ds.Empty() {
		return "No errors\n"
	}

	var sb strings.Builder
	for _, d := range ds {
		if verbose {
			sb.WriteString(d.Verbose())
		} else {
			sb.WriteString(d.String())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatSymbols renders the predicate and variable tables.
func FormatSymbols(predicates parser.PredicateTable, variables parser.VariableTable) string {
	var sb strings.Builder

	predRows := make([][]string, 0, len(predicates))
	for _, name := range predicates.Names() {
		sig, _ := predicates.Lookup(name)
		predRows = append(predRows, []string{name, sig.String()})
	}
	sb.WriteString(formatTable([]string{"Predicate", "Signature"}, predRows))

	varRows := make([][]string, 0, len(variables))
	for _, name := range variables.Names() {
		d, _ := variables.Lookup(name)
		varRows = append(varRows, []string{name, d.String()})
	}
	sb.WriteString(formatTable([]string{"Variable", "Type"}, varRows))

	return sb.String()
}

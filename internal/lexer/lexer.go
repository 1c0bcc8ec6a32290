package lexer

import (
	"regexp"
	"strings"
)

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`(?m)//.*$`)

	lexemePattern = regexp.MustCompile(strings.Join([]string{
		`[0-9]*[a-zA-Z_]+[0-9]*`,
		`[0-9]+(?:\.[0-9]+)?`,
		`'[a-zA-Z0-9]?'`,
		`"(?:\\.|[^"])*"`,
		`<=|>=|<>|:-`,
		`[<>=+\-*/(){}\[\],;]`,
		`\.`,
		`\S`,
	}, "|"))

	identPattern    = regexp.MustCompile(`^[a-z][a-zA-Z0-9_]*$`)
	variablePattern = regexp.MustCompile(`^[A-Z_][a-zA-Z0-9_]*$`)
	integerPattern  = regexp.MustCompile(`^[0-9]+$`)
	charPattern     = regexp.MustCompile(`^'[a-zA-Z0-9]?'$`)
	realPattern     = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
)

// Lexer is a forward cursor over the token sequence of one input.
type Lexer struct {
	tokens   []Token
	position int
}

func NewLexer(input string) *Lexer {
	return &Lexer{tokens: Tokenize(input)}
}

// NextToken returns the token under the cursor and advances. Past the end it
// keeps returning an EOF token.
func (l *Lexer) NextToken() Token {
	if l.position >= len(l.tokens) {
		return Token{Category: EOF, Line: l.lastLine()}
	}
	tok := l.tokens[l.position]
	l.position++
	return tok
}

// Position is the index of the token NextToken will return.
func (l *Lexer) Position() int {
	return l.position
}

// Seek moves the cursor so the next token returned is tokens[i].
func (l *Lexer) Seek(i int) {
	if i < 0 {
		i = 0
	}
	if i > len(l.tokens) {
		i = len(l.tokens)
	}
	l.position = i
}

func (l *Lexer) Tokens() []Token {
	out := make([]Token, len(l.tokens))
	copy(out, l.tokens)
	return out
}

func (l *Lexer) lastLine() int {
	if len(l.tokens) == 0 {
		return 1
	}
	return l.tokens[len(l.tokens)-1].Line
}

// Tokenize converts source text into its token sequence. It never fails:
// fragments that match no lexeme shape become ERROR tokens.
func Tokenize(text string) []Token {
	var tokens []Token

	text = stripComments(text)

	insideComment := false
	for i, line := range strings.Split(text, "\n") {
		// stray markers left behind by malformed comments
		if insideComment {
			if strings.Contains(line, "*/") {
				insideComment = false
			}
			continue
		}
		if strings.Contains(line, "/*") {
			insideComment = true
			continue
		}

		for _, word := range lexemePattern.FindAllString(line, -1) {
			if strings.TrimSpace(word) == "" {
				continue
			}
			tokens = append(tokens, Token{Lexeme: word, Category: classify(word), Line: i + 1})
		}
	}

	return tokens
}

// stripComments removes block comments, keeping their line breaks, then
// line comments.
func stripComments(text string) string {
	text = blockComment.ReplaceAllStringFunc(text, func(comment string) string {
		return strings.Repeat("\n", strings.Count(comment, "\n"))
	})
	return lineComment.ReplaceAllString(text, "")
}

func classify(word string) Category {
	if c, ok := LookupReserved(word); ok {
		return c
	}
	if c, ok := LookupOperator(word); ok {
		return c
	}

	switch {
	case identPattern.MatchString(word):
		return IDENT
	case variablePattern.MatchString(word):
		return VARIABLE
	case integerPattern.MatchString(word):
		return INTEGER
	case charPattern.MatchString(word):
		return CHAR
	case realPattern.MatchString(word):
		return REAL
	case len(word) >= 2 && strings.HasPrefix(word, `"`) && strings.HasSuffix(word, `"`):
		return STRING
	}

	return ERROR
}

package lexer

import "fmt"

// Category is the closed classification of a lexeme.
type Category int

const (
	EOF Category = iota // sentinel past the last token, never emitted by Tokenize

	// Section keywords
	PREDICATES
	CLAUSES
	GOAL

	// Data type keywords
	INTEGER_TYPE
	STRING_TYPE
	CHAR_TYPE
	SYMBOL_TYPE
	REAL_TYPE

	// Literals
	INTEGER // 42
	STRING  // "hello"
	CHAR    // 'a'
	REAL    // 3.14

	// Connectives
	AND // ,
	OR  // ;

	// I/O statements
	READLN
	READINT
	READCHAR
	WRITE

	// Operators
	RELATIONAL_OP // < <= > >= = <>
	ARITHMETIC_OP // + - * /

	// Punctuation
	DOT    // .
	LPAREN // (
	RPAREN // )
	IMPLY  // :-

	IDENT    // lowercase-leading name
	VARIABLE // uppercase or underscore leading name

	ERROR
)

var categoryNames = map[Category]string{
	EOF:           "end of input",
	PREDICATES:    "predicates",
	CLAUSES:       "clauses",
	GOAL:          "goal",
	INTEGER_TYPE:  "data_type_integer",
	STRING_TYPE:   "data_type_string",
	CHAR_TYPE:     "data_type_char",
	SYMBOL_TYPE:   "data_type_symbol",
	REAL_TYPE:     "data_type_real",
	INTEGER:       "integer",
	STRING:        "string",
	CHAR:          "char",
	REAL:          "real",
	AND:           "and",
	OR:            "or",
	READLN:        "readln",
	READINT:       "readint",
	READCHAR:      "readchar",
	WRITE:         "write",
	RELATIONAL_OP: "relational_op",
	ARITHMETIC_OP: "arithmetic_op",
	DOT:           "dot",
	LPAREN:        "open_bracket",
	RPAREN:        "close_bracket",
	IMPLY:         "imply",
	IDENT:         "identifier",
	VARIABLE:      "variable",
	ERROR:         "error",
}

// Categories lists every category a token sequence may contain, in
// declaration order.
func Categories() []Category {
	cats := make([]Category, 0, int(ERROR))
	for c := PREDICATES; c <= ERROR; c++ {
		cats = append(cats, c)
	}
	return cats
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory is the inverse of Category.String.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return c, nil
		}
	}
	return ERROR, fmt.Errorf("unknown token category %q", name)
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// IsDataType reports whether c is one of the five data type keywords.
func (c Category) IsDataType() bool {
	switch c {
	case INTEGER_TYPE, STRING_TYPE, CHAR_TYPE, SYMBOL_TYPE, REAL_TYPE:
		return true
	}
	return false
}

// IsLiteral reports whether c is a literal value kind.
func (c Category) IsLiteral() bool {
	switch c {
	case INTEGER, STRING, CHAR, REAL:
		return true
	}
	return false
}

// Token is a classified lexeme. Line is the 1-based source line.
type Token struct {
	Lexeme   string   `json:"lexeme" yaml:"lexeme"`
	Category Category `json:"category" yaml:"category"`
	Line     int      `json:"line" yaml:"line"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%s)", t.Category, t.Lexeme)
}

var reservedWords = map[string]Category{
	"predicates": PREDICATES,
	"clauses":    CLAUSES,
	"goal":       GOAL,
	"readln":     READLN,
	"readint":    READINT,
	"readchar":   READCHAR,
	"write":      WRITE,
	"integer":    INTEGER_TYPE,
	"symbol":     SYMBOL_TYPE,
	"char":       CHAR_TYPE,
	"string":     STRING_TYPE,
	"real":       REAL_TYPE,
}

var operators = map[string]Category{
	"<":  RELATIONAL_OP,
	"<=": RELATIONAL_OP,
	">":  RELATIONAL_OP,
	">=": RELATIONAL_OP,
	"=":  RELATIONAL_OP,
	"<>": RELATIONAL_OP,
	"+":  ARITHMETIC_OP,
	"-":  ARITHMETIC_OP,
	"*":  ARITHMETIC_OP,
	"/":  ARITHMETIC_OP,
	",":  AND,
	";":  OR,
	".":  DOT,
	"(":  LPAREN,
	")":  RPAREN,
	":-": IMPLY,
}

// LookupReserved returns the keyword category of word, if any.
func LookupReserved(word string) (Category, bool) {
	c, ok := reservedWords[word]
	return c, ok
}

// LookupOperator returns the operator or punctuation category of sym, if any.
func LookupOperator(sym string) (Category, bool) {
	c, ok := operators[sym]
	return c, ok
}

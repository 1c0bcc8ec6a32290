package parser

import (
	"fmt"
	"sort"
	"strings"

	"PrologFront/internal/lexer"
)

// DataType is a declared parameter type or the inferred type of a value.
type DataType int

const (
	Integer DataType = iota
	Symbol
	Char
	String
	Real
)

var dataTypeNames = [...]string{
	Integer: "integer",
	Symbol:  "symbol",
	Char:    "char",
	String:  "string",
	Real:    "real",
}

func (d DataType) String() string {
	if d >= 0 && int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return fmt.Sprintf("DataType(%d)", int(d))
}

func (d DataType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DataType) UnmarshalText(text []byte) error {
	for i, name := range dataTypeNames {
		if name == string(text) {
			*d = DataType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown data type %q", text)
}

// DataTypeOf maps a data type keyword to the type it declares.
func DataTypeOf(c lexer.Category) (DataType, bool) {
	switch c {
	case lexer.INTEGER_TYPE:
		return Integer, true
	case lexer.SYMBOL_TYPE:
		return Symbol, true
	case lexer.CHAR_TYPE:
		return Char, true
	case lexer.STRING_TYPE:
		return String, true
	case lexer.REAL_TYPE:
		return Real, true
	}
	return 0, false
}

// ValueTypeOf maps the category of a value token to its inferred type.
// Identifiers used as values are symbols.
func ValueTypeOf(c lexer.Category) (DataType, bool) {
	switch c {
	case lexer.INTEGER:
		return Integer, true
	case lexer.IDENT:
		return Symbol, true
	case lexer.CHAR:
		return Char, true
	case lexer.STRING:
		return String, true
	case lexer.REAL:
		return Real, true
	}
	return 0, false
}

// Signature is the ordered parameter type list of a predicate.
type Signature []DataType

func (s Signature) Equal(other Signature) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Signature) String() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = d.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// PredicateTable maps predicate names to their declared signatures.
type PredicateTable map[string]Signature

// declare records name with an empty signature, replacing any earlier
// declaration.
func (t PredicateTable) declare(name string) {
	t[name] = Signature{}
}

func (t PredicateTable) addParameter(name string, d DataType) {
	t[name] = append(t[name], d)
}

func (t PredicateTable) Lookup(name string) (Signature, bool) {
	sig, ok := t[name]
	return sig, ok
}

func (t PredicateTable) Names() []string {
	return sortedKeys(t)
}

func (t PredicateTable) clone() PredicateTable {
	out := make(PredicateTable, len(t))
	for name, sig := range t {
		out[name] = append(Signature{}, sig...)
	}
	return out
}

// VariableTable maps variable names to the type they were bound with.
type VariableTable map[string]DataType

func (t VariableTable) bind(name string, d DataType) {
	t[name] = d
}

func (t VariableTable) Lookup(name string) (DataType, bool) {
	d, ok := t[name]
	return d, ok
}

func (t VariableTable) Names() []string {
	return sortedKeys(t)
}

func (t VariableTable) clone() VariableTable {
	out := make(VariableTable, len(t))
	for name, d := range t {
		out[name] = d
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

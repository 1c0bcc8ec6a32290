package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"PrologFront/internal/frontend"

	"gopkg.in/yaml.v3"
)

// Format selects how a result is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
}

// TextOptions controls the text rendering of a result.
type TextOptions struct {
	Bracketed bool // bracket notation instead of the indented tree
	Verbose   bool
}

// Text renders the parse tree followed by the diagnostics.
func Text(r *frontend.Result, opts TextOptions) string {
	var sb strings.Builder

	if opts.Bracketed {
		sb.WriteString(r.Tree.Bracketed())
		sb.WriteString("\n")
	} else {
		sb.WriteString(r.Tree.Pretty())
	}

	sb.WriteString("\n")
	sb.WriteString(FormatDiagnostics(r.Diagnostics, opts.Verbose))
	return sb.String()
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, r *frontend.Result, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode result as json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode result as yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to flush yaml: %w", err)
		}
	case FormatText, "":
		if _, err := io.WriteString(w, Text(r, TextOptions{})); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
	return nil
}

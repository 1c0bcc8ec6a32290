package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"PrologFront/internal/frontend"
	"PrologFront/internal/logger"
	"PrologFront/internal/report"
)

const helpText = `Type program lines to add them to the buffer, then use a command:
  :parse        parse the buffer and show the tree and errors
  :tokens       list the tokens of the buffer
  :groups       list distinct lexemes per category
  :symbols      show declared predicates and bound variables
  :show         print the buffer
  :clear        empty the buffer
  :load <file>  replace the buffer with a file
  :quit         exit (also: exit)
`

// Session holds the program buffer and renders command output to out.
type Session struct {
	lines   []string
	out     io.Writer
	verbose bool
	logger  *logger.Logger
}

func NewSession(out io.Writer, verbose bool) *Session {
	return &Session{out: out, verbose: verbose, logger: logger.Get("repl")}
}

// Source returns the buffered program text.
func (s *Session) Source() string {
	return strings.Join(s.lines, "\n")
}

// Pending reports whether the buffer holds any lines.
func (s *Session) Pending() bool {
	return len(s.lines) > 0
}

// Handle processes one input line. It returns false once the user asked to
// quit.
func (s *Session) Handle(line string) bool {
	trimmed := strings.TrimSpace(line)

	if trimmed == "exit" {
		return false
	}
	if !strings.HasPrefix(trimmed, ":") {
		if trimmed != "" || s.Pending() {
			s.lines = append(s.lines, line)
		}
		return true
	}

	command, arg, _ := strings.Cut(trimmed, " ")
	arg = strings.TrimSpace(arg)
	s.logger.Debug("Processing command: %s", trimmed)

	switch strings.ToLower(command) {
	case ":quit", ":q":
		return false
	case ":help":
		fmt.Fprint(s.out, helpText)
	case ":parse":
		result := s.analyze()
		fmt.Fprint(s.out, report.Text(result, report.TextOptions{Verbose: s.verbose}))
	case ":tokens":
		fmt.Fprint(s.out, report.FormatTokens(s.analyze().Tokens))
	case ":groups":
		fmt.Fprint(s.out, report.FormatTokenGroups(report.GroupByCategory(s.analyze().Tokens)))
	case ":symbols":
		result := s.analyze()
		fmt.Fprint(s.out, report.FormatSymbols(result.Predicates, result.Variables))
	case ":show":
		if !s.Pending() {
			fmt.Fprintln(s.out, "Buffer is empty")
			break
		}
		for i, l := range s.lines {
			fmt.Fprintf(s.out, "%3d  %s\n", i+1, l)
		}
	case ":clear":
		s.lines = nil
		fmt.Fprintln(s.out, "Buffer cleared")
	case ":load":
		s.load(arg)
	default:
		fmt.Fprintf(s.out, "unknown command %s. Type :help for commands.\n", command)
	}

	return true
}

func (s *Session) analyze() *frontend.Result {
	return frontend.Analyze("buffer", s.Source())
}

func (s *Session) load(path string) {
	if path == "" {
		fmt.Fprintln(s.out, "usage: :load <file>")
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Error("Failed to load %s: %v", path, err)
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	s.lines = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	fmt.Fprintf(s.out, "Loaded %d line(s) from %s\n", len(s.lines), path)
}

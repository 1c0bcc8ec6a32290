package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"PrologFront/internal/logger"

	"github.com/peterh/liner"
)

const (
	promptMain = "prolog> "
	promptCont = "   ...> "
)

// Run reads lines with history and editing until :quit or EOF. History is
// loaded from and saved to historyPath when it is not empty.
func Run(out io.Writer, historyPath string, verbose bool) error {
	log := logger.Get("repl")
	log.Info("Starting REPL session")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(historyPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintln(out, "PrologFront REPL. Type :help for commands, :quit to exit.")
	session := NewSession(out, verbose)

	for {
		prompt := promptMain
		if session.Pending() {
			prompt = promptCont
		}

		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			break
		}
		if err != nil {
			log.Error("Error reading input: %v", err)
			return fmt.Errorf("failed to read input: %w", err)
		}

		if strings.TrimSpace(line) != "" {
			ln.AppendHistory(line)
		}
		if !session.Handle(line) {
			log.Info("User requested exit")
			break
		}
	}

	log.Info("REPL session ended")
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"os"

	"PrologFront/internal/config"
	"PrologFront/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// loggerNames are the components that log; each gets its own registry entry.
var loggerNames = []string{"parser", "frontend", "server", "repl", "watch"}

var rootCmd = &cobra.Command{
	Use:   "prolog",
	Short: "PrologFront - lexer and parser for a Prolog-like teaching language",
	Long: `PrologFront tokenizes, parses and checks programs made of a
predicates section, a clauses section and a goal.

Commands:
  tokens   - list the tokens of a program
  parse    - print the parse tree and errors
  check    - validate one or more programs
  repl     - build a program line by line
  serve    - run the HTTP analysis API
  tui      - edit and analyze in a terminal UI
  watch    - re-analyze a file whenever it changes`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $PROLOGFRONT_CONFIG or ./prologfront.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show reason, section and line for each error")
}

// setup loads the configuration and registers the file loggers.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	if verbose {
		cfg.Output.Verbose = true
	}

	for _, name := range loggerNames {
		l, err := logger.New(name, cfg.General.LogDir, cfg.LogLevel())
		if err != nil {
			return fmt.Errorf("failed to set up %s logger: %w", name, err)
		}
		l.Debug("%s logger ready at %s level", l.Name(), l.Level())
	}
	return nil
}

// readSource returns the program named by args, or stdin when there is no
// argument or the argument is "-".
func readSource(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "stdin", string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("failed to read source: %w", err)
	}
	return args[0], string(data), nil
}

package cmd

import (
	"os"
	"path/filepath"

	"PrologFront/internal/repl"

	"github.com/spf13/cobra"
)

const historyFile = ".prologfront_history"

var replNoHistory bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Build and analyze a program interactively",
	Long: `Starts a line-editing session. Program lines are collected in a
buffer; commands such as :parse, :tokens and :symbols analyze it.
Type :help inside the session for the full list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		historyPath := ""
		if !replNoHistory {
			if home, err := os.UserHomeDir(); err == nil {
				historyPath = filepath.Join(home, historyFile)
			}
		}
		return repl.Run(cmd.OutOrStdout(), historyPath, cfg.Output.Verbose)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replNoHistory, "no-history", false, "do not read or write the history file")
}

package cmd

import (
	"fmt"

	"PrologFront/internal/lexer"
	"PrologFront/internal/report"

	"github.com/spf13/cobra"
)

var tokensGroups bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "List the tokens of a program",
	Long: `Tokenizes a program and prints one row per token with its category
and line. With --groups the distinct lexemes of each category are shown
side by side instead.

Examples:
  prolog tokens family.pro
  prolog tokens --groups family.pro
  cat family.pro | prolog tokens`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVarP(&tokensGroups, "groups", "g", false, "group distinct lexemes by category")
}

func runTokens(cmd *cobra.Command, args []string) error {
	_, source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	tokens := lexer.Tokenize(source)
	if tokensGroups {
		fmt.Fprint(cmd.OutOrStdout(), report.FormatTokenGroups(report.GroupByCategory(tokens)))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), report.FormatTokens(tokens))
	return nil
}

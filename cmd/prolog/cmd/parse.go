package cmd

import (
	"fmt"

	"PrologFront/internal/frontend"
	"PrologFront/internal/report"

	"github.com/spf13/cobra"
)

var (
	parseFormat  string
	parseTree    string
	parseSymbols bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the parse tree and errors of a program",
	Long: `Parses a program and prints its parse tree followed by every
recovered error. JSON and YAML output carry the tokens, tree, errors
and symbol tables together.

Examples:
  prolog parse family.pro
  prolog parse --tree bracket family.pro
  prolog parse --format json family.pro`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format: text, json or yaml (default from config)")
	parseCmd.Flags().StringVarP(&parseTree, "tree", "t", "", "tree style for text output: pretty or bracket (default from config)")
	parseCmd.Flags().BoolVarP(&parseSymbols, "symbols", "s", false, "also print the symbol tables (text output)")
}

func runParse(cmd *cobra.Command, args []string) error {
	name, source, err := readSource(cmd, args)
	if err != nil {
		return err
	}

	formatName := cfg.Output.Format
	if parseFormat != "" {
		formatName = parseFormat
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	treeStyle := cfg.Output.Tree
	if parseTree != "" {
		treeStyle = parseTree
	}
	if treeStyle != "pretty" && treeStyle != "bracket" {
		return fmt.Errorf("unknown tree style %q (want pretty or bracket)", treeStyle)
	}

	result := frontend.Analyze(name, source)
	out := cmd.OutOrStdout()

	if format != report.FormatText {
		return report.Encode(out, result, format)
	}

	fmt.Fprint(out, report.Text(result, report.TextOptions{
		Bracketed: treeStyle == "bracket",
		Verbose:   cfg.Output.Verbose,
	}))
	if parseSymbols {
		fmt.Fprintln(out)
		fmt.Fprint(out, report.FormatSymbols(result.Predicates, result.Variables))
	}
	return nil
}

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"PrologFront/internal/frontend"
	"PrologFront/internal/report"

	"github.com/spf13/cobra"
)

// ErrDiagnostics is returned by check when any program has errors. The
// errors themselves have already been printed.
var ErrDiagnostics = errors.New("program has errors")

var checkCmd = &cobra.Command{
	Use:   "check file...",
	Short: "Validate programs",
	Long: `Parses each file and reports its errors. The exit status is non-zero
when any file has errors.

Examples:
  prolog check family.pro
  prolog check -v examples/*.pro`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		result, err := frontend.AnalyzeFile(path)
		if err != nil {
			return err
		}

		if result.OK() {
			fmt.Fprintf(out, "%s: %s\n", fileStyle.Render(path), okStyle.Render("OK"))
			continue
		}

		failed++
		fmt.Fprintf(out, "%s: %s\n", fileStyle.Render(path),
			errorStyle.Render(fmt.Sprintf("%d error(s)", len(result.Diagnostics))))
		for _, line := range strings.Split(strings.TrimRight(report.FormatDiagnostics(result.Diagnostics, cfg.Output.Verbose), "\n"), "\n") {
			fmt.Fprintf(out, "  %s\n", errorStyle.Render(line))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed: %w", failed, len(args), ErrDiagnostics)
	}
	return nil
}

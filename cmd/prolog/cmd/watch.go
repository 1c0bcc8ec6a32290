package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"PrologFront/internal/frontend"
	"PrologFront/internal/report"
	"PrologFront/internal/watch"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch file",
	Short: "Re-analyze a file whenever it changes",
	Long: `Analyzes the file, then again after every save, printing the result
of each run until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	w, err := watch.New(args[0], func(result *frontend.Result, err error) {
		stamp := subtle.Render(time.Now().Format("15:04:05"))
		if err != nil {
			fmt.Fprintf(out, "%s %s\n", stamp, errorStyle.Render(err.Error()))
			return
		}
		if result.OK() {
			fmt.Fprintf(out, "%s %s: %s\n", stamp, fileStyle.Render(result.Name), okStyle.Render("OK"))
			return
		}
		diagnostics := strings.TrimRight(report.FormatDiagnostics(result.Diagnostics, cfg.Output.Verbose), "\n")
		fmt.Fprintf(out, "%s %s:\n%s\n", stamp, fileStyle.Render(result.Name), errorStyle.Render(diagnostics))
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(out, "Watching %s (ctrl+c to stop)\n", args[0])
	return w.Run(ctx)
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"PrologFront/internal/server"

	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	Long: `Serves the analysis API until interrupted:

  GET  /health  liveness
  POST /parse   {"name": "...", "source": "..."} -> tokens, tree, errors, symbols
  POST /tokens  {"name": "...", "source": "..."} -> tokens and category groups`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, localhost:8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := cfg.Address()
	if serveAddr != "" {
		addr = serveAddr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s (ctrl+c to stop)\n", addr)
	return server.Start(ctx, addr, cfg.Server)
}

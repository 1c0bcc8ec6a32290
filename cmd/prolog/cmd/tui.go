package cmd

import (
	"context"
	"fmt"
	"net"

	"PrologFront/helpers"
	"PrologFront/internal/server"
	"PrologFront/internal/tui"

	"github.com/spf13/cobra"
)

var (
	tuiRemote string
	tuiLocal  bool
)

var tuiCmd = &cobra.Command{
	Use:   "tui [file]",
	Short: "Edit and analyze a program in a terminal UI",
	Long: `Opens an editor for the program with a results pane that switches
between the parse tree, the tokens, the token groups and the errors.

Analysis runs against an embedded server unless --remote names one, or
in process with --local.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringVar(&tuiRemote, "remote", "", "address of a running server (default from config)")
	tuiCmd.Flags().BoolVar(&tuiLocal, "local", false, "analyze in process without a server")
}

func runTUI(cmd *cobra.Command, args []string) error {
	name, source := "untitled.pro", ""
	if len(args) == 1 {
		var err error
		if name, source, err = readSource(cmd, args); err != nil {
			return err
		}
	}

	if tuiLocal {
		return tui.Run(tui.Local(), name, source, "in-process")
	}

	remote := cfg.TUI.Remote
	if tuiRemote != "" {
		remote = tuiRemote
	}
	if remote != "" {
		return tui.Run(tui.Remote(remote, nil), name, source, remote)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := cfg.Address()
	if err := startEmbedded(ctx, addr); err != nil {
		return err
	}

	return tui.Run(tui.Remote(addr, nil), name, source, addr)
}

// startEmbedded binds addr and serves on it until ctx is cancelled. A
// healthy /health alone is not enough: another process may own the port.
func startEmbedded(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("embedded server failed: %w", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.Serve(ctx, ln, cfg.Server) }()

	if err := helpers.WaitForServer("http://" + ln.Addr().String()); err != nil {
		select {
		case startErr := <-errCh:
			return fmt.Errorf("embedded server failed: %w", startErr)
		default:
			return err
		}
	}

	select {
	case err := <-errCh:
		return fmt.Errorf("embedded server stopped: %v", err)
	default:
		return nil
	}
}

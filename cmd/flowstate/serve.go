package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/retrowix/flow-state/internal/board"
	"github.com/retrowix/flow-state/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServePairs  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and explore generated
boards remotely.

Each SSH connection gets its own session with the menu, config, and
board screens. Layout history is stored per-server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flowstate/host_key

Examples:
  flowstate serve                           # Listen on :23235 with auto-generated key
  flowstate serve --ssh :2222               # Listen on port 2222
  flowstate serve --host-key ./my_host_key  # Use specific host key
  flowstate serve --db ./layouts.db         # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServePairs, "pairs", board.DefaultPairs, "Default pair count for new sessions (3-5)")
}

func runServe(_ *cobra.Command, _ []string) {
	if !board.ValidPairs(flagServePairs) {
		fmt.Fprintf(os.Stderr, "Error: --pairs must be between %d and %d\n", board.MinPairs, board.MaxPairs)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		DBPath:       flagDBPath,
		DefaultPairs: flagServePairs,
		TickRate:     flagFPS,
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting flowstate SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

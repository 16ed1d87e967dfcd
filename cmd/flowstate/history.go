package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/retrowix/flow-state/internal/platform/tui"
	"github.com/retrowix/flow-state/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse previously generated layouts",
	Long: `Open an interactive table of recorded layouts with a preview of
the selected board.

Examples:
  flowstate history
  flowstate history --db ./layouts.db`,
	Run: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening layouts database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunHistory(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running history viewer: %v\n", err)
		os.Exit(1)
	}
}

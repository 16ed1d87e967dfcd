package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/retrowix/flow-state/internal/config"
	"github.com/retrowix/flow-state/internal/core"
	"github.com/retrowix/flow-state/internal/platform/tui"
	"github.com/retrowix/flow-state/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the interactive scene machine",
	Long: `Start the interactive terminal interface: a menu, a pair-count
config screen, and the generated board.

Controls:
  Up/Down, W/S   - Move between menu buttons
  Enter          - Activate the hovered button
  Mouse          - Hover and click buttons
  3 / 4 / 5      - Pick pair count on the config screen
  Esc            - Back (quits from the menu)
  Q/Ctrl+C       - Quit

Examples:
  flowstate play
  flowstate play --seed 42
  flowstate play --config ./my-flowstate.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Explicit --fps wins over the config file
	tickRate := appCfg.Loop.TickRate
	if cmd.Flags().Changed("fps") {
		tickRate = flagFPS
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	// Open layout storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open layouts database: %v\n", err)
		// Continue without storage - the scenes still work
		store = nil
	}

	runErr := tui.Run(store, cfg, appCfg.Board.DefaultPairs)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running: %v\n", runErr)
		os.Exit(1)
	}
}

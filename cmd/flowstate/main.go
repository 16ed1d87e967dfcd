// flowstate is a terminal prototype for a color-pairing puzzle: a 5x5
// grid of colored endpoint pairs generated with a spread heuristic.
//
// Usage:
//
//	flowstate play           - Run the interactive scene machine
//	flowstate gen            - Generate a layout and print it
//	flowstate history        - Browse previously generated layouts
//	flowstate serve          - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible layouts
//	--db <path>     - Set database path (default: ~/.flowstate/layouts.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flowstate",
	Short: "Flow State - color-pairing puzzle boards in your terminal",
	Long: `Flow State generates 5x5 color-pairing puzzle boards and lets you
explore them through a small menu-driven terminal interface.

Available commands:
  play     - Interactive menu, config, and board screens
  gen      - Generate a layout headlessly and print it
  history  - Browse previously generated layouts
  serve    - Start SSH server for remote play

Examples:
  flowstate play
  flowstate play --seed 42
  flowstate gen --pairs 5
  flowstate history
  flowstate serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flowstate/layouts.db", "Path to layouts database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

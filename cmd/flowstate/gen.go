package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/retrowix/flow-state/internal/board"
	"github.com/retrowix/flow-state/internal/storage"
)

var (
	flagGenPairs  int
	flagGenNoSave bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a layout and print it",
	Long: `Generate a board layout headlessly and print it to stdout.

Each pair is shown as a letter placed on both of its endpoints. The
layout is also recorded in the history database unless --no-save is
given.

Examples:
  flowstate gen
  flowstate gen --pairs 5
  flowstate gen --pairs 4 --seed 42 --no-save`,
	Run: runGen,
}

func init() {
	genCmd.Flags().IntVar(&flagGenPairs, "pairs", board.DefaultPairs, "Number of endpoint pairs (3-5)")
	genCmd.Flags().BoolVar(&flagGenNoSave, "no-save", false, "Do not record the layout in history")
}

func runGen(cmd *cobra.Command, args []string) {
	if !board.ValidPairs(flagGenPairs) {
		fmt.Fprintf(os.Stderr, "Error: --pairs must be between %d and %d\n", board.MinPairs, board.MaxPairs)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	pairs := board.Generate(rng, flagGenPairs, board.GridN)

	fmt.Printf("Layout: %d pairs, %dx%d grid, spread %d (seed %d)\n",
		len(pairs), board.GridN, board.GridN, board.Score(pairs), seed)
	fmt.Println()
	printGrid(pairs)

	if flagGenNoSave {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open layouts database: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveLayout(pairs, board.GridN); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record layout: %v\n", err)
	}
}

// printGrid writes the layout as a letter-labelled grid.
func printGrid(pairs []board.EndpointPair) {
	labels := make(map[board.Cell]rune)
	for i, p := range pairs {
		labels[p.A] = rune('A' + i)
		labels[p.B] = rune('A' + i)
	}

	for r := 0; r < board.GridN; r++ {
		fmt.Print("  ")
		for c := 0; c < board.GridN; c++ {
			if label, ok := labels[board.Cell{Row: r, Col: c}]; ok {
				fmt.Printf("%c ", label)
			} else {
				fmt.Print(". ")
			}
		}
		fmt.Println()
	}
	fmt.Println()
}

package board

import "math/rand"

// trials is the fixed sampling budget for one generation.
const trials = 1000

// Generate places numPairs endpoint pairs on an n×n grid, biased toward
// spatial spread. It runs a fixed number of random trials; each trial
// shuffles every grid cell, takes the first 2*numPairs as a sample without
// replacement, and pairs them by consecutive slots. The trial with the
// highest total Manhattan distance wins; ties keep the first-seen maximum.
//
// The result is a heuristic: there is no guarantee the pairing is a
// solvable flow puzzle, only that all cells are distinct and reasonably
// spread out. The caller must ensure 2*numPairs <= n*n.
func Generate(rng *rand.Rand, numPairs, n int) []EndpointPair {
	var best []EndpointPair
	bestScore := -1

	for t := 0; t < trials; t++ {
		cells := shuffledCells(rng, n)

		pairs := make([]EndpointPair, numPairs)
		for i := 0; i < numPairs; i++ {
			pairs[i] = EndpointPair{A: cells[2*i], B: cells[2*i+1]}
		}

		if s := Score(pairs); s > bestScore {
			bestScore = s
			best = pairs
		}
	}

	return best
}

// shuffledCells returns all n×n cells in random order.
// Full shuffle plus prefix is how the sampling stays uniform without
// replacement.
func shuffledCells(rng *rand.Rand, n int) []Cell {
	cells := make([]Cell, 0, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cells = append(cells, Cell{Row: r, Col: c})
		}
	}
	rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	return cells
}

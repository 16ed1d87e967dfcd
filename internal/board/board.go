// Package board provides the grid domain model for the flow prototype:
// cells, endpoint pairs, and the spread-maximizing placement generator.
// It contains no external dependencies so the logic stays pure and testable.
package board

import (
	"fmt"
	"strings"
)

// GridN is the fixed grid size for the whole process lifetime.
const GridN = 5

// Pair count bounds selectable in the config scene.
const (
	MinPairs = 3
	MaxPairs = 5
)

// DefaultPairs is the pair count before the user touches the config scene.
const DefaultPairs = 3

// Cell is a (row, column) grid coordinate, 0-indexed.
type Cell struct {
	Row, Col int
}

// Manhattan returns the Manhattan distance between two cells.
func Manhattan(a, b Cell) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// EndpointPair is two distinct cells sharing one palette color.
// The color is assigned by pair index, not stored on the pair.
type EndpointPair struct {
	A, B Cell
}

// Score sums the Manhattan distance within each pair.
// Higher scores mean endpoints are spread further apart.
func Score(pairs []EndpointPair) int {
	total := 0
	for _, p := range pairs {
		total += Manhattan(p.A, p.B)
	}
	return total
}

// ValidPairs reports whether n is a selectable pair count.
func ValidPairs(n int) bool {
	return n >= MinPairs && n <= MaxPairs
}

// Encode serializes endpoint pairs as "r,c-r,c;r,c-r,c;...".
// Used by the storage layer; Decode reverses it.
func Encode(pairs []EndpointPair) string {
	var sb strings.Builder
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte(';')
		}
		fmt.Fprintf(&sb, "%d,%d-%d,%d", p.A.Row, p.A.Col, p.B.Row, p.B.Col)
	}
	return sb.String()
}

// Decode parses the Encode format back into endpoint pairs.
func Decode(s string) ([]EndpointPair, error) {
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ";")
	pairs := make([]EndpointPair, 0, len(parts))
	for _, part := range parts {
		var p EndpointPair
		n, err := fmt.Sscanf(part, "%d,%d-%d,%d", &p.A.Row, &p.A.Col, &p.B.Row, &p.B.Col)
		if err != nil || n != 4 {
			return nil, fmt.Errorf("board: malformed pair %q", part)
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Package config provides YAML-based application configuration loading
// for the flow prototype.
package config

import (
	"fmt"

	"github.com/retrowix/flow-state/internal/board"
)

// AppConfig contains all user-tunable settings.
type AppConfig struct {
	Board BoardConfig `yaml:"board"`
	Loop  LoopConfig  `yaml:"loop"`
}

// BoardConfig defines board parameters.
type BoardConfig struct {
	// DefaultPairs is the pair count before the user opens the config
	// scene. Must be 3, 4, or 5.
	DefaultPairs int `yaml:"default_pairs"`
}

// LoopConfig defines frame loop parameters.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // Frames per second, default 60
}

// Validate checks that the configuration satisfies the board invariants.
func (c AppConfig) Validate() error {
	if !board.ValidPairs(c.Board.DefaultPairs) {
		return fmt.Errorf("config: default_pairs must be between %d and %d, got %d",
			board.MinPairs, board.MaxPairs, c.Board.DefaultPairs)
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Loop.TickRate)
	}
	return nil
}

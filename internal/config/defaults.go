package config

import (
	_ "embed"
)

//go:embed defaults/flowstate.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used as the
// last fallback when the embedded YAML cannot be parsed.
func DefaultConfig() AppConfig {
	return AppConfig{
		Board: BoardConfig{
			DefaultPairs: 3,
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
	}
}

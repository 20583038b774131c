package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Window: WindowConfig{
			Width:     1200,
			Height:    800,
			BlockSize: 16,
		},
		Terminal: TerminalConfig{
			BlockSize: 1,
			TickRate:  60,
		},
		Simulation: SimulationConfig{
			Backlog: "carry",
			Seed:    0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}

// Package config provides YAML-based configuration loading for the snake
// platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SnakeConfig contains all configuration for the snake game and its hosts.
type SnakeConfig struct {
	Window     WindowConfig     `yaml:"window"`
	Terminal   TerminalConfig   `yaml:"terminal"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// WindowConfig is the pixel geometry used by headless runs.
type WindowConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	BlockSize int `yaml:"block_size"` // pixels per grid cell
}

// TerminalConfig controls the terminal front-end.
type TerminalConfig struct {
	BlockSize int `yaml:"block_size"` // characters per grid cell
	TickRate  int `yaml:"tick_rate"`  // frames per second of the host loop
}

// SimulationConfig controls the fixed-timestep driver.
type SimulationConfig struct {
	Backlog string `yaml:"backlog"` // see snake.ParseBacklog
	Seed    int64  `yaml:"seed"`    // 0 = time based
}

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks that every size is positive and the backlog policy is known.
func (c SnakeConfig) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"window.width", c.Window.Width},
		{"window.height", c.Window.Height},
		{"window.block_size", c.Window.BlockSize},
		{"terminal.block_size", c.Terminal.BlockSize},
		{"terminal.tick_rate", c.Terminal.TickRate},
	}
	for _, chk := range checks {
		if chk.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, chk.name, chk.value)
		}
	}

	if _, err := snake.ParseBacklog(c.Simulation.Backlog); err != nil {
		return fmt.Errorf("%w: simulation.backlog: %w", ErrInvalidConfig, err)
	}
	return nil
}

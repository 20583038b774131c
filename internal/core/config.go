package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in display units (characters for the TUI)
	ScreenH   int   // Screen height in display units
	BlockSize int   // Display units per grid cell, shared by board and renderer
	TickRate  int   // Host frames per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		BlockSize: 1,
		TickRate:  60,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives in the current round
	Length   int  // Current body length
	GameOver bool // Whether the game has ended and waits for a restart
	Paused   bool // Whether the game is paused
}

// RoundResult describes a round that ended in a loss.
// The game resets itself afterwards; the platform only records it.
type RoundResult struct {
	Score  int
	Length int
	Cause  string
	Ticks  uint64
}

// StepResult is returned by Game.Step() after each host frame.
type StepResult struct {
	State  GameState
	Ticks  int           // Simulation ticks performed during the frame
	Rounds []RoundResult // Rounds finished during the frame
}

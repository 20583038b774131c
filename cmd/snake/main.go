// snake is a fixed-timestep snake game for the terminal.
//
// Usage:
//
//	snake list              - List available games
//	snake play              - Play in the terminal
//	snake simulate          - Run a headless autopilot game
//	snake serve             - Start SSH server for remote play
//	snake scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>       - Set host frame rate (default: from config, 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.snake/scores.db)
//	--config <path>    - Use a specific config YAML
//	--backlog <policy> - carry, drop or drain
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagBacklog string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "snake",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a fixed-timestep snake game in your terminal",
	Long: `Snake moves a segmented body around a walled grid. Eating the item
grows the body and scores 10 points; biting yourself costs a life and the
bitten tail; touching the wall or losing the last life ends the round.

Available commands:
  list      - Show all available games
  play      - Play in the terminal
  simulate  - Run a headless game driven by the autopilot
  serve     - Start SSH server for remote play
  scores    - View high scores

Examples:
  snake play
  snake play --backlog drain
  snake simulate --frames 3600 --seed 7
  snake serve --ssh :2222
  snake scores --tui`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Host frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBacklog, "backlog", "", "Backlog policy: carry, drop, drain (empty = use config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// settings is the loaded config with command-line overrides applied.
type settings struct {
	cfg     config.SnakeConfig
	backlog snake.Backlog
}

// loadSettings loads the YAML config and applies the global flags on top.
func loadSettings() (settings, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return settings{}, err
	}

	if flagFPS > 0 {
		cfg.Terminal.TickRate = flagFPS
	}
	if flagSeed != 0 {
		cfg.Simulation.Seed = flagSeed
	}
	if flagBacklog != "" {
		cfg.Simulation.Backlog = flagBacklog
	}

	backlog, err := snake.ParseBacklog(cfg.Simulation.Backlog)
	if err != nil {
		return settings{}, err
	}

	logger.Debug("config loaded",
		"path", flagConfig,
		"tick_rate", cfg.Terminal.TickRate,
		"backlog", backlog,
		"seed", cfg.Simulation.Seed,
	)
	return settings{cfg: cfg, backlog: backlog}, nil
}

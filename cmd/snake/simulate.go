package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagSimFrames     int
	flagSimFrame      time.Duration
	flagSimStallEvery int
	flagSimStall      time.Duration
	flagSimSave       bool
	flagSimVerbose    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless game driven by the autopilot",
	Long: `Run the simulation without a terminal. The board uses the window
geometry from the config (1200x800 pixels in 16 pixel blocks by default)
and the autopilot steers toward the item.

Every frame hands --frame of wall time to the driver. With --stall-every N
every Nth frame takes --stall instead, which shows how the backlog policy
treats time that piles up.

Examples:
  snake simulate
  snake simulate --frames 3600 --seed 7 --verbose
  snake simulate --stall-every 30 --stall 500ms --backlog drain
  snake simulate --save`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimFrames, "frames", 3600, "Number of host frames to run")
	simulateCmd.Flags().DurationVar(&flagSimFrame, "frame", time.Second/60, "Wall time per frame")
	simulateCmd.Flags().IntVar(&flagSimStallEvery, "stall-every", 0, "Make every Nth frame slow (0 = never)")
	simulateCmd.Flags().DurationVar(&flagSimStall, "stall", 250*time.Millisecond, "Wall time of a slow frame")
	simulateCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record finished rounds in the scores database")
	simulateCmd.Flags().BoolVar(&flagSimVerbose, "verbose", false, "Log every finished round")
}

// simOptions describes one headless run.
type simOptions struct {
	Width, Height, BlockSize int
	Frames                   int
	Frame                    time.Duration
	StallEvery               int
	Stall                    time.Duration
	Seed                     int64
	Backlog                  snake.Backlog
}

// simSummary is what a headless run produced.
type simSummary struct {
	Frames int
	Ticks  uint64
	Eaten  int
	Rounds []snake.Round
	Best   int
	Score  int // score of the round still in progress
	Length int
	Lives  int
}

func runSimulate(cmd *cobra.Command, _ []string) {
	s, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSimVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	seed := s.cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := simOptions{
		Width:      s.cfg.Window.Width,
		Height:     s.cfg.Window.Height,
		BlockSize:  s.cfg.Window.BlockSize,
		Frames:     flagSimFrames,
		Frame:      flagSimFrame,
		StallEvery: flagSimStallEvery,
		Stall:      flagSimStall,
		Seed:       seed,
		Backlog:    s.backlog,
	}

	logger.Info("simulation started",
		"grid", fmt.Sprintf("%dx%d", opts.Width/opts.BlockSize, opts.Height/opts.BlockSize),
		"frames", opts.Frames,
		"frame", opts.Frame,
		"backlog", opts.Backlog,
		"seed", opts.Seed,
	)

	sum, err := simulate(opts, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSimSave {
		saveRounds(sum.Rounds)
	}

	logger.Info("simulation finished", "ticks", sum.Ticks, "rounds", len(sum.Rounds), "best", sum.Best)
	printSummary(cmd.OutOrStdout(), sum)
}

// simulate runs the driver headlessly with the autopilot as input.
func simulate(opts simOptions, lg *log.Logger) (simSummary, error) {
	if opts.Frames < 0 {
		return simSummary{}, fmt.Errorf("simulate: negative frame count %d", opts.Frames)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	board, err := snake.NewBoard(opts.Width, opts.Height, opts.BlockSize, rng)
	if err != nil {
		return simSummary{}, fmt.Errorf("simulate: %w", err)
	}
	driver := snake.NewDriver(snake.NewSnake(), board, opts.Backlog)
	var pilot snake.Autopilot

	var sum simSummary
	for frame := 1; frame <= opts.Frames; frame++ {
		s := driver.Snake()
		if d := pilot.Steer(s, board); d != snake.DirNone {
			s.SetDirection(d)
		}

		elapsed := opts.Frame
		if opts.StallEvery > 0 && frame%opts.StallEvery == 0 {
			elapsed = opts.Stall
		}

		res := driver.Advance(elapsed)
		sum.Eaten += res.Ate
		for _, r := range res.Rounds {
			lg.Debug("round finished",
				"frame", frame,
				"score", r.Score,
				"length", r.Length,
				"cause", r.Cause,
				"ticks", r.Ticks,
			)
			sum.Best = max(sum.Best, r.Score)
		}
		sum.Rounds = append(sum.Rounds, res.Rounds...)
		sum.Frames = frame
	}

	s := driver.Snake()
	sum.Ticks = driver.TotalTicks()
	sum.Score = s.Score()
	sum.Length = s.Len()
	sum.Lives = s.Lives()
	sum.Best = max(sum.Best, sum.Score)
	return sum, nil
}

// saveRounds records scoring rounds, logging instead of failing.
func saveRounds(rounds []snake.Round) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return
	}
	defer store.Close()

	saved := 0
	for _, r := range rounds {
		if r.Score <= 0 {
			continue
		}
		_, err := store.SaveRound(snake.GameID, core.RoundResult{
			Score:  r.Score,
			Length: r.Length,
			Cause:  r.Cause.String(),
			Ticks:  r.Ticks,
		})
		if err != nil {
			logger.Warn("could not save round", "error", err)
			return
		}
		saved++
	}
	logger.Info("rounds saved", "count", saved, "db", flagDBPath)
}

func printSummary(w io.Writer, sum simSummary) {
	fmt.Fprintf(w, "Frames:  %d\n", sum.Frames)
	fmt.Fprintf(w, "Ticks:   %d\n", sum.Ticks)
	fmt.Fprintf(w, "Eaten:   %d\n", sum.Eaten)
	fmt.Fprintf(w, "Rounds:  %d finished\n", len(sum.Rounds))
	for i, r := range sum.Rounds {
		fmt.Fprintf(w, "  #%-3d score %-5d length %-4d lost to %s\n", i+1, r.Score, r.Length, r.Cause)
	}
	fmt.Fprintf(w, "Current: score %d, length %d, lives %d\n", sum.Score, sum.Length, sum.Lives)
	fmt.Fprintf(w, "Best:    %d\n", sum.Best)
}

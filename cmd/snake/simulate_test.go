package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func testOptions() simOptions {
	return simOptions{
		Width:     1200,
		Height:    800,
		BlockSize: 16,
		Frames:    600,
		Frame:     time.Second / 60,
		Seed:      7,
		Backlog:   snake.BacklogCarry,
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	a, err := simulate(testOptions(), quietLogger())
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	b, err := simulate(testOptions(), quietLogger())
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}

	if a.Ticks != b.Ticks || a.Eaten != b.Eaten || a.Score != b.Score || a.Length != b.Length {
		t.Errorf("runs diverged:\n%+v\n%+v", a, b)
	}
}

func TestSimulateTickCount(t *testing.T) {
	// 600 frames of 1/60 s at 15 ticks per second is 150 ticks.
	sum, err := simulate(testOptions(), quietLogger())
	if err != nil {
		t.Fatalf("simulate() failed: %v", err)
	}
	if sum.Frames != 600 {
		t.Errorf("Frames = %d, want 600", sum.Frames)
	}
	if sum.Ticks < 149 || sum.Ticks > 150 {
		t.Errorf("Ticks = %d, want about 150", sum.Ticks)
	}
	if sum.Eaten == 0 {
		t.Error("autopilot ate nothing in 150 ticks on an open board")
	}
}

func TestSimulateBacklogPolicies(t *testing.T) {
	// Every 10th frame stalls for a full second, i.e. 15 timesteps.
	run := func(b snake.Backlog) uint64 {
		opts := testOptions()
		opts.Frames = 100
		opts.StallEvery = 10
		opts.Stall = time.Second
		opts.Backlog = b
		sum, err := simulate(opts, quietLogger())
		if err != nil {
			t.Fatalf("simulate(%s) failed: %v", b, err)
		}
		return sum.Ticks
	}

	drain, carry, drop := run(snake.BacklogDrain), run(snake.BacklogCarry), run(snake.BacklogDrop)
	if !(drain > carry && carry > drop) {
		t.Errorf("ticks drain=%d carry=%d drop=%d, want drain > carry > drop", drain, carry, drop)
	}
}

func TestSimulateRejectsBadGeometry(t *testing.T) {
	opts := testOptions()
	opts.BlockSize = 0
	if _, err := simulate(opts, quietLogger()); !errors.Is(err, snake.ErrInvalidBlockSize) {
		t.Errorf("simulate() = %v, want ErrInvalidBlockSize", err)
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, simSummary{
		Frames: 10,
		Ticks:  3,
		Rounds: []snake.Round{{Score: 20, Length: 5, Cause: snake.CauseWall}},
		Best:   20,
		Length: 3,
		Lives:  3,
	})

	out := buf.String()
	for _, want := range []string{"Ticks:   3", "lost to wall", "Best:    20"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

package snake

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const step = time.Second / InitialSpeed

func newTestDriver(t *testing.T, backlog Backlog) *Driver {
	t.Helper()
	b := newTestBoard(t, 20, 20, 1, 42)
	b.item = core.Pos(15, 15) // off every path used below
	return NewDriver(NewSnake(), b, backlog)
}

func TestDriverTimestep(t *testing.T) {
	d := newTestDriver(t, BacklogCarry)
	if d.Timestep() != step {
		t.Errorf("Timestep() = %v, expected %v", d.Timestep(), step)
	}
}

func TestDriverWaitsForFullTimestep(t *testing.T) {
	d := newTestDriver(t, BacklogCarry)
	d.Snake().SetDirection(DirDown)

	res := d.Advance(step - time.Nanosecond)
	if res.Ticks != 0 {
		t.Fatalf("ticked %d times before a full timestep", res.Ticks)
	}

	res = d.Advance(time.Nanosecond)
	if res.Ticks != 1 {
		t.Fatalf("expected exactly one tick, got %d", res.Ticks)
	}

	want := body([2]int{5, 8}, [2]int{5, 7}, [2]int{5, 6})
	if !equalBody(d.Snake().Segments(), want) {
		t.Errorf("Segments() = %v, expected %v", d.Snake().Segments(), want)
	}
	if d.Pending() != 0 {
		t.Errorf("Pending() = %v, expected 0", d.Pending())
	}
}

func TestDriverBacklogPolicies(t *testing.T) {
	tests := []struct {
		backlog     Backlog
		firstTicks  int
		pending     time.Duration
		secondTicks int
	}{
		{BacklogCarry, 1, 2*step + time.Millisecond, 1},
		{BacklogDrop, 1, time.Millisecond, 0},
		{BacklogDrain, 3, time.Millisecond, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.backlog), func(t *testing.T) {
			d := newTestDriver(t, tc.backlog)
			d.Snake().SetDirection(DirDown)

			res := d.Advance(3*step + time.Millisecond)
			if res.Ticks != tc.firstTicks {
				t.Errorf("first frame ticks = %d, expected %d", res.Ticks, tc.firstTicks)
			}
			if d.Pending() != tc.pending {
				t.Errorf("Pending() = %v, expected %v", d.Pending(), tc.pending)
			}

			res = d.Advance(0)
			if res.Ticks != tc.secondTicks {
				t.Errorf("second frame ticks = %d, expected %d", res.Ticks, tc.secondTicks)
			}
		})
	}
}

func TestDriverIdleSnakeStillUpdatesBoard(t *testing.T) {
	d := newTestDriver(t, BacklogCarry)
	d.Board().item = d.Snake().Head()

	res := d.Advance(step)

	if res.Ticks != 1 || res.Ate != 1 {
		t.Errorf("expected one tick with one item eaten, got %+v", res)
	}
	if d.Snake().Score() != 10 {
		t.Errorf("Score() = %d, expected 10", d.Snake().Score())
	}
}

func TestDriverResetsOnWall(t *testing.T) {
	d := newTestDriver(t, BacklogDrain)
	d.Snake().SetDirection(DirLeft)
	d.Snake().IncreaseScore()

	// Head starts at x=5 and reaches the border column x=0 on the fifth tick.
	res := d.Advance(5 * step)

	if res.Ticks != 5 {
		t.Fatalf("Ticks = %d, expected 5", res.Ticks)
	}
	if len(res.Rounds) != 1 {
		t.Fatalf("expected one finished round, got %d", len(res.Rounds))
	}
	round := res.Rounds[0]
	if round.Cause != CauseWall || round.Score != 10 || round.Length != 3 || round.Ticks != 5 {
		t.Errorf("unexpected round %+v", round)
	}

	s := d.Snake()
	if s.Lost() || s.Score() != 0 || s.Lives() != 3 || s.Direction() != DirNone {
		t.Error("snake should be back in its starting state")
	}
	if s.Head() != core.Pos(5, 7) {
		t.Errorf("Head() = %v, expected (5,7)", s.Head())
	}
}

func TestDriverResetsWhenLivesRunOut(t *testing.T) {
	d := newTestDriver(t, BacklogCarry)
	s := d.Snake()
	s.lives = 1
	s.body = body([2]int{5, 5}, [2]int{6, 5}, [2]int{6, 6}, [2]int{5, 6}, [2]int{4, 6}, [2]int{3, 6})
	s.SetDirection(DirDown)

	res := d.Advance(step)

	if len(res.Rounds) != 1 {
		t.Fatalf("expected one finished round, got %d", len(res.Rounds))
	}
	if res.Rounds[0].Cause != CauseLives {
		t.Errorf("Cause = %v, expected lives", res.Rounds[0].Cause)
	}
	if res.Rounds[0].Length != 4 {
		t.Errorf("Length = %d, expected 4 after the cut", res.Rounds[0].Length)
	}
	if s.Lives() != 3 || s.Len() != 3 {
		t.Error("snake should be reset after running out of lives")
	}
}

func TestDriverRestart(t *testing.T) {
	d := newTestDriver(t, BacklogCarry)
	d.Snake().SetDirection(DirRight)
	d.Advance(step + step/2)

	d.Restart()

	if d.Pending() != 0 {
		t.Errorf("Pending() = %v after restart", d.Pending())
	}
	if d.Snake().Head() != core.Pos(5, 7) {
		t.Errorf("Head() = %v after restart", d.Snake().Head())
	}
	if d.TotalTicks() != 1 {
		t.Errorf("TotalTicks() = %d, restart should keep the session count", d.TotalTicks())
	}
}

func TestParseBacklog(t *testing.T) {
	tests := []struct {
		in   string
		want Backlog
		err  error
	}{
		{"", BacklogCarry, nil},
		{"carry", BacklogCarry, nil},
		{"drop", BacklogDrop, nil},
		{"drain", BacklogDrain, nil},
		{"skip", "", ErrUnknownBacklog},
	}

	for _, tc := range tests {
		got, err := ParseBacklog(tc.in)
		if !errors.Is(err, tc.err) {
			t.Errorf("ParseBacklog(%q) error = %v, expected %v", tc.in, err, tc.err)
		}
		if got != tc.want {
			t.Errorf("ParseBacklog(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

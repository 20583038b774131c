package snake

import (
	"errors"
	"fmt"
	"time"
)

// Backlog decides what happens to accumulated time beyond one timestep.
type Backlog string

const (
	// BacklogCarry runs at most one tick per frame and keeps the remainder,
	// so a slow stretch is caught up one tick per later frame.
	BacklogCarry Backlog = "carry"
	// BacklogDrop runs at most one tick per frame and discards whole
	// timesteps that are still pending afterwards.
	BacklogDrop Backlog = "drop"
	// BacklogDrain runs every tick that is due within the frame.
	BacklogDrain Backlog = "drain"
)

var ErrUnknownBacklog = errors.New("snake: unknown backlog policy")

// ParseBacklog validates a backlog policy name. Empty means BacklogCarry.
func ParseBacklog(name string) (Backlog, error) {
	switch Backlog(name) {
	case "", BacklogCarry:
		return BacklogCarry, nil
	case BacklogDrop:
		return BacklogDrop, nil
	case BacklogDrain:
		return BacklogDrain, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBacklog, name)
	}
}

// LossCause tells why a round ended.
type LossCause int

const (
	CauseNone LossCause = iota
	CauseWall
	CauseLives
)

func (c LossCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseLives:
		return "lives"
	default:
		return "none"
	}
}

// Round summarizes a round that ended in a loss, captured before the reset.
type Round struct {
	Score  int
	Length int
	Cause  LossCause
	Ticks  uint64 // ticks played in the round
}

// FrameResult reports the work done by one Advance call.
type FrameResult struct {
	Ticks  int
	Ate    int
	Rounds []Round
}

// Driver converts elapsed wall time into discrete ticks and applies the
// reset-on-loss policy. It owns both the snake and the board.
type Driver struct {
	snake   *Snake
	board   *Board
	backlog Backlog

	accumulated time.Duration
	roundTicks  uint64
	totalTicks  uint64
}

// NewDriver wires a snake and a board together.
func NewDriver(s *Snake, b *Board, backlog Backlog) *Driver {
	if backlog == "" {
		backlog = BacklogCarry
	}
	return &Driver{
		snake:   s,
		board:   b,
		backlog: backlog,
	}
}

// Timestep is the duration of one tick at the snake's current speed.
func (d *Driver) Timestep() time.Duration {
	return time.Second / time.Duration(d.snake.Speed())
}

// Advance accumulates elapsed time and runs the ticks that are due.
func (d *Driver) Advance(elapsed time.Duration) FrameResult {
	var res FrameResult
	if elapsed > 0 {
		d.accumulated += elapsed
	}

	for {
		step := d.Timestep()
		if d.accumulated < step {
			break
		}
		d.accumulated -= step
		d.step(&res)

		if d.backlog != BacklogDrain {
			if d.backlog == BacklogDrop {
				d.accumulated %= d.Timestep()
			}
			break
		}
	}

	return res
}

// step performs exactly one tick followed by the board update.
func (d *Driver) step(res *FrameResult) {
	d.snake.Tick()
	upd := d.board.Update(d.snake)

	d.roundTicks++
	d.totalTicks++
	res.Ticks++
	if upd.Ate {
		res.Ate++
	}

	if !d.snake.Lost() {
		return
	}

	cause := CauseLives
	if upd.HitWall {
		cause = CauseWall
	}
	res.Rounds = append(res.Rounds, Round{
		Score:  d.snake.Score(),
		Length: d.snake.Len(),
		Cause:  cause,
		Ticks:  d.roundTicks,
	})
	d.snake.Reset()
	d.roundTicks = 0
}

// Restart abandons the current round without recording it.
func (d *Driver) Restart() {
	d.snake.Reset()
	d.accumulated = 0
	d.roundTicks = 0
}

func (d *Driver) Snake() *Snake { return d.snake }
func (d *Driver) Board() *Board { return d.board }
func (d *Driver) Backlog() Backlog { return d.backlog }
func (d *Driver) TotalTicks() uint64 { return d.totalTicks }
func (d *Driver) Pending() time.Duration { return d.accumulated }

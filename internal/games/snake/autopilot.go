package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Autopilot produces input frames that steer toward the item while avoiding
// the border ring, reversals and the snake's own body. It stands in for the
// keyboard in headless runs.
type Autopilot struct{}

var autopilotOrder = []Direction{DirUp, DirRight, DirDown, DirLeft}

// Input returns the frame the autopilot would send for the game's current state.
// An empty frame is returned when the game cannot be steered.
func (a Autopilot) Input(g *Game) core.InputFrame {
	frame := core.NewInputFrame()
	if g.driver == nil || g.paused {
		return frame
	}
	if d := a.Steer(g.driver.Snake(), g.driver.Board()); d != DirNone {
		frame.Set(directionAction(d))
	}
	return frame
}

// Steer picks the next heading for s on b. It never returns a reversal and
// returns DirNone when every neighbouring cell is blocked.
func (Autopilot) Steer(s *Snake, b *Board) Direction {
	head := s.Head()
	item := b.Item()
	interior := b.Interior()

	occupied := make(map[core.Position]bool, s.Len())
	for _, seg := range s.Segments()[1:] {
		occupied[seg] = true
	}

	safe := func(d Direction) bool {
		if d == s.Direction().Opposite() {
			return false
		}
		dx, dy := d.Delta()
		next := head.Add(dx, dy)
		return interior.ContainsPos(next) && !occupied[next]
	}

	// Prefer the axis with the larger distance to the item.
	var preferred []Direction
	dx, dy := item.X-head.X, item.Y-head.Y
	horizontal, vertical := DirNone, DirNone
	switch {
	case dx > 0:
		horizontal = DirRight
	case dx < 0:
		horizontal = DirLeft
	}
	switch {
	case dy > 0:
		vertical = DirDown
	case dy < 0:
		vertical = DirUp
	}
	if dx*dx >= dy*dy {
		preferred = append(preferred, horizontal, vertical)
	} else {
		preferred = append(preferred, vertical, horizontal)
	}
	preferred = append(preferred, s.Direction())
	preferred = append(preferred, autopilotOrder...)

	for _, d := range preferred {
		if d != DirNone && safe(d) {
			return d
		}
	}
	return DirNone
}

func directionAction(d Direction) core.Action {
	switch d {
	case DirUp:
		return core.ActionUp
	case DirDown:
		return core.ActionDown
	case DirLeft:
		return core.ActionLeft
	case DirRight:
		return core.ActionRight
	default:
		return core.ActionNone
	}
}

package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Direction represents the snake's heading. DirNone means the snake is idle.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the one-cell step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirNone:
		return 0, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading. DirNone has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirNone:
		return DirNone
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Segment is one cell of the body. Index 0 of the body is the head.
type Segment = core.Position

// Starting state restored by Reset.
const (
	InitialSpeed = 15 // ticks per second
	InitialLives = 3
	ScorePerItem = 10

	// Bodies shorter than this cannot cut themselves.
	MinCollisionLength = 5
)

// HeadSentinel is reported by Head when the body is empty.
var HeadSentinel = core.Pos(1, 1)

func initialBody() []Segment {
	return []Segment{core.Pos(5, 7), core.Pos(5, 6), core.Pos(5, 5)}
}

// Snake is the player-controlled body together with its round counters.
type Snake struct {
	body      []Segment
	direction Direction
	speed     int
	lives     int
	score     int
	lost      bool
}

// NewSnake creates a snake in its starting state.
func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Reset restores the starting body and counters. Score and lives are not kept.
func (s *Snake) Reset() {
	s.body = initialBody()
	s.direction = DirNone
	s.speed = InitialSpeed
	s.lives = InitialLives
	s.score = 0
	s.lost = false
}

// SetDirection changes the heading. Reversal filtering belongs to the caller.
func (s *Snake) SetDirection(d Direction) {
	s.direction = d
}

// Tick advances the snake by one simulation step.
func (s *Snake) Tick() {
	if len(s.body) == 0 || s.direction == DirNone {
		return
	}
	s.move()
	s.collision()
}

// move shifts every segment into the place of the one ahead of it, tail first,
// then steps the head.
func (s *Snake) move() {
	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	dx, dy := s.direction.Delta()
	s.body[0] = s.body[0].Add(dx, dy)
}

// collision cuts the body at the first segment the head landed on.
func (s *Snake) collision() {
	if len(s.body) < MinCollisionLength {
		return
	}
	head := s.body[0]
	for i := 1; i < len(s.body); i++ {
		if s.body[i] == head {
			s.Cut(len(s.body) - i)
			return
		}
	}
}

// Cut removes segments from the tail and costs one life.
// At least one segment always remains; negative counts remove nothing.
func (s *Snake) Cut(segments int) {
	keep := len(s.body) - core.Clamp(segments, 0, max(len(s.body)-1, 0))
	s.body = s.body[:keep]

	s.lives--
	if s.lives <= 0 {
		s.lives = 0
		s.Lose()
	}
}

// Extend appends one segment beyond the tail.
func (s *Snake) Extend() {
	if len(s.body) == 0 {
		return
	}
	tail := s.body[len(s.body)-1]

	if len(s.body) > 1 {
		bone := s.body[len(s.body)-2]
		switch {
		case tail.X == bone.X:
			if tail.Y > bone.Y {
				s.body = append(s.body, tail.Add(0, 1))
			} else {
				s.body = append(s.body, tail.Add(0, -1))
			}
		case tail.Y == bone.Y:
			if tail.X > bone.X {
				s.body = append(s.body, tail.Add(1, 0))
			} else {
				s.body = append(s.body, tail.Add(-1, 0))
			}
		}
		return
	}

	// Single segment: grow opposite to the heading.
	if s.direction == DirNone {
		return
	}
	dx, dy := s.direction.Opposite().Delta()
	s.body = append(s.body, tail.Add(dx, dy))
}

// IncreaseScore adds the reward for one consumed item.
func (s *Snake) IncreaseScore() {
	s.score += ScorePerItem
}

// Lose marks the round as lost.
func (s *Snake) Lose() {
	s.lost = true
}

// Head returns the head position, or HeadSentinel for an empty body.
func (s *Snake) Head() core.Position {
	if len(s.body) == 0 {
		return HeadSentinel
	}
	return s.body[0]
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, len(s.body))
	copy(out, s.body)
	return out
}

func (s *Snake) Len() int { return len(s.body) }
func (s *Snake) Direction() Direction { return s.direction }
func (s *Snake) Speed() int { return s.speed }
func (s *Snake) Lives() int { return s.lives }
func (s *Snake) Score() int { return s.score }
func (s *Snake) Lost() bool { return s.lost }

package snake

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Frames   uint64
	Ticks    uint64
	Score    int
	Best     int
	Lives    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	ItemX    int
	ItemY    int
	GridW    int
	GridH    int
	Backlog  Backlog
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frames:  g.frames,
		Best:    g.best,
		Backlog: g.backlog,
		State:   StatePlaying,
	}

	switch {
	case g.tooSmall:
		snap.State = StatePausedSmall
		return snap
	case g.paused:
		snap.State = StatePaused
	}
	if g.driver == nil {
		return snap
	}

	s := g.driver.Snake()
	b := g.driver.Board()
	head := s.Head()
	item := b.Item()

	snap.Ticks = g.driver.TotalTicks()
	snap.Score = s.Score()
	snap.Lives = s.Lives()
	snap.SnakeLen = s.Len()
	snap.HeadX, snap.HeadY = head.X, head.Y
	snap.Dir = s.Direction()
	snap.ItemX, snap.ItemY = item.X, item.Y
	snap.GridW, snap.GridH = b.GridSize()

	return snap
}

package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

const (
	// GameID is the registry and score-storage identifier.
	GameID = "snake"

	hudHeight = 2 // Top HUD lines

	// The starting body sits at (5,5)..(5,7); the grid must keep it inside the border.
	MinGridW = 7
	MinGridH = 9
)

// Package-level defaults applied to games created through the registry.
var defaultBacklog = BacklogCarry

// SetBacklog sets the backlog policy used by games created after this call.
func SetBacklog(b Backlog) {
	defaultBacklog = b
}

// Game adapts the snake simulation to the platform: it is the input
// collaborator (direction keys, reversal suppression, pause, restart)
// and the presentation collaborator (HUD, board, snake).
type Game struct {
	rng     *rand.Rand
	driver  *Driver
	backlog Backlog

	screenW   int
	screenH   int
	blockSize int

	frames    uint64
	best      int
	lastRound *Round

	paused   bool
	tooSmall bool
}

// New creates a snake game using the package default backlog policy.
func New() *Game {
	return &Game{backlog: defaultBacklog}
}

// NewWithBacklog creates a snake game with an explicit backlog policy.
func NewWithBacklog(b Backlog) *Game {
	return &Game{backlog: b}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset builds a new board and snake for the given screen.
// The board area is the screen below the HUD, divided into BlockSize cells.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.blockSize = cfg.BlockSize
	if g.blockSize <= 0 {
		g.blockSize = 1
	}
	g.frames = 0
	g.lastRound = nil
	g.paused = false
	g.driver = nil

	board, err := NewBoard(g.screenW, g.screenH-hudHeight, g.blockSize, g.rng)
	if err != nil {
		g.tooSmall = true
		return
	}
	if w, h := board.GridSize(); w < MinGridW || h < MinGridH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.driver = NewDriver(NewSnake(), board, g.backlog)
}

// Step handles one frame of input and advances the simulation by elapsed.
func (g *Game) Step(input core.InputFrame, elapsed time.Duration) core.StepResult {
	g.frames++

	if g.tooSmall || g.driver == nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) {
		g.driver.Restart()
		g.paused = false
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	frame := g.driver.Advance(elapsed)
	res := core.StepResult{Ticks: frame.Ticks}
	for _, r := range frame.Rounds {
		round := r
		g.lastRound = &round
		g.best = max(g.best, r.Score)
		res.Rounds = append(res.Rounds, core.RoundResult{
			Score:  r.Score,
			Length: r.Length,
			Cause:  r.Cause.String(),
			Ticks:  r.Ticks,
		})
	}
	g.best = max(g.best, g.driver.Snake().Score())
	res.State = g.State()

	return res
}

// processInput sets at most one new heading per frame, refusing reversals.
func (g *Game) processInput(input core.InputFrame) {
	s := g.driver.Snake()

	var want Direction
	switch {
	case input.Has(core.ActionUp):
		want = DirUp
	case input.Has(core.ActionDown):
		want = DirDown
	case input.Has(core.ActionLeft):
		want = DirLeft
	case input.Has(core.ActionRight):
		want = DirRight
	default:
		return
	}

	if want == s.Direction().Opposite() {
		return
	}
	s.SetDirection(want)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d cells", MinGridW, MinGridH))
		return
	}
	if g.driver == nil {
		return
	}

	board := g.driver.Board()
	for _, r := range board.Bounds() {
		dst.DrawRect(g.toScreen(r), '█', core.ColorDarkRed)
	}

	item := core.NewRect(board.Item().X, board.Item().Y, 1, 1).Scale(g.blockSize)
	dst.DrawRect(g.toScreen(item), '●', core.ColorRed)

	g.renderSnake(dst)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// toScreen shifts a board-space rectangle below the HUD.
func (g *Game) toScreen(r core.Rect) core.Rect {
	r.Y += hudHeight
	return r
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := " Snake"
	if g.driver != nil {
		s := g.driver.Snake()
		hud = fmt.Sprintf(" Snake | Score: %d  Lives: %d  Length: %d  Best: %d",
			s.Score(), s.Lives(), s.Len(), g.best)
		if g.lastRound != nil {
			hud += fmt.Sprintf("  Last: %d (%s)", g.lastRound.Score, g.lastRound.Cause)
		}
	}
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderSnake draws the body tail first so the head stays on top.
func (g *Game) renderSnake(dst *core.Screen) {
	segments := g.driver.Snake().Segments()
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		r := g.toScreen(core.NewRect(seg.X, seg.Y, 1, 1).Scale(g.blockSize))
		if i == 0 {
			dst.DrawRect(r, '@', core.ColorBrightYellow)
		} else {
			dst.DrawRect(r, 'o', core.ColorGreen)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.driver == nil {
		return core.GameState{Paused: g.paused}
	}
	s := g.driver.Snake()
	return core.GameState{
		Score:  s.Score(),
		Lives:  s.Lives(),
		Length: s.Len(),
		Paused: g.paused,
	}
}

// Best returns the best score seen since the game was created.
func (g *Game) Best() int {
	return g.best
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	if g.driver == nil {
		b.WriteString(fmt.Sprintf("Frames: %d, too small: %v\n", g.frames, g.tooSmall))
		return b.String()
	}
	s := g.driver.Snake()
	item := g.driver.Board().Item()
	b.WriteString(fmt.Sprintf("Frames: %d, Ticks: %d, Score: %d, Lives: %d\n",
		g.frames, g.driver.TotalTicks(), s.Score(), s.Lives()))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", s.Len(), s.Direction()))
	b.WriteString(fmt.Sprintf("Head: (%d, %d), Item: (%d, %d)\n", s.Head().X, s.Head().Y, item.X, item.Y))
	b.WriteString(fmt.Sprintf("Paused: %v, Backlog: %s\n", g.paused, g.driver.Backlog()))
	return b.String()
}

package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// MinGridSize is the smallest grid that still has an interior cell.
const MinGridSize = 3

var (
	ErrInvalidBlockSize = errors.New("snake: block size must be positive")
	ErrGridTooSmall     = errors.New("snake: grid too small")
)

// Border indexes into Board.Bounds.
const (
	BorderLeft = iota
	BorderTop
	BorderRight
	BorderBottom
)

// UpdateResult reports what Board.Update did to the snake.
type UpdateResult struct {
	Ate     bool // Head was on the item; the snake grew and scored
	HitWall bool // Head was on or past the border ring
}

// Board owns the grid geometry and the item position.
// It never keeps a reference to the snake.
type Board struct {
	width, height int // window size in display units
	blockSize     int
	gridW, gridH  int
	item          core.Position
	bounds        [4]core.Rect
	rng           *rand.Rand
}

// NewBoard creates a board for a window of width x height display units
// divided into blockSize cells, and places the first item.
func NewBoard(width, height, blockSize int, rng *rand.Rand) (*Board, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}
	gridW, gridH := width/blockSize, height/blockSize
	if gridW < MinGridSize || gridH < MinGridSize {
		return nil, fmt.Errorf("%w: %dx%d cells (need at least %dx%d)",
			ErrGridTooSmall, gridW, gridH, MinGridSize, MinGridSize)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	b := &Board{
		width:     width,
		height:    height,
		blockSize: blockSize,
		gridW:     gridW,
		gridH:     gridH,
		rng:       rng,
	}
	b.RespawnApple()

	// Border strips cover the outer ring of cells, one block thick. Display
	// units past the last whole cell are not part of the grid.
	spanW, spanH := gridW*blockSize, gridH*blockSize
	b.bounds[BorderLeft] = core.NewRect(0, 0, blockSize, spanH)
	b.bounds[BorderTop] = core.NewRect(0, 0, spanW, blockSize)
	b.bounds[BorderRight] = core.NewRect((gridW-1)*blockSize, 0, blockSize, spanH)
	b.bounds[BorderBottom] = core.NewRect(0, (gridH-1)*blockSize, spanW, blockSize)

	return b, nil
}

// RespawnApple moves the item to a random interior cell.
func (b *Board) RespawnApple() {
	b.item = core.Pos(
		b.rng.Intn(b.gridW-2)+1,
		b.rng.Intn(b.gridH-2)+1,
	)
}

// Update applies item consumption and wall contact for the snake's current head.
// Both checks always run, so eating at the wall both grows the snake and loses the round.
func (b *Board) Update(s *Snake) UpdateResult {
	var res UpdateResult

	if s.Head() == b.item {
		s.Extend()
		s.IncreaseScore()
		b.RespawnApple()
		res.Ate = true
	}

	if !b.Interior().ContainsPos(s.Head()) {
		s.Lose()
		res.HitWall = true
	}

	return res
}

// Interior is the playable region in grid cells, excluding the border ring.
func (b *Board) Interior() core.Rect {
	return core.NewRect(1, 1, b.gridW-2, b.gridH-2)
}

// Item returns the current item cell.
func (b *Board) Item() core.Position {
	return b.item
}

// GridSize returns the grid dimensions in cells.
func (b *Board) GridSize() (w, h int) {
	return b.gridW, b.gridH
}

// BlockSize returns display units per cell.
func (b *Board) BlockSize() int {
	return b.blockSize
}

// Bounds returns the four border strips in display units, for presentation only.
func (b *Board) Bounds() [4]core.Rect {
	return b.bounds
}

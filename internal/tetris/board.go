package tetris

import (
	"errors"
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tetra-arcade/internal/core"
)

// ErrInvalidBoard is returned for non-positive board dimensions.
var ErrInvalidBoard = errors.New("tetris: board dimensions must be positive")

// Cell is a settled block: a locked piece cell with its color.
type Cell struct {
	Pos   core.Pos
	Color core.Color
}

// Board holds the fixed playfield size and the settled cells, indexed by
// position. Positions are unique because only lock and line-clear write to
// the index, and both preserve that.
type Board struct {
	width  int
	height int
	cells  *intmap.Map[int64, Cell]
}

// NewBoard creates an empty board.
func NewBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidBoard
	}
	return &Board{
		width:  width,
		height: height,
		cells:  intmap.New[int64, Cell](width * height),
	}, nil
}

// cellKey packs a position into one integer key.
func cellKey(p core.Pos) int64 {
	return int64(p.Y)<<32 | int64(uint32(p.X))
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Len returns the number of settled cells.
func (b *Board) Len() int {
	return b.cells.Len()
}

// At returns the settled cell at p, if any.
func (b *Board) At(p core.Pos) (Cell, bool) {
	return b.cells.Get(cellKey(p))
}

// Occupied reports whether a settled cell sits at p.
func (b *Board) Occupied(p core.Pos) bool {
	_, ok := b.cells.Get(cellKey(p))
	return ok
}

// Place stores a settled cell, replacing whatever was at its position.
func (b *Board) Place(c Cell) {
	b.cells.Put(cellKey(c.Pos), c)
}

// RowCount returns how many settled cells have the given y.
func (b *Board) RowCount(y int) int {
	n := 0
	b.cells.ForEach(func(_ int64, c Cell) bool {
		if c.Pos.Y == y {
			n++
		}
		return true
	})
	return n
}

// Cells returns all settled cells ordered by row, then column.
func (b *Board) Cells() []Cell {
	out := make([]Cell, 0, b.cells.Len())
	b.cells.ForEach(func(_ int64, c Cell) bool {
		out = append(out, c)
		return true
	})
	slices.SortFunc(out, func(a, c Cell) int {
		if a.Pos.Y != c.Pos.Y {
			return a.Pos.Y - c.Pos.Y
		}
		return a.Pos.X - c.Pos.X
	})
	return out
}

// Clear removes every settled cell.
func (b *Board) Clear() {
	b.cells.Clear()
}

// Contains reports whether p lies on the visible board.
func (b *Board) Contains(p core.Pos) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

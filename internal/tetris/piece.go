package tetris

import (
	"fmt"

	"github.com/vovakirdan/tetra-arcade/internal/core"
)

// Orientation is a quantized rotation stored as clockwise quarter turns,
// so only 0°, 90°, 180° and 270° are representable.
type Orientation uint8

const (
	Rot0 Orientation = iota
	Rot90
	Rot180
	Rot270
)

// Degrees returns the orientation angle.
func (o Orientation) Degrees() int {
	return int(o%4) * 90
}

func (o Orientation) String() string {
	return fmt.Sprintf("%d°", o.Degrees())
}

// Rotate returns o turned clockwise by degrees, normalized into [0, 360).
// Negative values turn counter-clockwise. Anything that is not a multiple
// of 90 is a programming error and panics.
func (o Orientation) Rotate(degrees int) Orientation {
	if degrees%90 != 0 {
		panic(fmt.Sprintf("tetris: rotation by %d degrees is not a quarter turn", degrees))
	}
	q := (int(o%4) + degrees/90) % 4
	if q < 0 {
		q += 4
	}
	return Orientation(q)
}

// Inverse returns the orientation that undoes o.
func (o Orientation) Inverse() Orientation {
	return Orientation((4 - int(o%4)) % 4)
}

// Apply rotates a shape offset:
//
//	0°:   (dx, dy)
//	90°:  (-dy, dx)
//	180°: (-dx, -dy)
//	270°: (dy, -dx)
func (o Orientation) Apply(off core.Pos) core.Pos {
	switch o % 4 {
	case Rot90:
		return core.P(-off.Y, off.X)
	case Rot180:
		return core.P(-off.X, -off.Y)
	case Rot270:
		return core.P(off.Y, -off.X)
	default:
		return off
	}
}

// Piece is the active, player-controlled shape instance.
// Pieces are values; Moved and Rotated return new placements.
type Piece struct {
	Shape       Shape
	Anchor      core.Pos
	Orientation Orientation
	Color       core.Color
}

// Cells returns the absolute board cells of the piece.
func (p Piece) Cells() []core.Pos {
	cells := make([]core.Pos, len(p.Shape.Offsets))
	for i, off := range p.Shape.Offsets {
		cells[i] = p.Orientation.Apply(off).Add(p.Anchor)
	}
	return cells
}

// Moved returns the piece translated by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Anchor = p.Anchor.Add(core.P(dx, dy))
	return p
}

// Rotated returns the piece turned clockwise by degrees (a multiple of 90).
func (p Piece) Rotated(degrees int) Piece {
	p.Orientation = p.Orientation.Rotate(degrees)
	return p
}

// Empty reports whether the piece has no cells (the reset placeholder).
func (p Piece) Empty() bool {
	return len(p.Shape.Offsets) == 0
}

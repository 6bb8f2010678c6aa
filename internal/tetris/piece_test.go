package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tetra-arcade/internal/core"
)

func TestOrientationRotate(t *testing.T) {
	tests := []struct {
		from    Orientation
		degrees int
		want    Orientation
	}{
		{Rot0, 90, Rot90},
		{Rot0, 270, Rot270},
		{Rot270, 90, Rot0},
		{Rot90, 180, Rot270},
		{Rot0, -90, Rot270},
		{Rot90, 360, Rot90},
		{Rot180, -450, Rot90},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.Rotate(tt.degrees), "%v rotated by %d", tt.from, tt.degrees)
	}
}

func TestOrientationRotatePanicsOnPartialTurn(t *testing.T) {
	assert.Panics(t, func() { Rot0.Rotate(45) })
}

func TestOrientationInverse(t *testing.T) {
	for o := Rot0; o <= Rot270; o++ {
		assert.Equal(t, Rot0, o.Rotate(o.Inverse().Degrees()))
	}
}

func TestOrientationApply(t *testing.T) {
	off := core.P(2, -1)
	assert.Equal(t, core.P(2, -1), Rot0.Apply(off))
	assert.Equal(t, core.P(1, 2), Rot90.Apply(off))
	assert.Equal(t, core.P(-2, 1), Rot180.Apply(off))
	assert.Equal(t, core.P(-1, -2), Rot270.Apply(off))
}

func TestRotationHasPeriodFour(t *testing.T) {
	for _, shape := range PlaygroundShapes() {
		for o := Rot0; o <= Rot270; o++ {
			p := Piece{Shape: shape, Anchor: core.P(4, 7), Orientation: o}
			turned := p
			for i := 0; i < 4; i++ {
				turned = turned.Rotated(90)
			}
			assert.Equal(t, p.Cells(), turned.Cells(), "%s from %v", shape.Name, o)

			back := p.Rotated(90).Rotated(270)
			assert.Equal(t, p.Cells(), back.Cells(), "%s 90+270 from %v", shape.Name, o)
		}
	}
}

func TestIPieceCells(t *testing.T) {
	p := Piece{Shape: ClassicShapes()[1], Anchor: core.P(4, -1)}
	assert.Equal(t, []core.Pos{core.P(4, -1), core.P(4, -2), core.P(4, -3), core.P(4, -4)}, p.Cells())

	p = p.Rotated(90)
	assert.Equal(t, []core.Pos{core.P(4, -1), core.P(5, -1), core.P(6, -1), core.P(7, -1)}, p.Cells())
}

func TestPieceValueSemantics(t *testing.T) {
	p := Piece{Shape: ClassicShapes()[0], Anchor: core.P(1, 1)}
	moved := p.Moved(2, 3)
	assert.Equal(t, core.P(1, 1), p.Anchor)
	assert.Equal(t, core.P(3, 4), moved.Anchor)

	assert.True(t, Piece{}.Empty())
	assert.Empty(t, Piece{}.Cells())
	assert.False(t, p.Empty())
}

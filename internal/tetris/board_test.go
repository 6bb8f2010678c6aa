package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetra-arcade/internal/core"
)

func TestNewBoardRejectsBadSize(t *testing.T) {
	for _, size := range [][2]int{{0, 20}, {10, 0}, {-1, 5}} {
		_, err := NewBoard(size[0], size[1])
		assert.ErrorIs(t, err, ErrInvalidBoard)
	}
}

func TestBoardPlaceAndQuery(t *testing.T) {
	b, err := NewBoard(10, 20)
	require.NoError(t, err)

	b.Place(Cell{Pos: core.P(3, 5), Color: core.ColorBlue})
	b.Place(Cell{Pos: core.P(0, 5), Color: core.ColorGreen})
	b.Place(Cell{Pos: core.P(1, 2), Color: core.ColorRed})
	b.Place(Cell{Pos: core.P(3, 5), Color: core.ColorYellow})

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, 2, b.RowCount(5))
	assert.True(t, b.Occupied(core.P(1, 2)))
	assert.False(t, b.Occupied(core.P(2, 1)))

	c, ok := b.At(core.P(3, 5))
	require.True(t, ok)
	assert.Equal(t, core.ColorYellow, c.Color)

	cells := b.Cells()
	require.Len(t, cells, 3)
	assert.Equal(t, core.P(1, 2), cells[0].Pos)
	assert.Equal(t, core.P(0, 5), cells[1].Pos)
	assert.Equal(t, core.P(3, 5), cells[2].Pos)

	b.Clear()
	assert.Zero(t, b.Len())
}

func TestCellKeyDistinguishesSigns(t *testing.T) {
	assert.NotEqual(t, cellKey(core.P(-1, 0)), cellKey(core.P(0, -1)))
	assert.NotEqual(t, cellKey(core.P(1, 0)), cellKey(core.P(0, 1)))
}

func TestCollides(t *testing.T) {
	b, err := NewBoard(10, 20)
	require.NoError(t, err)
	b.Place(Cell{Pos: core.P(5, 10)})

	vertical := Piece{Shape: ClassicShapes()[1]}
	tests := []struct {
		name   string
		anchor core.Pos
		want   bool
	}{
		{"above the board", core.P(4, -1), false},
		{"fully hidden", core.P(4, -10), false},
		{"inside", core.P(4, 10), false},
		{"bottom row", core.P(0, 19), false},
		{"left wall", core.P(-1, 5), true},
		{"right wall", core.P(10, 5), true},
		{"left wall above board", core.P(-1, -2), true},
		{"floor", core.P(4, 20), true},
		{"settled overlap", core.P(5, 12), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := vertical
			p.Anchor = tt.anchor
			assert.Equal(t, tt.want, Collides(p, b))
		})
	}
	assert.Equal(t, 1, b.Len(), "collision check must not mutate the board")
}

func TestClearLinesSingleRow(t *testing.T) {
	b, err := NewBoard(10, 20)
	require.NoError(t, err)
	fillRow(b, 5)
	b.Place(Cell{Pos: core.P(3, 4), Color: core.ColorBlue})
	b.Place(Cell{Pos: core.P(7, 6), Color: core.ColorGreen})

	assert.Equal(t, 1, ClearLines(b))
	assert.Equal(t, 2, b.Len())

	c, ok := b.At(core.P(3, 5))
	require.True(t, ok, "cell above the cleared row drops by one")
	assert.Equal(t, core.ColorBlue, c.Color)
	assert.True(t, b.Occupied(core.P(7, 6)), "cell below the cleared row stays put")
	assert.Zero(t, b.RowCount(4))
}

func TestClearLinesMultipleRows(t *testing.T) {
	b, err := NewBoard(4, 6)
	require.NoError(t, err)
	fillRow(b, 3)
	fillRow(b, 5)
	fillRow(b, 4, 0)
	b.Place(Cell{Pos: core.P(2, 2)})

	assert.Equal(t, 2, ClearLines(b))
	assert.Equal(t, 3, b.RowCount(5), "partial row sinks into the bottom")
	assert.True(t, b.Occupied(core.P(2, 4)))
	assert.Equal(t, 4, b.Len())
}

func TestClearLinesIsIdempotent(t *testing.T) {
	b, err := NewBoard(10, 20)
	require.NoError(t, err)
	fillRow(b, 19)
	fillRow(b, 18, 2)
	fillRow(b, 17)
	b.Place(Cell{Pos: core.P(6, 12)})

	first := ClearLines(b)
	assert.Equal(t, 2, first)
	before := b.Cells()

	assert.Zero(t, ClearLines(b))
	assert.Equal(t, before, b.Cells())
}

func TestClearLinesNoFullRows(t *testing.T) {
	b, err := NewBoard(10, 20)
	require.NoError(t, err)
	fillRow(b, 19, 9)
	before := b.Cells()

	assert.Zero(t, ClearLines(b))
	assert.Equal(t, before, b.Cells())
}

package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetra-arcade/internal/core"
)

func TestNewSessionSpawns(t *testing.T) {
	s, rng := newTestSession(t)

	assert.Equal(t, 2, rng.calls, "spawn draws one shape and one color")
	assert.Equal(t, PhaseSpawned, s.Phase())
	assert.Zero(t, s.Board().Len())

	p := s.Active()
	assert.Equal(t, "I", p.Shape.Name)
	assert.Equal(t, core.P(4, -1), p.Anchor)
	assert.Equal(t, Rot0, p.Orientation)
	assert.Equal(t, core.ColorBlue, p.Color)
	assert.Equal(t, Stats{Game: 1}, s.Stats())
}

func TestNewSessionErrors(t *testing.T) {
	_, err := NewSession(DefaultOptions(), nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	cat := MustCatalog(ClassicShapes(), DefaultPalette(), &seqRand{})
	_, err = NewSession(Options{Width: 0, Height: 20}, cat)
	assert.ErrorIs(t, err, ErrInvalidBoard)
}

func TestNewSessionRejectsBadSpawn(t *testing.T) {
	tests := []struct {
		name  string
		spawn core.Pos
	}{
		{"below floor", core.P(0, 25)},
		{"on floor row for I", core.P(4, 20)},
		{"S sticks out left", core.P(0, -1)},
		{"O sticks out right", core.P(9, -1)},
		{"past right wall", core.P(10, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Spawn = tt.spawn
			cat := MustCatalog(ClassicShapes(), DefaultPalette(), &seqRand{})
			_, err := NewSession(opts, cat)
			assert.ErrorIs(t, err, ErrInvalidSpawn)
			assert.ErrorIs(t, CheckSpawn(opts, ClassicShapes()), ErrInvalidSpawn)
		})
	}

	opts := DefaultOptions()
	opts.Spawn = core.P(0, 19)
	assert.NoError(t, CheckSpawn(opts, LineShapes()), "I fits in the first column")
	assert.NoError(t, CheckSpawn(DefaultOptions(), PlaygroundShapes()))
}

func TestLockOffBoardCellEndsGame(t *testing.T) {
	s, _ := newTestSession(t)
	s.active = Piece{Shape: ClassicShapes()[0], Anchor: core.P(9, 19), Color: core.ColorRed}

	res := s.lock()
	assert.True(t, res.GameOver, "a cell at x=10 is off the board")
	assert.Zero(t, s.Board().Len(), "reset leaves nothing settled")
	assert.Equal(t, 2, s.Stats().Game)
}

func TestTickFallsAndLocksOnFloor(t *testing.T) {
	s, rng := newTestSession(t)

	for i := 0; i < 20; i++ {
		res := s.Tick()
		require.True(t, res.Moved, "tick %d", i)
		require.False(t, res.Locked)
	}
	assert.Equal(t, core.P(4, 19), s.Active().Anchor)
	assert.Equal(t, PhaseFalling, s.Phase())

	res := s.Tick()
	assert.True(t, res.Locked)
	assert.False(t, res.Moved)
	assert.False(t, res.GameOver)
	assert.Zero(t, res.Cleared)

	for y := 16; y <= 19; y++ {
		c, ok := s.Board().At(core.P(4, y))
		require.True(t, ok, "row %d", y)
		assert.Equal(t, core.ColorBlue, c.Color)
	}
	assert.Equal(t, 4, rng.calls)
	assert.Equal(t, core.P(4, -1), s.Active().Anchor)
	assert.Equal(t, Stats{Score: PointsPerPiece, Pieces: 1, Game: 1}, s.Stats())

	require.Len(t, res.Events, 2)
	assert.Equal(t, EventLocked, res.Events[0].Kind)
	assert.Equal(t, EventSpawned, res.Events[1].Kind)
}

func TestLockClearsCompletedRow(t *testing.T) {
	s, _ := newTestSession(t)
	fillRow(s.Board(), 19, 4)

	var res Result
	for !res.Locked {
		res = s.Tick()
	}

	assert.Equal(t, 1, res.Cleared)
	assert.Equal(t, Stats{Score: PointsPerLine + PointsPerPiece, Lines: 1, Pieces: 1, Game: 1}, s.Stats())
	assert.Equal(t, 3, s.Board().Len())
	for y := 17; y <= 19; y++ {
		assert.True(t, s.Board().Occupied(core.P(4, y)), "row %d", y)
	}

	kinds := make([]EventKind, len(res.Events))
	for i, e := range res.Events {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []EventKind{EventLocked, EventLinesCleared, EventSpawned}, kinds)
}

func TestLockAboveTopEndsGame(t *testing.T) {
	s, rng := newTestSession(t)
	s.Board().Place(Cell{Pos: core.P(4, 0), Color: core.ColorRed})
	s.Board().Place(Cell{Pos: core.P(0, 19), Color: core.ColorRed})

	res := s.Tick()

	assert.True(t, res.Locked)
	assert.True(t, res.GameOver)
	assert.Zero(t, s.Board().Len(), "board is reset after game over")
	assert.False(t, s.GameOver(), "flag is cleared by the reset")
	assert.Equal(t, 4, rng.calls)
	assert.Equal(t, core.P(4, -1), s.Active().Anchor)
	assert.Equal(t, PhaseSpawned, s.Phase())
	assert.Equal(t, Stats{Game: 2}, s.Stats())

	require.Len(t, res.Events, 3)
	assert.Equal(t, EventLocked, res.Events[0].Kind)
	assert.Equal(t, EventGameOver, res.Events[1].Kind)
	assert.Equal(t, PointsPerPiece, res.Events[1].Score)
	assert.Equal(t, 1, res.Events[1].Game)
	assert.Equal(t, 1, res.Events[1].Pieces)
	assert.Equal(t, EventSpawned, res.Events[2].Kind)
	assert.Equal(t, 2, res.Events[2].Game)
}

func TestMoveBlockedByWall(t *testing.T) {
	s, _ := newTestSession(t)

	for i := 0; i < 4; i++ {
		require.True(t, s.Move(-1).Moved)
	}
	assert.Equal(t, core.P(0, -1), s.Active().Anchor)

	res := s.Move(-1)
	assert.False(t, res.Moved)
	assert.Equal(t, core.P(0, -1), s.Active().Anchor)
}

func TestMoveBlockedBySettledCell(t *testing.T) {
	s, _ := newTestSession(t)
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	s.Board().Place(Cell{Pos: core.P(5, 2)})

	assert.False(t, s.Move(1).Moved)
	assert.True(t, s.Move(-1).Moved)
}

func TestRotateRejectedWhenItWouldCollide(t *testing.T) {
	s, _ := newTestSession(t)
	for i := 0; i < 4; i++ {
		s.Move(1)
	}
	require.Equal(t, core.P(8, -1), s.Active().Anchor)

	res := s.Rotate(90)
	assert.False(t, res.Moved)
	assert.Equal(t, Rot0, s.Active().Orientation)

	assert.True(t, s.Rotate(270).Moved, "counter-clockwise swing stays on the board")
}

func TestIPieceRotationAtSpawn(t *testing.T) {
	s, _ := newTestSession(t)
	assert.Equal(t, []core.Pos{core.P(4, -1), core.P(4, -2), core.P(4, -3), core.P(4, -4)}, s.Active().Cells())

	require.True(t, s.Rotate(90).Moved)
	assert.Equal(t, []core.Pos{core.P(4, -1), core.P(5, -1), core.P(6, -1), core.P(7, -1)}, s.Active().Cells())
}

func TestApplyMapsActions(t *testing.T) {
	tests := []struct {
		action core.Action
		anchor core.Pos
		orient Orientation
		moved  bool
	}{
		{core.ActionLeft, core.P(3, -1), Rot0, true},
		{core.ActionRight, core.P(5, -1), Rot0, true},
		{core.ActionUp, core.P(4, -1), Rot270, true},
		{core.ActionDown, core.P(4, -1), Rot90, true},
		{core.ActionConfirm, core.P(4, -1), Rot0, false},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			s, _ := newTestSession(t)
			res := s.Apply(tt.action)
			assert.Equal(t, tt.moved, res.Moved)
			assert.Equal(t, tt.anchor, s.Active().Anchor)
			assert.Equal(t, tt.orient, s.Active().Orientation)
		})
	}
}

func TestResetStartsNewGame(t *testing.T) {
	s, rng := newTestSession(t)
	fillRow(s.Board(), 19, 0)
	s.Tick()

	res := s.Reset()
	assert.Zero(t, s.Board().Len())
	assert.Equal(t, 4, rng.calls)
	assert.Equal(t, 2, s.Stats().Game)
	require.Len(t, res.Events, 1)
	assert.Equal(t, EventSpawned, res.Events[0].Kind)
}

func TestGridLayers(t *testing.T) {
	s, _ := newTestSession(t)
	for i := 0; i < 3; i++ {
		s.Tick()
	}
	s.Board().Place(Cell{Pos: core.P(0, 19), Color: core.ColorRed})
	// Force an overlap to check paint order.
	s.Board().Place(Cell{Pos: core.P(4, 1), Color: core.ColorGreen})

	grid := s.Grid()
	require.Len(t, grid, 20)
	for _, row := range grid {
		require.Len(t, row, 10)
	}

	assert.Equal(t, core.ColorGray, grid[10][5])
	assert.Equal(t, core.ColorRed, grid[19][0])
	assert.Equal(t, core.ColorBlue, grid[1][4], "active piece paints over settled cells")
	assert.Equal(t, core.ColorBlue, grid[0][4])
	assert.Equal(t, core.ColorBlue, grid[2][4])
	assert.Equal(t, core.ColorGray, grid[3][4])
}

func TestGridClipsHiddenCells(t *testing.T) {
	s, _ := newTestSession(t)

	grid := s.Grid()
	for y, row := range grid {
		for x, c := range row {
			assert.Equal(t, core.ColorGray, c, "(%d,%d)", x, y)
		}
	}
}

func TestSnapshotAndFormat(t *testing.T) {
	s, _ := newTestSession(t)
	for i := 0; i < 4; i++ {
		s.Tick()
	}
	s.Board().Place(Cell{Pos: core.P(9, 19), Color: core.ColorBrightRed})

	snap := s.Snapshot()
	assert.Equal(t, "I", snap.Shape)
	assert.Equal(t, core.P(4, 3), snap.Anchor)
	assert.Equal(t, 1, snap.Settled)
	assert.Equal(t, PhaseFalling, snap.Phase)

	text := FormatGrid(s.Grid())
	lines := splitLines(text)
	require.Len(t, lines, 20)
	assert.Equal(t, "....B.....", lines[0])
	assert.Equal(t, "....B.....", lines[3])
	assert.Equal(t, "..........", lines[4])
	assert.Equal(t, ".........r", lines[19])
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

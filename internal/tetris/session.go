package tetris

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tetra-arcade/internal/core"
)

// ErrInvalidSpawn is returned when a shape placed at the spawn anchor would
// stick out of the board's columns or below its floor.
var ErrInvalidSpawn = errors.New("tetris: shape does not fit at the spawn anchor")

// Scoring constants.
const (
	PointsPerLine  = 100
	PointsPerPiece = 1
)

// Options configure a Session. Width and Height are fixed for its lifetime.
type Options struct {
	Width      int
	Height     int
	Spawn      core.Pos   // anchor of newly spawned pieces
	Background core.Color // color of empty grid cells
}

// DefaultOptions returns a 10x20 board spawning at (4, -1).
func DefaultOptions() Options {
	return Options{
		Width:      10,
		Height:     20,
		Spawn:      core.P(4, -1),
		Background: core.ColorGray,
	}
}

// Session drives one endless game: gravity ticks, player moves and
// rotations, locking, line clears and automatic reset on game over.
//
// A Session is not safe for concurrent use; callers serialize access
// (see the loop package).
type Session struct {
	opts     Options
	board    *Board
	catalog  *Catalog
	active   Piece
	gameOver bool
	phase    Phase
	stats    Stats
}

// NewSession creates a session with an empty board and a freshly spawned piece.
func NewSession(opts Options, catalog *Catalog) (*Session, error) {
	if catalog == nil {
		return nil, ErrEmptyCatalog
	}
	board, err := NewBoard(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	if err := checkSpawn(board, opts.Spawn, catalog.shapes); err != nil {
		return nil, err
	}

	s := &Session{
		opts:    opts,
		board:   board,
		catalog: catalog,
		stats:   Stats{Game: 1},
	}
	s.spawn()
	return s, nil
}

// CheckSpawn returns ErrInvalidSpawn unless every shape, unrotated at the
// spawn anchor of an empty board, stays inside it. Rows above the board are
// allowed.
func CheckSpawn(opts Options, shapes []Shape) error {
	board, err := NewBoard(opts.Width, opts.Height)
	if err != nil {
		return err
	}
	return checkSpawn(board, opts.Spawn, shapes)
}

// checkSpawn expects an empty board.
func checkSpawn(board *Board, anchor core.Pos, shapes []Shape) error {
	for _, sh := range shapes {
		if Collides(Piece{Shape: sh, Anchor: anchor}, board) {
			return fmt.Errorf("%w: %s at (%d, %d)", ErrInvalidSpawn, sh.Name, anchor.X, anchor.Y)
		}
	}
	return nil
}

// Board returns the settled-cell board. Callers must not mutate it.
func (s *Session) Board() *Board {
	return s.board
}

// Active returns the current piece.
func (s *Session) Active() Piece {
	return s.active
}

// Phase returns the state machine position.
func (s *Session) Phase() Phase {
	return s.phase
}

// GameOver reports whether the last lock ended the game. The flag is cleared
// by the reset that immediately follows, so it is only observed mid-lock.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Stats returns the counters of the current game.
func (s *Session) Stats() Stats {
	return s.stats
}

// Options returns the session options.
func (s *Session) Options() Options {
	return s.opts
}

// try commits candidate as the active piece if it fits, and reports whether
// it did. A rejected candidate leaves the session untouched.
func (s *Session) try(candidate Piece) bool {
	if Collides(candidate, s.board) {
		return false
	}
	s.active = candidate
	s.phase = PhaseFalling
	return true
}

// Tick applies one step of gravity. A piece that cannot fall locks.
func (s *Session) Tick() Result {
	if s.try(s.active.Moved(0, 1)) {
		return Result{Moved: true}
	}
	return s.lock()
}

// Move shifts the active piece horizontally. Blocked moves are dropped.
func (s *Session) Move(dx int) Result {
	return Result{Moved: s.try(s.active.Moved(dx, 0))}
}

// Rotate turns the active piece clockwise by degrees (a multiple of 90;
// negative turns counter-clockwise). A rotation that would collide in place
// is rejected; no alternative offsets are tried.
func (s *Session) Rotate(degrees int) Result {
	return Result{Moved: s.try(s.active.Rotated(degrees))}
}

// Apply maps a directional action onto the session:
// left/right move one column, up rotates 270° and down rotates 90°.
// Other actions are ignored.
func (s *Session) Apply(a core.Action) Result {
	switch a {
	case core.ActionLeft:
		return s.Move(-1)
	case core.ActionRight:
		return s.Move(1)
	case core.ActionUp:
		return s.Rotate(270)
	case core.ActionDown:
		return s.Rotate(90)
	}
	return Result{}
}

// materialize copies the active piece into the board. Cells off the board,
// normally those still above the top edge, are dropped and flag the game as
// over.
func (s *Session) materialize() {
	for _, p := range s.active.Cells() {
		if !s.board.Contains(p) {
			s.gameOver = true
			continue
		}
		s.board.Place(Cell{Pos: p, Color: s.active.Color})
	}
}

// lock settles the active piece, then either resets (game over) or clears
// lines and spawns the next piece.
func (s *Session) lock() Result {
	res := Result{Locked: true}
	s.phase = PhaseLocked
	s.materialize()
	s.stats.Pieces++
	s.stats.Score += PointsPerPiece
	res.Events = append(res.Events, Event{
		Kind:  EventLocked,
		Shape: s.active.Shape.Name,
		Score: s.stats.Score,
		Game:  s.stats.Game,
	})

	if s.gameOver {
		s.phase = PhaseGameOver
		res.GameOver = true
		res.Events = append(res.Events, Event{
			Kind:   EventGameOver,
			Lines:  s.stats.Lines,
			Pieces: s.stats.Pieces,
			Score:  s.stats.Score,
			Game:   s.stats.Game,
		})
		s.newGame()
		res.Events = append(res.Events, s.spawnedEvent())
		return res
	}

	if n := ClearLines(s.board); n > 0 {
		res.Cleared = n
		s.stats.Lines += n
		s.stats.Score += n * PointsPerLine
		res.Events = append(res.Events, Event{
			Kind:  EventLinesCleared,
			Lines: n,
			Score: s.stats.Score,
			Game:  s.stats.Game,
		})
	}

	s.spawn()
	res.Events = append(res.Events, s.spawnedEvent())
	return res
}

// Reset abandons the current game and starts a new one on an empty board.
func (s *Session) Reset() Result {
	s.newGame()
	return Result{Events: []Event{s.spawnedEvent()}}
}

// newGame empties the board, swaps in the empty placeholder piece and spawns.
func (s *Session) newGame() {
	s.board.Clear()
	s.active = Piece{}
	s.gameOver = false
	s.stats = Stats{Game: s.stats.Game + 1}
	s.spawn()
}

// spawn replaces the active piece with a random one at the spawn anchor.
// It draws exactly one shape index and one color index.
func (s *Session) spawn() {
	shape := s.catalog.SpawnShape()
	color := s.catalog.SpawnColor()
	s.active = Piece{
		Shape:       shape,
		Anchor:      s.opts.Spawn,
		Orientation: Rot0,
		Color:       color,
	}
	s.phase = PhaseSpawned
}

func (s *Session) spawnedEvent() Event {
	return Event{
		Kind:  EventSpawned,
		Shape: s.active.Shape.Name,
		Score: s.stats.Score,
		Game:  s.stats.Game,
	}
}

// Grid materializes the color grid, indexed [y][x]: background first, then
// settled cells, then the active piece on top. Cells outside the board are
// clipped.
func (s *Session) Grid() [][]core.Color {
	grid := make([][]core.Color, s.opts.Height)
	for y := range grid {
		row := make([]core.Color, s.opts.Width)
		for x := range row {
			row[x] = s.opts.Background
		}
		grid[y] = row
	}

	for _, c := range s.board.Cells() {
		if s.board.Contains(c.Pos) {
			grid[c.Pos.Y][c.Pos.X] = c.Color
		}
	}
	for _, p := range s.active.Cells() {
		if s.board.Contains(p) {
			grid[p.Y][p.X] = s.active.Color
		}
	}
	return grid
}

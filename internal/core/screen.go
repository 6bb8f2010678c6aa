package core

import (
	"strings"
)

// Cell is one character position on a Screen.
type Cell struct {
	Rune  rune
	Color Color
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Screen is a fixed-size grid of colored runes. Renderers draw frames into
// it and the terminal layer turns it into styled text.
type Screen struct {
	w, h  int
	cells []Cell // row-major, len w*h
}

// NewScreen returns a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{w: max(width, 0), h: max(height, 0)}
	s.cells = make([]Cell, s.w*s.h)
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int { return s.w }

// Height returns the screen height in characters.
func (s *Screen) Height() int { return s.h }

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

// Resize changes the dimensions. The overlapping top-left region survives.
func (s *Screen) Resize(width, height int) {
	if width == s.w && height == s.h {
		return
	}
	next := NewScreen(width, height)
	for y := range min(s.h, next.h) {
		copy(next.cells[y*next.w:y*next.w+min(s.w, next.w)], s.cells[y*s.w:])
	}
	*s = *next
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

// SetCell writes a colored rune. Off-screen writes are dropped.
func (s *Screen) SetCell(x, y int, r rune, c Color) {
	if s.inside(x, y) {
		s.cells[y*s.w+x] = Cell{Rune: r, Color: c}
	}
}

// GetCell reads a cell. Off-screen reads return a blank cell.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inside(x, y) {
		return blankCell
	}
	return s.cells[y*s.w+x]
}

// DrawTextColor writes text left to right from (x, y), clipped to the screen.
func (s *Screen) DrawTextColor(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetCell(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes uncolored text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	s.DrawTextColor((s.w-len([]rune(text)))/2, y, text, ColorDefault)
}

// DrawBox outlines r with single-line box characters.
func (s *Screen) DrawBox(r Rect, c Color) {
	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		s.SetCell(x, r.Y, '─', c)
		s.SetCell(x, bottom, '─', c)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetCell(r.X, y, '│', c)
		s.SetCell(right, y, '│', c)
	}
	s.SetCell(r.X, r.Y, '┌', c)
	s.SetCell(right, r.Y, '┐', c)
	s.SetCell(r.X, bottom, '└', c)
	s.SetCell(right, bottom, '┘', c)
}

// String returns the runes row by row, newline separated, without color.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(len(s.cells) + s.h)
	for i, c := range s.cells {
		if i > 0 && i%s.w == 0 {
			sb.WriteByte('\n')
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

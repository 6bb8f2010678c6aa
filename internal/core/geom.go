// Package core holds the small value types shared by the engine and the
// terminal layer: grid positions, colors, actions and the screen buffer.
// It imports nothing from the UI stack.
package core

// Pos is a grid coordinate. Y grows downward, so row 0 is the top of a
// board and negative rows lie above it.
type Pos struct {
	X, Y int
}

// P is shorthand for Pos{X: x, Y: y}, handy in shape tables.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

// Add returns the component-wise sum.
func (p Pos) Add(o Pos) Pos {
	return Pos{X: p.X + o.X, Y: p.Y + o.Y}
}

// Rect is a screen region: top-left corner plus size.
type Rect struct {
	X, Y, W, H int
}

// NewRect builds a Rect.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rect.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row below the rect.
func (r Rect) Bottom() int { return r.Y + r.H }

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

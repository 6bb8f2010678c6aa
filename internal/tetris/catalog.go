// Package tetris implements the falling-block grid engine: the piece catalog,
// the quantized rotation transform, collision checks against settled cells,
// and the gravity/lock/line-clear session state machine.
//
// The package is pure logic. Time, input and rendering belong to the caller,
// which advances a Session and reads back its color grid.
package tetris

import (
	"errors"
	"slices"

	"github.com/vovakirdan/tetra-arcade/internal/core"
)

// Catalog construction errors. An empty catalog is a configuration mistake
// caught once at startup; the engine never indexes an empty list.
var (
	ErrEmptyCatalog = errors.New("tetris: catalog needs at least one shape and one color")
	ErrEmptyShape   = errors.New("tetris: shape has no cells")
	ErrNoRand       = errors.New("tetris: catalog needs a random source")
)

// Rand is the uniform integer source used to pick shapes and colors.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// Shape is a piece geometry: cell offsets around a local origin.
type Shape struct {
	Name    string
	Offsets []core.Pos
}

// Clone returns a copy that shares no memory with s.
func (s Shape) Clone() Shape {
	return Shape{Name: s.Name, Offsets: slices.Clone(s.Offsets)}
}

// Size returns the number of cells in the shape.
func (s Shape) Size() int {
	return len(s.Offsets)
}

// Catalog is the fixed, ordered set of shapes and colors pieces spawn from.
type Catalog struct {
	shapes []Shape
	colors []core.Color
	rng    Rand
}

// NewCatalog builds a catalog from copies of the given shapes and colors.
func NewCatalog(shapes []Shape, colors []core.Color, rng Rand) (*Catalog, error) {
	if len(shapes) == 0 || len(colors) == 0 {
		return nil, ErrEmptyCatalog
	}
	if rng == nil {
		return nil, ErrNoRand
	}

	c := &Catalog{
		shapes: make([]Shape, len(shapes)),
		colors: slices.Clone(colors),
		rng:    rng,
	}
	for i, s := range shapes {
		if len(s.Offsets) == 0 {
			return nil, ErrEmptyShape
		}
		c.shapes[i] = s.Clone()
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on a misconfigured catalog.
func MustCatalog(shapes []Shape, colors []core.Color, rng Rand) *Catalog {
	c, err := NewCatalog(shapes, colors, rng)
	if err != nil {
		panic(err)
	}
	return c
}

// SpawnShape draws one uniformly random shape. The result is a private copy.
func (c *Catalog) SpawnShape() Shape {
	return c.shapes[c.rng.Intn(len(c.shapes))].Clone()
}

// SpawnColor draws one uniformly random color.
func (c *Catalog) SpawnColor() core.Color {
	return c.colors[c.rng.Intn(len(c.colors))]
}

// Shapes returns copies of the catalog shapes in order.
func (c *Catalog) Shapes() []Shape {
	out := make([]Shape, len(c.shapes))
	for i, s := range c.shapes {
		out[i] = s.Clone()
	}
	return out
}

// Colors returns a copy of the catalog palette in order.
func (c *Catalog) Colors() []core.Color {
	return slices.Clone(c.colors)
}

// ClassicShapes returns the seven standard pieces. Offsets grow upward
// (negative y) from the origin cell so a piece spawned at row -1 enters the
// board from above.
func ClassicShapes() []Shape {
	return []Shape{
		{Name: "O", Offsets: []core.Pos{core.P(0, 0), core.P(1, 0), core.P(0, -1), core.P(1, -1)}},
		{Name: "I", Offsets: []core.Pos{core.P(0, 0), core.P(0, -1), core.P(0, -2), core.P(0, -3)}},
		{Name: "J", Offsets: []core.Pos{core.P(0, 0), core.P(0, -1), core.P(1, 0), core.P(2, 0)}},
		{Name: "L", Offsets: []core.Pos{core.P(0, 0), core.P(1, 0), core.P(2, 0), core.P(2, -1)}},
		{Name: "S", Offsets: []core.Pos{core.P(0, 0), core.P(-1, 0), core.P(0, -1), core.P(1, -1)}},
		{Name: "Z", Offsets: []core.Pos{core.P(0, 0), core.P(1, 0), core.P(0, -1), core.P(-1, -1)}},
		{Name: "T", Offsets: []core.Pos{core.P(0, 0), core.P(-1, 0), core.P(1, 0), core.P(0, -1)}},
	}
}

// PlaygroundShapes returns the classic pieces plus two odd ones: a
// five-cell C and a three-cell i with a gap.
func PlaygroundShapes() []Shape {
	return append(ClassicShapes(),
		Shape{Name: "C", Offsets: []core.Pos{core.P(0, 0), core.P(-1, 0), core.P(-1, -1), core.P(-1, -2), core.P(0, -2)}},
		Shape{Name: "i", Offsets: []core.Pos{core.P(0, 0), core.P(0, -1), core.P(0, -3)}},
	)
}

// LineShapes returns only the I piece.
func LineShapes() []Shape {
	return []Shape{ClassicShapes()[1]}
}

// DefaultPalette returns the five piece colors.
func DefaultPalette() []core.Color {
	return []core.Color{
		core.ColorBlue,
		core.ColorMagenta,
		core.ColorOrange,
		core.ColorYellow,
		core.ColorGreen,
	}
}

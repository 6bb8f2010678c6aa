// Package variants registers the playable piece sets.
// Import it for side effects.
package variants

import (
	"github.com/vovakirdan/tetra-arcade/internal/registry"
	"github.com/vovakirdan/tetra-arcade/internal/tetris"
)

// Mode selects a variant's piece set.
type Mode int

const (
	ModeClassic    Mode = iota // the seven standard pieces
	ModePlayground             // classic plus the C and broken i shapes
	ModeLines                  // straight pieces only
)

// Game is a registered variant.
type Game struct {
	mode Mode
}

// New creates a variant for the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New(ModeClassic)
	})
	registry.Register("tetris_plus", func() registry.Game {
		return New(ModePlayground)
	})
	registry.Register("tetris_easy", func() registry.Game {
		return New(ModeLines)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModePlayground:
		return "tetris_plus"
	case ModeLines:
		return "tetris_easy"
	default:
		return "tetris"
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModePlayground:
		return "Tetris Plus"
	case ModeLines:
		return "Tetris (Lines Only)"
	default:
		return "Tetris"
	}
}

// Shapes returns the piece set for the mode.
func (g *Game) Shapes() []tetris.Shape {
	switch g.mode {
	case ModePlayground:
		return tetris.PlaygroundShapes()
	case ModeLines:
		return tetris.LineShapes()
	default:
		return tetris.ClassicShapes()
	}
}

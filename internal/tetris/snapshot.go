package tetris

import (
	"strings"

	"github.com/vovakirdan/tetra-arcade/internal/core"
)

// Snapshot is a read-only copy of the session for renderers and logs.
type Snapshot struct {
	Width       int
	Height      int
	Phase       Phase
	Stats       Stats
	Shape       string
	Anchor      core.Pos
	Orientation Orientation
	Color       core.Color
	Settled     int
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Width:       s.opts.Width,
		Height:      s.opts.Height,
		Phase:       s.phase,
		Stats:       s.stats,
		Shape:       s.active.Shape.Name,
		Anchor:      s.active.Anchor,
		Orientation: s.active.Orientation,
		Color:       s.active.Color,
		Settled:     s.board.Len(),
	}
}

var glyphs = map[core.Color]byte{
	core.ColorRed:           'R',
	core.ColorGreen:         'G',
	core.ColorYellow:        'Y',
	core.ColorBlue:          'B',
	core.ColorMagenta:       'M',
	core.ColorCyan:          'C',
	core.ColorWhite:         'W',
	core.ColorOrange:        'O',
	core.ColorBrightRed:     'r',
	core.ColorBrightGreen:   'g',
	core.ColorBrightYellow:  'y',
	core.ColorBrightBlue:    'b',
	core.ColorBrightMagenta: 'm',
	core.ColorBrightCyan:    'c',
	core.ColorBrightWhite:   'w',
}

// Glyph returns the single-letter code used for c in text dumps.
// Background-ish colors render as '.'.
func Glyph(c core.Color) byte {
	if g, ok := glyphs[c]; ok {
		return g
	}
	return '.'
}

// FormatGrid renders a color grid as lines of glyphs, one row per line.
func FormatGrid(grid [][]core.Color) string {
	var b strings.Builder
	for y, row := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteByte(Glyph(c))
		}
	}
	return b.String()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetra-arcade/internal/core"
	"github.com/vovakirdan/tetra-arcade/internal/loop"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// Board cell glyphs. Each board cell is two screen columns wide so the
// playfield looks square in a terminal.
const (
	blockGlyph      = '█'
	backgroundGlyph = '·'
	cellWidth       = 2
	panelWidth      = 22
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// boardRect returns the framed playfield rectangle centered on a screen of
// the given size, with room for the side panel. ok is false when the screen
// is too small.
func boardRect(screenW, screenH, cols, rows int) (r core.Rect, ok bool) {
	w := cols*cellWidth + 2
	h := rows + 2
	total := w + 1 + panelWidth
	if screenW < total || screenH < h {
		return core.Rect{}, false
	}
	x := (screenW - total) / 2
	y := (screenH - h) / 2
	return core.NewRect(x, y, w, h), true
}

// HUD holds the side panel text that is not part of the frame.
type HUD struct {
	Title  string
	Player string
	Best   int
	Status string
}

// DrawFrame paints the framed board, the side panel and overlays.
func DrawFrame(s *core.Screen, f loop.Frame, hud HUD) {
	s.Clear()

	rows := len(f.Grid)
	cols := 0
	if rows > 0 {
		cols = len(f.Grid[0])
	}

	box, ok := boardRect(s.Width(), s.Height(), cols, rows)
	if !ok {
		mid := s.Height() / 2
		s.DrawTextCentered(mid-1, "Terminal too small")
		s.DrawTextCentered(mid, fmt.Sprintf("need %dx%d", cols*cellWidth+3+panelWidth, rows+2))
		return
	}

	s.DrawBox(box, core.ColorWhite)
	drawGrid(s, f.Grid, box.X+1, box.Y+1)
	drawPanel(s, f, hud, box.Right()+1, box.Y)

	if f.Paused {
		mid := box.Y + box.H/2
		label := " PAUSED "
		s.DrawTextColor(box.X+(box.W-len(label))/2, mid, label, core.ColorBrightYellow)
	}
}

// drawGrid paints grid[y][x] with its top-left cell at (x0, y0).
func drawGrid(s *core.Screen, grid [][]core.Color, x0, y0 int) {
	for y, row := range grid {
		for x, c := range row {
			glyph := blockGlyph
			if c == core.ColorGray {
				glyph = backgroundGlyph
			}
			for i := range cellWidth {
				r := glyph
				if glyph == backgroundGlyph && i > 0 {
					r = ' '
				}
				s.SetCell(x0+x*cellWidth+i, y0+y, r, c)
			}
		}
	}
}

func drawPanel(s *core.Screen, f loop.Frame, hud HUD, x, y int) {
	stats := f.Snapshot.Stats
	lines := []struct {
		text  string
		color core.Color
	}{
		{hud.Title, core.ColorBrightCyan},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score   %d", stats.Score), core.ColorBrightWhite},
		{fmt.Sprintf("Lines   %d", stats.Lines), core.ColorDefault},
		{fmt.Sprintf("Pieces  %d", stats.Pieces), core.ColorDefault},
		{fmt.Sprintf("Game    #%d", stats.Game), core.ColorDefault},
		{fmt.Sprintf("Best    %d", max(hud.Best, stats.Score)), core.ColorYellow},
		{"", core.ColorDefault},
		{fmt.Sprintf("Level   %d%%", int(f.Level*100+0.5)), core.ColorDefault},
		{fmt.Sprintf("Speed   %dms", f.Interval.Milliseconds()), core.ColorDefault},
		{fmt.Sprintf("Piece   %s", f.Snapshot.Shape), core.ColorDefault},
	}
	if hud.Player != "" {
		lines = append(lines, struct {
			text  string
			color core.Color
		}{"Player  " + hud.Player, core.ColorDefault})
	}

	for i, l := range lines {
		s.DrawTextColor(x+1, y+i, truncate(l.text, panelWidth-1), l.color)
	}
	if hud.Status != "" {
		s.DrawTextColor(x+1, y+len(lines)+1, truncate(hud.Status, panelWidth-1), core.ColorGreen)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

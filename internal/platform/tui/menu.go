package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetra-arcade/internal/core"
	"github.com/vovakirdan/tetra-arcade/internal/registry"
	"github.com/vovakirdan/tetra-arcade/internal/storage"
	"github.com/vovakirdan/tetra-arcade/internal/tetris"
)

// MenuItem is one playable variant in the picker.
type MenuItem struct {
	GameID string
	Title  string
	Shapes []tetris.Shape
	Best   int
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper

	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered variants with their best scores.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	infos := registry.List()
	items := make([]MenuItem, 0, len(infos))
	for _, info := range infos {
		item := MenuItem{GameID: info.ID, Title: info.Title}
		if g, err := registry.Create(info.ID); err == nil {
			item.Shapes = g.Shapes()
		}
		if store != nil {
			if best, err := store.HighScore(info.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)

	case MenuActionDown:
		m.cursor = min(m.cursor+1, max(len(m.items)-1, 0))

	case MenuActionSelect:
		if len(m.items) == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		m.selected = &item
		return m, tea.Quit

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the variant list next to a preview of the highlighted one.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var list strings.Builder
	for i, item := range m.items {
		line := fmt.Sprintf("  %-20s", item.Title)
		if i == m.cursor {
			line = activeTabStyle.Render(fmt.Sprintf("> %-20s", item.Title))
		}
		list.WriteString(line)
		list.WriteString("\n")
	}
	if len(m.items) == 0 {
		list.WriteString(dimStyle.Render("no variants registered"))
	}

	body := panelStyle.Render(strings.TrimRight(list.String(), "\n"))
	if len(m.items) > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", panelStyle.Render(m.details(m.items[m.cursor])))
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")), "T E T R A", m.config.ScreenW))
	b.WriteString("\n\n")
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(centerText(line, m.config.ScreenW))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	controls := "↑/↓: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerStyled(dimStyle, controls, m.config.ScreenW))
	return b.String()
}

// details describes a variant: piece count, best score and its pieces.
func (m MenuModel) details(item MenuItem) string {
	best := "none yet"
	if item.Best > 0 {
		best = fmt.Sprintf("%d", item.Best)
	}

	previews := make([]string, 0, len(item.Shapes))
	for _, s := range item.Shapes {
		previews = append(previews, shapePreview(s))
	}

	return strings.Join([]string{
		boardTitleStyle.Render(item.Title),
		fmt.Sprintf("%d pieces  ·  best %s", len(item.Shapes), best),
		"",
		wrapBlocks(previews, 6),
	}, "\n")
}

// shapePreview draws a shape at rest orientation as block characters.
func shapePreview(s tetris.Shape) string {
	if len(s.Offsets) == 0 {
		return ""
	}
	minX, maxX := s.Offsets[0].X, s.Offsets[0].X
	minY, maxY := s.Offsets[0].Y, s.Offsets[0].Y
	for _, o := range s.Offsets[1:] {
		minX, maxX = min(minX, o.X), max(maxX, o.X)
		minY, maxY = min(minY, o.Y), max(maxY, o.Y)
	}

	w, h := maxX-minX+1, maxY-minY+1
	rows := make([][]rune, h)
	for y := range rows {
		rows[y] = []rune(strings.Repeat("  ", w))
	}
	for _, o := range s.Offsets {
		x, y := (o.X-minX)*cellWidth, o.Y-minY
		rows[y][x], rows[y][x+1] = blockGlyph, blockGlyph
	}

	lines := make([]string, h)
	for y, r := range rows {
		lines[y] = string(r)
	}
	return strings.Join(lines, "\n")
}

// wrapBlocks lays out blocks left to right, perRow at a time, bottom-aligned.
func wrapBlocks(blocks []string, perRow int) string {
	var rows []string
	for start := 0; start < len(blocks); start += perRow {
		end := min(start+perRow, len(blocks))
		row := make([]string, 0, 2*(end-start))
		for _, blk := range blocks[start:end] {
			row = append(row, blk, " ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Bottom, row...))
	}
	return strings.Join(rows, "\n\n")
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// centerStyled renders text with style and centers the result.
func centerStyled(style lipgloss.Style, text string, width int) string {
	return centerText(style.Render(text), width)
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(store, cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}

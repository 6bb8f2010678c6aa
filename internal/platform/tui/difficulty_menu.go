package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tetra-arcade/internal/config"
	"github.com/vovakirdan/tetra-arcade/internal/core"
)

var presetBlurbs = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "slow start, speeds up with lines",
	config.DifficultyNormal: "a little faster from the first piece",
	config.DifficultyHard:   "fast start, ramps quickly",
	config.DifficultyFixed:  "constant speed, no progression",
}

const presetRowFormat = "%-7s %7s %7s  %-36s"

var rowStyle = lipgloss.NewStyle().Padding(0, 1)

// presetRow is one line of the selector with its computed gravity range.
type presetRow struct {
	preset         config.DifficultyPreset
	start, fastest time.Duration
}

// DifficultyModel picks a difficulty preset before a game. Each row shows
// the gravity interval the preset starts at and the fastest it reaches
// under the active config.
type DifficultyModel struct {
	title     string
	rows      []presetRow
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper

	chosen   bool
	quitting bool
	back     bool
}

// NewDifficultyModel creates a selector for game with the cursor on current.
func NewDifficultyModel(title string, game config.TetrisConfig, current config.DifficultyPreset, width, height int) DifficultyModel {
	m := DifficultyModel{
		title:     title,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
	for i, p := range config.Presets() {
		start, fastest := config.PresetSpeeds(game, p)
		m.rows = append(m.rows, presetRow{preset: p, start: start, fastest: fastest})
		if p == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionBack:
			m.back = true
			return m, tea.Quit
		case MenuActionSelect:
			m.chosen = true
			return m, tea.Quit
		case MenuActionUp:
			m.cursor = max(m.cursor-1, 0)
		case MenuActionDown:
			m.cursor = min(m.cursor+1, len(m.rows)-1)
		}
	}
	return m, nil
}

// View renders the preset table.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		centerStyled(boardTitleStyle, strings.ToUpper(m.title), m.width),
		"",
		centerText(rowStyle.Render("  "+dimStyle.Render(fmt.Sprintf(presetRowFormat, "", "start", "fastest", ""))), m.width),
	}
	for i, r := range m.rows {
		line := fmt.Sprintf(presetRowFormat, r.preset, msLabel(r.start), msLabel(r.fastest), presetBlurbs[r.preset])
		if i == m.cursor {
			line = activeTabStyle.Render("> " + line)
		} else {
			line = rowStyle.Render("  " + line)
		}
		lines = append(lines, centerText(line, m.width))
	}
	lines = append(lines, "", centerStyled(dimStyle, "Enter: Select  |  Esc: Back  |  Q: Quit", m.width))
	return strings.Join(lines, "\n")
}

// msLabel prints a gravity interval in whole milliseconds.
func msLabel(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}

// Selected returns the chosen preset and whether a choice was made.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if !m.chosen || len(m.rows) == 0 {
		return "", false
	}
	return m.rows[m.cursor].preset, true
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector runs the selector as its own program. ok is false
// when the player backed out or quit.
func RunDifficultySelector(title string, game config.TetrisConfig, current config.DifficultyPreset, cfg core.RuntimeConfig) (preset config.DifficultyPreset, ok bool, err error) {
	final, err := tea.NewProgram(
		NewDifficultyModel(title, game, current, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	).Run()
	if err != nil {
		return "", false, err
	}
	m, _ := final.(DifficultyModel)
	preset, ok = m.Selected()
	return preset, ok, nil
}

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetra-arcade/internal/config"
	"github.com/vovakirdan/tetra-arcade/internal/core"
	"github.com/vovakirdan/tetra-arcade/internal/registry"
	"github.com/vovakirdan/tetra-arcade/internal/storage"
)

// SessionOptions configures one remote player's session.
type SessionOptions struct {
	Player string
	Game   config.TetrisConfig
	Preset config.DifficultyPreset
	Logger *log.Logger
}

type sessionStage int

const (
	stageMenu sessionStage = iota
	stageDifficulty
	stageGame
	stageScoreboard
)

// SessionModel manages the full arcade session flow:
// menu -> difficulty -> game -> menu, with the scoreboard reachable from the menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	ctx    context.Context
	store  *storage.Store
	config core.RuntimeConfig
	opts   SessionOptions

	stage      sessionStage
	gameID     string
	menu       MenuModel
	difficulty DifficultyModel
	scoreboard ScoreboardModel
	gameModel  *GameModel
	quitting   bool
	err        error
}

// NewSessionModel creates a new session model. Running games stop when
// ctx is cancelled.
func NewSessionModel(ctx context.Context, store *storage.Store, cfg core.RuntimeConfig, opts SessionOptions) SessionModel {
	if opts.Preset == "" {
		opts.Preset = config.DifficultyNormal
	}
	return SessionModel{
		ctx:    ctx,
		store:  store,
		config: cfg,
		opts:   opts,
		stage:  stageMenu,
		menu:   NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.stage {
	case stageDifficulty:
		return m.updateDifficulty(msg)
	case stageGame:
		return m.updateGame(msg)
	case stageScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.stage = stageScoreboard
		m.scoreboard = NewScoreboardModel(m.store, m.opts.Player, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		m.gameID = m.menu.Selected().GameID
		m.stage = stageDifficulty
		title := m.gameID
		if game, err := registry.Create(m.gameID); err == nil {
			title = game.Title()
		}
		m.difficulty = NewDifficultyModel(title, m.opts.Game, m.opts.Preset, m.config.ScreenW, m.config.ScreenH)
		return m, m.difficulty.Init()
	}

	return m, cmd
}

// updateDifficulty handles the preset selector and starts the game.
func (m SessionModel) updateDifficulty(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.difficulty.Update(msg)
	if d, ok := newModel.(DifficultyModel); ok {
		m.difficulty = d
	}

	if m.difficulty.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.difficulty.WantsBack() {
		return m.toMenu()
	}

	preset, ok := m.difficulty.Selected()
	if !ok {
		return m, cmd
	}

	m.opts.Preset = preset
	gameModel, err := NewGameModel(m.ctx, GameSpec{
		GameID: m.gameID,
		Config: m.opts.Game,
		Preset: preset,
		Player: m.opts.Player,
		Logger: m.opts.Logger,
	}, m.store, m.config)
	if err != nil {
		m.err = err
		if m.opts.Logger != nil {
			m.opts.Logger.Error("cannot start game", "game", m.gameID, "error", err)
		}
		return m.toMenu()
	}

	gameModel.embedded = true
	m.gameModel = &gameModel
	m.stage = stageGame
	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	// Check if user quit entirely
	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		return m.toMenu()
	}

	return m, cmd
}

// updateScoreboard handles the scoreboard screen.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scoreboard.IsGoingBack() {
		return m.toMenu()
	}

	return m, cmd
}

// toMenu rebuilds the menu so best scores are current.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.stage = stageMenu
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.stage {
	case stageDifficulty:
		return m.difficulty.View()
	case stageGame:
		return m.gameModel.View()
	case stageScoreboard:
		return m.scoreboard.View()
	default:
		view := m.menu.View()
		if m.err != nil {
			view += "\n" + centerText("error: "+m.err.Error(), m.config.ScreenW)
		}
		return view
	}
}

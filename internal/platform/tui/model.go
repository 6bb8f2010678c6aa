package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetra-arcade/internal/config"
	"github.com/vovakirdan/tetra-arcade/internal/core"
	"github.com/vovakirdan/tetra-arcade/internal/loop"
	"github.com/vovakirdan/tetra-arcade/internal/registry"
	"github.com/vovakirdan/tetra-arcade/internal/storage"
	"github.com/vovakirdan/tetra-arcade/internal/tetris"
)

// GameSpec describes the game to start.
type GameSpec struct {
	GameID string
	Config config.TetrisConfig
	Preset config.DifficultyPreset
	Player string      // SSH username; empty for local play
	Logger *log.Logger // nil discards logs
}

// GameModel is the Bubble Tea model for one running game. The simulation
// runs on a loop goroutine; the model only forwards keys and draws frames.
type GameModel struct {
	gameID string
	title  string
	player string

	loop   *loop.Loop
	frames *loop.FrameChannel
	frame  loop.Frame
	keeper *scoreKeeper
	ctx    context.Context
	cancel context.CancelFunc

	screen *core.Screen
	config core.RuntimeConfig
	keys   GameKeyMap
	help   help.Model
	logger *log.Logger
	status string

	embedded   bool // back returns to a parent model instead of quitting
	quitting   bool
	backToMenu bool
}

// NewGameModel builds the session and loop for spec. The loop starts in
// Init and stops when ctx is cancelled or the player leaves.
func NewGameModel(ctx context.Context, spec GameSpec, store *storage.Store, cfg core.RuntimeConfig) (GameModel, error) {
	game, err := registry.Create(spec.GameID)
	if err != nil {
		return GameModel{}, err
	}

	logger := spec.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tc := spec.Config
	config.ApplyTetrisPreset(&tc, spec.Preset)
	if cfg.TickInterval > 0 {
		tc.Timing.Tick = cfg.TickInterval
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	session, err := registry.NewSession(spec.GameID, tc, cfg.Seed)
	if err != nil {
		return GameModel{}, err
	}

	frames := loop.NewFrameChannel(8)
	keeper := newScoreKeeper(store, spec.GameID, spec.Player, logger)
	l := loop.New(session, loop.Options{
		Interval:   tc.Timing.Tick,
		Difficulty: config.NewDifficultyManager(tc.Difficulty, tc.Timing.MinTick),
		OnFrame:    frames.Publish,
		OnEvent:    keeper.OnEvent,
		Logger:     logger.With("game", spec.GameID),
	})

	ctx, cancel := context.WithCancel(ctx)
	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		gameID: spec.GameID,
		title:  game.Title(),
		player: spec.Player,
		loop:   l,
		frames: frames,
		frame:  loop.Frame{Grid: session.Grid(), Snapshot: session.Snapshot(), Interval: l.Interval()},
		keeper: keeper,
		ctx:    ctx,
		cancel: cancel,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		config: cfg,
		keys:   DefaultGameKeyMap(),
		help:   h,
		logger: logger,
	}, nil
}

// Init starts the game loop and waits for its first frame.
func (m GameModel) Init() tea.Cmd {
	l, ctx := m.loop, m.ctx
	run := func() tea.Msg {
		return loopDoneMsg{loop: l, err: l.Run(ctx)}
	}
	return tea.Batch(run, waitForFrame(m.frames))
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.Source != m.frames {
			return m, nil
		}
		m.frame = msg.Frame
		return m, waitForFrame(m.frames)

	case loopDoneMsg:
		if msg.loop == m.loop && msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.logger.Error("game loop stopped", "game", m.gameID, "error", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.status = m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.stop()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.stop()
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
		return m, nil

	case core.ActionNone:
		return m, nil

	default:
		m.status = ""
		m.loop.Send(action)
	}

	return m, nil
}

// stop ends the loop goroutine and unblocks any pending frame wait.
func (m GameModel) stop() {
	m.cancel()
	m.frames.Close()
}

// saveScreenshot writes the current board as text and returns a status line.
func (m GameModel) saveScreenshot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshot failed"
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return "screenshot failed"
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.gameID, timestamp))
	if err := os.WriteFile(path, []byte(screenshotText(m.title, m.frame)), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return "screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", path)
	return "saved " + filepath.Base(path)
}

// screenshotText renders a frame as plain text with a stats header.
func screenshotText(title string, f loop.Frame) string {
	st := f.Snapshot.Stats
	return fmt.Sprintf("%s  score=%d lines=%d pieces=%d game=%d\n%s\n",
		title, st.Score, st.Lines, st.Pieces, st.Game, tetris.FormatGrid(f.Grid))
}

// View renders the current frame and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.frame, HUD{
		Title:  m.title,
		Player: m.player,
		Best:   m.keeper.Best(),
		Status: m.status,
	})

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the local terminal until the player quits or
// goes back. It reports whether the player asked for the menu.
func Run(spec GameSpec, store *storage.Store, cfg core.RuntimeConfig) (backToMenu bool, err error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model, err := NewGameModel(ctx, spec, store, cfg)
	if err != nil {
		return false, err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(GameModel); ok {
		m.stop()
		select {
		case <-m.loop.Done():
		case <-time.After(time.Second):
		}
		return m.BackToMenu(), nil
	}
	return false, nil
}

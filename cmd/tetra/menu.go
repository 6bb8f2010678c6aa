package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetra-arcade/internal/config"
	"github.com/vovakirdan/tetra-arcade/internal/core"
	"github.com/vovakirdan/tetra-arcade/internal/platform/tui"
	"github.com/vovakirdan/tetra-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a variant picker menu",
	Long: `Pick a variant, pick a difficulty, play, and land back in the picker.
The last difficulty chosen is remembered for the next game.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Scoreboard
  Q            - Quit

Examples:
  tetra menu
  tetra menu --difficulty hard
  tetra menu --db ./scores.db`,
	RunE: runMenu,
}

// arcade is the local menu loop's state between screens.
type arcade struct {
	store  *storage.Store
	logger *log.Logger
	game   config.TetrisConfig
	preset config.DifficultyPreset
	screen core.RuntimeConfig
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}
	if preset == "" {
		preset = config.DifficultyNormal
	}

	store, closeStore := openStore(logger)
	defer closeStore()

	a := &arcade{store: store, logger: logger, game: gameCfg, preset: preset, screen: runtimeConfig()}
	for {
		again, err := a.round()
		if err != nil || !again {
			return err
		}
	}
}

// round shows the menu once and follows the choice. It reports whether the
// menu should be shown again.
func (a *arcade) round() (bool, error) {
	res, err := tui.RunMenu(a.store, a.screen)
	if err != nil {
		return false, err
	}
	a.screen = res.Config

	switch {
	case res.Quit:
		return false, nil
	case res.WantsScoreboard:
		return tui.RunScoreboard(a.store, a.screen.ScreenW, a.screen.ScreenH)
	case res.GameID == "":
		return false, nil
	}
	return a.play(res.GameID)
}

func (a *arcade) play(gameID string) (bool, error) {
	chosen, ok, err := tui.RunDifficultySelector(variantTitle(gameID), a.game, a.preset, a.screen)
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	a.preset = chosen

	screen := a.screen
	if flagSeed == 0 {
		screen.Seed = time.Now().UnixNano()
	}

	back, err := tui.Run(tui.GameSpec{
		GameID: gameID,
		Config: a.game,
		Preset: a.preset,
		Logger: a.logger,
	}, a.store, screen)
	if err != nil {
		a.logger.Error("game failed", "game", gameID, "error", err)
		return true, nil
	}
	return back, nil
}

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetra-arcade/internal/config"
	"github.com/vovakirdan/tetra-arcade/internal/platform/tui"
	"github.com/vovakirdan/tetra-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Left/Right, A/D  - Move
  Up/W             - Rotate counter-clockwise
  Down/S           - Rotate clockwise
  P/Space          - Pause
  R                - Restart
  Ctrl+S           - Screenshot
  Esc              - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest speed, speeds up with lines
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty
  fixed  - No progression, constant speed

Without --difficulty a selector is shown first.

Examples:
  tetra play tetris
  tetra play tetris_plus --difficulty hard
  tetra play tetris --tick 250ms
  tetra play tetris --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	game, err := registry.Create(args[0])
	if errors.Is(err, registry.ErrUnknownGame) {
		return fmt.Errorf("%w (run 'tetra list' to see available variants)", err)
	}
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}
	cfg := runtimeConfig()

	if preset == "" {
		chosen, ok, err := tui.RunDifficultySelector(game.Title(), gameCfg, config.DifficultyNormal, cfg)
		if err != nil || !ok {
			return err
		}
		preset = chosen
	}

	store, closeStore := openStore(logger)
	defer closeStore()

	if _, err := tui.Run(tui.GameSpec{
		GameID: game.ID(),
		Config: gameCfg,
		Preset: preset,
		Logger: logger,
	}, store, cfg); err != nil {
		return fmt.Errorf("running %s: %w", game.ID(), err)
	}
	return nil
}

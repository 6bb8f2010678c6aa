package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:      10,
			Height:     20,
			Background: "gray",
		},
		Spawn: SpawnConfig{
			X: 4,
			Y: -1,
		},
		Timing: TimingConfig{
			Tick:    500 * time.Millisecond,
			MinTick: 100 * time.Millisecond,
		},
		Palette: []string{"blue", "magenta", "orange", "yellow", "green"},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 3.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris", "tetris_plus", "tetris_easy":
		return defaultTetrisYAML
	default:
		return nil
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the tetra arcade.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tetra-arcade/internal/core"
	"github.com/vovakirdan/tetra-arcade/internal/tetris"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Timing     TimingConfig     `yaml:"timing"`
	Palette    []string         `yaml:"palette"`
	Shapes     []ShapeConfig    `yaml:"shapes"` // extra shapes appended to the variant's set
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield.
type BoardConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
}

// SpawnConfig is the anchor new pieces appear at. Negative Y starts above the board.
type SpawnConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TimingConfig defines gravity timing.
type TimingConfig struct {
	Tick    time.Duration `yaml:"tick"`     // base gravity interval
	MinTick time.Duration `yaml:"min_tick"` // floor for difficulty speed-up
}

// ShapeConfig is a named list of [dx, dy] offsets.
type ShapeConfig struct {
	Name  string  `yaml:"name"`
	Cells [][]int `yaml:"cells"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "time", or "none"
	MaxAt int    `yaml:"max_at"` // lines/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // extra gravity speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Validate checks the config for values the engine cannot run with.
func (c TetrisConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	}
	if c.Spawn.X < 0 || c.Spawn.X >= c.Board.Width {
		return fmt.Errorf("%w: spawn x %d outside board", ErrInvalidConfig, c.Spawn.X)
	}
	if c.Timing.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive", ErrInvalidConfig)
	}
	opts, err := c.Options()
	if err != nil {
		return err
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	extra, err := c.ExtraShapes()
	if err != nil {
		return err
	}
	// Every variant draws from the playground set.
	if err := tetris.CheckSpawn(opts, append(tetris.PlaygroundShapes(), extra...)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Options converts the board and spawn sections into engine options.
func (c TetrisConfig) Options() (tetris.Options, error) {
	bg := core.ColorGray
	if c.Board.Background != "" {
		var err error
		if bg, err = core.ParseColor(c.Board.Background); err != nil {
			return tetris.Options{}, fmt.Errorf("%w: background: %w", ErrInvalidConfig, err)
		}
	}
	return tetris.Options{
		Width:      c.Board.Width,
		Height:     c.Board.Height,
		Spawn:      core.P(c.Spawn.X, c.Spawn.Y),
		Background: bg,
	}, nil
}

// Colors resolves the palette. An empty palette means the default one.
func (c TetrisConfig) Colors() ([]core.Color, error) {
	if len(c.Palette) == 0 {
		return tetris.DefaultPalette(), nil
	}
	colors := make([]core.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		col, err := core.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("%w: palette: %w", ErrInvalidConfig, err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// ExtraShapes converts the configured shapes.
func (c TetrisConfig) ExtraShapes() ([]tetris.Shape, error) {
	shapes := make([]tetris.Shape, 0, len(c.Shapes))
	for _, sc := range c.Shapes {
		if len(sc.Cells) == 0 {
			return nil, fmt.Errorf("%w: shape %q has no cells", ErrInvalidConfig, sc.Name)
		}
		offsets := make([]core.Pos, 0, len(sc.Cells))
		for _, cell := range sc.Cells {
			if len(cell) != 2 {
				return nil, fmt.Errorf("%w: shape %q: cell %v is not [dx, dy]", ErrInvalidConfig, sc.Name, cell)
			}
			offsets = append(offsets, core.P(cell[0], cell[1]))
		}
		shapes = append(shapes, tetris.Shape{Name: sc.Name, Offsets: offsets})
	}
	return shapes, nil
}

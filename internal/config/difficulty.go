package config

import (
	"time"
)

// DifficultyManager turns game progress into a gravity interval.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
	minTick      time.Duration
}

// NewDifficultyManager creates a manager. minTick is the fastest gravity
// allowed; zero means unbounded.
func NewDifficultyManager(cfg DifficultyConfig, minTick time.Duration) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: unit(cfg.InitialLevel),
		minTick:      minTick,
	}
}

// SetInitialLevel overrides the starting level, clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = unit(level)
}

// SetEnabled switches progression on or off.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level maps progress to [initial, 1]. Progression "lines" counts cleared
// lines and "time" counts gravity ticks; either reaches 1 at max_at.
func (d *DifficultyManager) Level(lines, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var done int
	switch d.cfg.Progression.Type {
	case "lines":
		done = lines
	case "time":
		done = ticks
	default:
		return d.initialLevel
	}

	progress := unit(float64(done) / float64(max(d.cfg.Progression.MaxAt, 1)))
	return d.initialLevel + progress*(1-d.initialLevel)
}

// Interval divides base by the speed factor for the current level, which
// runs from 1 at level 0 to 1+speed_multiplier at level 1, and never goes
// below minTick.
func (d *DifficultyManager) Interval(base time.Duration, lines, ticks int) time.Duration {
	speed := 1 + d.Level(lines, ticks)*d.cfg.Scaling.SpeedMultiplier
	if speed <= 0 {
		speed = 1
	}
	return max(time.Duration(float64(base)/speed), d.minTick)
}

// PresetSpeeds reports the gravity interval a game under preset starts at
// and the fastest one it can reach.
func PresetSpeeds(cfg TetrisConfig, preset DifficultyPreset) (start, fastest time.Duration) {
	ApplyTetrisPreset(&cfg, preset)
	dm := NewDifficultyManager(cfg.Difficulty, cfg.Timing.MinTick)
	start = dm.Interval(cfg.Timing.Tick, 0, 0)
	if !dm.IsEnabled() {
		return start, start
	}
	end := max(cfg.Difficulty.Progression.MaxAt, 1)
	return start, dm.Interval(cfg.Timing.Tick, end, end)
}

func unit(v float64) float64 {
	return min(max(v, 0), 1)
}

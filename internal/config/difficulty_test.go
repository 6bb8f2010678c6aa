package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDifficultyLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "lines", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 3},
	}
	d := NewDifficultyManager(cfg, 0)

	assert.InDelta(t, 0.0, d.Level(0, 0), 1e-9)
	assert.InDelta(t, 0.5, d.Level(5, 999), 1e-9)
	assert.InDelta(t, 1.0, d.Level(50, 0), 1e-9)

	d.SetInitialLevel(0.5)
	assert.InDelta(t, 0.75, d.Level(5, 0), 1e-9)

	d.SetEnabled(false)
	assert.False(t, d.IsEnabled())
	assert.InDelta(t, 0.5, d.Level(10, 0), 1e-9)
}

func TestDifficultyTimeProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
	}, 0)
	assert.InDelta(t, 0.25, d.Level(1000, 25), 1e-9)

	none := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "none"},
	}, 0)
	assert.False(t, none.IsEnabled())
	assert.InDelta(t, 0.3, none.Level(1000, 1000), 1e-9)
}

func TestDifficultyInterval(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "lines", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 3},
	}
	base := 500 * time.Millisecond

	d := NewDifficultyManager(cfg, 0)
	assert.Equal(t, base, d.Interval(base, 0, 0))
	assert.Equal(t, 200*time.Millisecond, d.Interval(base, 5, 0))
	assert.Equal(t, 125*time.Millisecond, d.Interval(base, 10, 0))

	clamped := NewDifficultyManager(cfg, 150*time.Millisecond)
	assert.Equal(t, 150*time.Millisecond, clamped.Interval(base, 10, 0))
}

func TestPresetSpeeds(t *testing.T) {
	cfg := DefaultTetrisConfig()

	start, fastest := PresetSpeeds(cfg, DifficultyEasy)
	assert.Equal(t, 500*time.Millisecond, start)
	assert.Equal(t, 125*time.Millisecond, fastest)

	start, fastest = PresetSpeeds(cfg, DifficultyFixed)
	assert.Equal(t, 500*time.Millisecond, start)
	assert.Equal(t, start, fastest)

	normal, _ := PresetSpeeds(cfg, DifficultyNormal)
	hard, hardFastest := PresetSpeeds(cfg, DifficultyHard)
	assert.Less(t, normal, 500*time.Millisecond)
	assert.Less(t, hard, normal)
	assert.Equal(t, 125*time.Millisecond, hardFastest)

	assert.True(t, cfg.Difficulty.Enabled, "caller config untouched")
	assert.InDelta(t, 0.0, cfg.Difficulty.InitialLevel, 1e-9)
}

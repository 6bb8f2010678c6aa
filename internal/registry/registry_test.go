package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetra-arcade/internal/config"
	"github.com/vovakirdan/tetra-arcade/internal/tetris"
)

type stubGame struct {
	id     string
	shapes []tetris.Shape
}

func (g stubGame) ID() string             { return g.id }
func (g stubGame) Title() string          { return "Stub " + g.id }
func (g stubGame) Shapes() []tetris.Shape { return g.shapes }

func init() {
	Register("stub_lines", func() Game {
		return stubGame{id: "stub_lines", shapes: tetris.LineShapes()}
	})
	Register("stub_empty", func() Game {
		return stubGame{id: "stub_empty"}
	})
}

func TestListAndCreate(t *testing.T) {
	assert.True(t, Exists("stub_lines"))
	assert.False(t, Exists("nope"))

	var found bool
	list := List()
	for i, info := range list {
		if i > 0 {
			assert.Less(t, list[i-1].ID, info.ID, "list is sorted by id")
		}
		if info.ID == "stub_lines" {
			found = true
			assert.Equal(t, "Stub stub_lines", info.Title)
			assert.Equal(t, 1, info.Pieces)
		}
	}
	assert.True(t, found)

	g, err := Create("stub_lines")
	require.NoError(t, err)
	assert.Equal(t, "stub_lines", g.ID())

	_, err = Create("nope")
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("stub_lines", func() Game { return stubGame{id: "stub_lines"} })
	})
}

func TestNewSession(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Shapes = []config.ShapeConfig{{Name: "dot", Cells: [][]int{{0, 0}}}}

	s, err := NewSession("stub_lines", cfg, 42)
	require.NoError(t, err)
	name := s.Active().Shape.Name
	assert.Contains(t, []string{"I", "dot"}, name)
	assert.Equal(t, 10, s.Options().Width)

	_, err = NewSession("nope", cfg, 1)
	assert.ErrorIs(t, err, ErrUnknownGame)

	_, err = NewSession("stub_empty", config.DefaultTetrisConfig(), 1)
	assert.ErrorIs(t, err, tetris.ErrEmptyCatalog)
}

func TestNewSessionRejectsSpawnBelowFloor(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Spawn = config.SpawnConfig{X: 0, Y: 25}

	_, err := NewSession("stub_lines", cfg, 1)
	assert.ErrorIs(t, err, tetris.ErrInvalidSpawn)
}

func TestNewSessionIsDeterministicPerSeed(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	a, err := NewSession("stub_lines", cfg, 7)
	require.NoError(t, err)
	b, err := NewSession("stub_lines", cfg, 7)
	require.NoError(t, err)

	for i := 0; i < 200; i++ {
		a.Tick()
		b.Tick()
	}
	assert.Equal(t, a.Grid(), b.Grid())
	assert.Equal(t, a.Stats(), b.Stats())
}

package tetris

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetra-arcade/internal/core"
)

// seqRand replays a fixed sequence of indexes and counts calls.
type seqRand struct {
	seq   []int
	calls int
}

func (r *seqRand) Intn(n int) int {
	v := 0
	if len(r.seq) > 0 {
		v = r.seq[r.calls%len(r.seq)]
	}
	r.calls++
	return v % n
}

// newTestSession returns a 10x20 session whose pieces are always a blue I.
func newTestSession(t *testing.T) (*Session, *seqRand) {
	t.Helper()
	rng := &seqRand{seq: []int{1, 0}}
	cat, err := NewCatalog(ClassicShapes(), DefaultPalette(), rng)
	require.NoError(t, err)
	s, err := NewSession(DefaultOptions(), cat)
	require.NoError(t, err)
	return s, rng
}

func fillRow(b *Board, y int, skip ...int) {
	for x := 0; x < b.Width(); x++ {
		if contains(skip, x) {
			continue
		}
		b.Place(Cell{Pos: core.P(x, y), Color: core.ColorRed})
	}
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

package tui

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetra-arcade/internal/storage"
	"github.com/vovakirdan/tetra-arcade/internal/tetris"
)

func TestScoreKeeperSavesGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	k := newScoreKeeper(store, "tetris", "bob", log.New(io.Discard))

	// Only game over events are recorded
	k.OnEvent(tetris.Event{Kind: tetris.EventLinesCleared, Lines: 1, Score: 101})
	k.OnEvent(tetris.Event{Kind: tetris.EventGameOver, Lines: 1, Pieces: 12, Score: 112})
	k.OnEvent(tetris.Event{Kind: tetris.EventGameOver, Score: 0})

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d games, expected 1", len(scores))
	}
	got := scores[0]
	if got.Score != 112 || got.Lines != 1 || got.Pieces != 12 || got.Player != "bob" {
		t.Errorf("saved %+v", got)
	}
	if k.Best() != 112 {
		t.Errorf("Best() = %d, expected 112", k.Best())
	}

	// A new keeper starts from the stored best
	k2 := newScoreKeeper(store, "tetris", "bob", log.New(io.Discard))
	if k2.Best() != 112 {
		t.Errorf("reloaded Best() = %d, expected 112", k2.Best())
	}
}

func TestScoreKeeperWithoutStore(t *testing.T) {
	k := newScoreKeeper(nil, "tetris", "", log.New(io.Discard))
	k.OnEvent(tetris.Event{Kind: tetris.EventGameOver, Score: 40})
	if k.Best() != 40 {
		t.Errorf("Best() = %d, expected 40", k.Best())
	}
}

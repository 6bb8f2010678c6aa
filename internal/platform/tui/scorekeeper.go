package tui

import (
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tetra-arcade/internal/storage"
	"github.com/vovakirdan/tetra-arcade/internal/tetris"
)

// scoreKeeper saves finished games and tracks the best score seen.
// OnEvent runs on the loop goroutine; Best may be read from the UI.
type scoreKeeper struct {
	store  *storage.Store
	gameID string
	player string
	logger *log.Logger
	best   atomic.Int64
}

func newScoreKeeper(store *storage.Store, gameID, player string, logger *log.Logger) *scoreKeeper {
	k := &scoreKeeper{
		store:  store,
		gameID: gameID,
		player: player,
		logger: logger,
	}
	if store != nil {
		var best int
		var err error
		if player != "" {
			best, err = store.PlayerBest(player, gameID)
		} else {
			best, err = store.HighScore(gameID)
		}
		if err != nil {
			logger.Warn("could not load best score", "game", gameID, "error", err)
		}
		k.best.Store(int64(best))
	}
	return k
}

// OnEvent records the score of every finished game.
func (k *scoreKeeper) OnEvent(e tetris.Event) {
	if e.Kind != tetris.EventGameOver {
		return
	}
	if int64(e.Score) > k.best.Load() {
		k.best.Store(int64(e.Score))
	}
	if k.store == nil || e.Score <= 0 {
		return
	}

	_, err := k.store.SaveGame(storage.GameRecord{
		GameID: k.gameID,
		Player: k.player,
		Score:  e.Score,
		Lines:  e.Lines,
		Pieces: e.Pieces,
	})
	if err != nil {
		k.logger.Warn("could not save score", "game", k.gameID, "score", e.Score, "error", err)
		return
	}
	k.logger.Info("score saved", "game", k.gameID, "player", k.player, "score", e.Score)
}

// Best returns the highest score known for this game.
func (k *scoreKeeper) Best() int {
	return int(k.best.Load())
}

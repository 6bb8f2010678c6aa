// Package storage keeps finished games in a SQLite file so high scores
// survive restarts. It uses the pure-Go modernc.org/sqlite driver, so no
// CGO toolchain is needed.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Store is an open score database.
type Store struct {
	db *sql.DB
}

// GameRecord is one finished game to be saved.
type GameRecord struct {
	GameID string
	Player string // SSH username; empty for local play
	Score  int
	Lines  int
	Pieces int
}

// ScoreEntry is a saved game as read back from the database.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	Lines     int
	Pieces    int
	CreatedAt time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS game_results (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	game_id    TEXT    NOT NULL,
	player     TEXT    NOT NULL DEFAULT '',
	score      INTEGER NOT NULL,
	lines      INTEGER NOT NULL DEFAULT 0,
	pieces     INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_results_rank   ON game_results(game_id, score DESC);
CREATE INDEX IF NOT EXISTS idx_results_player ON game_results(player, game_id);
`

// Open opens the database at path, creating the file, its parent
// directories and the schema as needed. A leading "~" is the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: connect %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: expand ~: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SaveGame inserts a finished game and returns its row id.
func (s *Store) SaveGame(r GameRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO game_results (game_id, player, score, lines, pieces) VALUES (?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Score, r.Lines, r.Pieces,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save %s game: %w", r.GameID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: saved row id: %w", err)
	}
	return id, nil
}

const sqliteTime = "2006-01-02 15:04:05"

// parseTime accepts both driver-decoded times and raw sqlite strings.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

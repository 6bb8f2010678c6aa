package storage

import (
	"database/sql"
	"fmt"
	"strings"
)

// DefaultLimit is used when a ranked query asks for a non-positive limit.
const DefaultLimit = 10

// ScoreQuery selects saved games of one variant, best first.
type ScoreQuery struct {
	GameID string
	Player string // only this player's games when non-empty
	Limit  int    // 0 means every matching row
}

// Scores runs q. Ties keep insertion order.
func (s *Store) Scores(q ScoreQuery) ([]ScoreEntry, error) {
	var (
		where = []string{"game_id = ?"}
		args  = []any{q.GameID}
	)
	if q.Player != "" {
		where = append(where, "player = ?")
		args = append(args, q.Player)
	}

	query := `SELECT id, game_id, player, score, lines, pieces, created_at FROM game_results WHERE ` +
		strings.Join(where, " AND ") + ` ORDER BY score DESC, id ASC`
	if q.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, q.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: query %s scores: %w", q.GameID, err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			created any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.Lines, &e.Pieces, &created); err != nil {
			return nil, fmt.Errorf("storage: scan score: %w", err)
		}
		e.CreatedAt = parseTime(created)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read scores: %w", err)
	}
	return out, nil
}

// TopScores returns the best limit games of a variant.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.Scores(ScoreQuery{GameID: gameID, Limit: limit})
}

// PlayerTopScores is TopScores restricted to one player.
func (s *Store) PlayerTopScores(player, gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.Scores(ScoreQuery{GameID: gameID, Player: player, Limit: limit})
}

// HighScore is the best score ever saved for a variant, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	return s.maxScore(`SELECT MAX(score) FROM game_results WHERE game_id = ?`, gameID)
}

// PlayerBest is a player's best score for a variant, or 0.
func (s *Store) PlayerBest(player, gameID string) (int, error) {
	return s.maxScore(`SELECT MAX(score) FROM game_results WHERE game_id = ? AND player = ?`, gameID, player)
}

func (s *Store) maxScore(query string, args ...any) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(query, args...).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: best score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes every saved game of a variant and reports how many
// rows went.
func (s *Store) ClearScores(gameID string) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM game_results WHERE game_id = ?`, gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: clear %s scores: %w", gameID, err)
	}
	return res.RowsAffected()
}

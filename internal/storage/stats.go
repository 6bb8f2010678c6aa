package storage

import (
	"fmt"
	"sort"
	"time"
)

// GameStats aggregates every saved game of one variant.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	TotalLines int64
	BestLines  int
	LastPlayed time.Time
}

const statsColumns = `game_id, COUNT(*), MAX(score), AVG(score), SUM(score), SUM(lines), MAX(lines), MAX(created_at)`

func scanStats(scan func(dest ...any) error) (*GameStats, error) {
	var (
		gs   GameStats
		last any
	)
	if err := scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore,
		&gs.TotalLines, &gs.BestLines, &last); err != nil {
		return nil, err
	}
	gs.LastPlayed = parseTime(last)
	return &gs, nil
}

// GetGameStats summarizes one variant. A variant with no saved games
// yields zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT `+statsColumns+` FROM game_results WHERE game_id = ? GROUP BY game_id`, gameID)
	if err != nil {
		return nil, fmt.Errorf("storage: %s stats: %w", gameID, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("storage: %s stats: %w", gameID, err)
		}
		return &GameStats{GameID: gameID}, nil
	}
	gs, err := scanStats(rows.Scan)
	if err != nil {
		return nil, fmt.Errorf("storage: scan %s stats: %w", gameID, err)
	}
	return gs, nil
}

// AllGamesStats summarizes every variant that has saved games, ordered by
// variant id.
func (s *Store) AllGamesStats() ([]*GameStats, error) {
	rows, err := s.db.Query(`SELECT ` + statsColumns + ` FROM game_results GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: all stats: %w", err)
	}
	defer rows.Close()

	var out []*GameStats
	for rows.Next() {
		gs, err := scanStats(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("storage: scan stats: %w", err)
		}
		out = append(out, gs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: read stats: %w", err)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GameID < out[j].GameID })
	return out, nil
}

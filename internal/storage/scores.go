package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one finished campaign.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates the scores of one game.
type GameStats struct {
	GameID     string
	Plays      int
	Best       int
	Average    float64
	LastPlayed time.Time // zero if never played
}

// SaveScore records a score and returns its ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns up to limit scores of a game, best first.
// A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		e, err := scanScore(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

func scanScore(r rowScanner) (ScoreEntry, error) {
	var e ScoreEntry
	var createdAt any
	if err := r.Scan(&e.ID, &e.GameID, &e.Score, &createdAt); err != nil {
		return ScoreEntry{}, err
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// HighScore returns the best score of a game, 0 if there is none.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes every score of a game and returns how many were removed.
func (s *Store) ClearScores(gameID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return res.RowsAffected()
}

// Stats aggregates the scores of a game in one query.
func (s *Store) Stats(gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}
	var last any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Plays, &stats.Best, &stats.Average, &last)
	if err != nil {
		return GameStats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(last)
	return stats, nil
}

package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SolverRun records one invocation of the puzzle solver.
type SolverRun struct {
	ID       string // assigned by SaveSolverRun when empty
	LevelID  string // empty for ad-hoc configurations
	VialsKey string
	Strategy string
	Moves    int
	Explored int
	Solved   bool
	Duration time.Duration
	// CreatedAt is filled in on reads.
	CreatedAt time.Time
}

// SaveSolverRun records a solver run and returns its ID.
func (s *Store) SaveSolverRun(run SolverRun) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO solver_runs
		 (id, level_id, vials_key, strategy, moves, explored, solved, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.LevelID,
		run.VialsKey,
		run.Strategy,
		run.Moves,
		run.Explored,
		run.Solved,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save solver run: %w", err)
	}

	return run.ID, nil
}

// SolverRunByID retrieves a run by ID. Returns nil if there is no such run.
func (s *Store) SolverRunByID(id string) (*SolverRun, error) {
	row := s.db.QueryRow(
		`SELECT id, level_id, vials_key, strategy, moves, explored, solved, duration_ms, created_at
		 FROM solver_runs
		 WHERE id = ?`,
		id,
	)

	run, err := scanSolverRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solver run: %w", err)
	}
	return &run, nil
}

// RecentSolverRuns retrieves the most recent solver runs, newest first.
func (s *Store) RecentSolverRuns(limit int) ([]SolverRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, vials_key, strategy, moves, explored, solved, duration_ms, created_at
		 FROM solver_runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solver runs: %w", err)
	}
	defer rows.Close()

	var runs []SolverRun
	for rows.Next() {
		run, err := scanSolverRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

func scanSolverRun(r rowScanner) (SolverRun, error) {
	var run SolverRun
	var durationMS int64
	var createdAt any
	err := r.Scan(
		&run.ID,
		&run.LevelID,
		&run.VialsKey,
		&run.Strategy,
		&run.Moves,
		&run.Explored,
		&run.Solved,
		&durationMS,
		&createdAt,
	)
	if err != nil {
		return SolverRun{}, err
	}
	run.Duration = time.Duration(durationMS) * time.Millisecond
	run.CreatedAt = parseTime(createdAt)
	return run, nil
}

// SolverSummary aggregates all recorded solver runs.
type SolverSummary struct {
	Runs        int
	Solved      int
	AvgExplored float64
	AvgDuration time.Duration
}

// SolverRunSummary summarizes the recorded runs.
func (s *Store) SolverRunSummary() (SolverSummary, error) {
	var sum SolverSummary
	var avgMS float64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(solved), 0), COALESCE(AVG(explored), 0), COALESCE(AVG(duration_ms), 0)
		 FROM solver_runs`,
	).Scan(&sum.Runs, &sum.Solved, &sum.AvgExplored, &avgMS)
	if err != nil {
		return SolverSummary{}, fmt.Errorf("storage: cannot summarize solver runs: %w", err)
	}
	sum.AvgDuration = time.Duration(avgMS * float64(time.Millisecond))
	return sum, nil
}

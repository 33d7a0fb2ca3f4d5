package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve represents a recorded solve in the database.
type Solve struct {
	SolveID    string
	Size       int
	Scramble   *string
	Solution   *string
	MoveCount  *int64
	Attempts   *int64
	Parities   *string
	StartedAt  time.Time
	EndedAt    *time.Time
	DurationMs *int64
}

// SizeStats summarizes the recorded solves of one cube size.
type SizeStats struct {
	Size          int
	Count         int
	AvgMoveCount  float64
	AvgDurationMs float64
	ParityCount   int
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records the start of a solve and returns its ID.
func (r *SolveRepository) Create(size int, scramble string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, size, scramble, started_at)
		VALUES (?, ?, ?, ?)
	`, id, size, scramblePtr, startedAt.Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// Finish stores the solution of a completed solve and its timing. The read
// of the start time and the update run in one transaction so the computed
// duration always matches the stored row.
func (r *SolveRepository) Finish(solveID, solution string, moveCount, attempts int, parities string) error {
	endedAt := time.Now().UTC()

	var paritiesPtr *string
	if parities != "" {
		paritiesPtr = &parities
	}

	return r.db.Transaction(func(tx *sql.Tx) error {
		var startedAtStr string
		err := tx.QueryRow("SELECT started_at FROM solves WHERE solve_id = ?", solveID).Scan(&startedAtStr)
		if err != nil {
			return fmt.Errorf("failed to get solve start time: %w", err)
		}

		startedAt, err := time.Parse(time.RFC3339, startedAtStr)
		if err != nil {
			return fmt.Errorf("failed to parse start time: %w", err)
		}

		durationMs := endedAt.Sub(startedAt).Milliseconds()

		_, err = tx.Exec(`
			UPDATE solves
			SET solution = ?, move_count = ?, attempts = ?, parities = ?, ended_at = ?, duration_ms = ?
			WHERE solve_id = ?
		`, solution, moveCount, attempts, paritiesPtr, endedAt.Format(time.RFC3339), durationMs, solveID)

		if err != nil {
			return fmt.Errorf("failed to finish solve: %w", err)
		}
		return nil
	})
}

const solveColumns = `solve_id, size, scramble, solution, move_count, attempts, parities, started_at, ended_at, duration_ms`

func scanSolve(scan func(...any) error) (*Solve, error) {
	var s Solve
	var startedAtStr string
	var endedAtStr *string

	err := scan(&s.SolveID, &s.Size, &s.Scramble, &s.Solution, &s.MoveCount,
		&s.Attempts, &s.Parities, &startedAtStr, &endedAtStr, &s.DurationMs)
	if err != nil {
		return nil, err
	}

	s.StartedAt, err = time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse start time: %w", err)
	}
	if endedAtStr != nil {
		t, err := time.Parse(time.RFC3339, *endedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end time: %w", err)
		}
		s.EndedAt = &t
	}

	return &s, nil
}

// Get retrieves a solve by ID.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	row := r.db.QueryRow(`SELECT `+solveColumns+` FROM solves WHERE solve_id = ?`, solveID)
	s, err := scanSolve(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("solve %s not found", solveID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recently started solve.
func (r *SolveRepository) GetLast() (*Solve, error) {
	row := r.db.QueryRow(`SELECT ` + solveColumns + ` FROM solves ORDER BY started_at DESC LIMIT 1`)
	s, err := scanSolve(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no solves recorded")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}
	return s, nil
}

// List retrieves the most recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]*Solve, error) {
	rows, err := r.db.Query(`
		SELECT `+solveColumns+` FROM solves
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []*Solve
	for rows.Next() {
		s, err := scanSolve(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, s)
	}

	return solves, rows.Err()
}

// Delete removes a solve.
func (r *SolveRepository) Delete(solveID string) error {
	result, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("solve %s not found", solveID)
	}
	return nil
}

// StatsBySize aggregates completed solves grouped by cube size.
func (r *SolveRepository) StatsBySize() ([]SizeStats, error) {
	rows, err := r.db.Query(`
		SELECT size,
		       COUNT(*),
		       COALESCE(AVG(move_count), 0),
		       COALESCE(AVG(duration_ms), 0),
		       SUM(CASE WHEN parities IS NOT NULL THEN 1 ELSE 0 END)
		FROM solves
		WHERE ended_at IS NOT NULL
		GROUP BY size
		ORDER BY size
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	var stats []SizeStats
	for rows.Next() {
		var st SizeStats
		if err := rows.Scan(&st.Size, &st.Count, &st.AvgMoveCount, &st.AvgDurationMs, &st.ParityCount); err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}
		stats = append(stats, st)
	}

	return stats, rows.Err()
}

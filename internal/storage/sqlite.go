// Package storage keeps the round history of a single run in an in-memory
// SQLite database. Nothing is written to disk; the history ends with the
// process. Uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-shooter/internal/shooter"
)

// Store holds the in-memory database connection.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// RoundEntry is one recorded round.
type RoundEntry struct {
	ID        int64
	Round     int
	Score     int
	Shots     int
	Destroyed int
	Ticks     int
	EndedAt   time.Time
}

// Accuracy returns the share of shots that destroyed an obstacle.
func (e RoundEntry) Accuracy() float64 {
	if e.Shots == 0 {
		return 0
	}
	return float64(e.Destroyed) / float64(e.Shots)
}

// Summary aggregates every round of the run.
type Summary struct {
	Rounds    int
	Best      int
	Total     int
	Shots     int
	Destroyed int
	Ticks     int
}

// Average returns the mean score per round.
func (s Summary) Average() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Total) / float64(s.Rounds)
}

// OpenMemory creates an empty in-memory history.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round INTEGER NOT NULL,
			score INTEGER NOT NULL,
			shots INTEGER NOT NULL DEFAULT 0,
			destroyed INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_score ON rounds(score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding the history.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r shooter.RoundResult) (int64, error) {
	if r.Score < 0 {
		return 0, fmt.Errorf("storage: negative score %d", r.Score)
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (round, score, shots, destroyed, ticks, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Round, r.Score, r.Shots, r.Destroyed, r.Ticks, s.now().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecordRound stores r, discarding the row ID.
func (s *Store) RecordRound(r shooter.RoundResult) error {
	_, err := s.SaveRound(r)
	return err
}

// BestScore returns the highest score of the run.
// Returns 0 if no rounds exist.
func (s *Store) BestScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM rounds").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// TopRounds retrieves the N best rounds, highest score first.
// Ties go to the earlier round.
func (s *Store) TopRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, round, score, shots, destroyed, ticks, ended_at
		 FROM rounds
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// Rounds retrieves every round in the order played.
func (s *Store) Rounds() ([]RoundEntry, error) {
	return s.query(
		`SELECT id, round, score, shots, destroyed, ticks, ended_at
		 FROM rounds
		 ORDER BY id ASC`,
	)
}

func (s *Store) query(q string, args ...any) ([]RoundEntry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var e RoundEntry
		var endedAt int64
		if err := rows.Scan(&e.ID, &e.Round, &e.Score, &e.Shots, &e.Destroyed, &e.Ticks, &endedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.EndedAt = time.UnixMilli(endedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Summary aggregates the whole history.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(MAX(score), 0),
		        COALESCE(SUM(score), 0),
		        COALESCE(SUM(shots), 0),
		        COALESCE(SUM(destroyed), 0),
		        COALESCE(SUM(ticks), 0)
		 FROM rounds`,
	).Scan(&sum.Rounds, &sum.Best, &sum.Total, &sum.Shots, &sum.Destroyed, &sum.Ticks)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize rounds: %w", err)
	}
	return sum, nil
}

// Clear deletes every round.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM rounds")
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

// Ensure Store implements shooter.RoundRecorder.
var _ shooter.RoundRecorder = (*Store)(nil)

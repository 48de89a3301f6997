// Package storage provides the SQLite-backed leaderboard for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The database lives in memory: results are shared by every session in the
// process and vanish when it exits.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite connection holding the leaderboard.
type Store struct {
	db *sql.DB
}

// Result represents a single finished game.
type Result struct {
	ID        int64
	Player    string
	Mode      string
	Score     int
	MaxCombo  int
	Level     int
	CreatedAt time.Time
}

// ModeStats contains aggregated statistics for a mode.
type ModeStats struct {
	Mode       string
	GamesCount int
	HighScore  int
	AvgScore   float64
	BestCombo  int
	LastPlayed time.Time
}

// OpenMemory creates an in-memory database and runs migrations.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every new connection to :memory: is a separate, empty database.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			mode TEXT NOT NULL,
			score INTEGER NOT NULL,
			max_combo INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_mode ON results(mode);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(mode, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Player == "" {
		r.Player = "anonymous"
	}
	result, err := s.db.Exec(
		"INSERT INTO results (player, mode, score, max_combo, level) VALUES (?, ?, ?, ?, ?)",
		r.Player, r.Mode, r.Score, r.MaxCombo, r.Level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the top N results for the given mode.
// Results are ordered by score, then combo, then age.
func (s *Store) TopResults(mode string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, mode, score, max_combo, level, created_at
		 FROM results
		 WHERE mode = ?
		 ORDER BY score DESC, max_combo DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []Result
	for rows.Next() {
		var e Result
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Mode, &e.Score, &e.MaxCombo, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no results exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearResults deletes all results for the given mode.
func (s *Store) ClearResults(mode string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific mode.
func (s *Store) Stats(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(max_combo), 0), MAX(created_at)
		 FROM results WHERE mode = ?`,
		mode,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.BestCombo, &lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTimestamp(lastPlayed)

	return stats, nil
}

// AllStats retrieves statistics for every mode that has been played.
func (s *Store) AllStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode, COUNT(*), MAX(score), AVG(score), MAX(max_combo), MAX(created_at)
		 FROM results
		 GROUP BY mode`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var ms ModeStats
		var lastPlayed any
		if err := rows.Scan(&ms.Mode, &ms.GamesCount, &ms.HighScore, &ms.AvgScore, &ms.BestCombo, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ms.LastPlayed = parseTimestamp(lastPlayed)
		stats[ms.Mode] = &ms
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTimestamp handles both time.Time and string datetimes.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

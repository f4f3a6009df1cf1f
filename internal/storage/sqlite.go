// Package storage provides SQLite-based records of finished 2048 games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only game summaries are kept; a game in progress is never saved.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Outcome values recorded for a finished game.
const (
	OutcomeWon  = "won"
	OutcomeOver = "over"
	OutcomeQuit = "quit"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is the summary of one finished game.
type Result struct {
	ID        int64
	SessionID string
	BoardSize int
	Target    int
	Score     int
	MaxTile   int
	Moves     int
	Outcome   string // OutcomeWon, OutcomeOver or OutcomeQuit
	CreatedAt time.Time
}

// NewSessionID returns a fresh identifier for a game session.
func NewSessionID() string {
	return uuid.NewString()
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

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
			session_id TEXT NOT NULL,
			board_size INTEGER NOT NULL,
			target INTEGER NOT NULL,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(board_size, score DESC);
		CREATE INDEX IF NOT EXISTS idx_results_session ON results(session_id);
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
	if r.SessionID == "" {
		r.SessionID = NewSessionID()
	}

	res, err := s.db.Exec(
		`INSERT INTO results (session_id, board_size, target, score, max_tile, moves, outcome)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID, r.BoardSize, r.Target, r.Score, r.MaxTile, r.Moves, r.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the top N results for the given board size.
// Results are ordered by score descending.
func (s *Store) TopResults(boardSize, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, board_size, target, score, max_tile, moves, outcome, created_at
		 FROM results
		 WHERE board_size = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		boardSize, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.SessionID, &r.BoardSize, &r.Target, &r.Score,
			&r.MaxTile, &r.Moves, &r.Outcome, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// HighScore returns the highest score for the given board size.
// Returns 0 if no results exist.
func (s *Store) HighScore(boardSize int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE board_size = ?",
		boardSize,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearResults deletes all results for the given board size.
func (s *Store) ClearResults(boardSize int) error {
	_, err := s.db.Exec("DELETE FROM results WHERE board_size = ?", boardSize)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

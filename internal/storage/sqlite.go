// Package storage provides SQLite-based persistence for generated board
// layouts. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. The scene machine never reads from here; history is a
// write-mostly side channel.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/retrowix/flow-state/internal/board"
)

// Store manages the SQLite database connection for layout history.
type Store struct {
	db *sql.DB
}

// LayoutEntry is one recorded board generation.
type LayoutEntry struct {
	ID        int64
	Pairs     int
	GridN     int
	Score     int
	Cells     string // board.Encode format
	CreatedAt time.Time
}

// Endpoints decodes the stored cell list back into endpoint pairs.
func (e LayoutEntry) Endpoints() ([]board.EndpointPair, error) {
	return board.Decode(e.Cells)
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
		CREATE TABLE IF NOT EXISTS layouts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			pairs INTEGER NOT NULL,
			grid_n INTEGER NOT NULL,
			score INTEGER NOT NULL,
			cells TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_layouts_recent ON layouts(created_at DESC);
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

// SaveLayout records a generated board layout.
// Returns the ID of the inserted record.
func (s *Store) SaveLayout(pairs []board.EndpointPair, gridN int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO layouts (pairs, grid_n, score, cells) VALUES (?, ?, ?, ?)",
		len(pairs), gridN, board.Score(pairs), board.Encode(pairs),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save layout: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentLayouts retrieves the most recently generated layouts, newest first.
func (s *Store) RecentLayouts(limit int) ([]LayoutEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, pairs, grid_n, score, cells, created_at
		 FROM layouts
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query layouts: %w", err)
	}
	defer rows.Close()

	var entries []LayoutEntry
	for rows.Next() {
		var e LayoutEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Pairs, &e.GridN, &e.Score, &e.Cells, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest spread score recorded for the given pair
// count. Returns 0 if no layouts exist.
func (s *Store) BestScore(pairs int) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM layouts WHERE pairs = ?",
		pairs,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearLayouts deletes all recorded layouts.
func (s *Store) ClearLayouts() error {
	_, err := s.db.Exec("DELETE FROM layouts")
	if err != nil {
		return fmt.Errorf("storage: cannot clear layouts: %w", err)
	}
	return nil
}

// Package draft persists in-progress workout edits locally so a session
// survives restarts without touching the main database until saved.
package draft

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/claude/ironlog/internal/models"
)

// ErrNotFound is returned when a user has no draft.
var ErrNotFound = errors.New("draft: not found")

// Store keeps at most one draft workout per user in a local SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the draft database at dir/drafts.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating draft dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "drafts.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening draft db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS drafts (
		user_id    INTEGER PRIMARY KEY,
		workout    TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating drafts table: %w", err)
	}

	return &Store{db: db}, nil
}

// Save stores the workout as the user's draft, replacing any previous one.
func (s *Store) Save(userID int, w models.Workout) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT OR REPLACE INTO drafts (user_id, workout, updated_at) VALUES (?, ?, ?)`,
		userID, string(data), time.Now().UTC(),
	)
	return err
}

// Get returns the user's draft, or ErrNotFound when there is none.
func (s *Store) Get(userID int) (models.Workout, error) {
	var data string
	err := s.db.QueryRow(`SELECT workout FROM drafts WHERE user_id = ?`, userID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Workout{}, ErrNotFound
	}
	if err != nil {
		return models.Workout{}, err
	}

	var w models.Workout
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		return models.Workout{}, fmt.Errorf("decoding draft: %w", err)
	}
	return w, nil
}

// Discard removes the user's draft. Discarding a missing draft is not
// an error.
func (s *Store) Discard(userID int) error {
	_, err := s.db.Exec(`DELETE FROM drafts WHERE user_id = ?`, userID)
	return err
}

// Close closes the draft database.
func (s *Store) Close() error {
	return s.db.Close()
}

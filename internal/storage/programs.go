package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/claude/ironlog/internal/models"
)

// ListPrograms returns the user's custom day programs in weekday order.
func (db *DB) ListPrograms(ctx context.Context, userID int) ([]models.DayProgram, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, day_type, session_name, focus, exercises
		 FROM day_programs
		 WHERE user_id = $1
		 ORDER BY array_position($2::text[], day_type)`,
		userID, dayTypeOrder())
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var result []models.DayProgram
	for rows.Next() {
		var p models.DayProgram
		if err := rows.Scan(&p.ID, &p.UserID, &p.DayType, &p.SessionName, &p.Focus, &p.Exercises); err != nil {
			return nil, fmt.Errorf("scanning program: %w", err)
		}
		p.Custom = true
		result = append(result, p)
	}
	return result, rows.Err()
}

// SaveProgram upserts a custom day program.
func (db *DB) SaveProgram(ctx context.Context, p models.DayProgram) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO day_programs (id, user_id, day_type, session_name, focus, exercises)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (id) DO UPDATE SET
		   day_type = EXCLUDED.day_type,
		   session_name = EXCLUDED.session_name,
		   focus = EXCLUDED.focus,
		   exercises = EXCLUDED.exercises`,
		p.ID, p.UserID, p.DayType, p.SessionName, p.Focus, p.Exercises)
	if err != nil {
		return fmt.Errorf("upserting program: %w", err)
	}
	return nil
}

// DeleteProgram removes a custom program. Built-in defaults never live
// in the database, so they cannot be deleted here.
func (db *DB) DeleteProgram(ctx context.Context, programID uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM day_programs WHERE id = $1 AND user_id = $2`, programID, userID)
	if err != nil {
		return fmt.Errorf("deleting program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetProgram retrieves one custom program.
func (db *DB) GetProgram(ctx context.Context, programID uuid.UUID, userID int) (*models.DayProgram, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, day_type, session_name, focus, exercises
		 FROM day_programs
		 WHERE id = $1 AND user_id = $2`,
		programID, userID)

	var p models.DayProgram
	err := row.Scan(&p.ID, &p.UserID, &p.DayType, &p.SessionName, &p.Focus, &p.Exercises)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying program: %w", err)
	}
	p.Custom = true
	return &p, nil
}

func dayTypeOrder() []string {
	order := make([]string, len(models.DayTypes))
	for i, d := range models.DayTypes {
		order[i] = string(d)
	}
	return order
}

package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
)

// ListGoals returns the user's goals, alphabetically by exercise name.
func (db *DB) ListGoals(ctx context.Context, userID int) ([]models.Goal, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, exercise_name, target_weight_kg
		 FROM goals
		 WHERE user_id = $1
		 ORDER BY exercise_name`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying goals: %w", err)
	}
	defer rows.Close()

	var result []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := rows.Scan(&g.ID, &g.UserID, &g.ExerciseName, &g.TargetWeight); err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		result = append(result, g)
	}
	return result, rows.Err()
}

// SaveGoal upserts a goal.
func (db *DB) SaveGoal(ctx context.Context, g models.Goal) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO goals (id, user_id, exercise_name, target_weight_kg)
		 VALUES ($1,$2,$3,$4)
		 ON CONFLICT (id) DO UPDATE SET
		   exercise_name = EXCLUDED.exercise_name,
		   target_weight_kg = EXCLUDED.target_weight_kg`,
		g.ID, g.UserID, g.ExerciseName, g.TargetWeight)
	if err != nil {
		return fmt.Errorf("upserting goal: %w", err)
	}
	return nil
}

// DeleteGoal removes a goal.
func (db *DB) DeleteGoal(ctx context.Context, goalID uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM goals WHERE id = $1 AND user_id = $2`, goalID, userID)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

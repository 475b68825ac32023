package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/claude/ironlog/internal/models"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("storage: not found")

// SaveWorkout upserts a workout with its full exercise and set tree.
// Exercises and sets are replaced wholesale inside one transaction, so
// the stored tree always matches the one passed in.
func (db *DB) SaveWorkout(ctx context.Context, w models.Workout) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO workouts (id, user_id, date, day_type, session_name, general_notes, duration_min, completed)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 ON CONFLICT (id) DO UPDATE SET
		   date = EXCLUDED.date,
		   day_type = EXCLUDED.day_type,
		   session_name = EXCLUDED.session_name,
		   general_notes = EXCLUDED.general_notes,
		   duration_min = EXCLUDED.duration_min,
		   completed = EXCLUDED.completed`,
		w.ID, w.UserID, w.Date, w.DayType, w.SessionName, w.GeneralNotes, w.DurationMin, w.Completed)
	if err != nil {
		return fmt.Errorf("upserting workout: %w", err)
	}

	// Replace the tree. Sets go with their exercises via ON DELETE CASCADE.
	if _, err := tx.Exec(ctx, `DELETE FROM exercises WHERE workout_id = $1`, w.ID); err != nil {
		return fmt.Errorf("clearing exercises: %w", err)
	}

	if err := insertExercises(ctx, tx, w); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertExercises(ctx context.Context, tx pgx.Tx, w models.Workout) error {
	if len(w.Exercises) == 0 {
		return nil
	}

	query := `INSERT INTO exercises (id, workout_id, name, rm_kg, notes, exercise_order, superset_group) VALUES `
	args := make([]any, 0, len(w.Exercises)*7)
	valueStrings := make([]string, 0, len(w.Exercises))

	var sets []setRow
	for i, ex := range w.Exercises {
		base := i * 7
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
		))
		args = append(args, ex.ID, w.ID, ex.Name, ex.RM, ex.Notes, ex.ExerciseOrder, ex.SupersetGroup)
		for _, s := range ex.Sets {
			sets = append(sets, setRow{exerciseID: ex.ID, set: s})
		}
	}

	if _, err := tx.Exec(ctx, query+strings.Join(valueStrings, ","), args...); err != nil {
		return fmt.Errorf("inserting exercises: %w", err)
	}
	return insertSets(ctx, tx, sets)
}

type setRow struct {
	exerciseID uuid.UUID
	set        models.Set
}

func insertSets(ctx context.Context, tx pgx.Tx, rows []setRow) error {
	if len(rows) == 0 {
		return nil
	}

	query := `INSERT INTO sets (id, exercise_id, set_number, reps, weight_kg, rest_time_sec, rir, completed, pyramid_id) VALUES `
	args := make([]any, 0, len(rows)*9)
	valueStrings := make([]string, 0, len(rows))

	for i, r := range rows {
		base := i * 9
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9,
		))
		s := r.set
		args = append(args, s.ID, r.exerciseID, s.SetNumber, s.Reps, s.Weight,
			s.RestTimeSec, s.RIR, s.Completed, s.PyramidID)
	}

	if _, err := tx.Exec(ctx, query+strings.Join(valueStrings, ","), args...); err != nil {
		return fmt.Errorf("inserting sets: %w", err)
	}
	return nil
}

// GetWorkout retrieves a single workout by ID with its full tree.
func (db *DB) GetWorkout(ctx context.Context, workoutID uuid.UUID, userID int) (*models.Workout, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, date, day_type, session_name, general_notes, duration_min, completed
		 FROM workouts
		 WHERE id = $1 AND user_id = $2`,
		workoutID, userID)

	var w models.Workout
	err := row.Scan(&w.ID, &w.UserID, &w.Date, &w.DayType, &w.SessionName,
		&w.GeneralNotes, &w.DurationMin, &w.Completed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying workout: %w", err)
	}

	workouts := []models.Workout{w}
	if err := db.hydrate(ctx, workouts); err != nil {
		return nil, err
	}
	return &workouts[0], nil
}

// QueryWorkouts retrieves hydrated workouts in a date range, newest
// first.
func (db *DB) QueryWorkouts(ctx context.Context, start, end time.Time, userID int) ([]models.Workout, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, date, day_type, session_name, general_notes, duration_min, completed
		 FROM workouts
		 WHERE date >= $1 AND date < $2 AND user_id = $3
		 ORDER BY date DESC`,
		start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	workouts, err := scanWorkoutRows(rows)
	if err != nil {
		return nil, err
	}
	if err := db.hydrate(ctx, workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// ListWorkouts retrieves all of a user's workouts, newest first, with
// their full trees. Analytics run over this.
func (db *DB) ListWorkouts(ctx context.Context, userID int) ([]models.Workout, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, date, day_type, session_name, general_notes, duration_min, completed
		 FROM workouts
		 WHERE user_id = $1
		 ORDER BY date DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	workouts, err := scanWorkoutRows(rows)
	if err != nil {
		return nil, err
	}
	if err := db.hydrate(ctx, workouts); err != nil {
		return nil, err
	}
	return workouts, nil
}

// DeleteWorkout removes a workout and, via cascade, its exercises and
// sets. Deleting a missing workout returns ErrNotFound.
func (db *DB) DeleteWorkout(ctx context.Context, workoutID uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2`, workoutID, userID)
	if err != nil {
		return fmt.Errorf("deleting workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// hydrate attaches exercises and sets to the given workouts in place.
func (db *DB) hydrate(ctx context.Context, workouts []models.Workout) error {
	if len(workouts) == 0 {
		return nil
	}

	workoutIDs := make([]uuid.UUID, len(workouts))
	for i := range workouts {
		workoutIDs[i] = workouts[i].ID
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT id, workout_id, name, rm_kg, notes, exercise_order, superset_group
		 FROM exercises
		 WHERE workout_id = ANY($1)
		 ORDER BY workout_id, exercise_order`,
		workoutIDs)
	if err != nil {
		return fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	byWorkout := make(map[uuid.UUID][]models.Exercise)
	var exerciseIDs []uuid.UUID
	for rows.Next() {
		var ex models.Exercise
		var workoutID uuid.UUID
		if err := rows.Scan(&ex.ID, &workoutID, &ex.Name, &ex.RM, &ex.Notes,
			&ex.ExerciseOrder, &ex.SupersetGroup); err != nil {
			return fmt.Errorf("scanning exercise: %w", err)
		}
		byWorkout[workoutID] = append(byWorkout[workoutID], ex)
		exerciseIDs = append(exerciseIDs, ex.ID)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	byExercise := make(map[uuid.UUID][]models.Set)
	if len(exerciseIDs) > 0 {
		setRows, err := db.Pool.Query(ctx,
			`SELECT id, exercise_id, set_number, reps, weight_kg, rest_time_sec, rir, completed, pyramid_id
			 FROM sets
			 WHERE exercise_id = ANY($1)
			 ORDER BY exercise_id, set_number`,
			exerciseIDs)
		if err != nil {
			return fmt.Errorf("querying sets: %w", err)
		}
		defer setRows.Close()

		for setRows.Next() {
			var s models.Set
			var exerciseID uuid.UUID
			if err := setRows.Scan(&s.ID, &exerciseID, &s.SetNumber, &s.Reps, &s.Weight,
				&s.RestTimeSec, &s.RIR, &s.Completed, &s.PyramidID); err != nil {
				return fmt.Errorf("scanning set: %w", err)
			}
			byExercise[exerciseID] = append(byExercise[exerciseID], s)
		}
		if err := setRows.Err(); err != nil {
			return err
		}
	}

	for i := range workouts {
		exercises := byWorkout[workouts[i].ID]
		for j := range exercises {
			exercises[j].Sets = byExercise[exercises[j].ID]
		}
		workouts[i].Exercises = exercises
	}
	return nil
}

func scanWorkoutRows(rows pgx.Rows) ([]models.Workout, error) {
	var result []models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Date, &w.DayType, &w.SessionName,
			&w.GeneralNotes, &w.DurationMin, &w.Completed); err != nil {
			return nil, fmt.Errorf("scanning workout: %w", err)
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

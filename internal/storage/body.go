package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
)

// InsertBodyWeight records a body-weight reading. One reading per day;
// a second reading on the same date replaces the first.
func (db *DB) InsertBodyWeight(ctx context.Context, bw models.BodyWeight) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO body_weight (id, user_id, date, weight_kg)
		 VALUES ($1,$2,$3,$4)
		 ON CONFLICT (user_id, date) DO UPDATE SET weight_kg = EXCLUDED.weight_kg`,
		bw.ID, bw.UserID, bw.Date, bw.Weight)
	if err != nil {
		return fmt.Errorf("inserting body weight: %w", err)
	}
	return nil
}

// QueryBodyWeight retrieves body-weight readings in a date range,
// oldest first.
func (db *DB) QueryBodyWeight(ctx context.Context, start, end time.Time, userID int) ([]models.BodyWeight, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, date, weight_kg
		 FROM body_weight
		 WHERE date >= $1 AND date < $2 AND user_id = $3
		 ORDER BY date ASC`,
		start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("querying body weight: %w", err)
	}
	defer rows.Close()

	var result []models.BodyWeight
	for rows.Next() {
		var bw models.BodyWeight
		if err := rows.Scan(&bw.ID, &bw.UserID, &bw.Date, &bw.Weight); err != nil {
			return nil, fmt.Errorf("scanning body weight: %w", err)
		}
		result = append(result, bw)
	}
	return result, rows.Err()
}

// DeleteBodyWeight removes one reading.
func (db *DB) DeleteBodyWeight(ctx context.Context, id uuid.UUID, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM body_weight WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting body weight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// InsertMeasurement records a circumference reading. One per site per
// day; a repeat replaces the earlier value.
func (db *DB) InsertMeasurement(ctx context.Context, m models.Measurement) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO measurements (id, user_id, date, type, value_cm)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (user_id, date, type) DO UPDATE SET value_cm = EXCLUDED.value_cm`,
		m.ID, m.UserID, m.Date, m.Type, m.Value)
	if err != nil {
		return fmt.Errorf("inserting measurement: %w", err)
	}
	return nil
}

// QueryMeasurements retrieves circumference readings in a date range,
// oldest first. An empty measurementType matches all sites.
func (db *DB) QueryMeasurements(ctx context.Context, start, end time.Time, userID int, measurementType models.MeasurementType) ([]models.Measurement, error) {
	query := `SELECT id, user_id, date, type, value_cm
		 FROM measurements
		 WHERE date >= $1 AND date < $2 AND user_id = $3`
	args := []any{start, end, userID}
	if measurementType != "" {
		query += ` AND type = $4`
		args = append(args, measurementType)
	}
	query += ` ORDER BY date ASC, type`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying measurements: %w", err)
	}
	defer rows.Close()

	var result []models.Measurement
	for rows.Next() {
		var m models.Measurement
		if err := rows.Scan(&m.ID, &m.UserID, &m.Date, &m.Type, &m.Value); err != nil {
			return nil, fmt.Errorf("scanning measurement: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

// UpsertWellness records the daily check-in, replacing any earlier
// entry for the same date.
func (db *DB) UpsertWellness(ctx context.Context, w models.DailyWellness) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO daily_wellness (id, user_id, date, sleep_quality, energy_level, muscle_soreness, notes)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (user_id, date) DO UPDATE SET
		   sleep_quality = EXCLUDED.sleep_quality,
		   energy_level = EXCLUDED.energy_level,
		   muscle_soreness = EXCLUDED.muscle_soreness,
		   notes = EXCLUDED.notes`,
		w.ID, w.UserID, w.Date, w.SleepQuality, w.EnergyLevel, w.MuscleSoreness, w.Notes)
	if err != nil {
		return fmt.Errorf("upserting wellness: %w", err)
	}
	return nil
}

// QueryWellness retrieves daily check-ins in a date range, oldest first.
func (db *DB) QueryWellness(ctx context.Context, start, end time.Time, userID int) ([]models.DailyWellness, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, date, sleep_quality, energy_level, muscle_soreness, notes
		 FROM daily_wellness
		 WHERE date >= $1 AND date < $2 AND user_id = $3
		 ORDER BY date ASC`,
		start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("querying wellness: %w", err)
	}
	defer rows.Close()

	var result []models.DailyWellness
	for rows.Next() {
		var w models.DailyWellness
		if err := rows.Scan(&w.ID, &w.UserID, &w.Date, &w.SleepQuality, &w.EnergyLevel,
			&w.MuscleSoreness, &w.Notes); err != nil {
			return nil, fmt.Errorf("scanning wellness: %w", err)
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

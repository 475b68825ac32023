package models

import (
	"time"

	"github.com/google/uuid"
)

// DayType identifies the weekday slot a session belongs to.
type DayType string

const (
	Monday    DayType = "monday"
	Tuesday   DayType = "tuesday"
	Wednesday DayType = "wednesday"
	Thursday  DayType = "thursday"
	Friday    DayType = "friday"
	Saturday  DayType = "saturday"
	Sunday    DayType = "sunday"
)

// DayTypes lists the weekday slots in calendar order (Monday first).
var DayTypes = []DayType{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayTypeFor returns the day slot for a calendar date.
func DayTypeFor(t time.Time) DayType {
	switch t.Weekday() {
	case time.Monday:
		return Monday
	case time.Tuesday:
		return Tuesday
	case time.Wednesday:
		return Wednesday
	case time.Thursday:
		return Thursday
	case time.Friday:
		return Friday
	case time.Saturday:
		return Saturday
	default:
		return Sunday
	}
}

// Set is a single set of an exercise. SetNumber is 1-based and dense
// within its exercise; survivors are renumbered when a set is deleted.
// PyramidID tags sets that belong to one generated pyramid round.
type Set struct {
	ID          uuid.UUID  `json:"id"`
	SetNumber   int        `json:"set_number"`
	Reps        int        `json:"reps"`
	Weight      float64    `json:"weight_kg"`
	RestTimeSec *int       `json:"rest_time_sec,omitempty"`
	RIR         *int       `json:"rir,omitempty"`
	Completed   bool       `json:"completed"`
	PyramidID   *uuid.UUID `json:"pyramid_id,omitempty"`
}

// Volume returns weight*reps for a completed set, 0 otherwise.
func (s Set) Volume() float64 {
	if !s.Completed || s.Weight <= 0 || s.Reps <= 0 {
		return 0
	}
	return s.Weight * float64(s.Reps)
}

// Exercise is a named movement within a workout. Name is free text and
// is matched case-insensitively against the movement catalog for
// categorization; it does not have to exist there.
type Exercise struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Sets          []Set     `json:"sets"`
	RM            *float64  `json:"rm_kg,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	ExerciseOrder int       `json:"exercise_order"`
	SupersetGroup *int      `json:"superset_group,omitempty"`
}

// Workout is one training session.
type Workout struct {
	ID           uuid.UUID  `json:"id"`
	UserID       int        `json:"user_id"`
	Date         time.Time  `json:"date"`
	DayType      DayType    `json:"day_type"`
	SessionName  string     `json:"session_name"`
	Exercises    []Exercise `json:"exercises"`
	GeneralNotes string     `json:"general_notes,omitempty"`
	DurationMin  *int       `json:"duration_min,omitempty"`
	Completed    bool       `json:"completed"`
}

// Volume sums the volume of all completed sets across all exercises.
func (w Workout) Volume() float64 {
	var total float64
	for _, ex := range w.Exercises {
		for _, s := range ex.Sets {
			total += s.Volume()
		}
	}
	return total
}

// Goal is a target weight for an exercise, matched by name.
type Goal struct {
	ID           uuid.UUID `json:"id"`
	UserID       int       `json:"user_id"`
	ExerciseName string    `json:"exercise_name"`
	TargetWeight float64   `json:"target_weight_kg"`
}

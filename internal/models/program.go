package models

import "github.com/google/uuid"

// DayProgram is an exercise-name template for a weekday. System defaults
// are read-only; user programs carry Custom=true.
type DayProgram struct {
	ID          uuid.UUID `json:"id"`
	UserID      int       `json:"user_id"`
	DayType     DayType   `json:"day_type"`
	SessionName string    `json:"session_name"`
	Focus       string    `json:"focus,omitempty"`
	Exercises   []string  `json:"exercises"`
	Custom      bool      `json:"custom"`
}

// DefaultPrograms is the built-in weekly template. It seeds program
// selection when a user has not defined any programs of their own.
var DefaultPrograms = []DayProgram{
	{
		ID:          uuid.MustParse("a1000000-0000-0000-0000-000000000001"),
		DayType:     Monday,
		SessionName: "Snatch Day",
		Focus:       "Olympic lifting, snatch variants",
		Exercises:   []string{"Snatch Pull", "High Pull", "Muscle Snatch", "Back Squat", "Back Extension"},
	},
	{
		ID:          uuid.MustParse("a1000000-0000-0000-0000-000000000002"),
		DayType:     Tuesday,
		SessionName: "Back and Biceps",
		Focus:       "Pulling and arms",
		Exercises:   []string{"Pull-Up", "Barbell Row", "One-Arm Dumbbell Row", "Lat Pulldown", "Hammer Curl", "EZ-Bar Curl 21s"},
	},
	{
		ID:          uuid.MustParse("a1000000-0000-0000-0000-000000000003"),
		DayType:     Wednesday,
		SessionName: "Clean and Jerk Day",
		Focus:       "Olympic lifting, clean and jerk variants",
		Exercises:   []string{"Power Clean", "Hang Clean", "Push Press", "Front Squat", "Reverse Lunge", "Back Extension"},
	},
	{
		ID:          uuid.MustParse("a1000000-0000-0000-0000-000000000004"),
		DayType:     Thursday,
		SessionName: "Push Day",
		Focus:       "Pressing and triceps",
		Exercises:   []string{"Dip", "Bench Press", "Triceps Pushdown", "Overhead Triceps Extension", "Face Pull"},
	},
	{
		ID:          uuid.MustParse("a1000000-0000-0000-0000-000000000005"),
		DayType:     Friday,
		SessionName: "Leg Day",
		Focus:       "Lower body",
		Exercises:   []string{"Back Squat", "Incline Leg Press", "Romanian Deadlift", "Leg Extension", "Seated Leg Curl", "Hip Adduction"},
	},
	{
		ID:          uuid.MustParse("a1000000-0000-0000-0000-000000000006"),
		DayType:     Saturday,
		SessionName: "Chest and Back",
		Focus:       "Full torso",
		Exercises:   []string{"Pull-Up", "Lat Pulldown", "Dip", "Push-Up", "Push Press", "Face Pull"},
	},
	{
		ID:          uuid.MustParse("a1000000-0000-0000-0000-000000000007"),
		DayType:     Sunday,
		SessionName: "Rest / Active Recovery",
		Focus:       "Recovery",
		Exercises:   []string{"Stretching", "Mobility Work", "Light Cardio"},
	},
}

// ProgramForDay returns the first program matching the day, or nil.
// User programs take precedence over defaults by appearing first in
// the slice the caller passes in.
func ProgramForDay(day DayType, programs []DayProgram) *DayProgram {
	for i := range programs {
		if programs[i].DayType == day {
			return &programs[i]
		}
	}
	return nil
}

package models

import "strings"

// MovementInfo describes one catalog entry. The catalog feeds
// muscle-frequency analytics and name suggestions; workout exercises
// are free text and may reference movements not listed here.
type MovementInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Equipment string `json:"equipment,omitempty"`
}

// CategoryOther is assigned to exercise names absent from the catalog.
const CategoryOther = "Other"

// Categories lists the body-part categories used by the catalog.
var Categories = []string{
	"Back", "Biceps", "Triceps", "Shoulders", "Chest",
	"Legs", "Core", "Lower Back", "Full Body", "Olympic",
}

// Catalog is the built-in movement list.
var Catalog = []MovementInfo{
	// Back
	{ID: "pull-up", Name: "Pull-Up", Category: "Back", Equipment: "Bar"},
	{ID: "chin-up", Name: "Chin-Up", Category: "Back", Equipment: "Bar"},
	{ID: "barbell-row", Name: "Barbell Row", Category: "Back", Equipment: "Barbell"},
	{ID: "one-arm-dumbbell-row", Name: "One-Arm Dumbbell Row", Category: "Back", Equipment: "Dumbbell"},
	{ID: "lat-pulldown", Name: "Lat Pulldown", Category: "Back", Equipment: "Cable"},
	{ID: "seated-cable-row", Name: "Seated Cable Row", Category: "Back", Equipment: "Cable"},
	{ID: "pullover", Name: "Pullover", Category: "Back", Equipment: "Dumbbell"},

	// Biceps
	{ID: "barbell-curl", Name: "Barbell Curl", Category: "Biceps", Equipment: "Barbell"},
	{ID: "ez-bar-curl", Name: "EZ-Bar Curl", Category: "Biceps", Equipment: "EZ bar"},
	{ID: "ez-bar-curl-21s", Name: "EZ-Bar Curl 21s", Category: "Biceps", Equipment: "EZ bar"},
	{ID: "dumbbell-curl", Name: "Dumbbell Curl", Category: "Biceps", Equipment: "Dumbbells"},
	{ID: "hammer-curl", Name: "Hammer Curl", Category: "Biceps", Equipment: "Dumbbells"},
	{ID: "incline-curl", Name: "Incline Curl", Category: "Biceps", Equipment: "Dumbbells"},
	{ID: "cable-curl", Name: "Cable Curl", Category: "Biceps", Equipment: "Cable"},

	// Triceps
	{ID: "dip", Name: "Dip", Category: "Triceps", Equipment: "Parallel bars"},
	{ID: "bench-dip", Name: "Bench Dip", Category: "Triceps", Equipment: "Bench"},
	{ID: "triceps-pushdown", Name: "Triceps Pushdown", Category: "Triceps", Equipment: "Cable"},
	{ID: "rope-pushdown", Name: "Rope Pushdown", Category: "Triceps", Equipment: "Cable"},
	{ID: "overhead-triceps-extension", Name: "Overhead Triceps Extension", Category: "Triceps", Equipment: "Cable"},
	{ID: "skull-crusher", Name: "Skull Crusher", Category: "Triceps", Equipment: "EZ bar"},
	{ID: "triceps-kickback", Name: "Triceps Kickback", Category: "Triceps", Equipment: "Dumbbell"},

	// Shoulders
	{ID: "overhead-press", Name: "Overhead Press", Category: "Shoulders", Equipment: "Barbell"},
	{ID: "seated-dumbbell-press", Name: "Seated Dumbbell Press", Category: "Shoulders", Equipment: "Dumbbells"},
	{ID: "lateral-raise", Name: "Lateral Raise", Category: "Shoulders", Equipment: "Dumbbells"},
	{ID: "front-raise", Name: "Front Raise", Category: "Shoulders", Equipment: "Dumbbells"},
	{ID: "rear-delt-fly", Name: "Rear Delt Fly", Category: "Shoulders", Equipment: "Dumbbells"},
	{ID: "face-pull", Name: "Face Pull", Category: "Shoulders", Equipment: "Cable"},
	{ID: "upright-row", Name: "Upright Row", Category: "Shoulders", Equipment: "Barbell"},

	// Chest
	{ID: "bench-press", Name: "Bench Press", Category: "Chest", Equipment: "Barbell"},
	{ID: "incline-bench-press", Name: "Incline Bench Press", Category: "Chest", Equipment: "Barbell"},
	{ID: "dumbbell-bench-press", Name: "Dumbbell Bench Press", Category: "Chest", Equipment: "Dumbbells"},
	{ID: "chest-fly", Name: "Chest Fly", Category: "Chest", Equipment: "Dumbbells"},
	{ID: "cable-crossover", Name: "Cable Crossover", Category: "Chest", Equipment: "Cable"},
	{ID: "push-up", Name: "Push-Up", Category: "Chest"},

	// Legs
	{ID: "back-squat", Name: "Back Squat", Category: "Legs", Equipment: "Barbell"},
	{ID: "front-squat", Name: "Front Squat", Category: "Legs", Equipment: "Barbell"},
	{ID: "leg-press", Name: "Leg Press", Category: "Legs", Equipment: "Machine"},
	{ID: "incline-leg-press", Name: "Incline Leg Press", Category: "Legs", Equipment: "Machine"},
	{ID: "romanian-deadlift", Name: "Romanian Deadlift", Category: "Legs", Equipment: "Barbell"},
	{ID: "leg-extension", Name: "Leg Extension", Category: "Legs", Equipment: "Machine"},
	{ID: "seated-leg-curl", Name: "Seated Leg Curl", Category: "Legs", Equipment: "Machine"},
	{ID: "lying-leg-curl", Name: "Lying Leg Curl", Category: "Legs", Equipment: "Machine"},
	{ID: "walking-lunge", Name: "Walking Lunge", Category: "Legs", Equipment: "Dumbbells"},
	{ID: "reverse-lunge", Name: "Reverse Lunge", Category: "Legs", Equipment: "Barbell"},
	{ID: "bulgarian-split-squat", Name: "Bulgarian Split Squat", Category: "Legs", Equipment: "Dumbbells"},
	{ID: "hip-adduction", Name: "Hip Adduction", Category: "Legs", Equipment: "Machine"},
	{ID: "hip-abduction", Name: "Hip Abduction", Category: "Legs", Equipment: "Machine"},
	{ID: "calf-raise", Name: "Calf Raise", Category: "Legs", Equipment: "Machine"},

	// Core
	{ID: "plank", Name: "Plank", Category: "Core"},
	{ID: "hanging-leg-raise", Name: "Hanging Leg Raise", Category: "Core", Equipment: "Bar"},
	{ID: "cable-crunch", Name: "Cable Crunch", Category: "Core", Equipment: "Cable"},
	{ID: "ab-wheel-rollout", Name: "Ab Wheel Rollout", Category: "Core", Equipment: "Ab wheel"},
	{ID: "russian-twist", Name: "Russian Twist", Category: "Core"},

	// Lower back
	{ID: "back-extension", Name: "Back Extension", Category: "Lower Back", Equipment: "Bench"},
	{ID: "good-morning", Name: "Good Morning", Category: "Lower Back", Equipment: "Barbell"},
	{ID: "superman-hold", Name: "Superman Hold", Category: "Lower Back"},

	// Full body
	{ID: "deadlift", Name: "Deadlift", Category: "Full Body", Equipment: "Barbell"},
	{ID: "kettlebell-swing", Name: "Kettlebell Swing", Category: "Full Body", Equipment: "Kettlebell"},
	{ID: "thruster", Name: "Thruster", Category: "Full Body", Equipment: "Barbell"},
	{ID: "burpee", Name: "Burpee", Category: "Full Body"},

	// Olympic lifting
	{ID: "snatch", Name: "Snatch", Category: "Olympic", Equipment: "Barbell"},
	{ID: "snatch-pull", Name: "Snatch Pull", Category: "Olympic", Equipment: "Barbell"},
	{ID: "muscle-snatch", Name: "Muscle Snatch", Category: "Olympic", Equipment: "Barbell"},
	{ID: "high-pull", Name: "High Pull", Category: "Olympic", Equipment: "Barbell"},
	{ID: "power-clean", Name: "Power Clean", Category: "Olympic", Equipment: "Barbell"},
	{ID: "hang-clean", Name: "Hang Clean", Category: "Olympic", Equipment: "Barbell"},
	{ID: "clean-and-jerk", Name: "Clean and Jerk", Category: "Olympic", Equipment: "Barbell"},
	{ID: "push-press", Name: "Push Press", Category: "Olympic", Equipment: "Barbell"},
	{ID: "push-jerk", Name: "Push Jerk", Category: "Olympic", Equipment: "Barbell"},
	{ID: "overhead-squat", Name: "Overhead Squat", Category: "Olympic", Equipment: "Barbell"},
}

var categoryByName = func() map[string]string {
	m := make(map[string]string, len(Catalog))
	for _, mv := range Catalog {
		m[strings.ToLower(mv.Name)] = mv.Category
	}
	return m
}()

// CategoryFor maps an exercise name to its catalog category.
// Matching is case-insensitive; unknown names map to CategoryOther.
func CategoryFor(name string) string {
	if c, ok := categoryByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return CategoryOther
}

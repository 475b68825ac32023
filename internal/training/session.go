package training

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
)

// DefaultSetCount is how many empty sets a fresh exercise starts with.
const DefaultSetCount = 4

// NewSession builds an editable workout from a day program: one
// exercise per template name, each seeded with empty sets. A nil
// program yields a free session with no exercises.
func NewSession(program *models.DayProgram, day models.DayType, date time.Time, userID int) models.Workout {
	w := models.Workout{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		DayType:     day,
		SessionName: fmt.Sprintf("%s session", day),
	}
	if program == nil {
		return w
	}
	w.SessionName = program.SessionName
	w.Exercises = make([]models.Exercise, 0, len(program.Exercises))
	for i, name := range program.Exercises {
		w.Exercises = append(w.Exercises, NewExercise(name, i))
	}
	return w
}

// NewExercise creates an exercise with the default empty sets.
func NewExercise(name string, order int) models.Exercise {
	return models.Exercise{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(name),
		Sets:          DefaultSets(DefaultSetCount),
		ExerciseOrder: order,
	}
}

// DefaultSets returns count empty, numbered sets.
func DefaultSets(count int) []models.Set {
	sets := make([]models.Set, 0, count)
	for i := 0; i < count; i++ {
		sets = append(sets, models.Set{ID: uuid.New(), SetNumber: i + 1})
	}
	return sets
}

// AddSet appends an empty set to the exercise.
func AddSet(ex *models.Exercise) {
	ex.Sets = append(ex.Sets, models.Set{ID: uuid.New(), SetNumber: len(ex.Sets) + 1})
}

// DeleteSet removes a set by ID and renumbers the survivors densely.
// Unknown IDs are a no-op.
func DeleteSet(ex *models.Exercise, setID uuid.UUID) {
	out := ex.Sets[:0]
	for _, s := range ex.Sets {
		if s.ID != setID {
			out = append(out, s)
		}
	}
	ex.Sets = Renumber(out)
}

// AddExercise appends a named exercise at the end of the workout.
func AddExercise(w *models.Workout, name string) {
	w.Exercises = append(w.Exercises, NewExercise(name, len(w.Exercises)))
}

// DeleteExercise removes an exercise by ID and compacts display order.
func DeleteExercise(w *models.Workout, exerciseID uuid.UUID) {
	out := w.Exercises[:0]
	for _, ex := range w.Exercises {
		if ex.ID != exerciseID {
			out = append(out, ex)
		}
	}
	for i := range out {
		out[i].ExerciseOrder = i
	}
	w.Exercises = out
}

// MoveExercise shifts an exercise up (delta -1) or down (+1) in the
// display order. Moves past either end clamp to a no-op.
func MoveExercise(w *models.Workout, exerciseID uuid.UUID, delta int) {
	idx := -1
	for i, ex := range w.Exercises {
		if ex.ID == exerciseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	target := idx + delta
	if target < 0 || target >= len(w.Exercises) {
		return
	}
	w.Exercises[idx], w.Exercises[target] = w.Exercises[target], w.Exercises[idx]
	for i := range w.Exercises {
		w.Exercises[i].ExerciseOrder = i
	}
}

// ClampWeight floors a weight at zero.
func ClampWeight(weight float64) float64 {
	if weight < 0 {
		return 0
	}
	return weight
}

// ClampReps floors a rep count at zero.
func ClampReps(reps int) int {
	if reps < 0 {
		return 0
	}
	return reps
}

// ClampRIR confines a reps-in-reserve value to 0-10.
func ClampRIR(rir int) int {
	if rir < 0 {
		return 0
	}
	if rir > 10 {
		return 10
	}
	return rir
}

// warmupSteps is the ramp toward a working weight: percent of target
// and the reps performed there. Lighter steps take more reps.
var warmupSteps = []struct {
	percent float64
	reps    int
}{
	{0.40, 10},
	{0.55, 6},
	{0.70, 4},
	{0.85, 2},
}

// WarmupSets generates a ramp toward targetWeight, loads rounded to
// 2.5 kg with a 20 kg bar as the floor. Numbering starts at
// startNumber. Targets at or below the bar need no warmup.
func WarmupSets(targetWeight float64, startNumber int) []models.Set {
	const bar = 20.0
	if targetWeight <= bar {
		return nil
	}
	sets := make([]models.Set, 0, len(warmupSteps))
	n := startNumber
	for _, step := range warmupSteps {
		w := RoundToIncrement(targetWeight*step.percent, 2.5)
		if w < bar {
			w = bar
		}
		if w >= targetWeight {
			continue
		}
		sets = append(sets, models.Set{
			ID:        uuid.New(),
			SetNumber: n,
			Reps:      step.reps,
			Weight:    w,
		})
		n++
	}
	return sets
}

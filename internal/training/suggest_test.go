package training

import (
	"testing"

	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
)

func intPtr(v int) *int { return &v }

func doneSet(number int, weight float64, reps int, rir *int) models.Set {
	return models.Set{
		ID:        uuid.New(),
		SetNumber: number,
		Weight:    weight,
		Reps:      reps,
		RIR:       rir,
		Completed: true,
	}
}

// TestSuggest verifies the progression rules: plenty in reserve adds
// load, grinding adds a rep, and anything uncertain repeats the load.
func TestSuggest(t *testing.T) {
	tests := []struct {
		name string
		sets []models.Set
		want Suggestion
	}{
		{
			name: "all easy adds weight",
			sets: []models.Set{
				doneSet(1, 60, 8, intPtr(3)),
				doneSet(2, 60, 8, intPtr(2)),
			},
			want: Suggestion{Kind: SuggestWeight, Value: 2.5, Label: "+2.5 kg"},
		},
		{
			name: "one hard set adds a rep",
			sets: []models.Set{
				doneSet(1, 60, 8, intPtr(3)),
				doneSet(2, 60, 8, intPtr(1)),
			},
			want: Suggestion{Kind: SuggestReps, Value: 1, Label: "+1 rep"},
		},
		{
			name: "zero reserve adds a rep",
			sets: []models.Set{doneSet(1, 100, 3, intPtr(0))},
			want: Suggestion{Kind: SuggestReps, Value: 1, Label: "+1 rep"},
		},
		{
			name: "missing RIR repeats",
			sets: []models.Set{
				doneSet(1, 60, 8, intPtr(3)),
				doneSet(2, 60, 8, nil),
			},
			want: suggestionSame,
		},
		{
			name: "incomplete set repeats",
			sets: []models.Set{
				doneSet(1, 60, 8, intPtr(3)),
				{ID: uuid.New(), SetNumber: 2, Weight: 60, Reps: 8, RIR: intPtr(3)},
			},
			want: suggestionSame,
		},
		{
			name: "no sets repeats",
			sets: nil,
			want: suggestionSame,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Suggest(tt.sets); got != tt.want {
				t.Errorf("Suggest() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestLastSession verifies the reference session lookup: latest
// completed workout wins, matching is case-insensitive, and exercises
// with no completed history yield nil.
func TestLastSession(t *testing.T) {
	older := models.Workout{
		ID: uuid.New(), Date: date("2024-06-01"), Completed: true,
		Exercises: []models.Exercise{{
			ID: uuid.New(), Name: "Back Squat",
			Sets: []models.Set{doneSet(1, 100, 5, intPtr(2))},
		}},
	}
	newer := models.Workout{
		ID: uuid.New(), Date: date("2024-06-08"), Completed: true,
		Exercises: []models.Exercise{{
			ID: uuid.New(), Name: "back squat",
			Sets: []models.Set{doneSet(1, 105, 5, intPtr(2)), doneSet(2, 105, 5, intPtr(3))},
		}},
	}
	draft := models.Workout{
		ID: uuid.New(), Date: date("2024-06-15"), Completed: false,
		Exercises: []models.Exercise{{
			ID: uuid.New(), Name: "Back Squat",
			Sets: []models.Set{doneSet(1, 110, 5, intPtr(2))},
		}},
	}
	workouts := []models.Workout{older, draft, newer}

	res := LastSession("Back Squat", workouts)
	if res == nil {
		t.Fatal("LastSession returned nil for known exercise")
	}
	if res.WorkoutDate != "2024-06-08" {
		t.Errorf("reference date = %s, want 2024-06-08 (latest completed)", res.WorkoutDate)
	}
	if len(res.LastSets) != 2 || res.LastSets[0].Weight != 105 {
		t.Errorf("reference sets = %+v", res.LastSets)
	}
	if res.Suggestion.Kind != SuggestWeight {
		t.Errorf("suggestion = %+v, want weight increase", res.Suggestion)
	}

	if got := LastSession("Deadlift", workouts); got != nil {
		t.Errorf("unknown exercise = %+v, want nil", got)
	}
	if got := LastSession("", workouts); got != nil {
		t.Errorf("empty name = %+v, want nil", got)
	}
}

// TestApplySuggestion verifies index-wise prefill: untouched targets
// receive the adjusted reference values, manual entries survive, and
// extra targets beyond the reference stay empty.
func TestApplySuggestion(t *testing.T) {
	last := []models.Set{
		doneSet(1, 60, 8, intPtr(3)),
		doneSet(2, 60, 8, intPtr(2)),
	}
	target := []models.Set{
		{ID: uuid.New(), SetNumber: 1},
		{ID: uuid.New(), SetNumber: 2, Weight: 65, Reps: 5}, // manual entry
		{ID: uuid.New(), SetNumber: 3},
	}

	got := ApplySuggestion(Suggestion{Kind: SuggestWeight, Value: 2.5}, last, target)
	if got[0].Weight != 62.5 || got[0].Reps != 8 {
		t.Errorf("set 1 = %v kg x %d, want 62.5 x 8", got[0].Weight, got[0].Reps)
	}
	if got[1].Weight != 65 || got[1].Reps != 5 {
		t.Errorf("manual entry overwritten: %v kg x %d", got[1].Weight, got[1].Reps)
	}
	if got[2].Weight != 0 || got[2].Reps != 0 {
		t.Errorf("set 3 beyond reference = %v kg x %d, want empty", got[2].Weight, got[2].Reps)
	}

	got = ApplySuggestion(Suggestion{Kind: SuggestReps, Value: 1}, last, []models.Set{{ID: uuid.New(), SetNumber: 1}})
	if got[0].Weight != 60 || got[0].Reps != 9 {
		t.Errorf("rep suggestion = %v kg x %d, want 60 x 9", got[0].Weight, got[0].Reps)
	}
}

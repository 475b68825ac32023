package training

import (
	"sort"
	"strings"

	"github.com/claude/ironlog/internal/models"
)

// SuggestionKind says which dial the next session should turn.
type SuggestionKind string

const (
	SuggestWeight SuggestionKind = "weight" // add load, keep reps
	SuggestReps   SuggestionKind = "reps"   // add a rep, keep load
	SuggestSame   SuggestionKind = "same"   // repeat last session
)

// Suggestion is a progression recommendation derived from the most
// recent completed session of an exercise.
type Suggestion struct {
	Kind  SuggestionKind `json:"kind"`
	Value float64        `json:"value"`
	Label string         `json:"label"`
}

// LastSessionResult pairs the reference sets with the recommendation.
type LastSessionResult struct {
	WorkoutDate string       `json:"workout_date"`
	LastSets    []models.Set `json:"last_sets"`
	Suggestion  Suggestion   `json:"suggestion"`
}

var suggestionSame = Suggestion{Kind: SuggestSame, Value: 0, Label: "same load"}

// LastSession finds the most recent completed workout containing the
// exercise (matched case-insensitively) and derives a suggestion from
// its sets. Returns nil when the exercise has no completed history.
func LastSession(exerciseName string, workouts []models.Workout) *LastSessionResult {
	name := strings.ToLower(strings.TrimSpace(exerciseName))
	if name == "" {
		return nil
	}

	completed := make([]models.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.Completed {
			completed = append(completed, w)
		}
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].Date.After(completed[j].Date)
	})

	for _, w := range completed {
		for _, ex := range w.Exercises {
			if strings.ToLower(strings.TrimSpace(ex.Name)) != name {
				continue
			}
			if len(ex.Sets) == 0 {
				return nil
			}
			return &LastSessionResult{
				WorkoutDate: w.Date.Format("2006-01-02"),
				LastSets:    ex.Sets,
				Suggestion:  Suggest(ex.Sets),
			}
		}
	}
	return nil
}

// Suggest derives the recommendation from a reference session's sets.
// All sets completed with RIR recorded: min RIR >= 2 means the load was
// comfortable (add 2.5 kg), otherwise add a rep. Anything less certain
// (incomplete sets, missing RIR) repeats the same load.
func Suggest(sets []models.Set) Suggestion {
	var completed []models.Set
	for _, s := range sets {
		if s.Completed {
			completed = append(completed, s)
		}
	}
	if len(completed) == 0 || len(completed) != len(sets) {
		return suggestionSame
	}

	minRIR := -1
	for _, s := range completed {
		if s.RIR == nil {
			return suggestionSame
		}
		if minRIR < 0 || *s.RIR < minRIR {
			minRIR = *s.RIR
		}
	}

	if minRIR >= 2 {
		return Suggestion{Kind: SuggestWeight, Value: 2.5, Label: "+2.5 kg"}
	}
	return Suggestion{Kind: SuggestReps, Value: 1, Label: "+1 rep"}
}

// ApplySuggestion prefills target sets from the reference sets plus the
// suggestion. Correspondence is by index; only untouched target sets
// (weight and reps both zero) are filled, so manual entries survive.
func ApplySuggestion(sug Suggestion, lastSets, target []models.Set) []models.Set {
	out := make([]models.Set, len(target))
	copy(out, target)

	for i := range out {
		if i >= len(lastSets) {
			break
		}
		if out[i].Weight != 0 || out[i].Reps != 0 {
			continue
		}
		ref := lastSets[i]
		out[i].Weight = ref.Weight
		out[i].Reps = ref.Reps
		switch sug.Kind {
		case SuggestWeight:
			out[i].Weight = ref.Weight + sug.Value
		case SuggestReps:
			out[i].Reps = ref.Reps + int(sug.Value)
		}
	}
	return out
}

package training

import (
	"math"
	"strings"

	"github.com/claude/ironlog/internal/models"
)

// GoalProgressResult is a goal annotated with the lifter's best effort.
type GoalProgressResult struct {
	models.Goal
	CurrentWeight float64 `json:"current_weight_kg"`
	Percent       int     `json:"percent"`
}

// GoalProgress computes progress toward each goal: the heaviest
// completed set ever recorded for a matching exercise name
// (case-insensitive), as a capped percentage of the target. A target
// of zero or less always reads 0%.
func GoalProgress(goals []models.Goal, workouts []models.Workout) []GoalProgressResult {
	out := make([]GoalProgressResult, 0, len(goals))
	for _, g := range goals {
		best := bestWeightFor(g.ExerciseName, workouts)
		percent := 0
		if g.TargetWeight > 0 {
			percent = int(math.Round(best / g.TargetWeight * 100))
			if percent > 100 {
				percent = 100
			}
		}
		out = append(out, GoalProgressResult{Goal: g, CurrentWeight: best, Percent: percent})
	}
	return out
}

func bestWeightFor(exerciseName string, workouts []models.Workout) float64 {
	name := strings.ToLower(strings.TrimSpace(exerciseName))
	var best float64
	for _, w := range workouts {
		for _, ex := range w.Exercises {
			if strings.ToLower(strings.TrimSpace(ex.Name)) != name {
				continue
			}
			for _, s := range ex.Sets {
				if s.Completed && s.Weight > best {
					best = s.Weight
				}
			}
		}
	}
	return best
}

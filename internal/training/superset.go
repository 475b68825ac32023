package training

import (
	"sort"

	"github.com/claude/ironlog/internal/models"
)

// ExerciseGroup is a display grouping of a workout's exercises: either
// one standalone exercise or all members of a superset, placed at the
// position where the superset first appears.
type ExerciseGroup struct {
	SupersetGroup *int              `json:"superset_group,omitempty"`
	Exercises     []models.Exercise `json:"exercises"`
}

// RenderGroups orders exercises by ExerciseOrder and collects shared
// superset numbers into single groups. Exercises without a group tag
// stay standalone. There is no limit on superset size.
func RenderGroups(exercises []models.Exercise) []ExerciseGroup {
	ordered := make([]models.Exercise, len(exercises))
	copy(ordered, exercises)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ExerciseOrder < ordered[j].ExerciseOrder
	})

	var groups []ExerciseGroup
	index := make(map[int]int) // superset number -> position in groups

	for _, ex := range ordered {
		if ex.SupersetGroup == nil {
			groups = append(groups, ExerciseGroup{Exercises: []models.Exercise{ex}})
			continue
		}
		n := *ex.SupersetGroup
		if pos, ok := index[n]; ok {
			groups[pos].Exercises = append(groups[pos].Exercises, ex)
			continue
		}
		tag := n
		index[n] = len(groups)
		groups = append(groups, ExerciseGroup{
			SupersetGroup: &tag,
			Exercises:     []models.Exercise{ex},
		})
	}
	return groups
}

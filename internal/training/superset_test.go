package training

import (
	"testing"

	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
)

// TestRenderGroups verifies superset display grouping: members sharing
// a group number collapse at the first member's position, order follows
// ExerciseOrder, and untagged exercises stay standalone.
func TestRenderGroups(t *testing.T) {
	groupOne := 1
	exercises := []models.Exercise{
		{ID: uuid.New(), Name: "Curl", ExerciseOrder: 1, SupersetGroup: &groupOne},
		{ID: uuid.New(), Name: "Row", ExerciseOrder: 0},
		{ID: uuid.New(), Name: "Pushdown", ExerciseOrder: 3, SupersetGroup: &groupOne},
		{ID: uuid.New(), Name: "Shrug", ExerciseOrder: 2},
	}

	groups := RenderGroups(exercises)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	if groups[0].SupersetGroup != nil || groups[0].Exercises[0].Name != "Row" {
		t.Errorf("first group = %+v, want standalone Row", groups[0])
	}
	if groups[1].SupersetGroup == nil || *groups[1].SupersetGroup != 1 {
		t.Fatalf("second group = %+v, want superset 1", groups[1])
	}
	if len(groups[1].Exercises) != 2 ||
		groups[1].Exercises[0].Name != "Curl" || groups[1].Exercises[1].Name != "Pushdown" {
		t.Errorf("superset members = %+v", groups[1].Exercises)
	}
	if groups[2].Exercises[0].Name != "Shrug" {
		t.Errorf("third group = %+v, want standalone Shrug", groups[2])
	}
}

// TestRenderGroupsLargeSuperset checks that more than two exercises can
// share a group.
func TestRenderGroupsLargeSuperset(t *testing.T) {
	g := 2
	exercises := []models.Exercise{
		{ID: uuid.New(), Name: "A", ExerciseOrder: 0, SupersetGroup: &g},
		{ID: uuid.New(), Name: "B", ExerciseOrder: 1, SupersetGroup: &g},
		{ID: uuid.New(), Name: "C", ExerciseOrder: 2, SupersetGroup: &g},
	}
	groups := RenderGroups(exercises)
	if len(groups) != 1 || len(groups[0].Exercises) != 3 {
		t.Fatalf("got %+v, want one group of three", groups)
	}
}

// TestRenderGroupsEmpty checks the empty input.
func TestRenderGroupsEmpty(t *testing.T) {
	if groups := RenderGroups(nil); len(groups) != 0 {
		t.Errorf("got %d groups for no exercises", len(groups))
	}
}

package training

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
)

// TestGenerateRepsAscending verifies the linear ramp up to maxReps.
func TestGenerateRepsAscending(t *testing.T) {
	tests := []struct {
		totalSets, maxReps int
		want               []int
	}{
		{5, 10, []int{2, 4, 6, 8, 10}},
		{4, 12, []int{3, 6, 9, 12}},
		{3, 5, []int{2, 3, 5}},
		{1, 8, []int{8}},
		{6, 2, []int{1, 1, 1, 1, 2, 2}}, // floor of one rep per set
	}
	for _, tt := range tests {
		got := GenerateReps(SchemeAscending, tt.totalSets, tt.maxReps)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("GenerateReps(ascending, %d, %d) = %v, want %v",
				tt.totalSets, tt.maxReps, got, tt.want)
		}
	}
}

// TestGenerateRepsAscendingDescending verifies the mirrored shape: the
// peak lands on the middle set and both slopes follow the same ratios.
func TestGenerateRepsAscendingDescending(t *testing.T) {
	tests := []struct {
		totalSets, maxReps int
		want               []int
	}{
		{7, 10, []int{3, 5, 8, 10, 8, 5, 3}},
		{5, 12, []int{4, 8, 12, 8, 4}},
		{4, 10, []int{3, 7, 10, 3}},
		{1, 10, []int{10}},
		{3, 1, []int{1, 1, 1}},
	}
	for _, tt := range tests {
		got := GenerateReps(SchemeAscendingDescending, tt.totalSets, tt.maxReps)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("GenerateReps(asc-desc, %d, %d) = %v, want %v",
				tt.totalSets, tt.maxReps, got, tt.want)
		}
	}
}

// TestGenerateRepsInvariants checks determinism, the minimum of one rep
// per set, and nil output for non-positive inputs.
func TestGenerateRepsInvariants(t *testing.T) {
	for _, scheme := range []Scheme{SchemeAscending, SchemeAscendingDescending} {
		for totalSets := 1; totalSets <= 12; totalSets++ {
			for _, maxReps := range []int{1, 3, 10, 20} {
				a := GenerateReps(scheme, totalSets, maxReps)
				b := GenerateReps(scheme, totalSets, maxReps)
				if !reflect.DeepEqual(a, b) {
					t.Fatalf("GenerateReps(%s, %d, %d) not deterministic: %v vs %v",
						scheme, totalSets, maxReps, a, b)
				}
				if len(a) != totalSets {
					t.Fatalf("GenerateReps(%s, %d, %d) has %d sets", scheme, totalSets, maxReps, len(a))
				}
				for i, r := range a {
					if r < 1 {
						t.Errorf("GenerateReps(%s, %d, %d)[%d] = %d, want >= 1",
							scheme, totalSets, maxReps, i, r)
					}
				}
			}
		}
	}
	if got := GenerateReps(SchemeAscending, 0, 10); got != nil {
		t.Errorf("zero totalSets = %v, want nil", got)
	}
	if got := GenerateReps(SchemeAscending, 5, 0); got != nil {
		t.Errorf("zero maxReps = %v, want nil", got)
	}
}

// TestBuildSets verifies numbering, per-round pyramid IDs, and rest
// placement within and between rounds.
func TestBuildSets(t *testing.T) {
	cfg := PyramidConfig{
		Rounds:               2,
		RestBetweenSetsSec:   60,
		RestBetweenRoundsSec: 180,
	}
	sets := BuildSets([]int{3, 5, 3}, cfg, 1)
	if len(sets) != 6 {
		t.Fatalf("got %d sets, want 6", len(sets))
	}
	for i, s := range sets {
		if s.SetNumber != i+1 {
			t.Errorf("set %d numbered %d", i, s.SetNumber)
		}
		if s.PyramidID == nil {
			t.Fatalf("set %d has no pyramid ID", i)
		}
	}
	if *sets[0].PyramidID != *sets[2].PyramidID {
		t.Error("first round does not share a pyramid ID")
	}
	if *sets[0].PyramidID == *sets[3].PyramidID {
		t.Error("rounds share a pyramid ID, want distinct IDs per round")
	}
	// Within-round rest on all but the last set; between-rounds rest on
	// the first round's last set only.
	if sets[0].RestTimeSec == nil || *sets[0].RestTimeSec != 60 {
		t.Errorf("set 1 rest = %v, want 60", sets[0].RestTimeSec)
	}
	if sets[2].RestTimeSec == nil || *sets[2].RestTimeSec != 180 {
		t.Errorf("set 3 rest = %v, want 180", sets[2].RestTimeSec)
	}
	if sets[5].RestTimeSec != nil {
		t.Errorf("final set rest = %v, want none", *sets[5].RestTimeSec)
	}
}

// TestBuildSetsSingleRound verifies that a zero round count still
// builds one round, numbered from the requested start.
func TestBuildSetsSingleRound(t *testing.T) {
	sets := BuildSets([]int{2, 4, 6}, PyramidConfig{}, 5)
	if len(sets) != 3 {
		t.Fatalf("got %d sets, want 3", len(sets))
	}
	if sets[0].SetNumber != 5 || sets[2].SetNumber != 7 {
		t.Errorf("numbering = %d..%d, want 5..7", sets[0].SetNumber, sets[2].SetNumber)
	}
	if sets[0].RestTimeSec != nil {
		t.Errorf("unexpected rest %v with no rest configured", *sets[0].RestTimeSec)
	}
}

// TestPyramidLifecycle runs a full generate, append, delete sequence:
// a 7-set ascending-descending pyramid is built onto an exercise, a
// plain set is appended after it, then the pyramid is removed and the
// survivor renumbers back to 1.
func TestPyramidLifecycle(t *testing.T) {
	reps := GenerateReps(SchemeAscendingDescending, 7, 10)
	sets := BuildSets(reps, PyramidConfig{}, 1)
	if len(sets) != 7 {
		t.Fatalf("got %d sets, want 7", len(sets))
	}
	pid := *sets[0].PyramidID
	for i, s := range sets {
		if s.SetNumber != i+1 {
			t.Errorf("set %d numbered %d, want %d", i, s.SetNumber, i+1)
		}
		if s.Reps != reps[i] {
			t.Errorf("set %d reps %d, want %d", i, s.Reps, reps[i])
		}
		if *s.PyramidID != pid {
			t.Error("sets of one round must share a pyramid ID")
		}
	}

	sets = append(sets, models.Set{ID: uuid.New(), SetNumber: 8, Reps: 5})
	sets = DeletePyramid(sets, pid)
	if len(sets) != 1 {
		t.Fatalf("after delete got %d sets, want 1", len(sets))
	}
	if sets[0].SetNumber != 1 {
		t.Errorf("survivor numbered %d, want 1", sets[0].SetNumber)
	}
	if sets[0].Reps != 5 {
		t.Errorf("survivor reps %d, want 5", sets[0].Reps)
	}
}

// TestUpdatePyramid verifies in-place reshaping: weights survive on
// kept positions, the round grows and shrinks with the new sequence,
// and an empty sequence deletes the round.
func TestUpdatePyramid(t *testing.T) {
	sets := BuildSets([]int{3, 5, 3}, PyramidConfig{}, 1)
	pid := *sets[0].PyramidID
	sets[0].Weight = 60
	sets[1].Weight = 70
	sets = append(sets, models.Set{ID: uuid.New(), SetNumber: 4, Reps: 8})

	sets = UpdatePyramid(sets, pid, []int{2, 4, 6, 4}, PyramidConfig{RestBetweenSetsSec: 90})
	if len(sets) != 5 {
		t.Fatalf("got %d sets, want 5", len(sets))
	}
	if sets[0].Weight != 60 || sets[1].Weight != 70 {
		t.Errorf("weights = %v, %v; want 60, 70", sets[0].Weight, sets[1].Weight)
	}
	if sets[2].Reps != 6 || sets[3].Reps != 4 {
		t.Errorf("reshaped reps = %d, %d; want 6, 4", sets[2].Reps, sets[3].Reps)
	}
	if sets[4].Reps != 8 || sets[4].PyramidID != nil {
		t.Errorf("trailing plain set disturbed: %+v", sets[4])
	}
	for i, s := range sets {
		if s.SetNumber != i+1 {
			t.Errorf("set %d numbered %d after update", i, s.SetNumber)
		}
	}

	sets = UpdatePyramid(sets, pid, nil, PyramidConfig{})
	if len(sets) != 1 || sets[0].Reps != 8 || sets[0].SetNumber != 1 {
		t.Errorf("empty sequence should delete the round, got %+v", sets)
	}
}

// TestGroupSets verifies display grouping: identical adjacent rounds
// merge with a round count, differing or separated rounds stay apart,
// and untagged sets pass through standalone.
func TestGroupSets(t *testing.T) {
	roundA := BuildSets([]int{3, 5, 3}, PyramidConfig{}, 1)
	roundB := BuildSets([]int{3, 5, 3}, PyramidConfig{}, 4)
	roundC := BuildSets([]int{2, 4}, PyramidConfig{}, 7)
	plain := models.Set{ID: uuid.New(), SetNumber: 9, Reps: 10}

	var sets []models.Set
	sets = append(sets, roundA...)
	sets = append(sets, roundB...)
	sets = append(sets, roundC...)
	sets = append(sets, plain)

	groups := GroupSets(sets)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	if !groups[0].IsPyramid() || groups[0].Rounds != 2 || groups[0].RepPattern != "3-5-3" {
		t.Errorf("merged group = %+v, want 2 rounds of 3-5-3", groups[0])
	}
	if len(groups[0].Sets) != 6 || len(groups[0].PyramidIDs) != 2 {
		t.Errorf("merged group has %d sets / %d IDs, want 6 / 2",
			len(groups[0].Sets), len(groups[0].PyramidIDs))
	}
	if !groups[1].IsPyramid() || groups[1].RepPattern != "2-4" || groups[1].Rounds != 1 {
		t.Errorf("second group = %+v, want one round of 2-4", groups[1])
	}
	if groups[2].IsPyramid() || len(groups[2].Sets) != 1 {
		t.Errorf("plain set not standalone: %+v", groups[2])
	}
}

// TestGroupSetsNonAdjacent verifies that matching rounds separated by a
// plain set never merge.
func TestGroupSetsNonAdjacent(t *testing.T) {
	roundA := BuildSets([]int{3, 5}, PyramidConfig{}, 1)
	roundB := BuildSets([]int{3, 5}, PyramidConfig{}, 4)

	var sets []models.Set
	sets = append(sets, roundA...)
	sets = append(sets, models.Set{ID: uuid.New(), SetNumber: 3, Reps: 8})
	sets = append(sets, roundB...)

	groups := GroupSets(sets)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	if groups[0].Rounds != 1 || groups[2].Rounds != 1 {
		t.Error("separated rounds must not merge")
	}
}

// TestGroupSetsIdempotent checks that regrouping the flattened sets of
// a grouping yields the same structure.
func TestGroupSetsIdempotent(t *testing.T) {
	var sets []models.Set
	sets = append(sets, BuildSets([]int{2, 4, 2}, PyramidConfig{Rounds: 3}, 1)...)
	sets = append(sets, models.Set{ID: uuid.New(), SetNumber: 10, Reps: 12})

	first := GroupSets(sets)
	var flat []models.Set
	for _, g := range first {
		flat = append(flat, g.Sets...)
	}
	second := GroupSets(flat)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("grouping not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

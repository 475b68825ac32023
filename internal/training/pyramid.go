package training

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
)

// Scheme selects the shape of a generated pyramid.
type Scheme string

const (
	SchemeAscending           Scheme = "ascending"
	SchemeAscendingDescending Scheme = "ascending-descending"
)

// PyramidConfig drives rep-sequence generation. Rounds replicates the
// sequence; rest fields attach rest targets to the generated sets.
type PyramidConfig struct {
	Scheme               Scheme `json:"scheme"`
	TotalSets            int    `json:"total_sets"`
	MaxReps              int    `json:"max_reps"`
	Rounds               int    `json:"rounds"`
	RestBetweenSetsSec   int    `json:"rest_between_sets_sec"`
	RestBetweenRoundsSec int    `json:"rest_between_rounds_sec"`
}

// GenerateReps produces the rep sequence for one pyramid round.
// Ascending ramps linearly to maxReps; ascending-descending peaks at
// the middle set and mirrors down. Every set gets at least one rep.
// Non-positive totalSets or maxReps yields nil. The function is pure:
// callers may edit the returned slice and regenerate at will.
func GenerateReps(scheme Scheme, totalSets, maxReps int) []int {
	if totalSets <= 0 || maxReps <= 0 {
		return nil
	}
	if totalSets == 1 {
		return []int{maxReps}
	}

	reps := make([]int, totalSets)

	if scheme == SchemeAscending {
		for i := range reps {
			r := int(math.Round(float64(i+1) / float64(totalSets) * float64(maxReps)))
			reps[i] = max(1, r)
		}
		return reps
	}

	peak := totalSets / 2
	ascLen := peak + 1
	for i := range reps {
		var ratio float64
		if i <= peak {
			ratio = float64(i+1) / float64(ascLen)
		} else {
			distFromEnd := totalSets - 1 - i
			ratio = float64(distFromEnd+1) / float64(ascLen)
		}
		reps[i] = max(1, int(math.Round(ratio*float64(maxReps))))
	}
	return reps
}

// BuildSets materializes a (possibly hand-edited) rep sequence into
// workout sets, replicated cfg.Rounds times. Each round carries its own
// PyramidID. Rest between sets applies within a round; a round's last
// set carries the between-rounds rest when another round follows.
// Numbering starts at startNumber.
func BuildSets(reps []int, cfg PyramidConfig, startNumber int) []models.Set {
	if len(reps) == 0 {
		return nil
	}
	rounds := max(1, cfg.Rounds)

	sets := make([]models.Set, 0, len(reps)*rounds)
	n := startNumber
	for round := 0; round < rounds; round++ {
		pid := uuid.New()
		for i, r := range reps {
			s := models.Set{
				ID:        uuid.New(),
				SetNumber: n,
				Reps:      max(1, r),
				PyramidID: &pid,
			}
			lastInRound := i == len(reps)-1
			switch {
			case lastInRound && round < rounds-1 && cfg.RestBetweenRoundsSec > 0:
				rest := cfg.RestBetweenRoundsSec
				s.RestTimeSec = &rest
			case !lastInRound && cfg.RestBetweenSetsSec > 0:
				rest := cfg.RestBetweenSetsSec
				s.RestTimeSec = &rest
			}
			sets = append(sets, s)
			n++
		}
	}
	return sets
}

// DeletePyramid removes every set tagged with one of the given pyramid
// IDs and renumbers the survivors densely from 1.
func DeletePyramid(sets []models.Set, ids ...uuid.UUID) []models.Set {
	drop := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	out := make([]models.Set, 0, len(sets))
	for _, s := range sets {
		if s.PyramidID != nil && drop[*s.PyramidID] {
			continue
		}
		out = append(out, s)
	}
	return Renumber(out)
}

// UpdatePyramid re-applies a rep sequence to an existing round,
// adding or removing sets as needed. Weights on surviving positions
// are kept; rest targets are refreshed from cfg. Set numbering is made
// dense afterwards.
func UpdatePyramid(sets []models.Set, id uuid.UUID, reps []int, cfg PyramidConfig) []models.Set {
	if len(reps) == 0 {
		return DeletePyramid(sets, id)
	}

	out := make([]models.Set, 0, len(sets))
	inserted := false
	var existing []models.Set
	for _, s := range sets {
		if s.PyramidID != nil && *s.PyramidID == id {
			existing = append(existing, s)
			continue
		}
		// Splice the rebuilt round at the position of its first set.
		if len(existing) > 0 && !inserted {
			out = append(out, rebuildRound(existing, id, reps, cfg)...)
			inserted = true
		}
		out = append(out, s)
	}
	if len(existing) > 0 && !inserted {
		out = append(out, rebuildRound(existing, id, reps, cfg)...)
	}
	return Renumber(out)
}

func rebuildRound(existing []models.Set, id uuid.UUID, reps []int, cfg PyramidConfig) []models.Set {
	round := make([]models.Set, len(reps))
	for i, r := range reps {
		var s models.Set
		if i < len(existing) {
			s = existing[i]
		} else {
			s = models.Set{ID: uuid.New()}
		}
		pid := id
		s.PyramidID = &pid
		s.Reps = max(1, r)
		s.RestTimeSec = nil
		if i < len(reps)-1 && cfg.RestBetweenSetsSec > 0 {
			rest := cfg.RestBetweenSetsSec
			s.RestTimeSec = &rest
		}
		round[i] = s
	}
	return round
}

// Renumber makes SetNumber dense and 1-based, preserving order.
func Renumber(sets []models.Set) []models.Set {
	for i := range sets {
		sets[i].SetNumber = i + 1
	}
	return sets
}

// SetGroup is a display grouping of an exercise's sets: either a single
// standalone set run or one or more merged pyramid rounds.
type SetGroup struct {
	PyramidIDs []uuid.UUID  `json:"pyramid_ids,omitempty"`
	Sets       []models.Set `json:"sets"`
	RepPattern string       `json:"rep_pattern,omitempty"`
	Rounds     int          `json:"rounds"`
}

// IsPyramid reports whether the group represents pyramid rounds.
func (g SetGroup) IsPyramid() bool { return len(g.PyramidIDs) > 0 }

// GroupSets partitions an ordered set list into display groups:
// consecutive sets sharing a PyramidID form a round, and adjacent
// rounds with identical rep patterns merge into one group with a round
// count. Untagged sets pass through as standalone groups. The grouping
// is idempotent; non-adjacent rounds never merge.
func GroupSets(sets []models.Set) []SetGroup {
	type run struct {
		pid  *uuid.UUID
		sets []models.Set
	}
	var runs []run
	for _, s := range sets {
		var pid *uuid.UUID
		if s.PyramidID != nil {
			pid = s.PyramidID
		}
		if len(runs) > 0 && samePID(runs[len(runs)-1].pid, pid) {
			runs[len(runs)-1].sets = append(runs[len(runs)-1].sets, s)
			continue
		}
		runs = append(runs, run{pid: pid, sets: []models.Set{s}})
	}

	var groups []SetGroup
	for _, r := range runs {
		if r.pid == nil {
			groups = append(groups, SetGroup{Sets: r.sets})
			continue
		}
		pattern := repPattern(r.sets)
		if len(groups) > 0 {
			last := &groups[len(groups)-1]
			if last.IsPyramid() && last.RepPattern == pattern {
				last.PyramidIDs = append(last.PyramidIDs, *r.pid)
				last.Sets = append(last.Sets, r.sets...)
				last.Rounds++
				continue
			}
		}
		groups = append(groups, SetGroup{
			PyramidIDs: []uuid.UUID{*r.pid},
			Sets:       r.sets,
			RepPattern: pattern,
			Rounds:     1,
		})
	}
	return groups
}

func samePID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func repPattern(sets []models.Set) string {
	parts := make([]string, len(sets))
	for i, s := range sets {
		parts[i] = strconv.Itoa(s.Reps)
	}
	return strings.Join(parts, "-")
}

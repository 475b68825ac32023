package training

import (
	"sort"

	"github.com/claude/ironlog/internal/models"
)

// BodyWeightStats summarizes a body-weight history.
type BodyWeightStats struct {
	Count   int      `json:"count"`
	Latest  float64  `json:"latest_kg"`
	Min     float64  `json:"min_kg"`
	Max     float64  `json:"max_kg"`
	Delta30 *float64 `json:"delta_30d_kg,omitempty"`
}

// WeightStats computes latest, min, max, and the change against the
// closest reading at least 30 days before the latest one. Delta30 is
// nil when no reading that old exists.
func WeightStats(readings []models.BodyWeight) BodyWeightStats {
	if len(readings) == 0 {
		return BodyWeightStats{}
	}

	sorted := make([]models.BodyWeight, len(readings))
	copy(sorted, readings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	latest := sorted[len(sorted)-1]
	stats := BodyWeightStats{
		Count:  len(sorted),
		Latest: latest.Weight,
		Min:    sorted[0].Weight,
		Max:    sorted[0].Weight,
	}
	for _, r := range sorted {
		if r.Weight < stats.Min {
			stats.Min = r.Weight
		}
		if r.Weight > stats.Max {
			stats.Max = r.Weight
		}
	}

	cutoff := latest.Date.AddDate(0, 0, -30)
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i].Date.After(cutoff) {
			continue
		}
		d := latest.Weight - sorted[i].Weight
		stats.Delta30 = &d
		break
	}
	return stats
}

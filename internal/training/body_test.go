package training

import (
	"testing"

	"github.com/claude/ironlog/internal/models"
)

// TestWeightStats verifies min/max/latest and the 30-day delta against
// the closest reading at least 30 days before the latest.
func TestWeightStats(t *testing.T) {
	readings := []models.BodyWeight{
		{Date: date("2024-06-10"), Weight: 81.5},
		{Date: date("2024-04-01"), Weight: 84.0},
		{Date: date("2024-05-05"), Weight: 83.2},
		{Date: date("2024-06-01"), Weight: 82.0},
	}

	stats := WeightStats(readings)
	if stats.Count != 4 {
		t.Errorf("count = %d, want 4", stats.Count)
	}
	if stats.Latest != 81.5 {
		t.Errorf("latest = %v, want 81.5", stats.Latest)
	}
	if stats.Min != 81.5 || stats.Max != 84.0 {
		t.Errorf("min/max = %v/%v, want 81.5/84.0", stats.Min, stats.Max)
	}
	// Latest is 2024-06-10; cutoff 2024-05-11. Closest at-or-before is 2024-05-05.
	if stats.Delta30 == nil {
		t.Fatal("delta nil, want set")
	}
	if got := *stats.Delta30; got != 81.5-83.2 {
		t.Errorf("delta = %v, want %v", got, 81.5-83.2)
	}
}

// TestWeightStatsNoBaseline verifies the delta stays nil when all
// readings fall inside the 30-day window.
func TestWeightStatsNoBaseline(t *testing.T) {
	readings := []models.BodyWeight{
		{Date: date("2024-06-01"), Weight: 82.0},
		{Date: date("2024-06-10"), Weight: 81.5},
	}
	stats := WeightStats(readings)
	if stats.Delta30 != nil {
		t.Errorf("delta = %v, want nil", *stats.Delta30)
	}
	if stats.Latest != 81.5 {
		t.Errorf("latest = %v, want 81.5", stats.Latest)
	}
}

// TestWeightStatsEmpty verifies the zero value on no readings.
func TestWeightStatsEmpty(t *testing.T) {
	stats := WeightStats(nil)
	if stats.Count != 0 || stats.Latest != 0 || stats.Delta30 != nil {
		t.Errorf("stats = %+v, want zero value", stats)
	}
}

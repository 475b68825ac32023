// Package training holds the pure calculation core: 1RM estimation,
// pyramid generation, progression suggestions, and training-load
// analytics. Everything here is deterministic and does no I/O; invalid
// inputs yield zero values rather than errors.
package training

import "math"

// Estimate1RM estimates a one-rep max from a set using the Epley
// formula, rounded to the nearest kilogram. A single rep is taken at
// face value; zero weight or zero reps estimate nothing.
func Estimate1RM(weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	if reps == 0 || weight == 0 {
		return 0
	}
	return math.Round(weight * (1 + float64(reps)/30))
}

// PercentOfRM returns weight as a whole percentage of rm.
// ok is false when rm or weight is not positive.
func PercentOfRM(weight, rm float64) (int, bool) {
	if rm <= 0 || weight <= 0 {
		return 0, false
	}
	return int(math.Round(weight / rm * 100)), true
}

// LoadForPercent returns the working weight for a percentage of a 1RM,
// rounded to 0.1 kg. Non-positive inputs yield 0.
func LoadForPercent(rm float64, percent int) float64 {
	if rm <= 0 || percent <= 0 {
		return 0
	}
	return math.Round(rm*float64(percent)/100*10) / 10
}

// Zone classifies a training intensity band.
type Zone string

const (
	ZoneMaximal     Zone = "maximal"
	ZoneStrength    Zone = "strength"
	ZoneHypertrophy Zone = "hypertrophy"
	ZoneEndurance   Zone = "endurance"
)

// ClassifyZone maps a %RM to its training zone. Lower bounds are
// inclusive; below 60% there is no zone and ok is false.
func ClassifyZone(percent int) (Zone, bool) {
	switch {
	case percent >= 90:
		return ZoneMaximal, true
	case percent >= 80:
		return ZoneStrength, true
	case percent >= 70:
		return ZoneHypertrophy, true
	case percent >= 60:
		return ZoneEndurance, true
	default:
		return "", false
	}
}

// RMReferenceRow is one line of the percentage reference table.
type RMReferenceRow struct {
	Percent int     `json:"percent"`
	Weight  float64 `json:"weight_kg"`
	Reps    string  `json:"reps"`
	Target  string  `json:"target"`
}

var rmReference = []struct {
	percent int
	reps    string
	target  string
}{
	{95, "1-2", "max strength"},
	{90, "2-3", "pure strength"},
	{85, "4-5", "strength"},
	{80, "6-7", "strength + hypertrophy"},
	{75, "8-10", "hypertrophy"},
	{70, "10-12", "hypertrophy"},
	{65, "12-15", "endurance"},
	{60, "15-20", "endurance / volume"},
	{55, "18-22", "endurance / volume"},
	{50, "20+", "warm-up / technique"},
}

// RMReferenceTable builds the percentage ladder (95% down to 50%) for a
// given 1RM with loads rounded to 0.1 kg. A non-positive rm returns nil.
func RMReferenceTable(rm float64) []RMReferenceRow {
	if rm <= 0 {
		return nil
	}
	rows := make([]RMReferenceRow, 0, len(rmReference))
	for _, r := range rmReference {
		rows = append(rows, RMReferenceRow{
			Percent: r.percent,
			Weight:  LoadForPercent(rm, r.percent),
			Reps:    r.reps,
			Target:  r.target,
		})
	}
	return rows
}

// RoundToIncrement rounds value to the nearest multiple of increment
// (e.g. 2.5 for plate math). A non-positive increment returns value
// unchanged.
func RoundToIncrement(value, increment float64) float64 {
	if increment <= 0 {
		return value
	}
	return math.Round(value/increment) * increment
}

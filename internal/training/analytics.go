package training

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/claude/ironlog/internal/models"
)

// FilterSince returns the workouts dated on or after start, preserving
// order. The zero time keeps everything.
func FilterSince(workouts []models.Workout, start time.Time) []models.Workout {
	if start.IsZero() {
		return workouts
	}
	out := make([]models.Workout, 0, len(workouts))
	for _, w := range workouts {
		if !w.Date.Before(start) {
			out = append(out, w)
		}
	}
	return out
}

// WeekVolume is the tonnage lifted in one ISO week.
type WeekVolume struct {
	WeekKey
	Volume float64 `json:"volume_kg"`
}

// WeeklyVolume sums completed-set volume per ISO week over completed
// workouts, ordered chronologically.
func WeeklyVolume(workouts []models.Workout) []WeekVolume {
	byWeek := make(map[WeekKey]float64)
	for _, w := range workouts {
		if !w.Completed {
			continue
		}
		byWeek[WeekOf(w.Date)] += w.Volume()
	}

	out := make([]WeekVolume, 0, len(byWeek))
	for k, v := range byWeek {
		out = append(out, WeekVolume{WeekKey: k, Volume: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekKey.Before(out[j].WeekKey) })
	return out
}

// DeloadStatus reports whether a lighter week is overdue.
type DeloadStatus struct {
	Due           bool         `json:"due"`
	WeeksAnalyzed int          `json:"weeks_analyzed"`
	AverageVolume float64      `json:"average_volume_kg"`
	LastWeeks     []WeekVolume `json:"last_weeks,omitempty"`
}

// Deload examines the four most recent training weeks. A deload is due
// when all four carried volume and none of them dropped below 60% of
// their mean, i.e. no week was itself a deload. Fewer than four weeks
// of history is never due.
func Deload(workouts []models.Workout) DeloadStatus {
	weeks := WeeklyVolume(workouts)
	if len(weeks) < 4 {
		return DeloadStatus{WeeksAnalyzed: len(weeks)}
	}

	last4 := weeks[len(weeks)-4:]
	var sum float64
	for _, w := range last4 {
		if w.Volume <= 0 {
			return DeloadStatus{WeeksAnalyzed: len(weeks), LastWeeks: last4}
		}
		sum += w.Volume
	}
	avg := sum / 4

	due := true
	for _, w := range last4 {
		if w.Volume < avg*0.6 {
			due = false
			break
		}
	}
	return DeloadStatus{
		Due:           due,
		WeeksAnalyzed: len(weeks),
		AverageVolume: avg,
		LastWeeks:     last4,
	}
}

// StreakResult holds consecutive-training-day counts.
type StreakResult struct {
	Current int `json:"current_days"`
	Best    int `json:"best_days"`
}

// Streaks counts consecutive days with at least one completed session.
// The current streak walks back from today, or from yesterday when
// today has no session yet. The best streak scans the trailing year.
func Streaks(workouts []models.Workout, today time.Time) StreakResult {
	days := completedDays(workouts)
	todayKey := dayKey(today)

	var res StreakResult

	cursor := today
	if !days[todayKey] {
		cursor = today.AddDate(0, 0, -1)
	}
	for days[dayKey(cursor)] {
		res.Current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	run := 0
	cursor = today
	for i := 0; i < 365; i++ {
		if days[dayKey(cursor)] {
			run++
			if run > res.Best {
				res.Best = run
			}
		} else {
			run = 0
		}
		cursor = cursor.AddDate(0, 0, -1)
	}
	return res
}

func completedDays(workouts []models.Workout) map[string]bool {
	days := make(map[string]bool)
	for _, w := range workouts {
		if w.Completed {
			days[dayKey(w.Date)] = true
		}
	}
	return days
}

// CalendarDay is one heatmap cell. Tier 0 is a rest day; tiers 1-3
// split training days at the 33rd and 66th volume percentiles.
type CalendarDay struct {
	Date     string   `json:"date"`
	Volume   float64  `json:"volume_kg"`
	Sessions []string `json:"sessions,omitempty"`
	Tier     int      `json:"tier"`
}

// CalendarResult is the trailing-year training heatmap.
type CalendarResult struct {
	Days          []CalendarDay `json:"days"`
	TotalSessions int           `json:"total_sessions"`
	BestStreak    int           `json:"best_streak_days"`
}

// Calendar builds the heatmap for the 364 days ending today, extended
// backwards to the nearest Monday so the grid starts on a week
// boundary. Volume tiers are recomputed from the nonzero daily volumes
// present in the window's source data on every call.
func Calendar(workouts []models.Workout, today time.Time) CalendarResult {
	type dayAgg struct {
		volume   float64
		sessions []string
	}
	byDay := make(map[string]*dayAgg)
	for _, w := range workouts {
		if !w.Completed {
			continue
		}
		k := dayKey(w.Date)
		agg := byDay[k]
		if agg == nil {
			agg = &dayAgg{}
			byDay[k] = agg
		}
		agg.volume += w.Volume()
		agg.sessions = append(agg.sessions, w.SessionName)
	}

	var volumes []float64
	for _, agg := range byDay {
		if agg.volume > 0 {
			volumes = append(volumes, agg.volume)
		}
	}
	sort.Float64s(volumes)
	p33, p66 := percentile(volumes, 0.33, 1), percentile(volumes, 0.66, 2)

	end := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	start := startOfWeek(end.AddDate(0, 0, -363))

	var days []CalendarDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		k := dayKey(d)
		day := CalendarDay{Date: k}
		if agg, ok := byDay[k]; ok {
			day.Volume = agg.volume
			day.Sessions = agg.sessions
			switch {
			case agg.volume <= 0:
				day.Tier = 0
			case agg.volume <= p33:
				day.Tier = 1
			case agg.volume <= p66:
				day.Tier = 2
			default:
				day.Tier = 3
			}
		}
		days = append(days, day)
	}

	return CalendarResult{
		Days:          days,
		TotalSessions: len(byDay),
		BestStreak:    Streaks(workouts, today).Best,
	}
}

// percentile picks the value at floor(n*p) of a sorted slice, with a
// fallback for empty input so tier boundaries stay ordered.
func percentile(sorted []float64, p, fallback float64) float64 {
	if len(sorted) == 0 {
		return fallback
	}
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	if sorted[idx] == 0 {
		return fallback
	}
	return sorted[idx]
}

// ExerciseStats are per-exercise totals within one session.
type ExerciseStats struct {
	MaxWeight float64 `json:"max_weight_kg"`
	TotalReps int     `json:"total_reps"`
	Volume    float64 `json:"volume_kg"`
}

// ExerciseComparison compares one exercise across two sessions.
type ExerciseComparison struct {
	Name       string        `json:"name"`
	A          ExerciseStats `json:"a"`
	B          ExerciseStats `json:"b"`
	WeightDiff float64       `json:"weight_diff_kg"`
	VolumeDiff float64       `json:"volume_diff_kg"`
}

// SessionComparison is the exercise-by-exercise diff of two sessions.
type SessionComparison struct {
	Exercises    []ExerciseComparison `json:"exercises"`
	TotalVolumeA float64              `json:"total_volume_a_kg"`
	TotalVolumeB float64              `json:"total_volume_b_kg"`
	VolumeDiff   float64              `json:"volume_diff_kg"`
}

// CompareSessions diffs session B (recent) against session A (older),
// exercise by exercise. Names are matched case-insensitively; an
// exercise present in only one session gets zero stats on the other
// side. Only completed sets count.
func CompareSessions(a, b models.Workout) SessionComparison {
	type entry struct {
		display string
		a, b    ExerciseStats
	}
	var order []string
	entries := make(map[string]*entry)

	collect := func(w models.Workout, pick func(*entry) *ExerciseStats) {
		for _, ex := range w.Exercises {
			key := strings.ToLower(strings.TrimSpace(ex.Name))
			e, ok := entries[key]
			if !ok {
				e = &entry{display: ex.Name}
				entries[key] = e
				order = append(order, key)
			}
			stats := pick(e)
			for _, s := range ex.Sets {
				if !s.Completed {
					continue
				}
				if s.Weight > stats.MaxWeight {
					stats.MaxWeight = s.Weight
				}
				stats.TotalReps += s.Reps
				stats.Volume += s.Weight * float64(s.Reps)
			}
		}
	}
	collect(a, func(e *entry) *ExerciseStats { return &e.a })
	collect(b, func(e *entry) *ExerciseStats { return &e.b })

	var res SessionComparison
	for _, key := range order {
		e := entries[key]
		res.Exercises = append(res.Exercises, ExerciseComparison{
			Name:       e.display,
			A:          e.a,
			B:          e.b,
			WeightDiff: e.b.MaxWeight - e.a.MaxWeight,
			VolumeDiff: e.b.Volume - e.a.Volume,
		})
		res.TotalVolumeA += e.a.Volume
		res.TotalVolumeB += e.b.Volume
	}
	res.VolumeDiff = res.TotalVolumeB - res.TotalVolumeA
	return res
}

// PersonalRecord holds the all-time bests for one exercise.
type PersonalRecord struct {
	Name             string  `json:"name"`
	MaxWeight        float64 `json:"max_weight_kg"`
	MaxWeightDate    string  `json:"max_weight_date,omitempty"`
	MaxEstimated1RM  float64 `json:"max_estimated_1rm_kg"`
	MaxSessionVolume float64 `json:"max_session_volume_kg"`
}

// PersonalRecords scans all workouts for per-exercise bests: heaviest
// completed set, best Epley estimate, and biggest single-session
// volume. Results are sorted by max weight, heaviest first.
func PersonalRecords(workouts []models.Workout) []PersonalRecord {
	var order []string
	records := make(map[string]*PersonalRecord)

	for _, w := range workouts {
		for _, ex := range w.Exercises {
			key := strings.ToLower(strings.TrimSpace(ex.Name))
			if key == "" {
				continue
			}

			var sessionMaxWeight, sessionMax1RM, sessionVolume float64
			for _, s := range ex.Sets {
				if !s.Completed || s.Weight <= 0 {
					continue
				}
				if s.Weight > sessionMaxWeight {
					sessionMaxWeight = s.Weight
				}
				if est := Estimate1RM(s.Weight, s.Reps); est > sessionMax1RM {
					sessionMax1RM = est
				}
				sessionVolume += s.Weight * float64(s.Reps)
			}

			rec, ok := records[key]
			if !ok {
				rec = &PersonalRecord{Name: ex.Name}
				records[key] = rec
				order = append(order, key)
			}
			if sessionMaxWeight > rec.MaxWeight {
				rec.MaxWeight = sessionMaxWeight
				rec.MaxWeightDate = w.Date.Format("2006-01-02")
			}
			if sessionMax1RM > rec.MaxEstimated1RM {
				rec.MaxEstimated1RM = sessionMax1RM
			}
			if sessionVolume > rec.MaxSessionVolume {
				rec.MaxSessionVolume = sessionVolume
			}
		}
	}

	out := make([]PersonalRecord, 0, len(order))
	for _, key := range order {
		if records[key].MaxWeight > 0 {
			out = append(out, *records[key])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MaxWeight > out[j].MaxWeight })
	return out
}

// ProgressEntry compares an exercise's last session against the one
// before it.
type ProgressEntry struct {
	Name     string  `json:"name"`
	Current  float64 `json:"current_kg"`
	Previous float64 `json:"previous_kg"`
	Diff     float64 `json:"diff_kg"`
}

// RecentProgress reports per-exercise max-weight movement between each
// exercise's two most recent sessions, biggest gains first. Exercises
// without two sessions of completed loaded sets are skipped.
func RecentProgress(workouts []models.Workout) []ProgressEntry {
	byDateDesc := make([]models.Workout, len(workouts))
	copy(byDateDesc, workouts)
	sort.SliceStable(byDateDesc, func(i, j int) bool {
		return byDateDesc[i].Date.After(byDateDesc[j].Date)
	})

	type history struct {
		display string
		weights []float64 // per session, most recent first
	}
	var order []string
	histories := make(map[string]*history)

	for _, w := range byDateDesc {
		for _, ex := range w.Exercises {
			key := strings.ToLower(strings.TrimSpace(ex.Name))
			if key == "" {
				continue
			}
			h, ok := histories[key]
			if !ok {
				h = &history{display: ex.Name}
				histories[key] = h
				order = append(order, key)
			}
			if len(h.weights) >= 2 {
				continue
			}
			var maxW float64
			for _, s := range ex.Sets {
				if s.Completed && s.Weight > maxW {
					maxW = s.Weight
				}
			}
			h.weights = append(h.weights, maxW)
		}
	}

	var out []ProgressEntry
	for _, key := range order {
		h := histories[key]
		if len(h.weights) < 2 || h.weights[0] <= 0 || h.weights[1] <= 0 {
			continue
		}
		out = append(out, ProgressEntry{
			Name:     h.display,
			Current:  h.weights[0],
			Previous: h.weights[1],
			Diff:     h.weights[0] - h.weights[1],
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Diff > out[j].Diff })
	return out
}

// WeekComparisonResult contrasts the current Monday-based week with
// the previous one.
type WeekComparisonResult struct {
	ThisWeekSessions  int     `json:"this_week_sessions"`
	LastWeekSessions  int     `json:"last_week_sessions"`
	ThisWeekVolume    float64 `json:"this_week_volume_kg"`
	LastWeekVolume    float64 `json:"last_week_volume_kg"`
	VolumeDiffPercent int     `json:"volume_diff_percent"`
}

// CompareWeeks totals sessions and completed-set volume for the week
// containing now versus the week before it. The percent diff is 0 when
// last week had no volume.
func CompareWeeks(workouts []models.Workout, now time.Time) WeekComparisonResult {
	thisWeek := startOfWeek(now)
	lastWeek := thisWeek.AddDate(0, 0, -7)

	var res WeekComparisonResult
	for _, w := range workouts {
		switch {
		case !w.Date.Before(thisWeek):
			res.ThisWeekSessions++
			res.ThisWeekVolume += w.Volume()
		case !w.Date.Before(lastWeek):
			res.LastWeekSessions++
			res.LastWeekVolume += w.Volume()
		}
	}
	if res.LastWeekVolume > 0 {
		res.VolumeDiffPercent = int(math.Round(
			(res.ThisWeekVolume - res.LastWeekVolume) / res.LastWeekVolume * 100))
	}
	return res
}

// GlobalStatsResult are whole-window training totals.
type GlobalStatsResult struct {
	TotalSessions     int     `json:"total_sessions"`
	CompletedSessions int     `json:"completed_sessions"`
	TotalVolume       float64 `json:"total_volume_kg"`
	TotalSets         int     `json:"total_sets"`
	TotalReps         int     `json:"total_reps"`
}

// GlobalStats totals the given workouts. Sets count when completed
// with positive weight and reps; callers window the input first.
func GlobalStats(workouts []models.Workout) GlobalStatsResult {
	var res GlobalStatsResult
	res.TotalSessions = len(workouts)
	for _, w := range workouts {
		if w.Completed {
			res.CompletedSessions++
		}
		for _, ex := range w.Exercises {
			for _, s := range ex.Sets {
				if !s.Completed || s.Weight <= 0 || s.Reps <= 0 {
					continue
				}
				res.TotalVolume += s.Weight * float64(s.Reps)
				res.TotalSets++
				res.TotalReps += s.Reps
			}
		}
	}
	return res
}

// CategoryFrequency counts distinct training days for one body-part
// category.
type CategoryFrequency struct {
	Category string `json:"category"`
	Days     int    `json:"days"`
}

// MuscleFrequency counts, per catalog category, the distinct dates on
// which the category was trained. Exercise names missing from the
// catalog group under Other. Most-trained categories come first.
func MuscleFrequency(workouts []models.Workout) []CategoryFrequency {
	daysByCategory := make(map[string]map[string]bool)
	for _, w := range workouts {
		k := dayKey(w.Date)
		for _, ex := range w.Exercises {
			cat := models.CategoryFor(ex.Name)
			if daysByCategory[cat] == nil {
				daysByCategory[cat] = make(map[string]bool)
			}
			daysByCategory[cat][k] = true
		}
	}

	out := make([]CategoryFrequency, 0, len(daysByCategory))
	for cat, days := range daysByCategory {
		out = append(out, CategoryFrequency{Category: cat, Days: len(days)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Days != out[j].Days {
			return out[i].Days > out[j].Days
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// RMPoint is one recorded rep-max observation.
type RMPoint struct {
	Date string  `json:"date"`
	RM   float64 `json:"rm_kg"`
}

// RMHistory extracts the recorded RM series for an exercise, oldest
// first. Only positive RM entries appear.
func RMHistory(workouts []models.Workout, exerciseName string) []RMPoint {
	name := strings.ToLower(strings.TrimSpace(exerciseName))
	if name == "" {
		return nil
	}

	byDateAsc := make([]models.Workout, len(workouts))
	copy(byDateAsc, workouts)
	sort.SliceStable(byDateAsc, func(i, j int) bool {
		return byDateAsc[i].Date.Before(byDateAsc[j].Date)
	})

	var out []RMPoint
	for _, w := range byDateAsc {
		for _, ex := range w.Exercises {
			if strings.ToLower(strings.TrimSpace(ex.Name)) != name {
				continue
			}
			if ex.RM != nil && *ex.RM > 0 {
				out = append(out, RMPoint{Date: w.Date.Format("2006-01-02"), RM: *ex.RM})
			}
		}
	}
	return out
}

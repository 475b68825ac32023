package training

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// TestWeekOf verifies ISO week attribution, including the year-boundary
// cases where the ISO week-year differs from the calendar year.
func TestWeekOf(t *testing.T) {
	tests := []struct {
		day  string
		want WeekKey
	}{
		{"2024-01-01", WeekKey{2024, 1}}, // a Monday
		{"2024-01-07", WeekKey{2024, 1}},
		{"2024-01-08", WeekKey{2024, 2}},
		{"2024-12-30", WeekKey{2025, 1}}, // late December rolls into next ISO year
		{"2023-01-01", WeekKey{2022, 52}},
		{"2024-06-15", WeekKey{2024, 24}},
	}
	for _, tt := range tests {
		if got := WeekOf(date(tt.day)); got != tt.want {
			t.Errorf("WeekOf(%s) = %+v, want %+v", tt.day, got, tt.want)
		}
	}
}

// TestWeekKeyBefore verifies chronological ordering across years, where
// string comparison of week labels would get it wrong.
func TestWeekKeyBefore(t *testing.T) {
	tests := []struct {
		a, b WeekKey
		want bool
	}{
		{WeekKey{2024, 9}, WeekKey{2024, 10}, true},
		{WeekKey{2024, 10}, WeekKey{2024, 9}, false},
		{WeekKey{2023, 52}, WeekKey{2024, 1}, true},
		{WeekKey{2024, 5}, WeekKey{2024, 5}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Before(tt.b); got != tt.want {
			t.Errorf("%+v.Before(%+v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

// TestWindowStart verifies the trailing month cutoff and the all-time
// zero value.
func TestWindowStart(t *testing.T) {
	now := date("2024-06-15")
	if got := WindowStart(now, 3); !got.Equal(date("2024-03-15")) {
		t.Errorf("WindowStart(3 months) = %v", got)
	}
	if got := WindowStart(now, 0); !got.IsZero() {
		t.Errorf("WindowStart(0) = %v, want zero time", got)
	}
	if got := WindowStart(now, -1); !got.IsZero() {
		t.Errorf("WindowStart(-1) = %v, want zero time", got)
	}
}

// TestStartOfWeek verifies Monday alignment for every weekday,
// including Sunday wrapping back six days.
func TestStartOfWeek(t *testing.T) {
	monday := date("2024-06-10")
	for i := 0; i < 7; i++ {
		d := monday.AddDate(0, 0, i)
		if got := startOfWeek(d); !got.Equal(monday) {
			t.Errorf("startOfWeek(%s) = %v, want %v", d.Format("2006-01-02"), got, monday)
		}
	}
}

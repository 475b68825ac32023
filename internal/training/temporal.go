package training

import "time"

// WeekKey identifies an ISO-8601 week. Year is the ISO week-year, which
// can differ from the calendar year around January 1st.
type WeekKey struct {
	Year int `json:"year"`
	Week int `json:"week"`
}

// WeekOf returns the ISO week containing t.
func WeekOf(t time.Time) WeekKey {
	y, w := t.ISOWeek()
	return WeekKey{Year: y, Week: w}
}

// Before orders week keys chronologically across year boundaries.
func (k WeekKey) Before(other WeekKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Week < other.Week
}

// WindowStart returns the cutoff date for a trailing window of whole
// calendar months. months == 0 means all time (the zero time).
func WindowStart(now time.Time, months int) time.Time {
	if months <= 0 {
		return time.Time{}
	}
	return now.AddDate(0, -months, 0)
}

// startOfWeek returns midnight on the Monday of t's week, in t's location.
func startOfWeek(t time.Time) time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := int(d.Weekday()) - 1
	if offset < 0 {
		offset = 6 // Sunday
	}
	return d.AddDate(0, 0, -offset)
}

// dayKey normalizes a timestamp to its calendar date string.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

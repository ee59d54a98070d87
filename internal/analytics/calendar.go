package analytics

import "time"

const day = 24 * time.Hour

// monthStart returns midnight on the first day of the month offset months
// away from t's month. Negative offsets go back, rolling the year as needed.
func monthStart(t time.Time, offset int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(offset), 1, 0, 0, 0, 0, t.Location())
}

// daysIn returns the number of days in the given month
func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// sameMonth reports whether t falls in the calendar month starting at start
func sameMonth(t, start time.Time) bool {
	if t.IsZero() {
		return false
	}
	t = t.In(start.Location())
	return t.Year() == start.Year() && t.Month() == start.Month()
}

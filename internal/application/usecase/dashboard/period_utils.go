// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import "time"

// WeekStartDay is the first day of the aggregation week. Weeks run
// Sunday through Saturday, matching the web client's date library
// default; the weekly filter bounds and any day labeling must use the
// same convention.
const WeekStartDay = time.Sunday

// MonthBounds returns the first and last calendar day of the month
// containing date, at midnight in date's location. Gregorian,
// locale-independent.
func MonthBounds(date time.Time) (start, end time.Time) {
	loc := date.Location()
	start = time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// WeekBounds returns the Sunday and Saturday of the week containing date,
// at midnight in date's location.
func WeekBounds(date time.Time) (start, end time.Time) {
	loc := date.Location()
	daysSinceWeekStart := int(date.Weekday() - WeekStartDay)
	start = time.Date(date.Year(), date.Month(), date.Day()-daysSinceWeekStart, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 0, 6)
	return start, end
}

// dateOnly truncates a timestamp to its calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// monthKey formats a date as its YYYY-MM bucket key.
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// dayKey formats a date as its YYYY-MM-DD bucket key.
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999000000, t.Location())
}

// TomorrowWindow returns the [midnight, 23:59:59.999] window of the calendar
// day after now in now's location, plus that day's canonical YYYY-MM-DD key.
func TomorrowWindow(now time.Time) (start, end time.Time, dayKey string) {
	tomorrow := BeginningOfDay(now).AddDate(0, 0, 1)
	return tomorrow, EndOfDay(tomorrow), DayKey(tomorrow)
}

// DayKey renders a calendar date as its canonical YYYY-MM-DD key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

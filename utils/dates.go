// utils/dates.go
package utils

import "time"

// CalendarDate is the wire and storage format for collection and departure
// dates. Dates are timezone-naive: a booking's day never shifts with the
// server's location.
const CalendarDate = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// Today returns the current calendar date string.
func Today() string {
	return time.Now().Format(CalendarDate)
}

// Tomorrow returns tomorrow's calendar date string.
func Tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format(CalendarDate)
}

// ParseCalendarDate parses a YYYY-MM-DD string into a UTC date.
func ParseCalendarDate(s string) (time.Time, error) {
	return time.Parse(CalendarDate, s)
}

// IsCalendarDate reports whether s is a well-formed YYYY-MM-DD date.
func IsCalendarDate(s string) bool {
	_, err := time.Parse(CalendarDate, s)
	return err == nil
}

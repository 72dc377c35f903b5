// utils/dates.go
package utils

import "time"

// Booking dates are stored in two forms derived from the same calendar date:
// a display string and a canonical string used for equality and range queries.
const (
	BookingDateDisplayLayout = "02 January 2006" // e.g. "28 March 2025"
	BookingDateRawLayout     = "2006-01-02"      // e.g. "2025-03-28"
)

func FormatBookingDate(t time.Time) string {
	return t.Format(BookingDateDisplayLayout)
}

func FormatBookingDateRaw(t time.Time) string {
	return t.Format(BookingDateRawLayout)
}

func ParseBookingDateRaw(s string) (time.Time, error) {
	return time.Parse(BookingDateRawLayout, s)
}

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

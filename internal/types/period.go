package types

import "time"

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

// WeekStart returns midnight of the Sunday that starts the week containing t.
func WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// SameWeek reports whether a and b fall in the same Sunday-to-Saturday week.
func SameWeek(a, b time.Time) bool {
	start := WeekStart(b)
	end := start.AddDate(0, 0, 7)
	return !a.Before(start) && a.Before(end)
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Year() == b.Year()
}

// SameYear reports whether a and b fall in the same calendar year.
func SameYear(a, b time.Time) bool {
	return a.Year() == b.Year()
}

// LastDayOfMonth returns the number of days in the month containing t.
func LastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// ClampDay returns day, reduced to the last valid day of the month
// containing t if the month is shorter. A template anchored on the 31st
// therefore lands on the 30th in April and on the 28th (or 29th) in February.
func ClampDay(t time.Time, day int) int {
	if last := LastDayOfMonth(t); day > last {
		return last
	}
	return day
}

// Midnight truncates t to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// LastMonths enumerates the n months ending at the month containing now,
// in chronological order.
func LastMonths(now time.Time, n int) []Month {
	months := make([]Month, 0, n)
	current := MonthOf(now)
	for i := n - 1; i >= 0; i-- {
		months = append(months, current.AddDate(0, -i))
	}
	return months
}

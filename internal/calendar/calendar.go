// Package calendar provides leap-year-aware month arithmetic for amortization
// stepping and deadline comparisons.
package calendar

import "time"

// IsLeapYear reports whether year is a leap year in the Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366 depending on leap year.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month of the given year.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths advances t by n calendar months, clamping to the end of the
// target month. Unlike time.AddDate, Jan 31 + 1 month yields Feb 28 (or 29),
// not Mar 3.
func AddMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	target := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if max := DaysInMonth(target.Year(), target.Month()); day > max {
		day = max
	}
	return time.Date(target.Year(), target.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// MonthsBetween returns the number of whole calendar months from a to b.
// Negative when b precedes a.
func MonthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if months > 0 && b.Day() < a.Day() {
		// Day of month not yet reached in the final month, unless a's day
		// does not exist in b's month and b sits at month end.
		if b.Day() < DaysInMonth(b.Year(), b.Month()) {
			months--
		}
	} else if months < 0 && b.Day() > a.Day() {
		months++
	}
	return months
}

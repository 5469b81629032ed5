// Package dates holds the calendar month arithmetic the contract flow
// depends on. All math uses calendar months, not fixed day counts, so
// month-length differences (28-31 days) are absorbed by rollover.
package dates

import "time"

// AddMonths adds n calendar months to t.
func AddMonths(t time.Time, n int) time.Time {
	return t.AddDate(0, n, 0)
}

// MonthsBetween returns the whole-month span between start and end with a
// day-of-month correction: if the end day precedes the start day the span
// has not completed its last month yet, so one is subtracted. Never
// negative.
func MonthsBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// CalcEndDate derives a contract end date from its start and duration in
// months.
func CalcEndDate(start time.Time, duration int) time.Time {
	return AddMonths(start, duration)
}

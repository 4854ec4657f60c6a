package services

import "time"

// MonthWindow returns the inclusive bounds of the calendar month containing
// month: the first day at 00:00:00 and the last day at 23:59:59, in month's
// location.
func MonthWindow(month time.Time) (time.Time, time.Time) {
	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	// Day 0 of the next month normalizes to the last day of this one.
	end := time.Date(month.Year(), month.Month()+1, 0, 23, 59, 59, 0, month.Location())
	return start, end
}

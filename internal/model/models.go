package model

import "time"

type ID = uint

// Date truncates t to its calendar date at UTC midnight.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddYears moves a calendar date n years forward, clamping Feb 29 to Feb 28
// when the target year is not a leap year.
func AddYears(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	target := time.Date(y+n, m, 1, 0, 0, 0, 0, time.UTC)
	if last := daysIn(target); d > last {
		d = last
	}
	return time.Date(y+n, m, d, 0, 0, 0, 0, time.UTC)
}

func daysIn(firstOfMonth time.Time) int {
	return firstOfMonth.AddDate(0, 1, -1).Day()
}

func daysBetween(from, to time.Time) int {
	return int(Date(to).Sub(Date(from)).Hours() / 24)
}

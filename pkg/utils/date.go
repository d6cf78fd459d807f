package utils

import "time"

const (
	DateLayout = "2006-01-02"
	WeekLength = 7
)

// WeekFrom returns WeekLength consecutive calendar days starting at start.
func WeekFrom(start time.Time) []time.Time {
	day := truncateDay(start)
	dates := make([]time.Time, WeekLength)
	for i := range dates {
		dates[i] = day.AddDate(0, 0, i)
	}
	return dates
}

// SameDay compares calendar dates in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

package reminders

import (
	"math"
	"time"
)

// DaysBetween returns the rounded day count from a to b, positive when b is
// after a.
func DaysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// AddDays advances t by the given number of calendar days, keeping the
// wall-clock time of day. Incrementing the day field (instead of adding raw
// 24h chunks) keeps the result stable across DST transitions.
func AddDays(t time.Time, days int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+days, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

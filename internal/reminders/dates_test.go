package reminders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(a, a))
	assert.Equal(t, 30, DaysBetween(a, a.AddDate(0, 0, 30)))
	assert.Equal(t, -30, DaysBetween(a.AddDate(0, 0, 30), a))

	// Rounds to the nearest day.
	assert.Equal(t, 1, DaysBetween(a, a.Add(26*time.Hour)))
	assert.Equal(t, 0, DaysBetween(a, a.Add(11*time.Hour)))
	assert.Equal(t, 2, DaysBetween(a, a.Add(37*time.Hour)))
}

func TestAddDays(t *testing.T) {
	base := time.Date(2024, 1, 1, 9, 30, 15, 0, time.UTC)

	got := AddDays(base, 30)
	assert.Equal(t, time.Date(2024, 1, 31, 9, 30, 15, 0, time.UTC), got)

	// Month and year boundaries roll over.
	assert.Equal(t, time.Date(2024, 2, 1, 9, 30, 15, 0, time.UTC), AddDays(base, 31))
	assert.Equal(t, time.Date(2025, 1, 1, 9, 30, 15, 0, time.UTC), AddDays(base, 366)) // 2024 is a leap year

	// Negative day counts walk backward.
	assert.Equal(t, time.Date(2023, 12, 31, 9, 30, 15, 0, time.UTC), AddDays(base, -1))
}

func TestAddDaysKeepsWallClockAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 2024-03-10 is the spring-forward date in the US.
	base := time.Date(2024, 3, 9, 8, 0, 0, 0, loc)
	got := AddDays(base, 2)
	assert.Equal(t, 8, got.Hour())
	assert.Equal(t, time.Date(2024, 3, 11, 8, 0, 0, 0, loc), got)
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2024, 6, 15, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
}

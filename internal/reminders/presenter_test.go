package reminders

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patramworks/patram/internal/models"
)

func row(name string, phone string, label models.DueLabel, due time.Time) models.ReminderRow {
	r := models.ReminderRow{
		ClientID:   uuid.New(),
		ClientName: name,
		NextDueAt:  due,
		DueLabel:   label,
		EveryDays:  DefaultEveryDays,
	}
	if phone != "" {
		r.Phone = &phone
	}
	return r
}

func sampleRows() []models.ReminderRow {
	base := ts("2024-06-01T00:00:00Z")
	return []models.ReminderRow{
		row("Charlie", "9876500001", models.DueUpcoming, AddDays(base, 10)),
		row("Alice", "9876500002", models.DuePast, AddDays(base, -5)),
		row("Bob", "", models.DueToday, base),
		row("Dana", "9876500003", models.DuePast, AddDays(base, -1)),
		row("Eve", "9876500004", models.DueUpcoming, AddDays(base, 2)),
	}
}

func TestParseView(t *testing.T) {
	assert.Equal(t, ViewAll, ParseView(""))
	assert.Equal(t, ViewAll, ParseView("bogus"))
	assert.Equal(t, ViewUpcoming, ParseView("upcoming"))
	assert.Equal(t, ViewOutdated, ParseView("Outdated"))
}

func TestSelectBucket(t *testing.T) {
	rows := sampleRows()

	assert.Len(t, SelectBucket(rows, ViewAll), len(rows))

	outdated := SelectBucket(rows, ViewOutdated)
	require.Len(t, outdated, 2)
	for _, r := range outdated {
		assert.Equal(t, models.DuePast, r.DueLabel)
	}

	upcoming := SelectBucket(rows, ViewUpcoming)
	require.Len(t, upcoming, 3)
	for _, r := range upcoming {
		assert.NotEqual(t, models.DuePast, r.DueLabel)
	}
}

func TestSearch(t *testing.T) {
	rows := sampleRows()

	assert.Len(t, Search(rows, ""), len(rows))
	assert.Len(t, Search(rows, "   "), len(rows))

	byName := Search(rows, "aLiCe")
	require.Len(t, byName, 1)
	assert.Equal(t, "Alice", byName[0].ClientName)

	byPhone := Search(rows, "9876500003")
	require.Len(t, byPhone, 1)
	assert.Equal(t, "Dana", byPhone[0].ClientName)

	assert.Empty(t, Search(rows, "nobody"))
}

func TestCountsAreSearchInvariant(t *testing.T) {
	rows := sampleRows()
	counts := CountRows(rows)

	assert.Equal(t, len(rows), counts.All)
	assert.Equal(t, counts.All, counts.PastDue+counts.DueToday+counts.Upcoming)

	// Searching narrows the list, but chip counts come from the full set.
	filtered := Search(rows, "Alice")
	require.Len(t, filtered, 1)
	assert.Equal(t, counts, CountRows(rows))
}

func TestSortDueFirstThenDate(t *testing.T) {
	rows := sampleRows()
	Sort(rows)

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.ClientName
	}
	// Past due sorted by due date, then due today, then upcoming.
	assert.Equal(t, []string{"Alice", "Dana", "Bob", "Eve", "Charlie"}, names)
}

func TestSortIsStableAndIdempotent(t *testing.T) {
	due := ts("2024-06-01T00:00:00Z")
	rows := []models.ReminderRow{
		row("First", "", models.DueToday, due),
		row("Second", "", models.DueToday, due),
		row("Third", "", models.DueToday, due),
	}

	Sort(rows)
	assert.Equal(t, "First", rows[0].ClientName)
	assert.Equal(t, "Second", rows[1].ClientName)
	assert.Equal(t, "Third", rows[2].ClientName)

	once := append([]models.ReminderRow(nil), rows...)
	Sort(rows)
	assert.Equal(t, once, rows)
}

func TestPaginationCoversFilteredSetExactly(t *testing.T) {
	rows := sampleRows()
	Sort(rows)

	const pageSize = 2
	totalPages := TotalPages(len(rows), pageSize)
	assert.Equal(t, 3, totalPages)

	var collected []models.ReminderRow
	for page := 1; page <= totalPages; page++ {
		collected = append(collected, Paginate(rows, page, pageSize)...)
	}
	assert.Equal(t, rows, collected)

	// Out-of-range pages are empty; callers clamp before slicing.
	assert.Empty(t, Paginate(rows, totalPages+1, pageSize))
	assert.Empty(t, Paginate(rows, 0, pageSize))
}

func TestTotalPagesAndClampPage(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))

	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(99, 3))
}

package reminders

import (
	"sort"
	"strings"

	"github.com/patramworks/patram/internal/models"
)

// View selects which due buckets are shown.
type View string

const (
	ViewAll      View = "all"
	ViewUpcoming View = "upcoming" // due today + upcoming
	ViewOutdated View = "outdated" // past due
)

// ParseView maps a query parameter to a view, defaulting to all.
func ParseView(s string) View {
	switch View(strings.ToLower(s)) {
	case ViewUpcoming:
		return ViewUpcoming
	case ViewOutdated:
		return ViewOutdated
	default:
		return ViewAll
	}
}

// Counts are the bucket chip totals. They are always computed over the full
// row set, before any view filter or search, so the chips stay stable while
// the user types a query.
type Counts struct {
	All      int `json:"all"`
	PastDue  int `json:"past_due"`
	DueToday int `json:"due_today"`
	Upcoming int `json:"upcoming"`
}

func CountRows(rows []models.ReminderRow) Counts {
	c := Counts{All: len(rows)}
	for _, r := range rows {
		switch r.DueLabel {
		case models.DuePast:
			c.PastDue++
		case models.DueToday:
			c.DueToday++
		default:
			c.Upcoming++
		}
	}
	return c
}

// SelectBucket returns the rows belonging to the view's buckets.
func SelectBucket(rows []models.ReminderRow, view View) []models.ReminderRow {
	out := make([]models.ReminderRow, 0, len(rows))
	for _, r := range rows {
		switch view {
		case ViewOutdated:
			if r.DueLabel != models.DuePast {
				continue
			}
		case ViewUpcoming:
			if r.DueLabel != models.DueToday && r.DueLabel != models.DueUpcoming {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// Search keeps rows whose client name or phone contains the query,
// case-insensitively. An empty query keeps everything.
func Search(rows []models.ReminderRow, query string) []models.ReminderRow {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return rows
	}
	out := make([]models.ReminderRow, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.ClientName), q) {
			out = append(out, r)
			continue
		}
		if r.Phone != nil && strings.Contains(strings.ToLower(*r.Phone), q) {
			out = append(out, r)
		}
	}
	return out
}

// Sort orders rows due-first: past due, then due today, then upcoming, each
// bucket by next due date ascending. The sort is stable so equal rows keep
// their input order.
func Sort(rows []models.ReminderRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		if ri, rj := rows[i].DueLabel.Rank(), rows[j].DueLabel.Rank(); ri != rj {
			return ri < rj
		}
		return rows[i].NextDueAt.Before(rows[j].NextDueAt)
	})
}

// TotalPages returns the page count for n rows, at least 1.
func TotalPages(n, pageSize int) int {
	if pageSize < 1 {
		return 1
	}
	pages := (n + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage bounds a 1-indexed page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Paginate returns the 1-indexed page slice.
func Paginate(rows []models.ReminderRow, page, pageSize int) []models.ReminderRow {
	if pageSize < 1 {
		return rows
	}
	start := (page - 1) * pageSize
	if start < 0 || start >= len(rows) {
		return nil
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

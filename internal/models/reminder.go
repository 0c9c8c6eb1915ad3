package models

import (
	"time"

	"github.com/google/uuid"
)

// ReminderPref is the per-client reminder cadence. A client without a row
// uses the defaults (every 30 days, never manually reminded).
type ReminderPref struct {
	ClientID       uuid.UUID  `json:"client_id"`
	EveryDays      int        `json:"every_days"`
	LastRemindedAt *time.Time `json:"last_reminded_at"`
}

// DueLabel classifies a client's next due date against today.
type DueLabel string

const (
	DuePast     DueLabel = "Past Due"
	DueToday    DueLabel = "Due Today"
	DueUpcoming DueLabel = "Upcoming"
)

// Rank orders buckets for display: past due first, then due today, then
// upcoming.
func (l DueLabel) Rank() int {
	switch l {
	case DuePast:
		return 0
	case DueToday:
		return 1
	default:
		return 2
	}
}

// ReminderRow is derived per client on every computation pass. It is never
// persisted; storing it would let the stored label drift from the date math
// it came from.
type ReminderRow struct {
	ClientID       uuid.UUID  `json:"client_id"`
	ClientName     string     `json:"client_name"`
	Phone          *string    `json:"phone"`
	LastOrderAt    *time.Time `json:"last_order_at"`
	EveryDays      int        `json:"every_days"`
	LastRemindedAt *time.Time `json:"last_reminded_at"`
	NextDueAt      time.Time  `json:"next_due_at"`
	DueLabel       DueLabel   `json:"due_label"`
}

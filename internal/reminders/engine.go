package reminders

import (
	"time"

	"github.com/google/uuid"
	"github.com/patramworks/patram/internal/models"
)

// PrefSource supplies the effective cadence for a client. *PrefStore
// satisfies it.
type PrefSource interface {
	Get(clientID uuid.UUID) (everyDays int, lastRemindedAt *time.Time)
}

// BuildRows derives one ReminderRow per client from the current clients,
// orders and preferences. Orders are joined to clients by display name
// (orders.client carries the name, not an ID — legacy schema). A client with
// no usable order and no manual reminder counts from now, so it surfaces as
// upcoming rather than being dropped.
func BuildRows(clients []*models.Client, orders []*models.Order, prefs PrefSource, now time.Time) []models.ReminderRow {
	latestOrderByClient := make(map[string]time.Time)
	for _, o := range orders {
		if o.Client == "" || o.OrderDate.IsZero() {
			continue
		}
		if prev, ok := latestOrderByClient[o.Client]; !ok || o.OrderDate.After(prev) {
			latestOrderByClient[o.Client] = o.OrderDate
		}
	}

	today := StartOfDay(now)
	rows := make([]models.ReminderRow, 0, len(clients))
	for _, c := range clients {
		var lastOrderAt *time.Time
		if t, ok := latestOrderByClient[c.Name]; ok {
			t := t
			lastOrderAt = &t
		}

		everyDays, lastRemindedAt := prefs.Get(c.ID)

		// Base = later of last order and last manual reminder, so the
		// countdown never moves backward from the freshest signal.
		base := now
		switch {
		case lastOrderAt != nil && lastRemindedAt != nil:
			if lastRemindedAt.After(*lastOrderAt) {
				base = *lastRemindedAt
			} else {
				base = *lastOrderAt
			}
		case lastRemindedAt != nil:
			base = *lastRemindedAt
		case lastOrderAt != nil:
			base = *lastOrderAt
		}

		nextDueAt := AddDays(base, everyDays)

		var label models.DueLabel
		switch dueDay := StartOfDay(nextDueAt.In(now.Location())); {
		case dueDay.Before(today):
			label = models.DuePast
		case dueDay.Equal(today):
			label = models.DueToday
		default:
			label = models.DueUpcoming
		}

		rows = append(rows, models.ReminderRow{
			ClientID:       c.ID,
			ClientName:     c.Name,
			Phone:          c.Phone,
			LastOrderAt:    lastOrderAt,
			EveryDays:      everyDays,
			LastRemindedAt: lastRemindedAt,
			NextDueAt:      nextDueAt,
			DueLabel:       label,
		})
	}
	return rows
}

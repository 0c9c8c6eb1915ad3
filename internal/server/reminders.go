package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/patramworks/patram/internal/models"
	"github.com/patramworks/patram/internal/reminders"
	"github.com/patramworks/patram/internal/whatsapp"
)

// reminderRow is a derived row plus its presentation extras: the outreach
// link when the phone is dialable, and how late a past-due client is.
type reminderRow struct {
	models.ReminderRow
	WhatsAppLink string `json:"whatsapp_link,omitempty"`
	LateByDays   int    `json:"late_by_days,omitempty"`
}

type upsertReminderRequest struct {
	EveryDays      int        `json:"every_days"`
	LastRemindedAt *time.Time `json:"last_reminded_at"`
}

// ListReminders serves the reminders page data set: filtered, searched,
// sorted and paginated rows plus the bucket chip counts. Counts always come
// from the unfiltered rows so they hold still while the user types.
func (h *Handlers) ListReminders(c *gin.Context) {
	view := reminders.ParseView(c.Query("view"))
	query := c.Query("q")
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "page_size", h.pageSize)
	if pageSize < 1 {
		pageSize = h.pageSize
	}

	rows := h.snapshot.Rows()
	counts := reminders.CountRows(rows)

	list := reminders.SelectBucket(rows, view)
	list = reminders.Search(list, query)
	reminders.Sort(list)

	totalPages := reminders.TotalPages(len(list), pageSize)
	page = reminders.ClampPage(page, totalPages)
	paged := reminders.Paginate(list, page, pageSize)

	now := time.Now()
	out := make([]reminderRow, 0, len(paged))
	for _, r := range paged {
		row := reminderRow{ReminderRow: r}
		if link, ok := whatsapp.BuildReminderLink(r.ClientName, r.Phone, r.NextDueAt); ok {
			row.WhatsAppLink = link
		}
		if r.DueLabel == models.DuePast {
			if late := reminders.DaysBetween(r.NextDueAt, now); late > 0 {
				row.LateByDays = late
			}
		}
		out = append(out, row)
	}

	resp := gin.H{
		"rows": out,
		"counts": gin.H{
			"all":      counts.All,
			"upcoming": counts.DueToday + counts.Upcoming,
			"outdated": counts.PastDue,
		},
		"page":        page,
		"page_size":   pageSize,
		"total":       len(list),
		"total_pages": totalPages,
	}
	// A failed reload leaves stale rows in place; surface the error alongside
	// them instead of blanking the page.
	if lastErr := h.snapshot.LastError(); lastErr != "" {
		resp["error"] = lastErr
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) UpsertReminder(c *gin.Context) {
	clientID, err := uuid.Parse(c.Param("clientID"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid client id")
		return
	}
	var req upsertReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	stored, err := h.prefs.Upsert(c.Request.Context(), clientID, req.EveryDays, req.LastRemindedAt)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminder": stored})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	v := c.Query(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

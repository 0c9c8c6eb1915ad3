package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DashboardStats backs the dashboard stat cards: entity counts and the
// current calendar month's order revenue.
func (h *Handlers) DashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	clientCount, err := h.clients.Count(ctx)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}
	orderCount, err := h.orders.Count(ctx)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}
	productCount, err := h.products.Count(ctx)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}
	visitCount, err := h.visits.Count(ctx)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthOrders, err := h.orders.ListSince(ctx, monthStart)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}
	var revenue float64
	for _, o := range monthOrders {
		revenue += o.Total()
	}

	c.JSON(http.StatusOK, gin.H{
		"clients":         clientCount,
		"orders":          orderCount,
		"products":        productCount,
		"visits":          visitCount,
		"monthly_revenue": revenue,
		"monthly_orders":  len(monthOrders),
	})
}

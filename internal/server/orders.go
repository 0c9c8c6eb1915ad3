package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/patramworks/patram/internal/models"
	"github.com/patramworks/patram/internal/shortid"
)

type orderRequest struct {
	Client    string             `json:"client"`
	ClientID  *uuid.UUID         `json:"client_id"`
	OrderDate time.Time          `json:"order_date"`
	Status    string             `json:"status"`
	Items     []models.OrderItem `json:"items"`
	Discount  float64            `json:"discount"`
	Message   string             `json:"message"`
}

func (r *orderRequest) validate() string {
	r.Client = strings.TrimSpace(r.Client)
	if r.Client == "" {
		return "Missing client"
	}
	if r.OrderDate.IsZero() {
		return "Missing order date"
	}
	if r.Status != models.OrderStatusDelivered {
		r.Status = models.OrderStatusPending
	}
	for _, it := range r.Items {
		switch it.Kind {
		case "product":
			if it.ProductID == "" || it.Qty < 1 {
				return "Invalid product item"
			}
		case "custom":
			if strings.TrimSpace(it.Name) == "" || it.Qty < 1 {
				return "Invalid custom item"
			}
		default:
			return "Invalid item kind"
		}
	}
	return ""
}

func (h *Handlers) ListOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}
	if orders == nil {
		orders = []*models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// OrderHistory lists a single client's orders newest-first, matched on the
// display name the way the reminders page does.
func (h *Handlers) OrderHistory(c *gin.Context) {
	name := strings.TrimSpace(c.Query("client"))
	if name == "" {
		errorJSON(c, http.StatusBadRequest, "Missing client")
		return
	}
	orders, err := h.orders.ListByClientName(c.Request.Context(), name)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}
	if orders == nil {
		orders = []*models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *Handlers) CreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		errorJSON(c, http.StatusBadRequest, msg)
		return
	}

	order := &models.Order{
		ID:        shortid.NewOrderID(time.Now()),
		Client:    req.Client,
		ClientID:  req.ClientID,
		OrderDate: req.OrderDate,
		Status:    req.Status,
		Items:     req.Items,
		Discount:  req.Discount,
		Message:   req.Message,
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	if err := h.orders.Create(c.Request.Context(), order); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	h.refreshOrders(c)
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *Handlers) UpdateOrder(c *gin.Context) {
	id := c.Param("id")
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		errorJSON(c, http.StatusBadRequest, msg)
		return
	}

	order := &models.Order{
		ID:        id,
		Client:    req.Client,
		ClientID:  req.ClientID,
		OrderDate: req.OrderDate,
		Status:    req.Status,
		Items:     req.Items,
		Discount:  req.Discount,
		Message:   req.Message,
	}
	if order.Items == nil {
		order.Items = []models.OrderItem{}
	}
	if err := h.orders.Update(c.Request.Context(), order); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	h.refreshOrders(c)
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *Handlers) DeleteOrder(c *gin.Context) {
	if err := h.orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	h.refreshOrders(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// refreshOrders updates the reminder snapshot right after a write so the
// next reminders read reflects it without waiting for the change
// notification. The listener's refresh is the backstop.
func (h *Handlers) refreshOrders(c *gin.Context) {
	if err := h.snapshot.ReloadOrders(c.Request.Context()); err != nil {
		h.log.Warn("order snapshot refresh after write failed", zap.Error(err))
	}
}

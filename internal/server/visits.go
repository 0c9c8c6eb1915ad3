package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/patramworks/patram/internal/models"
)

type visitRequest struct {
	Client  string     `json:"client"`
	Date    *time.Time `json:"date"`
	Phone   *string    `json:"phone"`
	Address *string    `json:"address"`
}

func (h *Handlers) ListVisits(c *gin.Context) {
	visits, err := h.visits.List(c.Request.Context())
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}
	if visits == nil {
		visits = []*models.Visit{}
	}
	c.JSON(http.StatusOK, gin.H{"visits": visits})
}

func (h *Handlers) CreateVisit(c *gin.Context) {
	var req visitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	req.Client = strings.TrimSpace(req.Client)
	if req.Client == "" || req.Date == nil {
		errorJSON(c, http.StatusBadRequest, "Missing client or date")
		return
	}

	visit := &models.Visit{
		Client:  req.Client,
		Date:    *req.Date,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := h.visits.Create(c.Request.Context(), visit); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"visit": visit})
}

func (h *Handlers) UpdateVisit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid id")
		return
	}
	var req visitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	req.Client = strings.TrimSpace(req.Client)
	if req.Client == "" || req.Date == nil {
		errorJSON(c, http.StatusBadRequest, "Missing client or date")
		return
	}

	visit := &models.Visit{
		ID:      id,
		Client:  req.Client,
		Date:    *req.Date,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := h.visits.Update(c.Request.Context(), visit); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"visit": visit})
}

func (h *Handlers) DeleteVisit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Missing id")
		return
	}
	if err := h.visits.Delete(c.Request.Context(), id); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/patramworks/patram/internal/models"
	"github.com/patramworks/patram/internal/phone"
)

type clientRequest struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone"`
}

// validate trims the name, normalizes the phone and checks the 10-digit rule
// plus duplicates. excludeID skips the client being edited.
func (h *Handlers) validateClient(c *gin.Context, req *clientRequest, excludeID uuid.UUID) bool {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		errorJSON(c, http.StatusBadRequest, "Missing name")
		return false
	}
	if req.Phone == nil || strings.TrimSpace(*req.Phone) == "" {
		req.Phone = nil
		return true
	}

	digits := phone.Normalize(*req.Phone)
	if !phone.IsValid10(digits) {
		errorJSON(c, http.StatusBadRequest, "Enter 10 digit phone number.")
		return false
	}
	req.Phone = &digits

	existing, err := h.clients.List(c.Request.Context())
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return false
	}
	for _, other := range existing {
		if other.ID == excludeID || other.Phone == nil {
			continue
		}
		if phone.Normalize(*other.Phone) == digits {
			errorJSON(c, http.StatusBadRequest, "This phone number already exists.")
			return false
		}
	}
	return true
}

func (h *Handlers) ListClients(c *gin.Context) {
	clients, err := h.clients.List(c.Request.Context())
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}
	if clients == nil {
		clients = []*models.Client{}
	}
	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

func (h *Handlers) CreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	if !h.validateClient(c, &req, uuid.Nil) {
		return
	}

	client := &models.Client{Name: req.Name, Phone: req.Phone}
	if err := h.clients.Create(c.Request.Context(), client); err != nil {
		h.log.Warn("client create failed", zap.Error(err))
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"client": client})
}

func (h *Handlers) UpdateClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid id")
		return
	}
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	if !h.validateClient(c, &req, id) {
		return
	}

	client := &models.Client{ID: id, Name: req.Name, Phone: req.Phone}
	if err := h.clients.Update(c.Request.Context(), client); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"client": client})
}

func (h *Handlers) DeleteClient(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.clients.Delete(c.Request.Context(), id); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/patramworks/patram/internal/models"
	"github.com/patramworks/patram/internal/shortid"
)

type productRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	MRP         float64 `json:"mrp"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	PhotoURL    *string `json:"photo_url"`
}

func (h *Handlers) ListProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}
	if products == nil {
		products = []*models.Product{}
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handlers) CreateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		errorJSON(c, http.StatusBadRequest, "Missing name")
		return
	}

	product := &models.Product{
		ID:          shortid.NewProductID(),
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		MRP:         req.MRP,
		Category:    req.Category,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
	}
	if err := h.products.Create(c.Request.Context(), product); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *Handlers) UpdateProduct(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		errorJSON(c, http.StatusBadRequest, "Missing name")
		return
	}

	product := &models.Product{
		ID:          c.Param("id"),
		Name:        strings.TrimSpace(req.Name),
		Price:       req.Price,
		MRP:         req.MRP,
		Category:    req.Category,
		Description: req.Description,
		PhotoURL:    req.PhotoURL,
	}
	if err := h.products.Update(c.Request.Context(), product); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *Handlers) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

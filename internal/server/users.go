package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/patramworks/patram/internal/models"
)

type createUserRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (h *Handlers) ListUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *Handlers) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.Name == "" || req.Phone == "" || req.Password == "" {
		errorJSON(c, http.StatusBadRequest, "Missing fields")
		return
	}
	if req.Role == "" {
		req.Role = models.RoleUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}

	user := &models.User{
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         req.Role,
		PasswordHash: string(hash),
	}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (h *Handlers) DeleteUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "Missing id")
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Login checks credentials and returns the user. Session issuance is handled
// outside this service.
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, err.Error())
		return
	}

	normPhone := normalizeLoginPhone(req.Phone)
	if normPhone == "" || req.Password == "" {
		errorJSON(c, http.StatusBadRequest, "Phone and password are required")
		return
	}

	user, err := h.users.GetByPhone(c.Request.Context(), normPhone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			errorJSON(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		errorJSON(c, http.StatusInternalServerError, err.Error())
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		errorJSON(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// normalizeLoginPhone keeps digits and a leading +, matching how users are
// stored.
func normalizeLoginPhone(v string) string {
	var b strings.Builder
	for i, r := range strings.TrimSpace(v) {
		if (r >= '0' && r <= '9') || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

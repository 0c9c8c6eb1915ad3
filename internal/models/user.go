package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleMassAdmin = "mass_admin"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`

	// PasswordHash is never serialized in API responses.
	PasswordHash string `json:"-"`
}

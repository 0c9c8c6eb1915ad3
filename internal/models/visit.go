package models

import (
	"time"

	"github.com/google/uuid"
)

type Visit struct {
	ID        uuid.UUID `json:"id"`
	Client    string    `json:"client"`
	Date      time.Time `json:"date"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

type Product struct {
	ID          string    `json:"id"` // short ID, e.g. PRD-A1B2C3
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	MRP         float64   `json:"mrp"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	PhotoURL    *string   `json:"photo_url"`
	CreatedAt   time.Time `json:"created_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusDelivered = "Delivered"
)

// OrderItem is one line of an order. Kind "product" references a product by
// ID; kind "custom" carries a free-form name and price.
type OrderItem struct {
	Kind      string  `json:"kind"`
	ProductID string  `json:"productId,omitempty"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

type Order struct {
	ID      string `json:"id"` // short ID, e.g. ORD-20240115-8743
	Client  string `json:"client"`
	// ClientID is populated on newly created orders. Legacy rows only carry
	// the client display name, so the reminder engine still joins on Client.
	ClientID  *uuid.UUID  `json:"client_id"`
	OrderDate time.Time   `json:"order_date"`
	Status    string      `json:"status"`
	Items     []OrderItem `json:"items"`
	Discount  float64     `json:"discount"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"created_at"`
}

// Total returns the order value: sum of item price*qty minus discount.
func (o *Order) Total() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Price * float64(it.Qty)
	}
	return sum - o.Discount
}

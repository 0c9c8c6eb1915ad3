// Package shortid generates the human-readable IDs used for orders and
// products, e.g. ORD-20240115-8743 and PRD-A1B2C3.
package shortid

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	chars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length = 6
)

// New returns a random 6-character ID, with the prefix when given.
func New(prefix string) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		b.WriteByte(chars[rand.Intn(len(chars))])
	}
	if prefix == "" {
		return b.String()
	}
	return prefix + "-" + b.String()
}

// NewOrderID returns an order ID of the form ORD-YYYYMMDD-NNNN.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%04d", now.Format("20060102"), rand.Intn(10000))
}

// NewProductID returns a product ID of the form PRD-XXXXXX.
func NewProductID() string {
	return New("PRD")
}

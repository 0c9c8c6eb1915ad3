package shortid

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	re := regexp.MustCompile(`^[A-Z0-9]{6}$`)
	assert.Regexp(t, re, New(""))
	assert.Regexp(t, regexp.MustCompile(`^ORD-[A-Z0-9]{6}$`), New("ORD"))
}

func TestNewOrderID(t *testing.T) {
	now := time.Date(2025, 10, 11, 15, 0, 0, 0, time.UTC)
	assert.Regexp(t, regexp.MustCompile(`^ORD-20251011-\d{4}$`), NewOrderID(now))
}

func TestNewProductID(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^PRD-[A-Z0-9]{6}$`), NewProductID())
}

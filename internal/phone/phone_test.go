package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "9876543210", Normalize("98765 43210"))
	assert.Equal(t, "919876543210", Normalize("+91 98765-43210"))
	assert.Equal(t, "", Normalize("abc"))
	assert.Equal(t, "", Normalize(""))
}

func TestIsValid10(t *testing.T) {
	assert.True(t, IsValid10("9876543210"))
	assert.True(t, IsValid10("(987) 654-3210"))
	assert.False(t, IsValid10("987654321"))    // 9 digits
	assert.False(t, IsValid10("+919876543210")) // 12 digits
	assert.False(t, IsValid10(""))
}

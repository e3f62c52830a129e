package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jan@dnavastgoed.be"))
	assert.False(t, IsValidEmail("jan@"))
	assert.False(t, IsValidEmail("jan peeters@x.be"))
}

func TestIsValidPostalCode(t *testing.T) {
	assert.True(t, IsValidPostalCode("9000"))
	assert.False(t, IsValidPostalCode("0900"))
	assert.False(t, IsValidPostalCode("90000"))
	assert.False(t, IsValidPostalCode("Gent"))
}

func TestRanges(t *testing.T) {
	assert.True(t, IsValidRadius(0))
	assert.True(t, IsValidRadius(100))
	assert.False(t, IsValidRadius(101))
	assert.True(t, IsValidPriceRange(0, 10_000_000))
	assert.False(t, IsValidPriceRange(500, 100))
	assert.False(t, IsValidPriceRange(-1, 100))
}

package validation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("rojin@example.com"))
	assert.True(t, IsValidEmail("  rojin@example.com "))
	assert.False(t, IsValidEmail("rojin"))
	assert.False(t, IsValidEmail(""))
}

func TestCoordinates(t *testing.T) {
	assert.True(t, IsValidLatitude(36.19))
	assert.True(t, IsValidLatitude(-90))
	assert.False(t, IsValidLatitude(90.01))
	assert.False(t, IsValidLatitude(math.NaN()))

	assert.True(t, IsValidLongitude(44.01))
	assert.True(t, IsValidLongitude(180))
	assert.False(t, IsValidLongitude(-180.5))
}

func TestTrimAndValidate(t *testing.T) {
	v, ok := TrimAndValidate("  Erbil,IQ ")
	assert.True(t, ok)
	assert.Equal(t, "Erbil,IQ", v)

	_, ok = TrimAndValidate("   ")
	assert.False(t, ok)
}

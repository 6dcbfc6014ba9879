package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUtils_MinMax(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(2, Min(2, 5))
	assert.Equal(2, Min(5, 2))
	assert.Equal(5, Max(2, 5))
	assert.Equal(1.5, Max(1.5, -3.0))
	assert.Equal("a", Min("b", "a"))
}

func TestUtils_Abs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, 0.25, Abs(-0.25))
}

func TestUtils_Clamp(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, Clamp(-4, 0, 10))
	assert.Equal(10, Clamp(14, 0, 10))
	assert.Equal(7, Clamp(7, 0, 10))
}

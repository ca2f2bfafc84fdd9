package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 1, ParseIntDefault("", 1))
	assert.Equal(t, 5, ParseIntDefault("5", 1))
	assert.Equal(t, 1, ParseIntDefault("abc", 1))
}

func TestCalculate(t *testing.T) {
	offset, limit := Calculate(1, 20)
	assert.Equal(t, 0, offset)
	assert.Equal(t, 20, limit)

	offset, limit = Calculate(3, 10)
	assert.Equal(t, 20, offset)
	assert.Equal(t, 10, limit)

	offset, limit = Calculate(0, -1)
	assert.Equal(t, 0, offset)
	assert.Equal(t, DefaultPageSize, limit)
}

func TestCalculate_CapsPageSize(t *testing.T) {
	_, limit := Calculate(1, MaxPageSize)
	assert.Equal(t, MaxPageSize, limit)

	_, limit = Calculate(1, MaxPageSize+1)
	assert.Equal(t, DefaultPageSize, limit)

	_, limit = Calculate(1, 100000000)
	assert.Equal(t, DefaultPageSize, limit)
}

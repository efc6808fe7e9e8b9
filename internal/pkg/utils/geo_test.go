package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero for identical points", func(t *testing.T) {
		d := HaversineDistance(-8.65, 116.3167, -8.65, 116.3167)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		ab := HaversineDistance(-8.8955, 116.2833, -8.4119, 116.4572)
		ba := HaversineDistance(-8.4119, 116.4572, -8.8955, 116.2833)
		assert.InDelta(t, ab, ba, 1e-9)
	})

	t.Run("known distance", func(t *testing.T) {
		// Mataram to Kuta Mandalika, roughly 38 km great-circle
		d := HaversineDistance(-8.5833, 116.1167, -8.8955, 116.2833)
		assert.InDelta(t, 39.1, d, 1.5)
	})

	t.Run("quarter of the equator", func(t *testing.T) {
		d := HaversineDistance(0, 0, 0, 90)
		assert.InDelta(t, 10007.5, d, 10)
	})
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		km       float64
		expected string
	}{
		{0.5, "500 m"},
		{0.0449, "45 m"},
		{1.0, "1.0 km"},
		{12.34, "12.3 km"},
		{0.999, "999 m"},
		{38.25, "38.2 km"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDistance(tt.km), "km=%v", tt.km)
	}
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(-8.65, 116.31))
	assert.True(t, ValidateCoordinates(90, 180))
	assert.True(t, ValidateCoordinates(-90, -180))
	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, -180.5))
}

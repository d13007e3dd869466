package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDistanceMM(t *testing.T) {
	v, ok := ToDistanceMM(100, "cm")
	assert.True(t, ok)
	assert.Equal(t, 1000.0, v)

	v, ok = ToDistanceMM(25.5, "mm")
	assert.True(t, ok)
	assert.Equal(t, 25.5, v)

	v, ok = ToDistanceMM(1.2, "m")
	assert.True(t, ok)
	assert.Equal(t, 1200.0, v)

	_, ok = ToDistanceMM(3, "in")
	assert.False(t, ok)

	_, ok = ToDistanceMM(math.NaN(), "mm")
	assert.False(t, ok)

	_, ok = ToDistanceMM(math.Inf(1), "mm")
	assert.False(t, ok)
}

func TestToWeightKG(t *testing.T) {
	v, ok := ToWeightKG(500, "g")
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)

	v, ok = ToWeightKG(12, "kg")
	assert.True(t, ok)
	assert.Equal(t, 12.0, v)

	_, ok = ToWeightKG(1, "lb")
	assert.False(t, ok)

	_, ok = ToWeightKG(math.NaN(), "kg")
	assert.False(t, ok)

	_, ok = ToWeightKG(math.Inf(-1), "g")
	assert.False(t, ok)
}

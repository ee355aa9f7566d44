package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterleave2_Float32(t *testing.T) {
	left := []float32{1, 2, 3, 4, 5}
	right := []float32{-1, -2, -3, -4, -5}

	got := Interleave2(nil, left, right)

	require.Len(t, got, 10)
	assert.Equal(t, []float32{1, -1, 2, -2, 3, -3, 4, -4, 5, -5}, got)
}

func TestInterleave2_ReusesCapacity(t *testing.T) {
	buf := make([]float32, 0, 64)
	got := Interleave2(buf, []float32{1, 2}, []float32{3, 4})

	assert.Equal(t, []float32{1, 3, 2, 4}, got)
	assert.Equal(t, 64, cap(got), "existing capacity should be reused")
}

func TestInterleave2_Float64(t *testing.T) {
	got := Interleave2(nil, []float64{0.5, 0.25}, []float64{-0.5, -0.25})
	assert.Equal(t, []float64{0.5, -0.5, 0.25, -0.25}, got)
}

func TestScale_InPlace(t *testing.T) {
	data := []float32{32767, -32768, 16384, 0, 1, -1, 8192, 4096, 2}
	Scale(data, data, 1.0/32768)

	assert.InDelta(t, 0.999969482421875, data[0], 1e-9)
	assert.InDelta(t, -1.0, data[1], 1e-9)
	assert.InDelta(t, 0.5, data[2], 1e-9)
	assert.Zero(t, data[3])
	assert.InDelta(t, 0.25, data[6], 1e-9)
}

func TestFor_ReturnsSharedInstances(t *testing.T) {
	assert.Same(t, For[float32](), For[float32]())
	assert.Same(t, For[float64](), For[float64]())
}

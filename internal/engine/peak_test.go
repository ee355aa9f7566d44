package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeak_Observe(t *testing.T) {
	tests := []struct {
		name    string
		samples []float32
		want    float32
	}{
		{"empty", nil, 0},
		{"silence", []float32{0, 0, 0, 0}, 0},
		{"positive", []float32{0.1, 0.7, -0.2, 0.3}, 0.7},
		{"negative", []float32{0.1, -0.9, 0.2, 0.3}, 0.9},
		{"full scale", []float32{-1, 1}, 1},
		{"over full scale", []float32{1.5, -0.2}, 1.5},
		{"nan ignored", []float32{float32(math.NaN()), 0.25}, 0.25},
		{"inf", []float32{float32(math.Inf(-1)), 0}, float32(math.Inf(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Peak
			p.Observe(tt.samples)
			assert.Equal(t, tt.want, p.Value())
		})
	}
}

func TestPeak_Monotonic(t *testing.T) {
	var p Peak
	p.Observe([]float32{0.8, -0.1})
	p.Observe([]float32{0.1, -0.2})
	assert.Equal(t, float32(0.8), p.Value())

	p.Observe([]float32{-0.95})
	assert.Equal(t, float32(0.95), p.Value())
}

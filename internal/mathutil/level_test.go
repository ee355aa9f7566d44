package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnergySeed(t *testing.T) {
	assert.Equal(t, float32(1e-16), EnergySeed())
}

func TestEnergyToLevel(t *testing.T) {
	tests := []struct {
		name  string
		sum   float32
		pairs int
		want  float64
	}{
		{"full scale both channels", 2 * 2205, 2205, 10*math.Log10(2) + 87},
		{"full scale one channel", 4410, 4410, 87},
		{"half amplitude", 0.5 * 100, 100, 10*math.Log10(0.5) + 87},
		{"seed only", 1e-16, 1, -160 + 87},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EnergyToLevel(tt.sum, tt.pairs), 1e-4)
		})
	}
}

func TestLevelToBin(t *testing.T) {
	const bins = 12000

	tests := []struct {
		name  string
		level float32
		want  int
	}{
		{"zero", 0, 0},
		{"just below one hundredth", 0.0099, 0},
		{"one hundredth", 0.01, 1},
		{"typical", 78.69, 7869},
		{"full scale stereo", float32(10*math.Log10(2) + 87), 9001},
		{"negative", -3, 0},
		{"last bin", 119.995, bins - 1},
		{"clamped", 500, bins - 1},
		{"nan", float32(math.NaN()), 0},
		{"inf", float32(math.Inf(1)), bins - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelToBin(tt.level, bins))
		})
	}
}

func TestBinToLevel(t *testing.T) {
	assert.InDelta(t, 0.0, BinToLevel(0), 0)
	assert.InDelta(t, 78.69, BinToLevel(7869), 1e-12)
	assert.InDelta(t, 119.99, BinToLevel(11999), 1e-12)
}

func TestAmplitudeToDB(t *testing.T) {
	assert.InDelta(t, 0.0, AmplitudeToDB(1), 1e-12)
	assert.InDelta(t, -6.0206, AmplitudeToDB(0.5), 1e-4)
	assert.InDelta(t, 20.0, AmplitudeToDB(10), 1e-12)
	assert.InDelta(t, -240.0, AmplitudeToDB(0), 1e-9)
	assert.InDelta(t, -240.0, AmplitudeToDB(-1), 1e-9)
}

package filter

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allRates = []int{
	8000, 11025, 12000, 16000, 18900, 22050, 24000, 32000, 37800, 44100,
	48000, 56000, 64000, 88200, 96000, 112000, 128000, 144000, 176400, 192000,
}

func TestSupportedRates(t *testing.T) {
	assert.Equal(t, allRates, SupportedRates())
}

func TestLookup(t *testing.T) {
	for _, rate := range allRates {
		t.Run(strconv.Itoa(rate), func(t *testing.T) {
			p, ok := Lookup(rate)
			require.True(t, ok, "rate %d", rate)
			assert.Equal(t, rate, p.Rate)

			assert.Equal(t, yuleOrder, p.Yule.Order())
			assert.Len(t, p.Yule.A, yuleOrder+1)
			assert.Equal(t, butterOrder, p.Butter.Order())
			assert.Len(t, p.Butter.A, butterOrder+1)
			assert.InDelta(t, 1.0, p.Yule.A[0], 0)
			assert.InDelta(t, 1.0, p.Butter.A[0], 0)

			assert.Equal(t, rate/20, p.FrameLength())
			assert.Equal(t, 2*(rate/20), p.FrameSize())
			assert.Equal(t, p.FrameLength(), p.WindowLength())
		})
	}
}

func TestLookup_SharedPointer(t *testing.T) {
	a, _ := Lookup(44100)
	b, _ := Lookup(44100)
	assert.Same(t, a, b)
}

func TestLookup_Unsupported(t *testing.T) {
	for _, rate := range []int{0, -1, 1, 44099, 44101, 22000, 384000} {
		p, ok := Lookup(rate)
		assert.False(t, ok, "rate %d", rate)
		assert.Nil(t, p)
	}
}

func TestButterworth_IsHighPass(t *testing.T) {
	for _, rate := range allRates {
		p, _ := Lookup(rate)
		b := p.Butter.B

		// Numerator is (1 - z^-1)^2 scaled: zero gain at DC.
		assert.InDelta(t, 0, b[0]+b[1]+b[2], 1e-12, "rate %d", rate)
		assert.InDelta(t, -2*b[0], b[1], 1e-12, "rate %d", rate)

		// Unity gain at Nyquist.
		nyquist := (b[0] - b[1] + b[2]) / (1 - p.Butter.A[1] + p.Butter.A[2])
		assert.InDelta(t, 1.0, nyquist, 1e-9, "rate %d", rate)
	}
}

func TestProfiles_Stable(t *testing.T) {
	// A stable cascade rings out well within half a second.
	for _, rate := range allRates {
		p, _ := Lookup(rate)
		pairs := rate / 2

		impulse := make([]float32, pairs*channels)
		impulse[0], impulse[1] = 1, 1
		out := make([]float32, len(impulse))
		NewEqualLoudness(p).Process(out, impulse)

		for _, v := range out[len(out)-4*channels*yuleOrder:] {
			require.False(t, math.IsNaN(float64(v)), "rate %d", rate)
			require.LessOrEqual(t, math.Abs(float64(v)), denormalThreshold, "rate %d", rate)
		}
	}
}

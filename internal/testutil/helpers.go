// Package testutil provides reusable test helpers and deterministic test
// signals for the loudness analysis tests.
package testutil

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	DBTolerance      = 0.01
	// BinTolerance covers one 0.01 dB histogram bin plus float rounding.
	BinTolerance = 0.0101
)

// stereoChannels is the interleaved channel count of every generated signal.
const stereoChannels = 2

// StereoSine returns pairs interleaved stereo samples of a sine at freq Hz.
// The right channel is phase-shifted by phase radians.
func StereoSine(freq, sampleRate, amplitude, phase float64, pairs int) []float32 {
	out := make([]float32, pairs*stereoChannels)
	for i := range pairs {
		w := 2 * math.Pi * freq * float64(i) / sampleRate
		out[stereoChannels*i] = float32(amplitude * math.Sin(w))
		out[stereoChannels*i+1] = float32(amplitude * math.Sin(w+phase))
	}
	return out
}

// Noise returns n uniformly distributed samples in [-amplitude, amplitude).
// The same seed always yields the same samples.
func Noise(seed uint64, n int, amplitude float64) []float32 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(amplitude * (2*rng.Float64() - 1))
	}
	return out
}

// RandomChunks splits samples into consecutive chunks whose lengths are
// drawn from [0, maxLen], deterministic for a given seed. Empty chunks and
// odd lengths are included on purpose.
func RandomChunks(seed uint64, samples []float32, maxLen int) [][]float32 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	var chunks [][]float32
	for len(samples) > 0 {
		n := min(rng.IntN(maxLen+1), len(samples))
		chunks = append(chunks, samples[:n])
		samples = samples[n:]
	}
	return chunks
}

// FixedChunks splits samples into chunks of size n (the last may be shorter).
func FixedChunks(samples []float32, n int) [][]float32 {
	var chunks [][]float32
	for len(samples) > 0 {
		k := min(n, len(samples))
		chunks = append(chunks, samples[:k])
		samples = samples[k:]
	}
	return chunks
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(f, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertSlicesInDelta verifies two slices element-wise within tolerance.
func AssertSlicesInDelta(t *testing.T, expected, actual []float32, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"element %d: expected %g, got %g", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}

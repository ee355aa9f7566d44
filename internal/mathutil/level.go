// Package mathutil provides the level and decibel conversions shared by the
// loudness engine and the command line tools.
package mathutil

import "math"

// EnergySeed returns the starting value of a window energy sum.
func EnergySeed() float32 {
	return energyEpsilon
}

// EnergyToLevel converts a two-channel energy sum over pairs stereo sample
// pairs into a loudness level in dB.
//
// The division runs in float32 like the accumulation; the logarithm and
// offsets run in float64 and the result is rounded back to float32.
func EnergyToLevel(sum float32, pairs int) float32 {
	mean := sum / float32(pairs)
	db := float64(decibelsPerDecade * math.Log10(float64(mean)))
	return float32(db + fullScaleOffsetDB - stereoOffsetDB)
}

// LevelToBin quantises a level to a histogram bin in [0, bins).
// Values outside the range clamp to the nearest edge; NaN maps to bin 0.
func LevelToBin(level float32, bins int) int {
	scaled := math.Floor(float64(float32(BinsPerDB) * level))
	switch {
	case math.IsNaN(scaled) || scaled < 0:
		return 0
	case scaled >= float64(bins-1):
		return bins - 1
	default:
		return int(scaled)
	}
}

// BinToLevel returns the level in dB at the lower edge of a histogram bin.
func BinToLevel(bin int) float64 {
	return float64(bin) / BinsPerDB
}

// AmplitudeToDB converts a linear amplitude to dB, flooring at -240 dB.
func AmplitudeToDB(amplitude float64) float64 {
	return amplitudeDecibels * math.Log10(math.Max(amplitude, minAmplitude))
}

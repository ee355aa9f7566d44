package filter

import "slices"

// Coefficients holds the taps of one direct-form IIR stage.
// B are the feed-forward taps, A the feedback taps. A[0] is the
// normalisation term and is always 1; the recursion never reads it.
type Coefficients struct {
	B []float64
	A []float64
}

// Order returns the filter order (number of delayed samples per channel).
func (c *Coefficients) Order() int {
	return len(c.B) - 1
}

// Profile is the immutable per-rate configuration of the analysis:
// the coefficients of both equal-loudness stages and the frame geometry.
//
// Profiles are shared by pointer for the lifetime of an analyzer and
// must not be modified.
type Profile struct {
	// Rate is the nominal sample rate in Hz.
	Rate int

	// Yule is the order-10 Yule-Walker equal-loudness stage.
	Yule Coefficients

	// Butter is the order-2 Butterworth high-pass stage.
	Butter Coefficients
}

// FrameLength returns the analysis frame length in stereo sample pairs
// (50 ms of audio).
func (p *Profile) FrameLength() int {
	return p.Rate / framesPerSecond
}

// FrameSize returns the analysis frame length in interleaved samples.
func (p *Profile) FrameSize() int {
	return p.FrameLength() * channels
}

// WindowLength returns the energy window length in stereo sample pairs.
// One loudness value is produced per frame, so the window spans a frame.
func (p *Profile) WindowLength() int {
	return p.FrameLength()
}

// Lookup returns the profile for an exact sample rate.
// Rates outside the supported set yield nil, false; there is no
// nearest-rate fallback.
func Lookup(rate int) (*Profile, bool) {
	for i := range profiles {
		if profiles[i].Rate == rate {
			return &profiles[i], true
		}
	}
	return nil, false
}

// SupportedRates returns every supported sample rate in ascending order.
func SupportedRates() []int {
	rates := make([]int, len(profiles))
	for i := range profiles {
		rates[i] = profiles[i].Rate
	}
	slices.Sort(rates)
	return rates
}

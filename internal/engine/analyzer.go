// Package engine implements the per-frame loudness analysis: the
// equal-loudness filter, the short-term energy windower, the loudness
// histogram and the peak tracker, driven one frame at a time.
package engine

import (
	"fmt"

	"github.com/tphakala/go-replaygain/internal/filter"
)

// Analyzer runs complete frames through the analysis chain.
//
//	raw frame ──► Peak
//	    └──────► EqualLoudness ──► Windower ──► Histogram
//
// It owns all mutable state and is not safe for concurrent use.
type Analyzer struct {
	profile   *filter.Profile
	filter    *filter.EqualLoudness
	windower  *Windower
	histogram *Histogram
	peak      Peak

	// filtered holds the filter output for the current frame
	filtered []float32

	// Statistics
	frames  int64
	samples int64
}

// NewAnalyzer creates an analyzer for the given profile.
func NewAnalyzer(p *filter.Profile) *Analyzer {
	return &Analyzer{
		profile:   p,
		filter:    filter.NewEqualLoudness(p),
		windower:  NewWindower(p.WindowLength()),
		histogram: NewHistogram(),
		filtered:  make([]float32, p.FrameSize()),
	}
}

// FrameSize returns the number of interleaved samples in one frame.
func (a *Analyzer) FrameSize() int {
	return len(a.filtered)
}

// Profile returns the profile the analyzer was built for.
func (a *Analyzer) Profile() *filter.Profile {
	return a.profile
}

// ProcessFrame analyzes one complete frame of interleaved stereo samples.
// It panics if the frame does not have exactly FrameSize samples.
func (a *Analyzer) ProcessFrame(frame []float32) {
	if len(frame) != len(a.filtered) {
		panic(fmt.Sprintf("engine: frame has %d samples, want %d", len(frame), len(a.filtered)))
	}

	a.peak.Observe(frame)
	a.filter.Process(a.filtered, frame)
	a.windower.Process(a.filtered, a.histogram)

	a.frames++
	a.samples += int64(len(frame))
}

// Histogram returns the live histogram. Callers must not modify it.
func (a *Analyzer) Histogram() *Histogram {
	return a.histogram
}

// Peak returns the largest absolute sample value seen so far.
func (a *Analyzer) Peak() float32 {
	return a.peak.Value()
}

// Gain returns the track gain for everything analyzed so far, using the
// standard reference loudness and percentile.
func (a *Analyzer) Gain() float32 {
	return a.histogram.Gain(ReferenceLoudness, Percentile)
}

// GetStatistics returns processing statistics.
func (a *Analyzer) GetStatistics() map[string]int64 {
	return map[string]int64{
		"frames":  a.frames,
		"samples": a.samples,
		"windows": int64(a.histogram.Total()),
	}
}

package replaygain

import (
	"github.com/tphakala/go-replaygain/internal/engine"
	"github.com/tphakala/go-replaygain/internal/mathutil"
)

// Result holds the ReplayGain metadata of a finished track or album.
type Result struct {
	// Gain is the adjustment in dB that brings the measured loudness to
	// ReferenceLoudness. Positive values mean the track is quiet.
	Gain float32

	// Peak is the largest absolute sample value, 1.0 at digital full scale.
	Peak float32

	histogram *engine.Histogram
}

// PeakDB returns Peak in dBFS.
func (r Result) PeakDB() float64 {
	return mathutil.AmplitudeToDB(float64(r.Peak))
}

// Windows returns the number of loudness windows the result was measured
// over.
func (r Result) Windows() uint64 {
	if r.histogram == nil {
		return 0
	}
	return r.histogram.Total()
}

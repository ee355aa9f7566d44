package replaygain

import (
	"github.com/tphakala/go-replaygain/internal/engine"
)

// Album combines finished track results into album gain and peak.
//
// The album gain is measured over the merged loudness histograms of all
// tracks, so longer tracks weigh more. The album peak is the largest track
// peak.
type Album struct {
	histogram *engine.Histogram
	peak      float32
	tracks    int
}

// NewAlbum returns an empty album.
func NewAlbum() *Album {
	return &Album{histogram: engine.NewHistogram()}
}

// Add includes a track result. Results not produced by Analyzer.Finish
// contribute only their peak.
func (a *Album) Add(r Result) {
	if r.histogram != nil {
		a.histogram.Merge(r.histogram)
	}
	if r.Peak > a.peak {
		a.peak = r.Peak
	}
	a.tracks++
}

// Tracks returns the number of results added.
func (a *Album) Tracks() int {
	return a.tracks
}

// Result returns the album gain and peak. An empty album reports MaxGain
// and a zero peak.
func (a *Album) Result() Result {
	return Result{
		Gain:      a.histogram.Gain(engine.ReferenceLoudness, engine.Percentile),
		Peak:      a.peak,
		histogram: a.histogram.Clone(),
	}
}

package engine

import (
	"github.com/tphakala/go-replaygain/internal/mathutil"
)

// LevelRecorder receives one loudness value per completed window.
type LevelRecorder interface {
	Record(level float32)
}

// Windower turns filtered stereo samples into short-term loudness values.
//
// It sums L*L + R*R over a fixed number of sample pairs in float32,
// starting from a tiny seed so a silent window still has a finite level,
// then converts the mean to dB. Windows may straddle calls.
type Windower struct {
	length int     // stereo pairs per window
	sum    float32 // running energy of the open window
	count  int     // pairs accumulated in the open window
}

// NewWindower creates a windower emitting one level per length pairs.
func NewWindower(length int) *Windower {
	if length < 1 {
		panic("engine: window length must be positive")
	}
	return &Windower{
		length: length,
		sum:    mathutil.EnergySeed(),
	}
}

// Length returns the window length in stereo pairs.
func (w *Windower) Length() int {
	return w.length
}

// Process accumulates interleaved stereo samples and reports every window
// completed by them to rec. A trailing odd sample is ignored.
func (w *Windower) Process(samples []float32, rec LevelRecorder) {
	sum, count := w.sum, w.count

	for n := 0; n+1 < len(samples); n += channels {
		l, r := samples[n], samples[n+1]
		sum += float32(l*l) + float32(r*r)

		if count++; count == w.length {
			rec.Record(mathutil.EnergyToLevel(sum, w.length))
			sum, count = mathutil.EnergySeed(), 0
		}
	}

	w.sum, w.count = sum, count
}

// Open returns the number of pairs accumulated in the unfinished window.
func (w *Windower) Open() int {
	return w.count
}

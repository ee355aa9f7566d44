package engine

import (
	"github.com/tphakala/go-replaygain/internal/mathutil"
)

// Histogram counts loudness windows per 0.01 dB bin.
//
// Counts only ever grow: every recorded level lands in exactly one bin,
// out-of-range levels clamp to the nearest edge.
type Histogram struct {
	bins  [histogramSlots]uint32
	total uint64
}

// NewHistogram returns an empty histogram.
func NewHistogram() *Histogram {
	return &Histogram{}
}

// Record adds one window at the given level in dB.
func (h *Histogram) Record(level float32) {
	h.bins[mathutil.LevelToBin(level, histogramSlots)]++
	h.total++
}

// Total returns the number of recorded windows.
func (h *Histogram) Total() uint64 {
	return h.total
}

// Count returns the number of windows in a bin.
// Out-of-range bins hold nothing.
func (h *Histogram) Count(bin int) uint32 {
	if bin < 0 || bin >= histogramSlots {
		return 0
	}
	return h.bins[bin]
}

// Bins returns the number of bins.
func (h *Histogram) Bins() int {
	return histogramSlots
}

// Merge adds every count from other into h.
func (h *Histogram) Merge(other *Histogram) {
	for i, c := range other.bins {
		h.bins[i] += c
	}
	h.total += other.total
}

// Clone returns an independent copy.
func (h *Histogram) Clone() *Histogram {
	c := *h
	return &c
}

// Loudness returns the bin whose level is the measured loudness: scanning
// from the loudest bin down, the first bin at which the windows below it
// are no more than percentile of the total. ok is false when nothing has
// been recorded.
func (h *Histogram) Loudness(percentile float64) (bin int, ok bool) {
	if h.total == 0 {
		return 0, false
	}

	threshold := percentile * float64(h.total)

	var loud uint64
	for bin = histogramSlots - 1; bin > 0; bin-- {
		loud += uint64(h.bins[bin])
		if float64(h.total-loud) <= threshold {
			break
		}
	}

	return bin, true
}

// Gain returns reference minus the measured loudness in dB.
// An empty histogram returns MaxGain(reference), the gain of the floor bin,
// which is also what an all-silent stream measures.
func (h *Histogram) Gain(reference, percentile float64) float32 {
	bin, ok := h.Loudness(percentile)
	if !ok {
		return MaxGain(reference)
	}
	return float32(reference - mathutil.BinToLevel(bin))
}

// MaxGain is the largest gain a histogram can report for reference:
// the gain assigned to the floor bin.
func MaxGain(reference float64) float32 {
	return float32(reference - mathutil.BinToLevel(0))
}

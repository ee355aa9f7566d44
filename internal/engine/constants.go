package engine

// Histogram constants
const (
	// histogramSlots covers 0 to 120 dB in 0.01 dB steps.
	histogramSlots = 12000

	// ReferenceLoudness is the level in dB that a track measuring exactly
	// at the reference (pink noise at 89 dB SPL) is mapped to, expressed on
	// the histogram's scale.
	ReferenceLoudness = 64.54

	// Percentile is the fraction of windows that must lie at or below the
	// level used as the track's loudness.
	Percentile = 0.95
)

// Stereo layout
const (
	channels = 2
)

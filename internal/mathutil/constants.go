package mathutil

// Level conversion constants
const (
	// energyEpsilon seeds every energy sum so silence yields a finite level
	// far below the histogram floor instead of log10(0).
	energyEpsilon = 1e-16

	// Offsets applied to the mean-square level. 90 dB maps digital full
	// scale onto a playback SPL scale; 3 dB removes the doubling from
	// summing two channels.
	fullScaleOffsetDB = 90.0
	stereoOffsetDB    = 3.0

	// Level quantisation: 100 histogram bins per dB.
	BinsPerDB = 100

	// decibelsPerDecade converts log10 of a power ratio to dB.
	decibelsPerDecade = 10.0

	// amplitudeDecibels converts log10 of an amplitude ratio to dB.
	amplitudeDecibels = 20.0

	// minAmplitude floors AmplitudeToDB at -240 dB.
	minAmplitude = 1e-12
)

package filter

// Equal-loudness cascade constants
const (
	// Stage orders. The Yule-Walker stage shapes the response to the
	// inverted equal-loudness contour, the Butterworth stage removes
	// content below roughly 150 Hz.
	yuleOrder   = 10
	butterOrder = 2

	// Interleaved stereo.
	channels = 2

	// historyLen is the length of each interleaved history buffer.
	// When the write index reaches it, the live tail is moved to the front.
	historyLen = 256

	// History values at or below this magnitude are considered silent.
	// A stage whose whole live history is silent is cleared so denormals
	// cannot linger in the recursion.
	denormalThreshold = 1e-10

	// Frames are one twentieth of a second long.
	framesPerSecond = 20
)

// minResponseLen is the shortest impulse response MagnitudeResponse accepts.
const minResponseLen = 16

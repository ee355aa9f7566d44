package main

const (
	// Buffer size for decoding (interleaved samples per read)
	bufferSize = 65536

	// Only stereo input is analyzed
	stereoChannels = 2

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// WAV format tag for integer PCM
	wavFormatPCM = 1

	// Full-scale values per bit depth
	maxInt16 = 32768.0
	maxInt24 = 8388608.0
	maxInt32 = 2147483648.0

	// CLI
	minRequiredArgs = 1
)

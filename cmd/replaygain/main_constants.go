package main

// Default command-line flag values
const (
	defaultRate       = 44100     // CD quality sample rate
	defaultChunkBytes = 64 * 1024 // stdin read size
)

// Sample encoding
const (
	bytesPerSample = 4 // float32
)
